package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkerPoolProcessesEveryJob(t *testing.T) {
	wp := NewWorkerPool[int, int](4, 10)
	for i := 0; i < 10; i++ {
		wp.AddJob(i)
	}
	wp.Close()
	wp.Start(func(job int) int {
		return job * job
	})
	wp.Wait()

	got := make([]int, 0, 10)
	for res := range wp.CollectResults() {
		got = append(got, res)
	}
	sort.Ints(got)

	require.Equal(t, []int{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}, got)
}
