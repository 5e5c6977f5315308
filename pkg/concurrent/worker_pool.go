// Package concurrent provides the generic worker pool the extractor uses to
// shard intersection classification across goroutines.
package concurrent

import (
	"sync"
)

type JobFunc[T any, G any] func(job T) G

// WorkerPool fans jobs of type T out to a fixed set of workers and funnels
// their results of type G back through a single channel. Queue all jobs with
// AddJob, then Close, Start, Wait, and drain CollectResults.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobs       chan T
	results    chan G
	wg         sync.WaitGroup
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobs:       make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobs {
		wp.results <- jobFunc(job)
	}
}

// Start launches the workers. The job channel must already be closed or be
// closed eventually, otherwise Wait blocks forever.
func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

// Wait blocks until every worker drained the job channel, then closes the
// results channel so CollectResults ranges terminate.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobs <- job
}

func (wp *WorkerPool[T, G]) CollectResults() chan G {
	return wp.results
}

// Close marks the job queue complete. No AddJob may follow.
func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobs)
}
