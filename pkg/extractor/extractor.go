package extractor

import (
	"time"

	"github.com/lintang-b-s/guidancex/pkg/concurrent"
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/guidance"
	"go.uber.org/zap"
)

const EXTRACTOR_WORKER = 8

type classifiedIntersection struct {
	viaEdge      datastructure.Index
	intersection datastructure.Intersection
}

// Extractor classifies the turns of every intersection of the graph and
// collects them into a turn table.
type Extractor struct {
	graph     *datastructure.Graph
	handler   *guidance.TurnHandler
	generator *guidance.IntersectionGenerator
	logger    *zap.Logger
}

func NewExtractor(graph *datastructure.Graph, logger *zap.Logger) *Extractor {
	return &Extractor{
		graph:     graph,
		handler:   guidance.NewTurnHandler(graph, guidance.DefaultSuffixTable()),
		generator: guidance.NewIntersectionGenerator(graph),
		logger:    logger,
	}
}

func (e *Extractor) classifyViaEdge(viaEdge datastructure.Index) classifiedIntersection {
	intersection := e.generator.Generate(viaEdge)
	intersection = e.handler.Compute(viaEdge, intersection)
	return classifiedIntersection{
		viaEdge:      viaEdge,
		intersection: intersection,
	}
}

// Run classifies all intersections, one job per directed via edge. The
// classifier is pure over the read-only graph, so the jobs shard freely
// across the workers.
func (e *Extractor) Run(numWorkers int) *datastructure.TurnTable {
	start := time.Now()
	numEdges := e.graph.NumberOfEdges()

	workers := concurrent.NewWorkerPool[datastructure.Index, classifiedIntersection](
		numWorkers, numEdges)

	for viaEdge := 0; viaEdge < numEdges; viaEdge++ {
		workers.AddJob(datastructure.Index(viaEdge))
	}

	workers.Close()
	workers.Start(e.classifyViaEdge)
	workers.Wait()

	table := datastructure.NewTurnTable(numEdges)
	for classified := range workers.CollectResults() {
		table.Set(classified.viaEdge, classified.intersection)
	}

	e.logger.Sugar().Infof("classified %d intersections in %v", numEdges, time.Since(start))
	return table
}
