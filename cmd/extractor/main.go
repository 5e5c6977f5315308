package main

import (
	"flag"

	"github.com/lintang-b-s/guidancex/pkg/extractor"
	"github.com/lintang-b-s/guidancex/pkg/logger"
	"github.com/lintang-b-s/guidancex/pkg/osmparser"
	"github.com/lintang-b-s/guidancex/pkg/util"
)

var (
	mapFile       = flag.String("f", "./data/map.osm.pbf", "openstreetmap pbf file")
	graphFile     = flag.String("graph", "./data/road_network.graph", "output road network graph file")
	turnTableFile = flag.String("turns", "./data/turns.guidance", "output turn table file")
	numWorkers    = flag.Int("workers", extractor.EXTRACTOR_WORKER, "number of classification workers")
)

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		log.Sugar().Warnf("no config file found, using defaults: %v", err)
	}

	parser := osmparser.NewOsmParser()
	graph, err := parser.Parse(*mapFile, log)
	if err != nil {
		panic(err)
	}

	if err := graph.WriteGraph(*graphFile); err != nil {
		panic(err)
	}
	log.Sugar().Infof("road network graph written to %s", *graphFile)

	table := extractor.NewExtractor(graph, log).Run(*numWorkers)

	if err := table.WriteTurnTable(*turnTableFile); err != nil {
		panic(err)
	}
	log.Sugar().Infof("turn table written to %s", *turnTableFile)
}
