package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/http"
	"github.com/lintang-b-s/guidancex/pkg/http/usecases"
	"github.com/lintang-b-s/guidancex/pkg/logger"
	"github.com/lintang-b-s/guidancex/pkg/spatialindex"
	"github.com/lintang-b-s/guidancex/pkg/util"
	"go.uber.org/zap"
)

var (
	graphFile             = flag.String("graph", "./data/road_network.graph", "road network graph file")
	leafBoundingBoxRadius = flag.Float64("leaf_bounding_box_radius", 0.05, "leaf node (r-tree) bounding box radius in km")
	snapRadius            = flag.Float64("snap_radius", 0.2, "max snapping radius for classify queries in km")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Sugar().Warnf("no config file found, using defaults: %v", err)
	}

	graph, err := datastructure.ReadGraph(*graphFile)
	if err != nil {
		panic(err)
	}

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, *leafBoundingBoxRadius, logger)

	api := http.NewServer(logger)

	guidanceService := usecases.NewGuidanceService(logger, graph, rtree, *snapRadius)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx, logger, false, guidanceService)

	signal := http.GracefulShutdown()

	logger.Info("Guidancex Turn Classification Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
