package controllers

import (
	"github.com/lintang-b-s/guidancex/pkg/http/usecases"
)

type GuidanceService interface {
	ClassifyIntersection(lat, lon, bearing float64) ([]usecases.ClassifiedRoad, error)
	ClassifyTurns(via usecases.RawRoad, roads []usecases.RawRoad) ([]usecases.ClassifiedRoad, error)
}
