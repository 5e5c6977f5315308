package controllers

import (
	"github.com/lintang-b-s/guidancex/pkg/http/usecases"
)

type classifyIntersectionRequest struct {
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Lon     float64 `json:"lon" validate:"min=-180,max=180"`
	Bearing float64 `json:"bearing" validate:"min=0,max=360"`
}

type rawRoadDto struct {
	Angle        float64 `json:"angle" validate:"min=0,max=360"`
	EntryAllowed *bool   `json:"entry_allowed" validate:"required"`
	HighwayType  string  `json:"highway_type"`
	StreetName   string  `json:"street_name"`
}

func (d rawRoadDto) toRawRoad() usecases.RawRoad {
	entryAllowed := true
	if d.EntryAllowed != nil {
		entryAllowed = *d.EntryAllowed
	}
	return usecases.RawRoad{
		Angle:        d.Angle,
		EntryAllowed: entryAllowed,
		HighwayType:  d.HighwayType,
		StreetName:   d.StreetName,
	}
}

type classifyTurnsRequest struct {
	Via   rawRoadDto   `json:"via" validate:"required"`
	Roads []rawRoadDto `json:"roads" validate:"required,min=1,dive"`
}

type classifyResponse struct {
	Roads []usecases.ClassifiedRoad `json:"roads"`
}

func newClassifyResponse(roads []usecases.ClassifiedRoad) classifyResponse {
	return classifyResponse{Roads: roads}
}
