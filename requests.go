package main

import (
	"github.com/ttpr0/go-pathfind/geo"
)

// Endpoints are given either as node indices or as coordinates, which are
// snapped to the nearest node.
type RoutingRequest struct {
	Start      *int32    `json:"start" validate:"required_without=StartCoord"`
	End        *int32    `json:"end" validate:"required_without=EndCoord"`
	StartCoord []float64 `json:"start_coord" validate:"omitempty,len=2"`
	EndCoord   []float64 `json:"end_coord" validate:"omitempty,len=2"`

	// include the search trace in the response
	Draw bool `json:"draw"`
	// overrides the configured search mode
	Mode string `json:"mode" validate:"omitempty,oneof=discovery strict"`
	// disables the heuristic (plain dijkstra)
	Dijkstra bool `json:"dijkstra"`
}

func (self RoutingRequest) StartLocation() (geo.Coord, bool) {
	if len(self.StartCoord) != 2 {
		return geo.Coord{}, false
	}
	return geo.Coord{self.StartCoord[0], self.StartCoord[1]}, true
}

func (self RoutingRequest) EndLocation() (geo.Coord, bool) {
	if len(self.EndCoord) != 2 {
		return geo.Coord{}, false
	}
	return geo.Coord{self.EndCoord[0], self.EndCoord[1]}, true
}

type DrawContextRequest = RoutingRequest

type DrawRoutingRequest struct {
	Key       string `json:"key" validate:"required,uuid"`
	Stepcount int    `json:"stepcount" validate:"gt=0"`
}

type NearestNodeRequest struct {
	X float64 `json:"x" validate:"gte=-180,lte=180"`
	Y float64 `json:"y" validate:"gte=-90,lte=90"`
}
