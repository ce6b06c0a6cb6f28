package main

import (
	"github.com/paulmach/orb/geojson"
	"github.com/ttpr0/go-pathfind/geo"
)

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

// values of the "kind" property of routing features
const (
	KIND_TRACE = "trace"
	KIND_PATH  = "path"
)

type RoutingResponse struct {
	Type         string             `json:"type"`
	Finished     bool               `json:"finished"`
	Found        bool               `json:"found"`
	Distance     float64            `json:"distance"`
	EdgesRelaxed int                `json:"edges_relaxed"`
	Features     []*geojson.Feature `json:"features"`
	Key          string             `json:"key,omitempty"`
}

func NewRoutingResponse(finished bool, key string) RoutingResponse {
	return RoutingResponse{
		Type:     "FeatureCollection",
		Finished: finished,
		Features: make([]*geojson.Feature, 0, 10),
		Key:      key,
	}
}

func (self *RoutingResponse) AddSegments(segments []geo.Segment, kind string) {
	for _, s := range segments {
		feature := geojson.NewFeature(s.ToLineString())
		feature.Properties["kind"] = kind
		self.Features = append(self.Features, feature)
	}
}

type DrawContextResponse struct {
	Key string `json:"key"`
}

type NearestNodeResponse struct {
	Node int32   `json:"node"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Full network as a geojson FeatureCollection of segments.
func NewNetworkResponse(segments []geo.Segment) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, s := range segments {
		fc.Append(geojson.NewFeature(s.ToLineString()))
	}
	return fc
}
