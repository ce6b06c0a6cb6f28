package parser

import (
	"errors"

	"github.com/ttpr0/go-pathfind/geo"
)

var ErrUnsupportedSource = errors.New("unsupported geometry source")

//*******************************************
// parser structs
//*******************************************

type GeometryKind byte

const (
	OTHER      GeometryKind = 0
	LINESTRING GeometryKind = 1
	POLYGON    GeometryKind = 2
)

func (self GeometryKind) String() string {
	switch self {
	case LINESTRING:
		return "LineString"
	case POLYGON:
		return "Polygon"
	default:
		return "Other"
	}
}

// RawFeature is a single polyline handed to the graph builder. Polygons only
// carry their outer ring.
type RawFeature struct {
	Kind   GeometryKind
	Coords geo.CoordArray
	Oneway bool
}

func (self RawFeature) IsValid() bool {
	return (self.Kind == LINESTRING || self.Kind == POLYGON) && len(self.Coords) > 0
}

type Stats struct {
	Features    int
	LineStrings int
	Polygons    int
	Oneway      int
	Skipped     int
}

func (self *Stats) _Count(f RawFeature) {
	switch f.Kind {
	case LINESTRING:
		self.LineStrings += 1
	case POLYGON:
		self.Polygons += 1
	}
	if f.Oneway {
		self.Oneway += 1
	}
}

// temporary way data collected while scanning an osm extract
type _TempWay struct {
	Nodes    []int64
	Kind     GeometryKind
	Oneway   bool
	Reversed bool
}
