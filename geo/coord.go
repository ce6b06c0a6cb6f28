package geo

import (
	"github.com/paulmach/orb"
)

//*******************************************
// coordinates
//*******************************************

// Coord is a (x, y) pair in degrees, x being longitude and y latitude.
type Coord [2]float64

func (self Coord) X() float64 {
	return self[0]
}
func (self Coord) Y() float64 {
	return self[1]
}

func (self Coord) ToPoint() orb.Point {
	return orb.Point{self[0], self[1]}
}

func CoordFromPoint(p orb.Point) Coord {
	return Coord{p[0], p[1]}
}

type CoordArray []Coord

func (self CoordArray) ToLineString() orb.LineString {
	line := make(orb.LineString, len(self))
	for i, c := range self {
		line[i] = c.ToPoint()
	}
	return line
}

func CoordArrayFromPoints(points []orb.Point) CoordArray {
	coords := make(CoordArray, len(points))
	for i, p := range points {
		coords[i] = CoordFromPoint(p)
	}
	return coords
}

//*******************************************
// segments
//*******************************************

// Segment is a straight line between two coordinates, stored as [x1, y1, x2, y2].
type Segment [4]float64

func NewSegment(a, b Coord) Segment {
	return Segment{a[0], a[1], b[0], b[1]}
}

func (self Segment) From() Coord {
	return Coord{self[0], self[1]}
}
func (self Segment) To() Coord {
	return Coord{self[2], self[3]}
}

// Geodesic length of the segment in meters.
func (self Segment) Length() float64 {
	return Distance(self.From(), self.To())
}

func (self Segment) ToLineString() orb.LineString {
	return orb.LineString{self.From().ToPoint(), self.To().ToPoint()}
}
