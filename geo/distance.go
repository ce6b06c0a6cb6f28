package geo

import (
	"math"
)

const (
	FLATTENING = 1 / 298.25
	RADIUS     = 6378137.0
)

func DegreeToRadian(degree float64) float64 {
	return degree * math.Pi / 180
}

// Distance returns the surface distance in meters between two coordinates on a
// slightly oblate spheroid, using Lambert's second order correction of the
// haversine central angle.
func Distance(a, b Coord) float64 {
	lat1 := DegreeToRadian(a[1])
	lat2 := DegreeToRadian(b[1])
	lon1 := DegreeToRadian(a[0])
	lon2 := DegreeToRadian(b[0])

	angle := 2 * math.Asin(math.Sqrt(math.Pow(math.Sin((lat1-lat2)/2), 2)+math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin((lon1-lon2)/2), 2)))
	if angle == 0 {
		return 0
	}

	reduced_lat1 := (1 - FLATTENING) * math.Tan(lat1)
	reduced_lat2 := (1 - FLATTENING) * math.Tan(lat2)
	p := (reduced_lat1 + reduced_lat2) / 2
	q := (reduced_lat2 - reduced_lat1) / 2

	sin_p, cos_p := math.Sincos(p)
	sin_q, cos_q := math.Sincos(q)
	x := (angle - math.Sin(angle)) * (sin_p * sin_p * cos_q * cos_q) / math.Pow(math.Cos(angle/2), 2)
	y := (angle + math.Sin(angle)) * (sin_q * sin_q * cos_p * cos_p) / math.Pow(math.Sin(angle/2), 2)

	return RADIUS * (angle - (FLATTENING/2)*(x+y))
}

// Squared euclidean distance in coordinate space.
func SquaredEuclidean(a, b Coord) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return dx*dx + dy*dy
}
