package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-pathfind/geo"
)

const testCollection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"highway": "residential"},
     "geometry": {"type": "LineString", "coordinates": [[16.60, 47.20], [16.61, 47.20], [16.62, 47.21]]}},
    {"type": "Feature", "properties": {"oneway": "yes"},
     "geometry": {"type": "LineString", "coordinates": [[16.62, 47.21], [16.63, 47.21]]}},
    {"type": "Feature", "properties": {"oneway": "-1"},
     "geometry": {"type": "LineString", "coordinates": [[16.63, 47.21], [16.64, 47.22]]}},
    {"type": "Feature", "properties": {"building": "yes"},
     "geometry": {"type": "Polygon", "coordinates": [
        [[16.60, 47.20], [16.60, 47.19], [16.59, 47.19], [16.60, 47.20]],
        [[16.595, 47.195], [16.596, 47.195], [16.596, 47.196], [16.595, 47.195]]]}},
    {"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [16.6, 47.2]}},
    {"type": "Feature", "properties": {}, "geometry": null},
    {"type": "Feature", "properties": {}, "geometry": {"type": "Bogus", "coordinates": []}}
  ]
}`

func TestParseGeoJSON(t *testing.T) {
	features, stats, err := ParseGeoJSON([]byte(testCollection), "")
	require.NoError(t, err)
	require.Len(t, features, 4)

	assert.Equal(t, 7, stats.Features)
	assert.Equal(t, 3, stats.Skipped)
	assert.Equal(t, 3, stats.LineStrings)
	assert.Equal(t, 1, stats.Polygons)
	assert.Equal(t, 2, stats.Oneway)

	assert.Equal(t, LINESTRING, features[0].Kind)
	assert.False(t, features[0].Oneway)
	assert.Equal(t, geo.CoordArray{{16.60, 47.20}, {16.61, 47.20}, {16.62, 47.21}}, features[0].Coords)

	assert.True(t, features[1].Oneway)

	// "-1" flips the digitization direction
	assert.True(t, features[2].Oneway)
	assert.Equal(t, geo.CoordArray{{16.64, 47.22}, {16.63, 47.21}}, features[2].Coords)

	// only the outer ring is kept
	assert.Equal(t, POLYGON, features[3].Kind)
	assert.Len(t, features[3].Coords, 4)
}

func TestParseGeoJSONCustomOnewayProperty(t *testing.T) {
	data := `{"type": "FeatureCollection", "features": [
	  {"type": "Feature", "properties": {"dir": true, "oneway": "no"},
	   "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 0]]}}]}`
	features, _, err := ParseGeoJSON([]byte(data), "dir")
	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.True(t, features[0].Oneway)
}

func TestParseGeoJSONNotACollection(t *testing.T) {
	_, _, err := ParseGeoJSON([]byte(`{"type": "Feature"}`), "")
	assert.ErrorIs(t, err, ErrUnsupportedSource)

	_, _, err = ParseGeoJSON([]byte(`not json`), "")
	assert.Error(t, err)
}

func TestParseOnewayValue(t *testing.T) {
	cases := []struct {
		value    any
		oneway   bool
		reversed bool
	}{
		{true, true, false},
		{false, false, false},
		{"yes", true, false},
		{"1", true, false},
		{"no", false, false},
		{"-1", true, true},
		{float64(1), true, false},
		{float64(-1), true, true},
		{nil, false, false},
	}
	for _, c := range cases {
		oneway, reversed := _ParseOnewayValue(c.value)
		assert.Equal(t, c.oneway, oneway, "value %v", c.value)
		assert.Equal(t, c.reversed, reversed, "value %v", c.value)
	}
}
