package parser

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/ttpr0/go-pathfind/geo"
	. "github.com/ttpr0/go-pathfind/util"
	"golang.org/x/exp/slog"
)

const DEFAULT_ONEWAY_PROPERTY = "oneway"

//*******************************************
// geojson parser
//*******************************************

// Parses a geojson FeatureCollection. Features are decoded one by one so that a
// single malformed feature is skipped instead of failing the whole collection.
func ParseGeoJSON(data []byte, oneway_property string) ([]RawFeature, Stats, error) {
	if oneway_property == "" {
		oneway_property = DEFAULT_ONEWAY_PROPERTY
	}
	var collection struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, Stats{}, fmt.Errorf("decode feature collection: %w", err)
	}
	if collection.Type != "FeatureCollection" {
		return nil, Stats{}, fmt.Errorf("%w: geojson type %q", ErrUnsupportedSource, collection.Type)
	}

	stats := Stats{}
	features := NewList[RawFeature](len(collection.Features))
	for _, raw := range collection.Features {
		stats.Features += 1
		feature, err := geojson.UnmarshalFeature(raw)
		if err != nil {
			stats.Skipped += 1
			continue
		}
		f, ok := DecodeFeature(feature, oneway_property)
		if !ok {
			stats.Skipped += 1
			continue
		}
		stats._Count(f)
		features.Add(f)
	}
	slog.Debug(fmt.Sprintf("geojson: %v features, %v skipped", features.Length(), stats.Skipped))
	return features, stats, nil
}

// Converts a geojson feature into a raw feature. Returns false for missing or
// unsupported geometries.
func DecodeFeature(feature *geojson.Feature, oneway_property string) (RawFeature, bool) {
	if feature == nil || feature.Geometry == nil {
		return RawFeature{}, false
	}
	f := RawFeature{}
	switch geom := feature.Geometry.(type) {
	case orb.LineString:
		f.Kind = LINESTRING
		f.Coords = geo.CoordArrayFromPoints(geom)
	case orb.Polygon:
		if len(geom) == 0 {
			return RawFeature{}, false
		}
		f.Kind = POLYGON
		f.Coords = geo.CoordArrayFromPoints(geom[0])
	default:
		return RawFeature{}, false
	}
	if len(f.Coords) == 0 {
		return RawFeature{}, false
	}
	if value, ok := feature.Properties[oneway_property]; ok {
		oneway, reversed := _ParseOnewayValue(value)
		f.Oneway = oneway
		if reversed {
			_ReverseCoords(f.Coords)
		}
	}
	return f, true
}
