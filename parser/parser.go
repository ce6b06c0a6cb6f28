package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/ttpr0/go-pathfind/geo"
	. "github.com/ttpr0/go-pathfind/util"
	"golang.org/x/exp/slog"
)

type Options struct {
	// property holding the oneway flag of geojson features
	OnewayProperty string
	// decides which osm ways are part of the network
	Decoder IOSMDecoder
}

// Reads all features from a geometry source file. format is one of
// "geojson", "osm" (xml) or "osmpbf".
func ReadFeatures(file string, format string, opts Options) ([]RawFeature, Stats, error) {
	switch format {
	case "geojson":
		data, err := ReadBytesFromFile(file)
		if err != nil {
			return nil, Stats{}, err
		}
		return ParseGeoJSON(data, opts.OnewayProperty)
	case "osm", "osmpbf":
		f, err := os.Open(file)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("open %s: %w", file, err)
		}
		defer f.Close()
		decoder := opts.Decoder
		if decoder == nil {
			decoder = &DrivingDecoder{}
		}
		if format == "osm" {
			return ParseOSM(f, decoder)
		}
		return ParseOSMPBF(f, decoder)
	default:
		return nil, Stats{}, fmt.Errorf("%w: %q", ErrUnsupportedSource, format)
	}
}

//*******************************************
// osm parser
//*******************************************

type _OSMScanner interface {
	Scan() bool
	Object() osm.Object
	Err() error
}

// Parses an osm xml extract into linestring (and closed area) features.
func ParseOSM(r io.Reader, decoder IOSMDecoder) ([]RawFeature, Stats, error) {
	scanner := osmxml.New(context.Background(), r)
	defer scanner.Close()
	return _ParseOsm(scanner, decoder)
}

// Parses an osm pbf extract into linestring (and closed area) features.
func ParseOSMPBF(r io.Reader, decoder IOSMDecoder) ([]RawFeature, Stats, error) {
	scanner := osmpbf.New(context.Background(), r, runtime.GOMAXPROCS(-1))
	scanner.SkipRelations = true
	defer scanner.Close()
	return _ParseOsm(scanner, decoder)
}

func _ParseOsm(scanner _OSMScanner, decoder IOSMDecoder) ([]RawFeature, Stats, error) {
	osm_nodes := NewDict[int64, geo.Coord](10000)
	ways := NewList[_TempWay](1000)
	stats := Stats{}

	c := 0
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			osm_nodes[int64(object.ID)] = geo.Coord{object.Lon, object.Lat}
		case *osm.Way:
			c += 1
			if c%1000 == 0 {
				slog.Debug(fmt.Sprintf("scanned %v ways", c))
			}
			tags := Dict[string, string](object.TagMap())
			if !decoder.IsValidWay(tags) {
				continue
			}
			way := _TempWay{
				Nodes: make([]int64, len(object.Nodes)),
				Kind:  LINESTRING,
			}
			for i, nd := range object.Nodes {
				way.Nodes[i] = int64(nd.ID)
			}
			l := len(way.Nodes)
			if l > 2 && way.Nodes[0] == way.Nodes[l-1] && tags.Get("area") == "yes" {
				way.Kind = POLYGON
			}
			way.Oneway, way.Reversed = decoder.DecodeOneway(tags)
			ways.Add(way)
		default:
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("scan osm: %w", err)
	}

	features := NewList[RawFeature](ways.Length())
	for _, way := range ways {
		stats.Features += 1
		coords := make(geo.CoordArray, 0, len(way.Nodes))
		missing := false
		for _, id := range way.Nodes {
			if !osm_nodes.ContainsKey(id) {
				missing = true
				break
			}
			coords = append(coords, osm_nodes[id])
		}
		if missing || len(coords) == 0 {
			stats.Skipped += 1
			continue
		}
		if way.Reversed {
			_ReverseCoords(coords)
		}
		f := RawFeature{Kind: way.Kind, Coords: coords, Oneway: way.Oneway}
		stats._Count(f)
		features.Add(f)
	}
	slog.Debug(fmt.Sprintf("osm: %v features, %v skipped", features.Length(), stats.Skipped))
	return features, stats, nil
}
