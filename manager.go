package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/ttpr0/go-pathfind/geo"
	"github.com/ttpr0/go-pathfind/graph"
	"github.com/ttpr0/go-pathfind/parser"
	"github.com/ttpr0/go-pathfind/routing"
	. "github.com/ttpr0/go-pathfind/util"
	"golang.org/x/exp/slog"
)

// Builds the graph from the configured geometry source or loads it from the
// snapshot. The graph is built when build is set or no snapshot exists yet.
func NewGraphManager(config Config, build bool, metrics *Metrics) (*GraphManager, error) {
	snapshot := config.Build.Snapshot
	if snapshot.Path == "" || !FileExists(snapshot.Path) {
		build = true
	}

	var g *graph.Graph
	if build {
		b, err := BuildFromSource(config.Build.Source)
		if err != nil {
			return nil, err
		}
		g = b
		if snapshot.Path != "" {
			if err := graph.Store(g, snapshot.Path, graph.SnapshotFormat(snapshot.Format)); err != nil {
				return nil, fmt.Errorf("failed to store snapshot: %w", err)
			}
			slog.Info("stored graph snapshot", "file", snapshot.Path, "format", snapshot.Format.String())
		}
	} else {
		l, err := graph.Load(snapshot.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load snapshot: %w", err)
		}
		g = l
		slog.Info("loaded graph snapshot", "file", snapshot.Path, "nodes", g.NodeCount())
	}

	return NewGraphManagerFromGraph(g, config, metrics), nil
}

func NewGraphManagerFromGraph(g *graph.Graph, config Config, metrics *Metrics) *GraphManager {
	if metrics != nil {
		metrics.GraphNodes.Set(float64(g.NodeCount()))
	}
	return &GraphManager{
		config:  config,
		graph:   g,
		metrics: metrics,
	}
}

// Reads the features of the geometry source and builds the graph from them.
func BuildFromSource(source SourceOptions) (*graph.Graph, error) {
	if source.Path == "" {
		return nil, errors.New("no geometry source configured")
	}
	decoder, ok := parser.GetDecoder(source.Profile)
	if !ok {
		return nil, fmt.Errorf("unknown source profile: %s", source.Profile)
	}
	slog.Info("reading geometry source", "file", source.Path, "type", source.Type.String())
	features, stats, err := parser.ReadFeatures(source.Path, source.Type.String(), parser.Options{
		OnewayProperty: source.OnewayProperty,
		Decoder:        decoder,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("parsed features", "features", stats.Features, "skipped", stats.Skipped, "oneway", stats.Oneway)

	g, build_stats := graph.BuildGraph(features)
	slog.Info("built graph", "nodes", build_stats.Nodes, "connections", build_stats.Connections, "shared", build_stats.SharedNodes)
	return g, nil
}

type GraphManager struct {
	config  Config
	graph   *graph.Graph
	metrics *Metrics
}

func (self *GraphManager) GetGraph() *graph.Graph {
	return self.graph
}

// Search options from the config, extended by opts.
func (self *GraphManager) _Options(opts []routing.Option) []routing.Option {
	options := NewList[routing.Option](len(opts) + 1)
	options.Add(routing.WithMode(routing.SearchMode(self.config.Search.Mode)))
	for _, opt := range opts {
		options.Add(opt)
	}
	return options
}

func (self *GraphManager) FindPath(start, end int32, opts ...routing.Option) (routing.Result, error) {
	t := time.Now()
	res, err := routing.FindPath(self.graph, start, end, self._Options(opts)...)
	if self.metrics != nil {
		self.metrics.RecordSearch(res, err, time.Since(t))
	}
	return res, err
}

// Node closest to the coordinate, false for an empty graph.
func (self *GraphManager) NearestNode(coord geo.Coord) (int32, bool) {
	return self.graph.NearestNode(coord.X(), coord.Y())
}
