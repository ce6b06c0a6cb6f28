package graph

import (
	"fmt"

	"github.com/ttpr0/go-pathfind/geo"
	"github.com/ttpr0/go-pathfind/parser"
	. "github.com/ttpr0/go-pathfind/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// build graph
//*******************************************

// Builder merges raw features into a graph. Vertices are merged only when
// their coordinates are exactly equal. Consecutive equal coordinates of a
// feature collapse into one vertex and never produce a connection from a node
// to itself.
type Builder struct {
	nodes        List[Node]
	index        Dict[geo.Coord, int32]
	last_feature List[int32]
	segments     List[geo.Segment]
	features     int32
	stats        BuildStats
}

func NewBuilder() *Builder {
	return &Builder{
		nodes:        NewList[Node](1000),
		index:        NewDict[geo.Coord, int32](1000),
		last_feature: NewList[int32](1000),
		segments:     NewList[geo.Segment](1000),
	}
}

// Adds a single feature. Features that are neither linestrings nor polygons or
// that carry no coordinates are skipped. Returns false for skipped features.
func (self *Builder) AddFeature(f parser.RawFeature) bool {
	self.stats.Features += 1
	if !f.IsValid() {
		self.stats.Skipped += 1
		return false
	}
	feature := self.features
	self.features += 1

	prev := int32(-1)
	for _, coord := range f.Coords {
		curr := self._GetOrCreateNode(coord, feature)
		if prev != -1 && prev != curr {
			self._Connect(prev, curr)
			if !f.Oneway {
				self._Connect(curr, prev)
			}
			self.segments.Add(geo.NewSegment(self.nodes[prev].Loc(), coord))
		}
		prev = curr
	}
	return true
}

func (self *Builder) _GetOrCreateNode(coord geo.Coord, feature int32) int32 {
	if id, ok := self.index[coord]; ok {
		if self.last_feature[id] != feature && !self.nodes[id].Required {
			self.nodes[id].Required = true
			self.stats.SharedNodes += 1
		}
		self.last_feature[id] = feature
		return id
	}
	id := int32(self.nodes.Length())
	self.nodes.Add(Node{
		X:           coord[0],
		Y:           coord[1],
		Connections: NewList[int32](2),
	})
	self.last_feature.Add(feature)
	self.index[coord] = id
	return id
}

func (self *Builder) _Connect(from, to int32) {
	node := &self.nodes[from]
	if Contains(node.Connections, to) {
		return
	}
	node.Connections.Add(to)
	self.stats.Connections += 1
}

func (self *Builder) Stats() BuildStats {
	stats := self.stats
	stats.Nodes = self.nodes.Length()
	stats.Segments = self.segments.Length()
	return stats
}

// Returns the graph built so far. The builder must not be used afterwards.
func (self *Builder) Build() *Graph {
	stats := self.Stats()
	slog.Debug(fmt.Sprintf("built graph: %v nodes, %v connections, %v shared, %v features skipped", stats.Nodes, stats.Connections, stats.SharedNodes, stats.Skipped))
	return &Graph{
		nodes:    Array[Node](self.nodes),
		segments: Some(Array[geo.Segment](self.segments)),
	}
}

func BuildGraph(features []parser.RawFeature) (*Graph, BuildStats) {
	builder := NewBuilder()
	for _, f := range features {
		builder.AddFeature(f)
	}
	return builder.Build(), builder.Stats()
}
