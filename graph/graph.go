package graph

import (
	"errors"
	"fmt"

	"github.com/ttpr0/go-pathfind/geo"
	. "github.com/ttpr0/go-pathfind/util"
)

var ErrInvalidSnapshot = errors.New("invalid graph snapshot")

//*******************************************
// graph interface
//******************************************

type IGraph interface {
	NodeCount() int
	IsNode(node int32) bool
	GetNodeGeom(node int32) geo.Coord
	// Calls the callback for every outgoing connection of node.
	ForNeighbours(node int32, callback func(other int32))
}

//*******************************************
// graph
//******************************************

type Graph struct {
	nodes    Array[Node]
	segments Optional[Array[geo.Segment]]
}

// Creates a graph from a node list, checking that every connection points to
// an existing node.
func NewGraph(nodes Array[Node]) (*Graph, error) {
	count := int32(nodes.Length())
	for i, node := range nodes {
		for _, other := range node.Connections {
			if other < 0 || other >= count {
				return nil, fmt.Errorf("%w: node %v connects to %v, graph has %v nodes", ErrInvalidSnapshot, i, other, count)
			}
		}
	}
	return &Graph{nodes: nodes}, nil
}

func (self *Graph) NodeCount() int {
	return self.nodes.Length()
}

// Number of directed connections.
func (self *Graph) EdgeCount() int {
	count := 0
	for _, node := range self.nodes {
		count += node.Connections.Length()
	}
	return count
}
func (self *Graph) IsNode(node int32) bool {
	return node >= 0 && int(node) < self.nodes.Length()
}
func (self *Graph) GetNode(node int32) Node {
	return self.nodes[node]
}
func (self *Graph) GetNodeGeom(node int32) geo.Coord {
	return self.nodes[node].Loc()
}
func (self *Graph) ForNeighbours(node int32, callback func(other int32)) {
	for _, other := range self.nodes[node].Connections {
		callback(other)
	}
}
func (self *Graph) Nodes() Array[Node] {
	return self.nodes
}

// Returns the flat segment list of the full network. Graphs built from raw
// features return the raw coordinate pairs, otherwise the segments are derived
// from the connections with each bidirectional pair listed once.
func (self *Graph) Segments() Array[geo.Segment] {
	if self.segments.HasValue() {
		return self.segments.Value
	}
	segments := NewList[geo.Segment](self.nodes.Length())
	for i, node := range self.nodes {
		for _, other := range node.Connections {
			if int(other) < i && self.nodes[other].IsConnected(int32(i)) {
				continue
			}
			segments.Add(geo.NewSegment(node.Loc(), self.nodes[other].Loc()))
		}
	}
	return Array[geo.Segment](segments)
}

// Returns the node closest to (x, y) by squared euclidean distance in
// coordinate space. Ties resolve to the lower index.
func (self *Graph) NearestNode(x, y float64) (int32, bool) {
	point := geo.Coord{x, y}
	best := int32(-1)
	best_dist := 0.0
	for i, node := range self.nodes {
		dist := geo.SquaredEuclidean(point, node.Loc())
		if best == -1 || dist < best_dist {
			best = int32(i)
			best_dist = dist
		}
	}
	return best, best != -1
}
