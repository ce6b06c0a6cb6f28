package routing

import (
	"fmt"
	"math"

	"github.com/ttpr0/go-pathfind/geo"
	"github.com/ttpr0/go-pathfind/graph"
	. "github.com/ttpr0/go-pathfind/util"
)

type flag_astar struct {
	path_length float64
	prev_node   int32
	visited     bool
}

type AStar struct {
	heap    PriorityQueue[int32, float64]
	graph   graph.IGraph
	options Options
	start   int32
	end     int32
	flags   []flag_astar
	trace   List[geo.Segment]
	relaxed int
	dist    float64
	found   bool
}

func NewAStar(g graph.IGraph, start, end int32, opts ...Option) (*AStar, error) {
	if !g.IsNode(start) {
		return nil, fmt.Errorf("%w: start %v", ErrInvalidIndex, start)
	}
	if !g.IsNode(end) {
		return nil, fmt.Errorf("%w: end %v", ErrInvalidIndex, end)
	}
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	d := AStar{
		graph:   g,
		options: options,
		start:   start,
		end:     end,
	}

	flags := make([]flag_astar, g.NodeCount())
	for i := 0; i < len(flags); i++ {
		flags[i].path_length = math.Inf(1)
		flags[i].prev_node = -1
	}
	d.flags = flags

	d.heap = NewPriorityQueue[int32, float64](100)
	if options.Trace {
		d.trace = NewList[geo.Segment](100)
	}
	return &d, nil
}

func (self *AStar) _Heuristic(node int32) float64 {
	if !self.options.Heuristic {
		return 0
	}
	return geo.Distance(self.graph.GetNodeGeom(node), self.graph.GetNodeGeom(self.end))
}

func (self *AStar) _AddTrace(node, prev int32) {
	if !self.options.Trace {
		return
	}
	self.trace.Add(geo.NewSegment(self.graph.GetNodeGeom(node), self.graph.GetNodeGeom(prev)))
}

func (self *AStar) CalcShortestPath() error {
	if self.start == self.end {
		self.found = true
		self.dist = 0
		return nil
	}
	switch self.options.Mode {
	case STRICT:
		self.found = self._CalcStrict()
	default:
		self.found = self._CalcDiscovery()
	}
	if !self.found {
		return fmt.Errorf("%w: from %v to %v", ErrNoPathFound, self.start, self.end)
	}
	return nil
}

// Nodes are marked visited when they are discovered and never touched again,
// so a node keeps the first distance it was reached with. This can settle nodes
// on a longer path than necessary.
func (self *AStar) _CalcDiscovery() bool {
	self.flags[self.start].path_length = 0
	self.flags[self.start].visited = true
	self.heap.Enqueue(self.start, self._Heuristic(self.start))

	for {
		curr_id, ok := self.heap.Dequeue()
		if !ok {
			return false
		}
		curr_flag := self.flags[curr_id]
		curr_geom := self.graph.GetNodeGeom(curr_id)
		found := false
		self.graph.ForNeighbours(curr_id, func(other_id int32) {
			if found {
				return
			}
			other_flag := &self.flags[other_id]
			if other_flag.visited {
				return
			}
			other_flag.visited = true
			other_flag.prev_node = curr_id
			other_flag.path_length = curr_flag.path_length + geo.Distance(curr_geom, self.graph.GetNodeGeom(other_id))
			h := self._Heuristic(other_id)
			self.relaxed += 1
			self._AddTrace(other_id, curr_id)
			if other_id == self.end {
				self.dist = other_flag.path_length + h
				found = true
				return
			}
			self.heap.Enqueue(other_id, other_flag.path_length+h)
		})
		if found {
			return true
		}
	}
}

// Textbook A*, stale queue entries are skipped and the search ends when the
// goal is dequeued.
func (self *AStar) _CalcStrict() bool {
	self.flags[self.start].path_length = 0
	self.heap.Enqueue(self.start, self._Heuristic(self.start))

	for {
		curr_id, prio, ok := self.heap.DequeueWithPriority()
		if !ok {
			return false
		}
		curr_flag := self.flags[curr_id]
		if prio > curr_flag.path_length+self._Heuristic(curr_id) {
			continue
		}
		if curr_id == self.end {
			self.dist = curr_flag.path_length
			return true
		}
		curr_geom := self.graph.GetNodeGeom(curr_id)
		self.graph.ForNeighbours(curr_id, func(other_id int32) {
			other_flag := &self.flags[other_id]
			new_length := curr_flag.path_length + geo.Distance(curr_geom, self.graph.GetNodeGeom(other_id))
			if new_length >= other_flag.path_length {
				return
			}
			other_flag.path_length = new_length
			other_flag.prev_node = curr_id
			other_flag.visited = true
			self.relaxed += 1
			self._AddTrace(other_id, curr_id)
			self.heap.Enqueue(other_id, new_length+self._Heuristic(other_id))
		})
	}
}

// Walks the predecessors from the goal back to the start.
func (self *AStar) GetShortestPath() List[geo.Segment] {
	path := NewList[geo.Segment](10)
	if !self.found {
		return path
	}
	curr_id := self.end
	for curr_id != self.start {
		prev_id := self.flags[curr_id].prev_node
		path.Add(geo.NewSegment(self.graph.GetNodeGeom(curr_id), self.graph.GetNodeGeom(prev_id)))
		curr_id = prev_id
	}
	return path
}

func (self *AStar) GetResult() Result {
	if !self.found {
		return Result{}
	}
	trace := []geo.Segment(self.trace)
	if trace == nil {
		trace = []geo.Segment{}
	}
	return Result{
		Trace:        trace,
		Path:         []geo.Segment(self.GetShortestPath()),
		Distance:     self.dist,
		EdgesRelaxed: self.relaxed,
		Found:        true,
	}
}
