package routing

import (
	"errors"

	"github.com/ttpr0/go-pathfind/geo"
	"github.com/ttpr0/go-pathfind/graph"
)

var (
	ErrInvalidIndex = errors.New("invalid node index")
	ErrNoPathFound  = errors.New("no path found")
)

type IShortestPath interface {
	CalcShortestPath() error
	GetResult() Result
}

// Result of a single query.
type Result struct {
	// every edge relaxed during the search, in visiting order
	Trace []geo.Segment
	// edges of the shortest route ordered from goal back to start
	Path []geo.Segment
	// accumulated geodesic length of the path in meters
	Distance     float64
	EdgesRelaxed int
	Found        bool
}

// Sum of the geodesic lengths of all path segments.
func (self Result) PathLength() float64 {
	length := 0.0
	for _, s := range self.Path {
		length += s.Length()
	}
	return length
}

//*******************************************
// options
//*******************************************

type SearchMode byte

const (
	// nodes are closed when first discovered, the search stops as soon as
	// the goal is discovered
	DISCOVERY SearchMode = 0
	// nodes are reopened on improved distances, the search stops when the
	// goal is taken from the queue
	STRICT SearchMode = 1
)

type Options struct {
	Mode      SearchMode
	Heuristic bool
	Trace     bool
}

func DefaultOptions() Options {
	return Options{
		Mode:      DISCOVERY,
		Heuristic: true,
		Trace:     true,
	}
}

type Option func(*Options)

// Reopens nodes whenever a shorter distance is found. Unlike the default mode
// the returned path is always a shortest path.
func WithStrict() Option {
	return func(o *Options) {
		o.Mode = STRICT
	}
}

func WithMode(mode SearchMode) Option {
	return func(o *Options) {
		o.Mode = mode
	}
}

// Disables the goal heuristic, turning the search into dijkstra.
func WithoutHeuristic() Option {
	return func(o *Options) {
		o.Heuristic = false
	}
}

func WithTrace(enabled bool) Option {
	return func(o *Options) {
		o.Trace = enabled
	}
}

// Computes a route from start to end. Returns ErrInvalidIndex if either node
// is not part of the graph and ErrNoPathFound with an empty result if end is
// unreachable.
func FindPath(g graph.IGraph, start, end int32, opts ...Option) (Result, error) {
	alg, err := NewAStar(g, start, end, opts...)
	if err != nil {
		return Result{}, err
	}
	if err := alg.CalcShortestPath(); err != nil {
		return Result{}, err
	}
	return alg.GetResult(), nil
}
