package main

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/ttpr0/go-pathfind/geo"
	"github.com/ttpr0/go-pathfind/routing"
	. "github.com/ttpr0/go-pathfind/util"
	"golang.org/x/exp/slog"
)

//**********************************************************
// router
//**********************************************************

func NewRouter(manager *GraphManager, metrics *Metrics) *mux.Router {
	app := mux.NewRouter()
	draws := NewDrawStore(DRAW_CONTEXT_MAX_AGE, DRAW_CONTEXT_LIMIT)

	MapPost(app, "/v0/routing", func(req RoutingRequest) Result {
		return HandleRoutingRequest(manager, req)
	})
	MapPost(app, "/v0/routing/draw/create", func(req DrawContextRequest) Result {
		return HandleCreateContextRequest(manager, draws, req)
	})
	MapPost(app, "/v0/routing/draw/step", func(req DrawRoutingRequest) Result {
		return HandleRoutingStepRequest(draws, req)
	})
	MapGet(app, "/v0/nodes/nearest", func(req NearestNodeRequest) Result {
		return HandleNearestNodeRequest(manager, req)
	})
	MapGet(app, "/v0/network", func(none) Result {
		return HandleNetworkRequest(manager)
	})
	if metrics != nil {
		app.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	}
	return app
}

//**********************************************************
// routing handlers
//**********************************************************

func HandleRoutingRequest(manager *GraphManager, req RoutingRequest) Result {
	start, end, res := _ResolveEndpoints(manager, req)
	if res != nil {
		return *res
	}
	opts, err := _SearchOptions(req)
	if err != nil {
		return BadRequest(err.Error())
	}
	if !req.Draw {
		opts = append(opts, routing.WithTrace(false))
	}
	slog.Debug(fmt.Sprintf("Start calculating shortest path between %v and %v", start, end))
	result, err := manager.FindPath(start, end, opts...)
	if r := _SearchError(err); r != nil {
		return *r
	}
	slog.Debug("shortest path found", "segments", len(result.Path), "relaxed", result.EdgesRelaxed)

	resp := NewRoutingResponse(true, "")
	resp.Found = result.Found
	resp.Distance = result.Distance
	resp.EdgesRelaxed = result.EdgesRelaxed
	if req.Draw {
		resp.AddSegments(result.Trace, KIND_TRACE)
	}
	resp.AddSegments(result.Path, KIND_PATH)
	return OK(resp)
}

// Runs the search and keeps its result so that the trace can be fetched
// step by step.
func HandleCreateContextRequest(manager *GraphManager, draws *DrawStore, req DrawContextRequest) Result {
	start, end, res := _ResolveEndpoints(manager, req)
	if res != nil {
		return *res
	}
	opts, err := _SearchOptions(req)
	if err != nil {
		return BadRequest(err.Error())
	}
	result, err := manager.FindPath(start, end, opts...)
	if r := _SearchError(err); r != nil {
		return *r
	}
	key := draws.Add(routing.NewStepper(result))
	slog.Debug("created draw context", "key", key, "trace", len(result.Trace))
	return OK(DrawContextResponse{key})
}

// Returns the next stepcount trace segments. The last batch also carries the
// path and removes the context.
func HandleRoutingStepRequest(draws *DrawStore, req DrawRoutingRequest) Result {
	edges := NewList[geo.Segment](min(req.Stepcount, 100))
	finished, result, ok := draws.Step(req.Key, req.Stepcount, func(s geo.Segment) {
		edges.Add(s)
	})
	if !ok {
		return NotFound("key not found")
	}
	resp := NewRoutingResponse(finished, req.Key)
	resp.Found = result.Found
	resp.AddSegments(edges, KIND_TRACE)
	if finished {
		resp.Distance = result.Distance
		resp.EdgesRelaxed = result.EdgesRelaxed
		resp.AddSegments(result.Path, KIND_PATH)
	}
	return OK(resp)
}

func HandleNearestNodeRequest(manager *GraphManager, req NearestNodeRequest) Result {
	node, ok := manager.NearestNode(geo.Coord{req.X, req.Y})
	if !ok {
		return NotFound("graph is empty")
	}
	loc := manager.GetGraph().GetNodeGeom(node)
	return OK(NearestNodeResponse{
		Node: node,
		X:    loc.X(),
		Y:    loc.Y(),
	})
}

func HandleNetworkRequest(manager *GraphManager) Result {
	return OK(NewNetworkResponse(manager.GetGraph().Segments()))
}

//**********************************************************
// routing utilities
//**********************************************************

// Returns the start and end node of the request, or an error result.
func _ResolveEndpoints(manager *GraphManager, req RoutingRequest) (int32, int32, *Result) {
	resolve := func(node *int32, coord geo.Coord, has_coord bool) (int32, *Result) {
		if node != nil {
			return *node, nil
		}
		if !has_coord {
			r := BadRequest("missing endpoint")
			return -1, &r
		}
		n, ok := manager.NearestNode(coord)
		if !ok {
			r := NotFound("graph is empty")
			return -1, &r
		}
		return n, nil
	}
	start_coord, has_start := req.StartLocation()
	start, res := resolve(req.Start, start_coord, has_start)
	if res != nil {
		return -1, -1, res
	}
	end_coord, has_end := req.EndLocation()
	end, res := resolve(req.End, end_coord, has_end)
	if res != nil {
		return -1, -1, res
	}
	return start, end, nil
}

func _SearchOptions(req RoutingRequest) ([]routing.Option, error) {
	opts := NewList[routing.Option](2)
	if req.Mode != "" {
		mode, err := SearchModeFromString(req.Mode)
		if err != nil {
			return nil, err
		}
		opts.Add(routing.WithMode(routing.SearchMode(mode)))
	}
	if req.Dijkstra {
		opts.Add(routing.WithoutHeuristic())
	}
	return opts, nil
}

func _SearchError(err error) *Result {
	var r Result
	switch {
	case err == nil:
		return nil
	case errors.Is(err, routing.ErrInvalidIndex):
		r = BadRequest(err.Error())
	case errors.Is(err, routing.ErrNoPathFound):
		r = NotFound(err.Error())
	default:
		r = InternalError(err.Error())
	}
	return &r
}

//**********************************************************
// draw contexts
//**********************************************************

const (
	DRAW_CONTEXT_MAX_AGE = 10 * time.Minute
	DRAW_CONTEXT_LIMIT   = 1000
)

type _DrawContext struct {
	stepper *routing.Stepper
	created time.Time
}

// Holds the steppers of open draw contexts. Contexts older than max_age are
// dropped, and the oldest one is evicted once limit contexts are open.
type DrawStore struct {
	mu       sync.Mutex
	contexts Dict[string, _DrawContext]
	max_age  time.Duration
	limit    int
	now      func() time.Time
}

func NewDrawStore(max_age time.Duration, limit int) *DrawStore {
	return &DrawStore{
		contexts: NewDict[string, _DrawContext](10),
		max_age:  max_age,
		limit:    limit,
		now:      time.Now,
	}
}

// Stores the stepper under a new random key.
func (self *DrawStore) Add(stepper *routing.Stepper) string {
	key := uuid.NewString()
	self.mu.Lock()
	defer self.mu.Unlock()
	now := self.now()
	self._Sweep(now)
	for self.limit > 0 && self.contexts.Length() >= self.limit {
		self._EvictOldest()
	}
	self.contexts.Set(key, _DrawContext{stepper: stepper, created: now})
	return key
}

func (self *DrawStore) _Sweep(now time.Time) {
	if self.max_age <= 0 {
		return
	}
	for key, ctx := range self.contexts {
		if now.Sub(ctx.created) > self.max_age {
			self.contexts.Delete(key)
		}
	}
}

func (self *DrawStore) _EvictOldest() {
	oldest := ""
	var oldest_time time.Time
	for key, ctx := range self.contexts {
		if oldest == "" || ctx.created.Before(oldest_time) {
			oldest = key
			oldest_time = ctx.created
		}
	}
	self.contexts.Delete(oldest)
}

// Advances the stepper of key by count segments. Returns whether the trace is
// exhausted, in which case the context is removed.
func (self *DrawStore) Step(key string, count int, callback func(geo.Segment)) (bool, routing.Result, bool) {
	self.mu.Lock()
	defer self.mu.Unlock()
	if !self.contexts.ContainsKey(key) {
		return false, routing.Result{}, false
	}
	ctx := self.contexts.Get(key)
	if self.max_age > 0 && self.now().Sub(ctx.created) > self.max_age {
		self.contexts.Delete(key)
		return false, routing.Result{}, false
	}
	finished := !ctx.stepper.Steps(count, callback)
	if finished {
		self.contexts.Delete(key)
	}
	return finished, ctx.stepper.GetResult(), true
}

func (self *DrawStore) Length() int {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.contexts.Length()
}
