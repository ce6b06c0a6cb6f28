package graph

import (
	"github.com/ttpr0/go-pathfind/geo"
	. "github.com/ttpr0/go-pathfind/util"
)

//*******************************************
// graph structs
//*******************************************

// Node is a unique vertex of the network. Its index in the graph is its identity.
type Node struct {
	X           float64     `json:"x"`
	Y           float64     `json:"y"`
	Connections List[int32] `json:"connections"`
	// set for vertices shared by more than one feature
	Required bool `json:"required,omitempty"`
}

func (self Node) Loc() geo.Coord {
	return geo.Coord{self.X, self.Y}
}

func (self Node) IsConnected(other int32) bool {
	return Contains(self.Connections, other)
}

type BuildStats struct {
	Features    int
	Skipped     int
	Nodes       int
	Connections int
	SharedNodes int
	Segments    int
}
