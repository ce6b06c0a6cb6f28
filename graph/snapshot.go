package graph

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ttpr0/go-pathfind/geo"
	. "github.com/ttpr0/go-pathfind/util"
)

//*******************************************
// snapshot formats
//*******************************************

type SnapshotFormat byte

const (
	// flat json array of {x, y, connections}
	NODES SnapshotFormat = 0
	// json object {nodes, edges} with the flat segment list
	NETWORK SnapshotFormat = 1
)

func (self SnapshotFormat) String() string {
	switch self {
	case NODES:
		return "nodes"
	case NETWORK:
		return "network"
	default:
		panic("unknown snapshot format")
	}
}

func SnapshotFormatFromString(s string) (SnapshotFormat, error) {
	switch s {
	case "nodes":
		return NODES, nil
	case "network":
		return NETWORK, nil
	default:
		return NODES, errors.New("unknown snapshot format")
	}
}

type _NetworkSnapshot struct {
	Nodes Array[Node]        `json:"nodes"`
	Edges Array[geo.Segment] `json:"edges"`
}

func Encode(g *Graph, format SnapshotFormat) ([]byte, error) {
	switch format {
	case NODES:
		return json.Marshal(g.nodes)
	case NETWORK:
		return json.Marshal(_NetworkSnapshot{
			Nodes: g.nodes,
			Edges: g.Segments(),
		})
	default:
		return nil, fmt.Errorf("unknown snapshot format %v", format)
	}
}

// Decodes a snapshot in either format. The format is detected from the
// top-level json value.
func Decode(data []byte) (*Graph, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidSnapshot)
	}
	switch trimmed[0] {
	case '[':
		var nodes Array[Node]
		if err := json.Unmarshal(trimmed, &nodes); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
		return NewGraph(nodes)
	case '{':
		var snapshot _NetworkSnapshot
		if err := json.Unmarshal(trimmed, &snapshot); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
		g, err := NewGraph(snapshot.Nodes)
		if err != nil {
			return nil, err
		}
		if snapshot.Edges != nil {
			g.segments = Some(snapshot.Edges)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: unexpected json value", ErrInvalidSnapshot)
	}
}

// Stores the graph; files ending with ".sz" are compressed.
func Store(g *Graph, file string, format SnapshotFormat) error {
	data, err := Encode(g, format)
	if err != nil {
		return err
	}
	return WriteBytesToFile(data, file)
}

func Load(file string) (*Graph, error) {
	data, err := ReadBytesFromFile(file)
	if err != nil {
		return nil, err
	}
	g, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", file, err)
	}
	return g, nil
}
