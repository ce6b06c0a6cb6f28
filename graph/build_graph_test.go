package graph

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-pathfind/geo"
	"github.com/ttpr0/go-pathfind/parser"
)

func line(oneway bool, coords ...geo.Coord) parser.RawFeature {
	return parser.RawFeature{Kind: parser.LINESTRING, Coords: coords, Oneway: oneway}
}

func TestBuildGraphSingleLine(t *testing.T) {
	g, stats := BuildGraph([]parser.RawFeature{
		line(false, geo.Coord{0, 0}, geo.Coord{1, 0}, geo.Coord{2, 0}),
	})
	require.Equal(t, 3, g.NodeCount())
	assert.ElementsMatch(t, []int32{1}, g.GetNode(0).Connections)
	assert.ElementsMatch(t, []int32{0, 2}, g.GetNode(1).Connections)
	assert.ElementsMatch(t, []int32{1}, g.GetNode(2).Connections)
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 4, stats.Connections)
	assert.Equal(t, 0, stats.SharedNodes)
}

func TestBuildGraphOneway(t *testing.T) {
	g, _ := BuildGraph([]parser.RawFeature{
		line(true, geo.Coord{0, 0}, geo.Coord{1, 0}, geo.Coord{2, 0}),
	})
	assert.Equal(t, []int32{1}, []int32(g.GetNode(0).Connections))
	assert.Equal(t, []int32{2}, []int32(g.GetNode(1).Connections))
	assert.Empty(t, g.GetNode(2).Connections)
}

func TestBuildGraphSharedVertex(t *testing.T) {
	// two streets crossing at (1, 1)
	g, stats := BuildGraph([]parser.RawFeature{
		line(false, geo.Coord{0, 1}, geo.Coord{1, 1}, geo.Coord{2, 1}),
		line(false, geo.Coord{1, 0}, geo.Coord{1, 1}, geo.Coord{1, 2}),
	})
	require.Equal(t, 5, g.NodeCount())
	center := g.GetNode(1)
	assert.Equal(t, geo.Coord{1, 1}, center.Loc())
	assert.True(t, center.Required)
	assert.ElementsMatch(t, []int32{0, 2, 3, 4}, center.Connections)
	assert.False(t, g.GetNode(0).Required)
	assert.Equal(t, 1, stats.SharedNodes)
}

func TestBuildGraphNoDuplicateConnections(t *testing.T) {
	g, _ := BuildGraph([]parser.RawFeature{
		line(false, geo.Coord{0, 0}, geo.Coord{1, 0}),
		line(false, geo.Coord{1, 0}, geo.Coord{0, 0}),
		line(true, geo.Coord{0, 0}, geo.Coord{1, 0}),
	})
	require.Equal(t, 2, g.NodeCount())
	assert.Equal(t, []int32{1}, []int32(g.GetNode(0).Connections))
	assert.Equal(t, []int32{0}, []int32(g.GetNode(1).Connections))
}

func TestBuildGraphOnewayMergedWithTwoway(t *testing.T) {
	g, _ := BuildGraph([]parser.RawFeature{
		line(true, geo.Coord{0, 0}, geo.Coord{1, 0}),
		line(false, geo.Coord{1, 0}, geo.Coord{0, 0}),
	})
	assert.True(t, g.GetNode(0).IsConnected(1))
	assert.True(t, g.GetNode(1).IsConnected(0))
}

func TestBuildGraphChainAfterMerge(t *testing.T) {
	// the second feature revisits (1, 0) and then continues to a new node,
	// the new node must be connected to the merged one
	g, _ := BuildGraph([]parser.RawFeature{
		line(false, geo.Coord{0, 0}, geo.Coord{1, 0}),
		line(false, geo.Coord{5, 5}, geo.Coord{1, 0}, geo.Coord{2, 0}),
	})
	require.Equal(t, 4, g.NodeCount())
	assert.ElementsMatch(t, []int32{0, 2, 3}, g.GetNode(1).Connections)
	assert.ElementsMatch(t, []int32{1}, g.GetNode(3).Connections)
}

func TestBuildGraphPolygonRingClosure(t *testing.T) {
	g, _ := BuildGraph([]parser.RawFeature{
		{
			Kind:   parser.POLYGON,
			Coords: geo.CoordArray{{0, 0}, {1, 0}, {1, 1}, {0, 0}},
		},
	})
	require.Equal(t, 3, g.NodeCount())
	for i := int32(0); i < 3; i++ {
		assert.False(t, g.GetNode(i).IsConnected(i), "self loop at %v", i)
		assert.Len(t, g.GetNode(i).Connections, 2)
	}
	// revisiting the first vertex within the same feature does not mark it shared
	assert.False(t, g.GetNode(0).Required)
}

func TestBuildGraphRepeatedCoordinate(t *testing.T) {
	g, _ := BuildGraph([]parser.RawFeature{
		line(false, geo.Coord{0, 0}, geo.Coord{0, 0}, geo.Coord{1, 0}),
	})
	require.Equal(t, 2, g.NodeCount())
	assert.Equal(t, []int32{1}, []int32(g.GetNode(0).Connections))
}

func TestBuildGraphSkipsInvalid(t *testing.T) {
	g, stats := BuildGraph([]parser.RawFeature{
		{Kind: parser.OTHER, Coords: geo.CoordArray{{0, 0}, {1, 1}}},
		{Kind: parser.LINESTRING},
		line(false, geo.Coord{3, 3}),
	})
	assert.Equal(t, 1, g.NodeCount())
	assert.Empty(t, g.GetNode(0).Connections)
	assert.Equal(t, 3, stats.Features)
	assert.Equal(t, 2, stats.Skipped)
}

func TestBuildGraphSegments(t *testing.T) {
	g, _ := BuildGraph([]parser.RawFeature{
		line(false, geo.Coord{0, 0}, geo.Coord{1, 0}),
		line(true, geo.Coord{1, 0}, geo.Coord{1, 1}),
	})
	assert.Equal(t, []geo.Segment{{0, 0, 1, 0}, {1, 0, 1, 1}}, []geo.Segment(g.Segments()))
}

func TestNearestNode(t *testing.T) {
	g, _ := BuildGraph([]parser.RawFeature{
		line(false, geo.Coord{0, 0}, geo.Coord{1, 0}, geo.Coord{1, 1}),
	})
	node, ok := g.NearestNode(0.9, 0.2)
	require.True(t, ok)
	assert.Equal(t, int32(1), node)

	// equidistant, lower index wins
	node, _ = g.NearestNode(0.5, 0)
	assert.Equal(t, int32(0), node)

	empty, _ := NewGraph(nil)
	_, ok = empty.NearestNode(0, 0)
	assert.False(t, ok)
}

func TestIsNode(t *testing.T) {
	g, _ := BuildGraph([]parser.RawFeature{line(false, geo.Coord{0, 0}, geo.Coord{1, 0})})
	assert.True(t, g.IsNode(0))
	assert.True(t, g.IsNode(1))
	assert.False(t, g.IsNode(2))
	assert.False(t, g.IsNode(-1))
}

//*******************************************
// properties
//*******************************************

type edgeKey struct {
	from geo.Coord
	to   geo.Coord
}

func gridFeatures(seqs [][]int, flags []bool) []parser.RawFeature {
	features := make([]parser.RawFeature, 0, len(seqs))
	for i, seq := range seqs {
		coords := make(geo.CoordArray, len(seq))
		for j, k := range seq {
			coords[j] = geo.Coord{float64(k % 4), float64(k / 4)}
		}
		oneway := len(flags) > 0 && flags[i%len(flags)]
		features = append(features, line(oneway, coords...))
	}
	return features
}

func TestBuildGraphProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	seqs := gen.SliceOf(gen.SliceOf(gen.IntRange(0, 15)))
	flags := gen.SliceOf(gen.Bool())

	properties.Property("connections equal the edges implied by the features", prop.ForAll(
		func(seqs [][]int, flags []bool) bool {
			features := gridFeatures(seqs, flags)
			expected := map[edgeKey]bool{}
			for _, f := range features {
				for i := 1; i < len(f.Coords); i++ {
					a, b := f.Coords[i-1], f.Coords[i]
					if a == b {
						continue
					}
					expected[edgeKey{a, b}] = true
					if !f.Oneway {
						expected[edgeKey{b, a}] = true
					}
				}
			}
			g, _ := BuildGraph(features)
			if g.EdgeCount() != len(expected) {
				return false
			}
			for i := int32(0); i < int32(g.NodeCount()); i++ {
				node := g.GetNode(i)
				for _, other := range node.Connections {
					if !expected[edgeKey{node.Loc(), g.GetNodeGeom(other)}] {
						return false
					}
				}
			}
			return true
		},
		seqs, flags,
	))

	properties.Property("identical coordinates collapse into one node", prop.ForAll(
		func(seqs [][]int) bool {
			features := gridFeatures(seqs, nil)
			distinct := map[geo.Coord]bool{}
			for _, f := range features {
				for _, c := range f.Coords {
					distinct[c] = true
				}
			}
			g, _ := BuildGraph(features)
			if g.NodeCount() != len(distinct) {
				return false
			}
			seen := map[geo.Coord]bool{}
			for _, node := range g.Nodes() {
				if seen[node.Loc()] {
					return false
				}
				seen[node.Loc()] = true
			}
			return true
		},
		seqs,
	))

	properties.Property("two-way features produce symmetric connections", prop.ForAll(
		func(seqs [][]int) bool {
			g, _ := BuildGraph(gridFeatures(seqs, nil))
			for i := int32(0); i < int32(g.NodeCount()); i++ {
				for _, other := range g.GetNode(i).Connections {
					if !g.GetNode(other).IsConnected(i) {
						return false
					}
				}
			}
			return true
		},
		seqs,
	))

	properties.TestingRun(t)
}
