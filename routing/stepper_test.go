package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-pathfind/geo"
)

func TestStepper(t *testing.T) {
	g := buildGraph(t, line(false, A, B, C, D))
	res, err := FindPath(g, 0, 3, WithoutHeuristic())
	require.NoError(t, err)
	require.Len(t, res.Trace, 3)

	stepper := NewStepper(res)
	got := make([]geo.Segment, 0)
	more := stepper.Steps(2, func(s geo.Segment) {
		got = append(got, s)
	})
	assert.True(t, more)
	assert.Equal(t, 2, stepper.Position())

	more = stepper.Steps(2, func(s geo.Segment) {
		got = append(got, s)
	})
	assert.False(t, more)
	assert.True(t, stepper.Done())
	assert.Equal(t, res.Trace, got)

	// restartable
	stepper.Reset()
	assert.False(t, stepper.Done())
	count := 0
	for stepper.Steps(1, func(geo.Segment) { count++ }) {
	}
	assert.Equal(t, 3, count)
	assert.Equal(t, res.Path, stepper.GetResult().Path)
}

func TestStepperEmptyTrace(t *testing.T) {
	stepper := NewStepper(Result{})
	assert.True(t, stepper.Done())
	assert.False(t, stepper.Steps(10, func(geo.Segment) { t.Fatal("unexpected segment") }))
}
