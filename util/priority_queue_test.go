package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueueOrder(t *testing.T) {
	heap := NewPriorityQueue[string, float64](4)
	heap.Enqueue("c", 3)
	heap.Enqueue("a", 1)
	heap.Enqueue("d", 4)
	heap.Enqueue("b", 2)

	got := NewList[string](4)
	for {
		item, ok := heap.Dequeue()
		if !ok {
			break
		}
		got.Add(item)
	}
	assert.Equal(t, List[string]{"a", "b", "c", "d"}, got)
	assert.Equal(t, 0, heap.Len())
}

func TestPriorityQueueStableTies(t *testing.T) {
	heap := NewPriorityQueue[int32, float64](10)
	for i := int32(0); i < 10; i++ {
		heap.Enqueue(i, 5)
	}
	heap.Enqueue(-1, 1)

	first, prio, ok := heap.DequeueWithPriority()
	require.True(t, ok)
	assert.Equal(t, int32(-1), first)
	assert.Equal(t, 1.0, prio)
	for i := int32(0); i < 10; i++ {
		item, ok := heap.Dequeue()
		require.True(t, ok)
		assert.Equal(t, i, item)
	}
	_, ok = heap.Dequeue()
	assert.False(t, ok)
}

func TestPriorityQueueClear(t *testing.T) {
	heap := NewPriorityQueue[int, int](2)
	heap.Enqueue(1, 1)
	heap.Enqueue(2, 2)
	heap.Clear()
	assert.Equal(t, 0, heap.Len())
	_, ok := heap.Dequeue()
	assert.False(t, ok)
}
