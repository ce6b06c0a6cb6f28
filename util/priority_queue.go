package util

import (
	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

type _PQEntry[T any, P constraints.Ordered] struct {
	item     T
	priority P
	seq      uint64
}

// Min-heap ordered by priority. Entries with equal priority are dequeued
// in insertion order.
type PriorityQueue[T any, P constraints.Ordered] struct {
	entries List[_PQEntry[T, P]]
	seq     uint64
}

func NewPriorityQueue[T any, P constraints.Ordered](capacity int) PriorityQueue[T, P] {
	return PriorityQueue[T, P]{
		entries: NewList[_PQEntry[T, P]](capacity),
	}
}

func (self *PriorityQueue[T, P]) Len() int {
	return self.entries.Length()
}

func (self *PriorityQueue[T, P]) Clear() {
	self.entries = self.entries[:0]
	self.seq = 0
}

func (self *PriorityQueue[T, P]) Enqueue(item T, priority P) {
	self.entries.Add(_PQEntry[T, P]{item: item, priority: priority, seq: self.seq})
	self.seq += 1
	self._Up(self.entries.Length() - 1)
}

func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	item, _, ok := self.DequeueWithPriority()
	return item, ok
}

func (self *PriorityQueue[T, P]) DequeueWithPriority() (T, P, bool) {
	l := self.entries.Length()
	if l == 0 {
		var t T
		var p P
		return t, p, false
	}
	top := self.entries[0]
	self.entries[0] = self.entries[l-1]
	self.entries = self.entries[:l-1]
	if l > 1 {
		self._Down(0)
	}
	return top.item, top.priority, true
}

func (self *PriorityQueue[T, P]) _Less(i, j int) bool {
	a := self.entries[i]
	b := self.entries[j]
	if a.priority == b.priority {
		return a.seq < b.seq
	}
	return a.priority < b.priority
}

func (self *PriorityQueue[T, P]) _Up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !self._Less(i, parent) {
			break
		}
		self.entries[i], self.entries[parent] = self.entries[parent], self.entries[i]
		i = parent
	}
}

func (self *PriorityQueue[T, P]) _Down(i int) {
	n := self.entries.Length()
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		smallest := left
		if right := left + 1; right < n && self._Less(right, left) {
			smallest = right
		}
		if !self._Less(smallest, i) {
			break
		}
		self.entries[i], self.entries[smallest] = self.entries[smallest], self.entries[i]
		i = smallest
	}
}
