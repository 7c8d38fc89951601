// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import (
	"iter"
	"slices"
)

// Single provides a singly linked list. The zero value is an empty
// list ready to use.
type Single[V comparable] struct {
	sentinel Node[V]  // sentinel.next is the head.
	tail     *Node[V] // &sentinel when the list is empty.
	len      int
}

// NewSingle returns a new, empty, singly linked list.
func NewSingle[V comparable]() *Single[V] {
	sl := &Single[V]{}
	sl.Reset()
	return sl
}

// Reset empties the list.
func (sl *Single[V]) Reset() {
	sl.len = 0
	sl.sentinel.next = nil
	sl.tail = &sl.sentinel
}

func (sl *Single[V]) Len() int {
	return sl.len
}

// Head returns the first node in the list or nil if the list is empty.
func (sl *Single[V]) Head() *Node[V] {
	return sl.sentinel.next
}

// Tail returns the last node in the list or nil if the list is empty.
func (sl *Single[V]) Tail() *Node[V] {
	if sl.len == 0 {
		return nil
	}
	return sl.tail
}

func (sl *Single[V]) Forward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := sl.sentinel.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Add appends n to the end of the list and returns its value.
func (sl *Single[V]) Add(n *Node[V]) V {
	if sl.tail == nil {
		sl.tail = &sl.sentinel
	}
	n.unlink()
	sl.tail.next = n
	sl.tail = n
	sl.len++
	return n.value
}

// Remove removes the first node whose value is v and returns that value
// and true. It returns false if there is no such node.
func (sl *Single[V]) Remove(v V) (V, bool) {
	prev := &sl.sentinel
	for n := sl.sentinel.next; n != nil; n = n.next {
		if n.value == v {
			sl.removeNode(prev, n)
			return n.value, true
		}
		prev = n
	}
	var zero V
	return zero, false
}

func (sl *Single[V]) removeNode(prev, n *Node[V]) {
	prev.next = n.next
	if sl.tail == n {
		sl.tail = prev
	}
	sl.len--
	n.unlink()
}

// AsList returns the values in the list, head first.
func (sl *Single[V]) AsList() []V {
	return collect(sl.len, sl.Forward())
}

// Equal returns true if the list holds exactly vals, in order.
func (sl *Single[V]) Equal(vals []V) bool {
	return slices.Equal(sl.AsList(), vals)
}
