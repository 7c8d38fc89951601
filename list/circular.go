// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import (
	"iter"
	"slices"
)

// Circular provides a circularly linked list in which the tail's
// successor is the head. The zero value is an empty list ready to use.
//
// Traversals always visit exactly Len nodes, there being no terminating
// link, and never rely on returning to the head to stop.
type Circular[V comparable] struct {
	head *Node[V]
	tail *Node[V] // tail.next == head when the list is not empty.
	len  int
}

// NewCircular returns a new, empty, circularly linked list.
func NewCircular[V comparable]() *Circular[V] {
	return &Circular[V]{}
}

// Reset empties the list.
func (cl *Circular[V]) Reset() {
	if cl.tail != nil {
		cl.tail.next = nil
	}
	cl.head, cl.tail, cl.len = nil, nil, 0
}

func (cl *Circular[V]) Len() int {
	return cl.len
}

// Head returns the first node in the list or nil if the list is empty.
func (cl *Circular[V]) Head() *Node[V] {
	return cl.head
}

// Tail returns the last node in the list or nil if the list is empty.
func (cl *Circular[V]) Tail() *Node[V] {
	return cl.tail
}

// Forward yields each value once, starting at the head.
func (cl *Circular[V]) Forward() iter.Seq[V] {
	return func(yield func(V) bool) {
		n := cl.head
		for range cl.len {
			if !yield(n.value) {
				return
			}
			n = n.next
		}
	}
}

// Add appends n after the tail, closing the cycle back to the head, and
// returns n.
func (cl *Circular[V]) Add(n *Node[V]) *Node[V] {
	n.prev = nil
	if cl.head == nil {
		n.next = n
		cl.head, cl.tail = n, n
		cl.len = 1
		return n
	}
	n.next = cl.head
	cl.tail.next = n
	cl.tail = n
	cl.len++
	return n
}

// Remove removes the first node, starting at the head, whose value is v
// and returns it. It returns nil if there is no such node.
func (cl *Circular[V]) Remove(v V) *Node[V] {
	if cl.len == 0 {
		return nil
	}
	prev, n := cl.tail, cl.head
	for range cl.len {
		if n.value == v {
			cl.removeNode(prev, n)
			return n
		}
		prev, n = n, n.next
	}
	return nil
}

func (cl *Circular[V]) removeNode(prev, n *Node[V]) {
	cl.len--
	if cl.len == 0 {
		cl.head, cl.tail = nil, nil
		n.unlink()
		return
	}
	prev.next = n.next
	if n == cl.head {
		cl.head = n.next
	}
	if n == cl.tail {
		cl.tail = prev
	}
	n.unlink()
}

// AsList returns the values in the list, head first, each exactly once.
func (cl *Circular[V]) AsList() []V {
	return collect(cl.len, cl.Forward())
}

// Equal returns true if the list holds exactly vals, in order.
func (cl *Circular[V]) Equal(vals []V) bool {
	return slices.Equal(cl.AsList(), vals)
}
