// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import (
	"fmt"
	"iter"
	"slices"

	"cloudeng.io/errors"
)

// Double provides a doubly linked list. The zero value is an empty
// list ready to use.
type Double[V comparable] struct {
	head *Node[V]
	tail *Node[V]
	len  int
}

// NewDouble returns a new, empty, doubly linked list.
func NewDouble[V comparable]() *Double[V] {
	return &Double[V]{}
}

// Reset empties the list.
func (dl *Double[V]) Reset() {
	dl.head, dl.tail, dl.len = nil, nil, 0
}

func (dl *Double[V]) Len() int {
	return dl.len
}

// Head returns the first node in the list or nil if the list is empty.
func (dl *Double[V]) Head() *Node[V] {
	return dl.head
}

// Tail returns the last node in the list or nil if the list is empty.
func (dl *Double[V]) Tail() *Node[V] {
	return dl.tail
}

func (dl *Double[V]) Forward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := dl.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (dl *Double[V]) Reverse() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := dl.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Add appends n to the end of the list and returns its value.
func (dl *Double[V]) Add(n *Node[V]) V {
	n.next = nil
	n.prev = dl.tail
	if dl.tail == nil {
		dl.head = n
	} else {
		dl.tail.next = n
	}
	dl.tail = n
	dl.len++
	return n.value
}

// Prepend inserts n at the start of the list and returns its value.
func (dl *Double[V]) Prepend(n *Node[V]) V {
	n.prev = nil
	n.next = dl.head
	if dl.head == nil {
		dl.tail = n
	} else {
		dl.head.prev = n
	}
	dl.head = n
	dl.len++
	return n.value
}

// Remove removes the first node whose value is v and returns that value
// and true. It returns false if there is no such node.
func (dl *Double[V]) Remove(v V) (V, bool) {
	for n := dl.head; n != nil; n = n.next {
		if n.value == v {
			dl.removeNode(n)
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// RemoveTail removes the last node in the list and returns its value
// and true, or false if the list is empty.
func (dl *Double[V]) RemoveTail() (V, bool) {
	if dl.tail == nil {
		var zero V
		return zero, false
	}
	n := dl.tail
	dl.removeNode(n)
	return n.value, true
}

func (dl *Double[V]) removeNode(n *Node[V]) {
	if n.prev == nil {
		dl.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		dl.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	dl.len--
	n.unlink()
}

// AsList returns the values in the list, head first.
func (dl *Double[V]) AsList() []V {
	return collect(dl.len, dl.Forward())
}

// Equal returns true if the list holds exactly vals, in order.
func (dl *Double[V]) Equal(vals []V) bool {
	return slices.Equal(dl.AsList(), vals)
}

// Check verifies the forward and backward links of every node, the
// head and tail and the length of the list. It returns an error
// describing the first inconsistency found.
func (dl *Double[V]) Check() error {
	if dl.head == nil || dl.tail == nil {
		if dl.head != dl.tail || dl.len != 0 {
			return errors.WithCaller(fmt.Errorf("empty list: head %p, tail %p, len %v", dl.head, dl.tail, dl.len))
		}
		return nil
	}
	if dl.head.prev != nil {
		return errors.WithCaller(fmt.Errorf("head %v has a predecessor", dl.head.value))
	}
	if dl.tail.next != nil {
		return errors.WithCaller(fmt.Errorf("tail %v has a successor", dl.tail.value))
	}
	count, last := 0, dl.head
	for n := dl.head; n != nil; n = n.next {
		if n.next != nil && n.next.prev != n {
			return errors.WithCaller(fmt.Errorf("node %v: next.prev does not refer back to it", n.value))
		}
		if n.prev != nil && n.prev.next != n {
			return errors.WithCaller(fmt.Errorf("node %v: prev.next does not refer back to it", n.value))
		}
		count++
		last = n
	}
	if last != dl.tail {
		return errors.WithCaller(fmt.Errorf("last node %v is not the tail %v", last.value, dl.tail.value))
	}
	if count != dl.len {
		return errors.WithCaller(fmt.Errorf("found %v nodes, len is %v", count, dl.len))
	}
	return nil
}
