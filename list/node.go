// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

// Node is a single list element. Nodes are created by the caller and
// ownership passes to a list when the node is added to it. A node must
// not be added to more than one list at a time.
type Node[V comparable] struct {
	next  *Node[V]
	prev  *Node[V] // only maintained by Double.
	value V
}

// NewNode returns a new, unlinked, node holding v.
func NewNode[V comparable](v V) *Node[V] {
	return &Node[V]{value: v}
}

// Value returns the value stored in the node.
func (n *Node[V]) Value() V {
	return n.value
}

// Next returns the node's successor. For a Circular list the tail's
// successor is the head.
func (n *Node[V]) Next() *Node[V] {
	return n.next
}

// Prev returns the node's predecessor, it is always nil for nodes
// that are not in a Double list.
func (n *Node[V]) Prev() *Node[V] {
	return n.prev
}

func (n *Node[V]) unlink() {
	n.next = nil
	n.prev = nil
}
