// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package list provides singly, doubly and circularly linked lists whose
// nodes are constructed by the caller and owned by the list once added.
//
// Removal is by value and removes the first matching node in traversal
// order. A value that is not present is not an error: the remove
// operations report it via their return values and leave the list
// unchanged. Find can be used where a missing value should be treated
// as an error.
//
// None of the lists are safe for concurrent use, callers must provide
// their own synchronization, typically a single mutex per list.
package list

import (
	"fmt"
	"iter"
	"slices"

	"cloudeng.io/errors"
)

// ErrNotFound is returned by Find when a value is not present in a list.
var ErrNotFound = errors.New("not found")

// Sequence is implemented by all of the list types.
type Sequence[V comparable] interface {
	Len() int
	AsList() []V
	Forward() iter.Seq[V]
}

// Container is implemented by the list types whose Add and Remove
// methods return values, ie. Single and Double.
type Container[V comparable] interface {
	Sequence[V]
	Add(*Node[V]) V
	Remove(V) (V, bool)
}

// Equal returns true if the values in s are the same, and in the same
// order, as vals.
func Equal[V comparable](s Sequence[V], vals []V) bool {
	return slices.Equal(s.AsList(), vals)
}

// Find returns nil if v is present in s and an error that wraps
// ErrNotFound otherwise.
func Find[V comparable](s Sequence[V], v V) error {
	for val := range s.Forward() {
		if val == v {
			return nil
		}
	}
	return fmt.Errorf("%v: %w", v, ErrNotFound)
}

func collect[V comparable](size int, seq iter.Seq[V]) []V {
	res := make([]V, 0, size)
	for v := range seq {
		res = append(res, v)
	}
	return res
}
