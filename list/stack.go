// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

// Stack provides last-in, first-out access using a Double list, values
// are pushed onto and popped from its tail.
type Stack[V comparable] struct {
	dl Double[V]
}

// NewStack returns a new, empty, stack.
func NewStack[V comparable]() *Stack[V] {
	return &Stack[V]{}
}

// Push adds v to the top of the stack.
func (s *Stack[V]) Push(v V) {
	s.dl.Add(NewNode(v))
}

// Pop removes and returns the value at the top of the stack. It returns
// false if the stack is empty.
func (s *Stack[V]) Pop() (V, bool) {
	return s.dl.RemoveTail()
}

// Peek returns the value at the top of the stack without removing it.
func (s *Stack[V]) Peek() (V, bool) {
	if t := s.dl.Tail(); t != nil {
		return t.value, true
	}
	var zero V
	return zero, false
}

func (s *Stack[V]) Len() int {
	return s.dl.Len()
}

func (s *Stack[V]) Empty() bool {
	return s.dl.Len() == 0
}
