// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package brackets provides a validator for nested bracket sequences.
// A sequence is valid if every closing bracket closes the most recently
// opened, and not yet closed, bracket of the same type and no brackets
// remain open at the end of the sequence. The empty sequence is valid.
//
// Characters that are not brackets are ignored by default, the Reject
// policy can be used to treat them as making a sequence invalid.
// Invalid sequences are never reported as errors, rather Scan returns
// a Result describing where and why the sequence is invalid.
package brackets

import (
	"fmt"
	"strings"

	"cloudeng.io/lists/list"
)

// DefaultPairs are the bracket pairs recognised by default.
var DefaultPairs = []string{"()", "{}", "[]"}

// Reason describes the outcome of a Scan.
type Reason int

const (
	Balanced     Reason = iota // every bracket was matched.
	Unmatched                  // a closing bracket had no opening bracket.
	Mismatched                 // a closing bracket closed a different type of bracket.
	Unclosed                   // an opening bracket was never closed.
	Unrecognised               // a non-bracket character was found with the Reject policy.
)

func (r Reason) String() string {
	switch r {
	case Balanced:
		return "balanced"
	case Unmatched:
		return "unmatched"
	case Mismatched:
		return "mismatched"
	case Unclosed:
		return "unclosed"
	case Unrecognised:
		return "unrecognised"
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// Result is returned by Scan.
type Result struct {
	Valid  bool
	Reason Reason
	// Offset is the rune offset of the character responsible for the
	// sequence being invalid, or -1 if it is valid. For Unclosed it is
	// the offset of the innermost opening bracket that was not closed.
	Offset int
}

func (r Result) String() string {
	if r.Valid {
		return "valid"
	}
	return fmt.Sprintf("invalid (%v at %v)", r.Reason, r.Offset)
}

// Validator validates bracket sequences. A Validator may be used
// concurrently since Scan allocates its own stack.
type Validator struct {
	policy  Policy
	closers map[rune]rune // closing bracket to its opening bracket.
	openers map[rune]bool
}

// New returns a new Validator configured with the supplied options.
func New(opts ...Option) *Validator {
	o := options{policy: Ignore, pairs: DefaultPairs}
	for _, fn := range opts {
		fn(&o)
	}
	v := &Validator{
		policy:  o.policy,
		closers: make(map[rune]rune, len(o.pairs)),
		openers: make(map[rune]bool, len(o.pairs)),
	}
	for _, p := range o.pairs {
		r := []rune(p)
		v.openers[r[0]] = true
		v.closers[r[1]] = r[0]
	}
	return v
}

var defaultValidator = New()

// IsValid reports whether s is a valid sequence using the default
// pairs and ignoring all other characters.
func IsValid(s string) bool {
	return defaultValidator.IsValid(s)
}

// IsValid reports whether s is a valid sequence.
func (v *Validator) IsValid(s string) bool {
	return v.Scan(s).Valid
}

type opened struct {
	bracket rune
	offset  int
}

// Scan validates s, stopping at the first character that makes it
// invalid.
func (v *Validator) Scan(s string) Result {
	stack := list.NewStack[opened]()
	offset := 0
	for _, r := range s {
		switch {
		case v.openers[r]:
			stack.Push(opened{bracket: r, offset: offset})
		case v.closers[r] != 0:
			top, ok := stack.Pop()
			if !ok {
				return invalid(Unmatched, offset)
			}
			if top.bracket != v.closers[r] {
				return invalid(Mismatched, offset)
			}
		case v.policy == Reject:
			return invalid(Unrecognised, offset)
		}
		offset++
	}
	if top, ok := stack.Peek(); ok {
		return invalid(Unclosed, top.offset)
	}
	return Result{Valid: true, Reason: Balanced, Offset: -1}
}

func invalid(reason Reason, offset int) Result {
	return Result{Reason: reason, Offset: offset}
}

func validatePairs(pairs []string) error {
	seen := map[rune]bool{}
	for _, p := range pairs {
		r := []rune(p)
		if len(r) != 2 {
			return fmt.Errorf("bracket pair %q must consist of exactly two characters", p)
		}
		if r[0] == r[1] {
			return fmt.Errorf("bracket pair %q must use different opening and closing characters", p)
		}
		for _, c := range r {
			if c == 0 {
				return fmt.Errorf("bracket pair %q contains a NUL character", p)
			}
			if seen[c] {
				return fmt.Errorf("bracket %q appears in more than one pair: %v", c, strings.Join(pairs, ","))
			}
			seen[c] = true
		}
	}
	return nil
}
