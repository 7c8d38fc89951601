// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package brackets

import (
	"fmt"
	"strings"
)

// Policy determines how characters that are not brackets are handled.
type Policy int

const (
	// Ignore skips over non-bracket characters.
	Ignore Policy = iota
	// Reject treats a non-bracket character as making the sequence invalid.
	Reject
)

func (p Policy) String() string {
	switch p {
	case Ignore:
		return "ignore"
	case Reject:
		return "reject"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy parses the string representation of a Policy, an empty
// string is treated as Ignore.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "", "ignore":
		return Ignore, nil
	case "reject":
		return Reject, nil
	}
	return Ignore, fmt.Errorf("unrecognised policy: %q is not one of: ignore, reject", s)
}

type options struct {
	policy Policy
	pairs  []string
}

// Option represents the options that can be passed to New.
type Option func(*options)

// WithPolicy sets the policy for non-bracket characters. It panics if
// p is neither Ignore nor Reject.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		if p != Ignore && p != Reject {
			panic(fmt.Sprintf("unrecognised policy: %v", p))
		}
		o.policy = p
	}
}

// WithPairs replaces the default bracket pairs. Each pair is a two
// character string consisting of the opening and closing bracket, eg.
// "<>". No character may appear in more than one pair.
func WithPairs(pairs ...string) Option {
	return func(o *options) {
		if err := validatePairs(pairs); err != nil {
			panic(err)
		}
		o.pairs = pairs
	}
}
