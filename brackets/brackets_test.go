// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package brackets_test

import (
	"testing"

	"cloudeng.io/lists/brackets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	for _, tc := range []struct {
		input string
		valid bool
	}{
		{"", true},
		{"()", true},
		{"(", false},
		{")", false},
		{"({)}", false},
		{"({[]})", true},
		{"()[]{}", true},
		{"(]", false},
		{"((())", false},
		{"a(b)c", true},
		{"x", true},
		{"}{", false},
	} {
		assert.Equal(t, tc.valid, brackets.IsValid(tc.input), "input %q", tc.input)
	}
}

func TestScan(t *testing.T) {
	v := brackets.New()
	for _, tc := range []struct {
		input  string
		reason brackets.Reason
		offset int
	}{
		{"", brackets.Balanced, -1},
		{"([])", brackets.Balanced, -1},
		{"())", brackets.Unmatched, 2},
		{"({)}", brackets.Mismatched, 2},
		{"(()", brackets.Unclosed, 0},
		{"()((", brackets.Unclosed, 3},
		{"é(ü]", brackets.Mismatched, 3},
	} {
		res := v.Scan(tc.input)
		assert.Equal(t, tc.reason == brackets.Balanced, res.Valid, "input %q", tc.input)
		assert.Equal(t, tc.reason, res.Reason, "input %q", tc.input)
		assert.Equal(t, tc.offset, res.Offset, "input %q", tc.input)
	}
	assert.Equal(t, "valid", v.Scan("()").String())
	assert.Equal(t, "invalid (mismatched at 2)", v.Scan("({)}").String())
}

func TestPolicy(t *testing.T) {
	ignore := brackets.New(brackets.WithPolicy(brackets.Ignore))
	reject := brackets.New(brackets.WithPolicy(brackets.Reject))

	assert.True(t, ignore.IsValid("f(a[1])"))
	res := reject.Scan("f(a[1])")
	assert.False(t, res.Valid)
	assert.Equal(t, brackets.Unrecognised, res.Reason)
	assert.Equal(t, 0, res.Offset)
	assert.True(t, reject.IsValid("([]{})"))

	for _, tc := range []struct {
		input  string
		policy brackets.Policy
	}{
		{"", brackets.Ignore},
		{"ignore", brackets.Ignore},
		{"Reject", brackets.Reject},
	} {
		p, err := brackets.ParsePolicy(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.policy, p)
	}
	_, err := brackets.ParsePolicy("strict")
	assert.Error(t, err)
	assert.Equal(t, "reject", brackets.Reject.String())

	for _, p := range []brackets.Policy{-1, 2, 7} {
		assert.Panics(t, func() { brackets.New(brackets.WithPolicy(p)) }, "policy %v", p)
	}
}

func TestPairs(t *testing.T) {
	v := brackets.New(brackets.WithPairs("<>", "()"))
	assert.True(t, v.IsValid("<(<>)>"))
	assert.False(t, v.IsValid("<(>)"))
	// [ and ] are no longer brackets and hence are ignored.
	assert.True(t, v.IsValid("[<>"))

	for _, pairs := range [][]string{
		{"("},
		{"(((("},
		{"(("},
		{"()", "(]"},
	} {
		assert.Panics(t, func() { brackets.New(brackets.WithPairs(pairs...)) }, "pairs %v", pairs)
	}
}

func TestEarlyExitIsStable(t *testing.T) {
	// Scanning stops at the first failure, characters after it cannot
	// change the result.
	v := brackets.New()
	for _, suffix := range []string{"", ")", "()", "}}}}", "({[]})"} {
		res := v.Scan("(]" + suffix)
		assert.False(t, res.Valid)
		assert.Equal(t, brackets.Mismatched, res.Reason)
		assert.Equal(t, 1, res.Offset)
	}
}
