// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/lists/list"
	"cloudeng.io/logging/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	for _, tc := range []struct {
		kind   string
		args   []string
		remove []string
		output string
	}{
		{"single", nil, []string{"dne"}, ""},
		{"single", []string{"a", "b", "b", "c"}, []string{"b"}, "a b c"},
		{"double", []string{"a", "b", "c", "b"}, []string{"b"}, "a c b"},
		{"circular", []string{"a", "b", "c", "d", "e", "f"}, []string{"d"}, "a b c e f"},
		{"circular", []string{"a"}, []string{"a", "a"}, ""},
		{"double", []string{"first", "second"}, []string{"second", "z"}, "first"},
	} {
		out := &bytes.Buffer{}
		fv := &runFlags{Kind: tc.kind, Remove: flags.Repeating{Values: tc.remove}}
		err := run(t.Context(), out, fv, tc.args)
		require.NoError(t, err, "%v %v", tc.kind, tc.args)
		assert.Equal(t, tc.output+"\n", out.String(), "%v %v", tc.kind, tc.args)
	}
}

func TestRunStrict(t *testing.T) {
	out := &bytes.Buffer{}
	fv := &runFlags{
		Kind:   "circular",
		Remove: flags.Repeating{Values: []string{"b", "x", "y"}},
		Strict: true,
	}
	err := run(t.Context(), out, fv, []string{"a", "b", "c"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, list.ErrNotFound))
	assert.Contains(t, err.Error(), "x: not found")
	assert.Contains(t, err.Error(), "y: not found")
	assert.Equal(t, "a c\n", out.String())

	err = run(t.Context(), out, &runFlags{Kind: "ring"}, nil)
	assert.Error(t, err)
}

func TestRunLogging(t *testing.T) {
	var logged bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logged, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(t.Context(), logger)
	fv := &runFlags{Kind: "double", Remove: flags.Repeating{Values: []string{"a"}}}
	require.NoError(t, run(ctx, &bytes.Buffer{}, fv, []string{"a", "b"}))
	assert.Contains(t, logged.String(), `"msg":"remove"`)
	assert.Contains(t, logged.String(), `"kind":"double"`)
	assert.Contains(t, logged.String(), `"found":true`)
}

func TestValidate(t *testing.T) {
	out := &bytes.Buffer{}
	err := validate(t.Context(), out, &validateFlags{}, []string{"()", "", "a{b}"})
	require.NoError(t, err)
	assert.Equal(t, "(): valid\n: valid\na{b}: valid\n", out.String())

	out.Reset()
	err = validate(t.Context(), out, &validateFlags{}, []string{"(", "({)}", "[]"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInvalidSequence))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"(: invalid (unclosed at 0)",
		"({)}: invalid (mismatched at 2)",
		"[]: valid",
	}, lines)
}

func TestValidateOptions(t *testing.T) {
	out := &bytes.Buffer{}
	err := validate(t.Context(), out, &validateFlags{Policy: "reject"}, []string{"a()"})
	require.Error(t, err)
	assert.Equal(t, "a(): invalid (unrecognised at 0)\n", out.String())

	out.Reset()
	fv := &validateFlags{Pairs: flags.Repeating{Values: []string{"<>"}}}
	require.NoError(t, validate(t.Context(), out, fv, []string{"<<>>", "(("}))

	err = validate(t.Context(), out, &validateFlags{Policy: "strict"}, []string{"()"})
	assert.Error(t, err)
}

func TestValidateConfigFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("policy: reject\npairs: [\"<>\"]\n"), 0600))

	out := &bytes.Buffer{}
	err := validate(t.Context(), out, &validateFlags{Config: filename}, []string{"<>", "()"})
	require.Error(t, err)
	assert.Equal(t, "<>: valid\n(): invalid (unrecognised at 0)\n", out.String())

	// Flags override the config file.
	out.Reset()
	err = validate(t.Context(), out, &validateFlags{Config: filename, Policy: "ignore"}, []string{"()"})
	require.NoError(t, err)
}
