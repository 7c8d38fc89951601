// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/errors"
	"cloudeng.io/lists/list"
	"cloudeng.io/logging/ctxlog"
)

type runFlags struct {
	cmdutil.LoggingFlags
	Kind   string          `subcmd:"kind,single,'type of list to use: single, double or circular'"`
	Remove flags.Repeating `subcmd:"remove,,'value to remove from the list, may be repeated'"`
	Strict bool            `subcmd:"strict,false,'treat values to be removed that are not in the list as errors'"`
}

func runList(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*runFlags)
	ctx, done, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	return run(ctx, os.Stdout, fv, args)
}

// newList returns a list of the requested kind containing vals and a
// function to remove a value from it.
func newList(kind string, vals []string) (list.Sequence[string], func(string) bool) {
	container := func(c list.Container[string]) (list.Sequence[string], func(string) bool) {
		for _, v := range vals {
			c.Add(list.NewNode(v))
		}
		return c, func(v string) bool {
			_, ok := c.Remove(v)
			return ok
		}
	}
	switch kind {
	case "double":
		return container(list.NewDouble[string]())
	case "circular":
		cl := list.NewCircular[string]()
		for _, v := range vals {
			cl.Add(list.NewNode(v))
		}
		return cl, func(v string) bool {
			return cl.Remove(v) != nil
		}
	}
	return container(list.NewSingle[string]())
}

func run(ctx context.Context, out io.Writer, fv *runFlags, args []string) error {
	if err := flags.OneOf(fv.Kind).Validate("single", "double", "circular"); err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx).With("kind", fv.Kind)
	seq, remove := newList(fv.Kind, args)
	logger.Debug("created", "len", seq.Len())
	errs := &errors.M{}
	for _, v := range fv.Remove.Values {
		if fv.Strict {
			if err := list.Find(seq, v); err != nil {
				errs.Append(err)
				continue
			}
		}
		found := remove(v)
		logger.Debug("remove", "value", v, "found", found, "len", seq.Len())
	}
	fmt.Fprintln(out, strings.Join(seq.AsList(), " "))
	return errs.Err()
}
