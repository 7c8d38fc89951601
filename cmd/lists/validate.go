// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/errors"
	"cloudeng.io/lists/brackets"
	"cloudeng.io/logging/ctxlog"
)

var errInvalidSequence = errors.New("invalid bracket sequence")

type validateFlags struct {
	cmdutil.LoggingFlags
	Config string          `subcmd:"config,,'yaml file containing the validator configuration'"`
	Policy string          `subcmd:"policy,,'handling of non-bracket characters: ignore or reject, overrides the config file'"`
	Pairs  flags.Repeating `subcmd:"pair,,'a bracket pair such as <>, may be repeated and overrides the config file'"`
}

func validateSequences(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*validateFlags)
	ctx, done, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	return validate(ctx, os.Stdout, fv, args)
}

func validatorConfig(ctx context.Context, fv *validateFlags) (brackets.Config, error) {
	var cfg brackets.Config
	if len(fv.Config) > 0 {
		var err error
		if cfg, err = brackets.LoadConfig(ctx, fv.Config); err != nil {
			return cfg, err
		}
	}
	if len(fv.Policy) > 0 {
		p, err := brackets.ParsePolicy(fv.Policy)
		if err != nil {
			return cfg, err
		}
		cfg.Policy = p
	}
	if len(fv.Pairs.Values) > 0 {
		cfg.Pairs = fv.Pairs.Values
	}
	return cfg, nil
}

func validate(ctx context.Context, out io.Writer, fv *validateFlags, args []string) error {
	cfg, err := validatorConfig(ctx, fv)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx)
	logger.Debug("validator", "policy", cfg.Policy.String(), "pairs", cfg.Pairs)
	v := brackets.New(opts...)
	errs := &errors.M{}
	for _, arg := range args {
		res := v.Scan(arg)
		logger.Debug("scan", "sequence", arg, "valid", res.Valid, "reason", res.Reason.String(), "offset", res.Offset)
		fmt.Fprintf(out, "%s: %v\n", arg, res)
		if !res.Valid {
			errs.Append(fmt.Errorf("%q: %v: %w", arg, res, errInvalidSequence))
		}
	}
	return errs.Err()
}
