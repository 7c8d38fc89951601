// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command lists exercises the linked lists and bracket validator
// provided by cloudeng.io/lists.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

var cmdSet *subcmd.CommandSet

func init() {
	validateCmd := subcmd.NewCommand("validate",
		subcmd.MustRegisterFlagStruct(&validateFlags{}, nil, nil),
		validateSequences)
	validateCmd.Document(`validate bracket sequences, one per argument.

Each sequence is reported as valid or invalid, along with the reason
and the offset of the offending character for invalid sequences. The
command fails if any sequence is invalid.`)

	runCmd := subcmd.NewCommand("run",
		subcmd.MustRegisterFlagStruct(&runFlags{}, nil, nil),
		runList)
	runCmd.Document(`append the arguments to a list, apply the requested removals and print the result.`)

	cmdSet = subcmd.NewCommandSet(validateCmd, runCmd)
	cmdSet.Document(`exercise singly, doubly and circularly linked lists and a bracket validator.`)
}

func withLogger(ctx context.Context, lf cmdutil.LoggingFlags) (context.Context, func(), error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}

func main() {
	cmdSet.MustDispatch(context.Background())
}
