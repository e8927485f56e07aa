/*
 * Copyright 2025 The URIKit Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package equalcmd compares two query components for equivalence.
package equalcmd // import "urikit.io/cmd/uriq/equalcmd"

import (
	"context"
	"flag"
	"fmt"

	"urikit.io/query"
	"urikit.io/util/cmdutil"

	"github.com/google/subcommands"
)

type cmd struct {
	cmdutil.Info
	quiet bool
}

// New returns an implementation of the "equal" subcommand.
func New() subcommands.Command {
	const usage = `Usage: equal [options] <query> <query>

Report whether the two queries denote the same content, independent of how
each is percent-encoded.  Content is compared case-sensitively; only the
hex digits inside percent escapes are insignificant.  The exit status is
zero exactly when the queries are equivalent.`

	return &cmd{
		Info: cmdutil.NewInfo("equal", "compare two queries for equivalence", usage),
	}
}

// SetFlags implements part of subcommands.Command.
func (c *cmd) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.quiet, "quiet", false, "Report only the exit status")
}

// Execute implements part of subcommands.Command.
func (c *cmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if fs.NArg() != 2 {
		return c.Fail("equal requires exactly 2 arguments, got %d", fs.NArg())
	}
	a, b := fs.Arg(0), fs.Arg(1)
	qa, err := query.Parse(a)
	if err != nil {
		return c.Fail("%q: %v", a, err)
	}
	qb, err := query.Parse(b)
	if err != nil {
		return c.Fail("%q: %v", b, err)
	}
	if !qa.Equal(qb) {
		if !c.quiet {
			fmt.Printf("%q != %q\n", a, b)
		}
		return subcommands.ExitFailure
	}
	if !c.quiet {
		fmt.Printf("%q == %q\n", a, b)
	}
	return subcommands.ExitSuccess
}
