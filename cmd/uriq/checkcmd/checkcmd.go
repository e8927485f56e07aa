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

// Package checkcmd validates query components against the RFC 3986 grammar.
package checkcmd // import "urikit.io/cmd/uriq/checkcmd"

import (
	"context"
	"flag"
	"fmt"
	"os"

	"urikit.io/cmd/uriq/inputs"
	"urikit.io/query"
	"urikit.io/util/cmdutil"
	"urikit.io/util/log"

	"github.com/google/subcommands"
)

type cmd struct {
	cmdutil.Info
	quiet bool
}

// New returns an implementation of the "check" subcommand.
func New() subcommands.Command {
	const usage = `Usage: check [options] <query>...

Validate each query against the RFC 3986 query grammar.  Queries are taken
from the arguments, or read line by line from stdin when none are given.
Every invalid query is reported with the position and kind of its first
error, and the exit status is non-zero if any input was invalid.`

	return &cmd{
		Info: cmdutil.NewInfo("check", "validate RFC 3986 query components", usage),
	}
}

// SetFlags implements part of subcommands.Command.
func (c *cmd) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.quiet, "quiet", false, "Report only the exit status")
}

// Execute implements part of subcommands.Command.
func (c *cmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...any) subcommands.ExitStatus {
	queries, err := inputs.Collect(fs.Args(), os.Stdin)
	if err != nil {
		return c.Fail("%v", err)
	}

	var hasErrors bool
	for _, s := range queries {
		if _, err := query.Parse(s); err != nil {
			hasErrors = true
			if !c.quiet {
				log.Errorf("%q: %v", s, err)
			}
			continue
		}
		if !c.quiet {
			fmt.Println(s)
		}
	}
	if hasErrors {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
