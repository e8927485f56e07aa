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

// Package dedupcmd filters a list of queries down to one representative
// per equivalence class.
package dedupcmd // import "urikit.io/cmd/uriq/dedupcmd"

import (
	"context"
	"flag"
	"fmt"
	"os"

	"urikit.io/cmd/uriq/inputs"
	"urikit.io/query"
	"urikit.io/util/cmdutil"
	"urikit.io/util/log"

	"bitbucket.org/creachadair/stringset"
	"github.com/google/subcommands"
)

type cmd struct {
	cmdutil.Info
	canonical bool
}

// New returns an implementation of the "dedup" subcommand.
func New() subcommands.Command {
	const usage = `Usage: dedup [options] <query>...

Print the first representative of each distinct query, treating
representations that differ only in percent-encoding as the same query.
Survivors are printed in input order.  Queries are taken from the
arguments, or read line by line from stdin when none are given.`

	return &cmd{
		Info: cmdutil.NewInfo("dedup", "drop equivalent duplicate queries", usage),
	}
}

// SetFlags implements part of subcommands.Command.
func (c *cmd) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.canonical, "canonical", false, "Print canonical forms instead of the original representations")
}

// Execute implements part of subcommands.Command.
func (c *cmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...any) subcommands.ExitStatus {
	queries, err := inputs.Collect(fs.Args(), os.Stdin)
	if err != nil {
		return c.Fail("%v", err)
	}

	// Two queries are equivalent exactly when their canonical forms are
	// identical, so a set of canonical strings tracks class membership.
	var seen stringset.Set
	var hasErrors bool
	for _, s := range queries {
		fixed, err := query.Fix(s)
		if err != nil {
			log.Errorf("%q: %v", s, err)
			hasErrors = true
			continue
		}
		if !seen.Add(fixed) {
			continue
		}
		if c.canonical {
			fmt.Println(fixed)
		} else {
			fmt.Println(s)
		}
	}
	if hasErrors {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
