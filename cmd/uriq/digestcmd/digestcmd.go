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

// Package digestcmd prints equivalence digests of query components.
package digestcmd // import "urikit.io/cmd/uriq/digestcmd"

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
}

// New returns an implementation of the "digest" subcommand.
func New() subcommands.Command {
	const usage = `Usage: digest <query>...

Print the 64-bit equivalence digest of each query.  Queries that denote the
same content have the same digest regardless of how they are
percent-encoded.  Queries are taken from the arguments, or read line by
line from stdin when none are given.`

	return &cmd{
		Info: cmdutil.NewInfo("digest", "print query equivalence digests", usage),
	}
}

// Execute implements part of subcommands.Command.
func (c *cmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...any) subcommands.ExitStatus {
	queries, err := inputs.Collect(fs.Args(), os.Stdin)
	if err != nil {
		return c.Fail("%v", err)
	}

	var hasErrors bool
	for _, s := range queries {
		q, err := query.Parse(s)
		if err != nil {
			log.Errorf("%q: %v", s, err)
			hasErrors = true
			continue
		}
		fmt.Printf("%016x\t%s\n", q.Digest(), s)
	}
	if hasErrors {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
