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

// Package escapecmd percent-encodes raw strings into valid query content.
package escapecmd // import "urikit.io/cmd/uriq/escapecmd"

import (
	"context"
	"flag"
	"fmt"
	"os"

	"urikit.io/cmd/uriq/inputs"
	"urikit.io/pctenc"
	"urikit.io/util/cmdutil"

	"github.com/google/subcommands"
)

type cmd struct {
	cmdutil.Info
}

// New returns an implementation of the "escape" subcommand.
func New() subcommands.Command {
	const usage = `Usage: escape <string>...

Percent-encode each raw string so the result is valid query content.
Every byte outside the unreserved set is escaped with uppercase hex
digits.  Strings are taken from the arguments, or read line by line from
stdin when none are given.`

	return &cmd{
		Info: cmdutil.NewInfo("escape", "percent-encode raw strings", usage),
	}
}

// Execute implements part of subcommands.Command.
func (c *cmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...any) subcommands.ExitStatus {
	raw, err := inputs.Collect(fs.Args(), os.Stdin)
	if err != nil {
		return c.Fail("%v", err)
	}
	for _, s := range raw {
		fmt.Println(pctenc.Escape(s))
	}
	return subcommands.ExitSuccess
}
