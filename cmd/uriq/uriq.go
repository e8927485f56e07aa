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

// Binary uriq provides tools to work with RFC 3986 query components.
//
// Examples:
//
//	# Rewrite queries into canonical form.
//	uriq fix 'a=%7ex' 'name=%4Aoe'
//
//	# Check whether two encodings denote the same query.
//	uriq equal 'que%72y' 'query'
package main

import (
	"context"
	"flag"
	"os"

	"urikit.io/cmd/uriq/checkcmd"
	"urikit.io/cmd/uriq/dedupcmd"
	"urikit.io/cmd/uriq/digestcmd"
	"urikit.io/cmd/uriq/equalcmd"
	"urikit.io/cmd/uriq/escapecmd"
	"urikit.io/cmd/uriq/fixcmd"

	"github.com/google/subcommands"
)

func init() {
	subcommands.Register(checkcmd.New(), "")
	subcommands.Register(dedupcmd.New(), "")
	subcommands.Register(digestcmd.New(), "")
	subcommands.Register(equalcmd.New(), "")
	subcommands.Register(escapecmd.New(), "")
	subcommands.Register(fixcmd.New(), "")
}

func main() {
	flag.Parse()
	ctx := context.Background()

	os.Exit(int(subcommands.Execute(ctx)))
}
