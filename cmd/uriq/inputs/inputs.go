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

// Package inputs collects the query strings a uriq subcommand operates on.
package inputs // import "urikit.io/cmd/uriq/inputs"

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Collect returns args if non-empty; otherwise it reads newline-separated
// inputs from r until EOF.
func Collect(args []string, r io.Reader) ([]string, error) {
	if len(args) != 0 {
		return args, nil
	}
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return lines, nil
}
