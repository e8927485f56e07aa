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

// Package log provides semantic log functions for the urikit tools.
package log // import "urikit.io/util/log"

import "log"

// Infof logs to the informational log.
func Infof(msg string, args ...any) { log.Printf(msg, args...) }

// Info logs to the informational log.
func Info(args ...any) { log.Println(args...) }

// Warningf logs to the warning log.
func Warningf(msg string, args ...any) { log.Printf("WARNING: "+msg, args...) }

// Errorf logs to the error log.
func Errorf(msg string, args ...any) { log.Printf("ERROR: "+msg, args...) }

// Fatalf logs to the error log and exits.
func Fatalf(msg string, args ...any) { log.Fatalf(msg, args...) }

// Exit logs to the error log and exits.
func Exit(args ...any) { log.Fatal(args...) }

// Exitf logs to the error log and exits.
func Exitf(msg string, args ...any) { log.Fatalf(msg, args...) }
