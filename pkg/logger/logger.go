// Licensed to Apache Software Foundation (ASF) under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. Apache Software Foundation (ASF) licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package logger implements a logging system with a module tag.
// The module tag represents a scope where the log event is emitted.
package logger

import (
	"strings"

	"github.com/rs/zerolog"
)

const rootName = "ROOT"

// Logger is a wrapper for a rs/zerolog logger with a module tag.
type Logger struct {
	*zerolog.Logger
	module string
}

// Module returns the logger's module name.
func (l *Logger) Module() string {
	return l.module
}

// Named creates a new Logger with a sub-module appended to l's module path.
func (l *Logger) Named(name ...string) *Logger {
	var mm []string
	if l.module == rootName {
		mm = name
	} else {
		mm = append([]string{l.module}, name...)
	}
	module := strings.ToUpper(strings.Join(mm, "."))
	subLogger := l.Logger.With().Str("module", module).Logger()
	return &Logger{module: module, Logger: &subLogger}
}

// Sampled returns a Logger with a sampler that sends every nth event.
func (l *Logger) Sampled(n uint32) *Logger {
	sampled := l.Logger.Sample(&zerolog.BasicSampler{N: n})
	return &Logger{module: l.module, Logger: &sampled}
}
