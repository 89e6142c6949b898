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

package facet

import "github.com/pkg/errors"

var (
	// ErrInvalidMergeInput indicates Reduce was given no partial facets,
	// or partials whose name, comparator, or required size disagree.
	ErrInvalidMergeInput = errors.New("invalid merge input")

	// ErrInvalidComparatorID indicates an unknown comparator identifier.
	ErrInvalidComparatorID = errors.New("invalid comparator id")

	// ErrMalformedData indicates a facet byte stream that cannot be decoded.
	ErrMalformedData = errors.New("malformed facet data")
)
