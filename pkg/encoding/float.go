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

package encoding

import (
	"fmt"
	"math"

	"github.com/openfacets/termstats/pkg/convert"
)

// Float64ToBytes appends the 8-byte IEEE-754 form of f to dst.
func Float64ToBytes(dst []byte, f float64) []byte {
	return append(dst, convert.Uint64ToBytes(math.Float64bits(f))...)
}

// BytesToFloat64 reads one float64 from src and returns the unread tail.
func BytesToFloat64(src []byte) ([]byte, float64, error) {
	if len(src) < 8 {
		return src, 0, fmt.Errorf("cannot decode float64 from %d bytes: src is too short", len(src))
	}
	return src[8:], math.Float64frombits(convert.BytesToUint64(src[:8])), nil
}
