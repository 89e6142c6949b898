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

package encoding_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfacets/termstats/pkg/encoding"
)

func TestFloat64RoundTrip(t *testing.T) {
	values := []float64{0, 1.5, -1.5, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1)}
	encoded := make([]byte, 0)
	for _, f := range values {
		encoded = encoding.Float64ToBytes(encoded, f)
	}
	for _, want := range values {
		var got float64
		var err error
		encoded, got, err = encoding.BytesToFloat64(encoded)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Empty(t, encoded)
}

func TestBytesToFloat64TooShort(t *testing.T) {
	encoded := encoding.Float64ToBytes(nil, 42.0)
	for i := 0; i < 8; i++ {
		_, _, err := encoding.BytesToFloat64(encoded[:i])
		assert.Error(t, err, "prefix of %d bytes", i)
	}
}
