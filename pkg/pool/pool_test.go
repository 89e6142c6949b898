// Licensed to Apache Software Foundation (ASF) under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. Apache Software Foundation (ASF) licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfacets/termstats/pkg/pool"
)

func TestRegisterDuplicate(t *testing.T) {
	pool.Register[[]byte]("test-unique")
	assert.Panics(t, func() {
		pool.Register[[]byte]("test-unique")
	})
}

func TestGetPut(t *testing.T) {
	p := pool.Register[map[string]int]("test-get-put")
	m := p.Get()
	assert.Nil(t, m)
	assert.Equal(t, 1, p.InUse())

	m = map[string]int{"a": 1}
	p.Put(m)
	assert.Equal(t, 0, p.InUse())

	got := p.Get()
	require.NotNil(t, got)
	assert.Equal(t, 1, got["a"])
}
