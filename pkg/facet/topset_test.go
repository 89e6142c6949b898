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

package facet_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfacets/termstats/pkg/facet"
)

func drainTerms(s *facet.BoundedTopSet) []string {
	entries := s.Drain()
	terms := make([]string, len(entries))
	for i, e := range entries {
		terms[i] = e.Term
	}
	return terms
}

func TestBoundedTopSetKeepsBestK(t *testing.T) {
	s := facet.NewBoundedTopSet(facet.ComparatorCountDesc, 3)
	for i, count := range []int64{4, 9, 1, 7, 2, 8} {
		s.Insert(&facet.Entry{Term: fmt.Sprintf("t%d", i), Count: count, Total: 1})
	}
	require.Equal(t, 3, s.Size())
	assert.Equal(t, []string{"t1", "t5", "t3"}, drainTerms(s))
	assert.Equal(t, 0, s.Size())
}

func TestBoundedTopSetBelowCapacity(t *testing.T) {
	s := facet.NewBoundedTopSet(facet.ComparatorTerm, 10)
	s.Insert(&facet.Entry{Term: "b", Count: 1})
	s.Insert(&facet.Entry{Term: "a", Count: 1})
	assert.Equal(t, []string{"a", "b"}, drainTerms(s))
}

func TestBoundedTopSetEvictsOnlyStrictlyBetter(t *testing.T) {
	s := facet.NewBoundedTopSet(facet.ComparatorCountDesc, 1)
	s.Insert(&facet.Entry{Term: "b", Count: 5})

	// Equal count and a later term rank worse, so the candidate is dropped.
	s.Insert(&facet.Entry{Term: "c", Count: 5})
	require.Equal(t, 1, s.Size())

	// Equal count and an earlier term rank strictly better.
	s.Insert(&facet.Entry{Term: "a", Count: 5})
	assert.Equal(t, []string{"a"}, drainTerms(s))
}

func TestBoundedTopSetMatchesFullSort(t *testing.T) {
	const n, k = 500, 7
	rng := rand.New(rand.NewSource(42))
	entries := make([]*facet.Entry, n)
	for i := range entries {
		entries[i] = &facet.Entry{
			Term:  fmt.Sprintf("term-%04d", i),
			Count: int64(rng.Intn(50) + 1),
			Total: float64(rng.Intn(1000)),
		}
	}
	s := facet.NewBoundedTopSet(facet.ComparatorTotalDesc, k)
	for _, e := range entries {
		s.Insert(e)
	}
	assert.Equal(t, sortTerms(facet.ComparatorTotalDesc, entries)[:k], drainTerms(s))
}
