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

// Package facet merges per-shard terms-stats facets into one ranked result.
//
// Each shard aggregates its partition independently and emits a partial
// Facet whose entries carry no order or bound guarantee. A coordinator
// feeds all partials to Reducer.Reduce, which re-establishes both
// guarantees globally: one entry per distinct term with summed statistics,
// ranked by the facet's comparator and bounded to the required size.
package facet

import "strconv"

// Entry is one term's accumulated statistics. It is mutated in place while
// a merge accumulates counts and becomes logically immutable once it is
// part of a reduced facet.
type Entry struct {
	Term  string
	Count int64
	Total float64
}

// Mean returns the average value per occurrence.
// Count is at least 1 for every entry that exists.
func (e *Entry) Mean() float64 {
	return e.Total / float64(e.Count)
}

// TermAsNumber parses the term as a float64.
func (e *Entry) TermAsNumber() (float64, error) {
	return strconv.ParseFloat(e.Term, 64)
}

// Facet is a named terms-stats result. Before reduction it is a per-shard
// partial; after reduction its entries are in final display order and the
// renderer performs no further sorting.
type Facet struct {
	Name         string
	Entries      []*Entry
	Comparator   ComparatorType
	RequiredSize int
	Missing      int64
}

// Equal reports field-for-field equality, including entry order.
func (f *Facet) Equal(other *Facet) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.Name != other.Name || f.Comparator != other.Comparator ||
		f.RequiredSize != other.RequiredSize || f.Missing != other.Missing ||
		len(f.Entries) != len(other.Entries) {
		return false
	}
	for i, e := range f.Entries {
		if *e != *other.Entries[i] {
			return false
		}
	}
	return true
}
