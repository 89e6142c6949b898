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

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// BoundedTopSet retains the best entries under a comparator while never
// holding more than its capacity. Inserting n candidates costs
// O(n log capacity).
type BoundedTopSet struct {
	set      *treeset.Set
	cmp      Comparator
	capacity int
}

// NewBoundedTopSet creates a set ranked by c. capacity must be at least 1.
func NewBoundedTopSet(c ComparatorType, capacity int) *BoundedTopSet {
	comparator := c.Comparator()
	return &BoundedTopSet{
		set: treeset.NewWith(func(a, b interface{}) int {
			return comparator(a.(*Entry), b.(*Entry))
		}),
		cmp:      comparator,
		capacity: capacity,
	}
}

// Insert offers e to the set. When the set is full, e replaces the current
// worst entry only if it ranks strictly better; otherwise e is discarded.
func (s *BoundedTopSet) Insert(e *Entry) {
	if s.set.Size() < s.capacity {
		s.set.Add(e)
		return
	}
	it := s.set.Iterator()
	if !it.Last() {
		return
	}
	worst := it.Value().(*Entry)
	if s.cmp(e, worst) < 0 {
		s.set.Remove(worst)
		s.set.Add(e)
	}
}

// Drain returns the retained entries best to worst and empties the set.
func (s *BoundedTopSet) Drain() []*Entry {
	values := s.set.Values()
	entries := make([]*Entry, len(values))
	for i, v := range values {
		entries[i] = v.(*Entry)
	}
	s.set.Clear()
	return entries
}

// Size returns the number of retained entries.
func (s *BoundedTopSet) Size() int {
	return s.set.Size()
}
