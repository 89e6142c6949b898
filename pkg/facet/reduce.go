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
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/openfacets/termstats/pkg/logger"
	"github.com/openfacets/termstats/pkg/pool"
)

var scratchPool = pool.Register[map[string]*Entry]("facet-scratch")

func generateScratch() map[string]*Entry {
	m := scratchPool.Get()
	if m == nil {
		return make(map[string]*Entry)
	}
	return m
}

func releaseScratch(m map[string]*Entry) {
	clear(m)
	scratchPool.Put(m)
}

// Reducer merges per-shard partial facets into one ranked facet. It is
// stateless apart from its logger and safe for concurrent use.
type Reducer struct {
	l *logger.Logger
}

// NewReducer returns a Reducer logging under the facet.reduce module.
func NewReducer() *Reducer {
	return &Reducer{l: logger.GetLogger("facet", "reduce")}
}

// Reduce combines partials into a single facet ranked by c. When
// requiredSize is zero the result holds every distinct term fully sorted;
// otherwise it holds exactly the requiredSize best terms. Accumulation is
// associative and commutative, so the result does not depend on the order
// partials arrive in. Every partial must carry the same name, comparator,
// and required size as the call; violations surface ErrInvalidMergeInput.
//
// The returned facet is owned by the caller. Partials are not mutated,
// except that a lone partial with requiredSize zero is sorted in place and
// returned directly.
func (r *Reducer) Reduce(name string, c ComparatorType, requiredSize int, partials []*Facet) (*Facet, error) {
	if err := validatePartials(name, c, requiredSize, partials); err != nil {
		return nil, err
	}
	comparator := c.Comparator()

	if len(partials) == 1 && requiredSize == 0 {
		f := partials[0]
		if len(f.Entries) > 0 {
			sort.Slice(f.Entries, func(i, j int) bool {
				return comparator(f.Entries[i], f.Entries[j]) < 0
			})
		}
		return f, nil
	}

	scratch := generateScratch()
	defer releaseScratch(scratch)

	var missing int64
	var seen int
	for _, partial := range partials {
		missing += partial.Missing
		seen += len(partial.Entries)
		for _, e := range partial.Entries {
			if current, ok := scratch[e.Term]; ok {
				current.Count += e.Count
				current.Total += e.Total
			} else {
				copied := *e
				scratch[e.Term] = &copied
			}
		}
	}

	var entries []*Entry
	if requiredSize == 0 {
		entries = make([]*Entry, 0, len(scratch))
		for _, e := range scratch {
			entries = append(entries, e)
		}
		sort.Slice(entries, func(i, j int) bool {
			return comparator(entries[i], entries[j]) < 0
		})
	} else {
		top := NewBoundedTopSet(c, requiredSize)
		for _, e := range scratch {
			top.Insert(e)
		}
		entries = top.Drain()
	}

	r.l.Debug().
		Str("facet", name).
		Stringer("comparator", c).
		Int("partials", len(partials)).
		Int("entries_in", seen).
		Int("entries_out", len(entries)).
		Msg("reduced facet")

	return &Facet{
		Name:         name,
		Comparator:   c,
		RequiredSize: requiredSize,
		Missing:      missing,
		Entries:      entries,
	}, nil
}

func validatePartials(name string, c ComparatorType, requiredSize int, partials []*Facet) error {
	if len(partials) == 0 {
		return errors.Wrap(ErrInvalidMergeInput, "no partial facets")
	}
	if requiredSize < 0 {
		return errors.Wrapf(ErrInvalidMergeInput, "negative required size %d", requiredSize)
	}
	var err error
	for i, p := range partials {
		if p.Name != name {
			err = multierr.Append(err, errors.Wrapf(ErrInvalidMergeInput,
				"partial %d: name %q differs from %q", i, p.Name, name))
		}
		if p.Comparator != c {
			err = multierr.Append(err, errors.Wrapf(ErrInvalidMergeInput,
				"partial %d: comparator %s differs from %s", i, p.Comparator, c))
		}
		if p.RequiredSize != requiredSize {
			err = multierr.Append(err, errors.Wrapf(ErrInvalidMergeInput,
				"partial %d: required size %d differs from %d", i, p.RequiredSize, requiredSize))
		}
	}
	return err
}
