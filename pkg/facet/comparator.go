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
	"cmp"
	"strings"

	"github.com/pkg/errors"
)

// ComparatorType identifies a ranking order for facet entries. Its byte
// value is the stable wire identifier.
type ComparatorType byte

// The available ranking orders.
const (
	ComparatorCount ComparatorType = iota
	ComparatorCountDesc
	ComparatorTotal
	ComparatorTotalDesc
	ComparatorMean
	ComparatorMeanDesc
	ComparatorTerm
	ComparatorTermDesc
	ComparatorTermNumeric
	ComparatorTermNumericDesc
)

// Comparator is a total order over two entries. A negative result means a
// ranks better than b.
type Comparator func(a, b *Entry) int

// ID returns the stable wire identifier of the comparator type.
func (c ComparatorType) ID() byte {
	return byte(c)
}

// ComparatorTypeFromID maps a wire identifier back to its ComparatorType.
func ComparatorTypeFromID(id byte) (ComparatorType, error) {
	if id > ComparatorTermNumericDesc.ID() {
		return 0, errors.Wrapf(ErrInvalidComparatorID, "id %d", id)
	}
	return ComparatorType(id), nil
}

func (c ComparatorType) String() string {
	switch c {
	case ComparatorCount:
		return "count"
	case ComparatorCountDesc:
		return "count-desc"
	case ComparatorTotal:
		return "total"
	case ComparatorTotalDesc:
		return "total-desc"
	case ComparatorMean:
		return "mean"
	case ComparatorMeanDesc:
		return "mean-desc"
	case ComparatorTerm:
		return "term"
	case ComparatorTermDesc:
		return "term-desc"
	case ComparatorTermNumeric:
		return "term-numeric"
	case ComparatorTermNumericDesc:
		return "term-numeric-desc"
	default:
		return "unknown"
	}
}

// Comparator returns the total order for the type. Ties on the primary
// field break on the ascending lexicographic term order, so any two entries
// with distinct terms compare non-equal and the result is reproducible
// across processes.
func (c ComparatorType) Comparator() Comparator {
	switch c {
	case ComparatorCount:
		return func(a, b *Entry) int { return tieBreak(cmp.Compare(a.Count, b.Count), a, b) }
	case ComparatorCountDesc:
		return func(a, b *Entry) int { return tieBreak(cmp.Compare(b.Count, a.Count), a, b) }
	case ComparatorTotal:
		return func(a, b *Entry) int { return tieBreak(cmp.Compare(a.Total, b.Total), a, b) }
	case ComparatorTotalDesc:
		return func(a, b *Entry) int { return tieBreak(cmp.Compare(b.Total, a.Total), a, b) }
	case ComparatorMean:
		return func(a, b *Entry) int { return tieBreak(cmp.Compare(a.Mean(), b.Mean()), a, b) }
	case ComparatorMeanDesc:
		return func(a, b *Entry) int { return tieBreak(cmp.Compare(b.Mean(), a.Mean()), a, b) }
	case ComparatorTerm:
		return func(a, b *Entry) int { return strings.Compare(a.Term, b.Term) }
	case ComparatorTermDesc:
		return func(a, b *Entry) int { return strings.Compare(b.Term, a.Term) }
	case ComparatorTermNumeric:
		return func(a, b *Entry) int { return compareTermNumeric(a, b, false) }
	case ComparatorTermNumericDesc:
		return func(a, b *Entry) int { return compareTermNumeric(a, b, true) }
	default:
		panic(errors.Wrapf(ErrInvalidComparatorID, "id %d", c.ID()))
	}
}

func tieBreak(primary int, a, b *Entry) int {
	if primary != 0 {
		return primary
	}
	return strings.Compare(a.Term, b.Term)
}

// compareTermNumeric orders terms by their numeric value. A term that does
// not parse as a number ranks after every numeric term in either direction;
// two non-numeric terms fall back to the lexicographic term order.
func compareTermNumeric(a, b *Entry, desc bool) int {
	av, aErr := a.TermAsNumber()
	bv, bErr := b.TermAsNumber()
	switch {
	case aErr == nil && bErr == nil:
		if desc {
			av, bv = bv, av
		}
		return tieBreak(cmp.Compare(av, bv), a, b)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	default:
		return strings.Compare(a.Term, b.Term)
	}
}
