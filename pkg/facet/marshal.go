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
	"math"

	"github.com/pkg/errors"

	"github.com/openfacets/termstats/pkg/convert"
	"github.com/openfacets/termstats/pkg/encoding"
)

// Wire layout, strings length-prefixed with unsigned varints:
//
//	name         string
//	comparator   1 byte
//	requiredSize varint
//	missing      varint
//	entryCount   varint
//	entryCount times:
//	  term   string
//	  count  varint
//	  total  float64 (8 bytes, IEEE-754 big-endian)
//
// The mean is never transmitted; it is derived from total/count on read.

// An entry with an empty term still takes a length byte, a count byte, and
// eight total bytes.
const minWireEntrySize = 10

// Marshal appends the facet's wire form to dst and returns the extended
// buffer.
func (f *Facet) Marshal(dst []byte) []byte {
	dst = encoding.EncodeBytes(dst, convert.StringToBytes(f.Name))
	dst = append(dst, f.Comparator.ID())
	dst = encoding.VarUint64ToBytes(dst, uint64(f.RequiredSize))
	dst = encoding.VarUint64ToBytes(dst, uint64(f.Missing))
	dst = encoding.VarUint64ToBytes(dst, uint64(len(f.Entries)))
	for _, e := range f.Entries {
		dst = encoding.EncodeBytes(dst, convert.StringToBytes(e.Term))
		dst = encoding.VarUint64ToBytes(dst, uint64(e.Count))
		dst = encoding.Float64ToBytes(dst, e.Total)
	}
	return dst
}

// Unmarshal decodes one facet from src, which must contain exactly one
// facet. Truncated input, trailing bytes, out-of-range sizes, and zero
// counts surface ErrMalformedData; an unknown comparator identifier
// surfaces ErrInvalidComparatorID. On failure f is left unspecified and
// must not be used.
func (f *Facet) Unmarshal(src []byte) error {
	src, nameBytes, err := encoding.DecodeBytes(src)
	if err != nil {
		return errors.Wrapf(ErrMalformedData, "cannot unmarshal facet.name: %v", err)
	}
	f.Name = string(nameBytes)

	if len(src) < 1 {
		return errors.Wrap(ErrMalformedData, "cannot unmarshal facet.comparator: src is too short")
	}
	if f.Comparator, err = ComparatorTypeFromID(src[0]); err != nil {
		return err
	}
	src = src[1:]

	if src, f.RequiredSize, err = decodeSize(src, "facet.requiredSize"); err != nil {
		return err
	}

	var missing uint64
	if src, missing, err = encoding.BytesToVarUint64(src); err != nil {
		return errors.Wrapf(ErrMalformedData, "cannot unmarshal facet.missing: %v", err)
	}
	if missing > math.MaxInt64 {
		return errors.Wrapf(ErrMalformedData, "facet.missing %d overflows int64", missing)
	}
	f.Missing = int64(missing)

	var entryCount int
	if src, entryCount, err = decodeSize(src, "facet.entryCount"); err != nil {
		return err
	}
	if entryCount > len(src)/minWireEntrySize {
		return errors.Wrapf(ErrMalformedData,
			"facet.entryCount %d exceeds the remaining %d bytes", entryCount, len(src))
	}

	f.Entries = nil
	if entryCount > 0 {
		f.Entries = make([]*Entry, 0, entryCount)
	}
	for i := 0; i < entryCount; i++ {
		var termBytes []byte
		if src, termBytes, err = encoding.DecodeBytes(src); err != nil {
			return errors.Wrapf(ErrMalformedData, "cannot unmarshal facet.entries[%d].term: %v", i, err)
		}
		var count uint64
		if src, count, err = encoding.BytesToVarUint64(src); err != nil {
			return errors.Wrapf(ErrMalformedData, "cannot unmarshal facet.entries[%d].count: %v", i, err)
		}
		if count == 0 {
			return errors.Wrapf(ErrMalformedData, "facet.entries[%d].count must be at least 1", i)
		}
		if count > math.MaxInt64 {
			return errors.Wrapf(ErrMalformedData, "facet.entries[%d].count %d overflows int64", i, count)
		}
		var total float64
		if src, total, err = encoding.BytesToFloat64(src); err != nil {
			return errors.Wrapf(ErrMalformedData, "cannot unmarshal facet.entries[%d].total: %v", i, err)
		}
		f.Entries = append(f.Entries, &Entry{
			Term:  string(termBytes),
			Count: int64(count),
			Total: total,
		})
	}
	if len(src) > 0 {
		return errors.Wrapf(ErrMalformedData, "unexpected %d trailing bytes", len(src))
	}
	return nil
}

func decodeSize(src []byte, field string) ([]byte, int, error) {
	tail, v, err := encoding.BytesToVarUint64(src)
	if err != nil {
		return nil, 0, errors.Wrapf(ErrMalformedData, "cannot unmarshal %s: %v", field, err)
	}
	if v > math.MaxInt32 {
		return nil, 0, errors.Wrapf(ErrMalformedData, "%s %d is out of range", field, v)
	}
	return tail, int(v), nil
}
