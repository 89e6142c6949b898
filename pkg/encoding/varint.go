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

// Package encoding implements the binary primitives of the facet wire format.
package encoding

import "fmt"

const maxVarUint64Len = 10

// VarUint64ToBytes appends u to dst as an unsigned LEB128 varint.
func VarUint64ToBytes(dst []byte, u uint64) []byte {
	for u >= 0x80 {
		dst = append(dst, byte(u)|0x80)
		u >>= 7
	}
	return append(dst, byte(u))
}

// BytesToVarUint64 reads one varint from src and returns the unread tail.
func BytesToVarUint64(src []byte) ([]byte, uint64, error) {
	var u uint64
	var shift uint
	for i, b := range src {
		if i >= maxVarUint64Len {
			return src, 0, fmt.Errorf("cannot decode varint: more than %d bytes", maxVarUint64Len)
		}
		u |= uint64(b&0x7f) << shift
		if b < 0x80 {
			if i == maxVarUint64Len-1 && b > 1 {
				return src, 0, fmt.Errorf("cannot decode varint: value overflows uint64")
			}
			return src[i+1:], u, nil
		}
		shift += 7
	}
	return src, 0, fmt.Errorf("cannot decode varint from %d bytes: src is too short", len(src))
}
