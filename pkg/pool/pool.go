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

// Package pool provides named pools for reusing merge-time objects.
package pool

import (
	"fmt"
	"sync"
	"sync/atomic"
)

var registry sync.Map

// Register creates a pool under a unique name. It panics when the name is
// already taken, so every pool in the process stays individually observable.
func Register[T any](name string) *Synced[T] {
	p := new(Synced[T])
	if _, ok := registry.LoadOrStore(name, p); ok {
		panic(fmt.Sprintf("duplicated pool: %s", name))
	}
	return p
}

// Synced is a pool that is safe for concurrent use.
type Synced[T any] struct {
	sync.Pool
	inUse atomic.Int64
}

// Get returns an object from the pool.
// If the pool is empty, the zero value of T is returned.
func (p *Synced[T]) Get() T {
	v := p.Pool.Get()
	p.inUse.Add(1)
	if v == nil {
		var t T
		return t
	}
	return v.(T)
}

// Put returns an object to the pool.
func (p *Synced[T]) Put(v T) {
	p.Pool.Put(v)
	p.inUse.Add(-1)
}

// InUse returns the number of objects currently checked out.
func (p *Synced[T]) InUse() int {
	return int(p.inUse.Load())
}
