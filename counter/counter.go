// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Counter - type to denote a counter that can be synchronously incremented
// just a 64 bit unsigned integer
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Add - add n to a counter, returns new value
func (ic *Counter) Add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(ic), n)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// Set - a group of named counters that can be reported together
type Set struct {
	sync.Mutex
	counters map[string]*Counter
}

// NewSet - create a set holding the given names, all zero
func NewSet(names ...string) *Set {
	s := &Set{
		counters: make(map[string]*Counter, len(names)),
	}
	for _, name := range names {
		s.counters[name] = new(Counter)
	}
	return s
}

// Get - the counter for a name, created on first use
func (s *Set) Get(name string) *Counter {
	s.Lock()
	defer s.Unlock()

	c, ok := s.counters[name]
	if !ok {
		c = new(Counter)
		s.counters[name] = c
	}
	return c
}

// Snapshot - current values of all counters
func (s *Set) Snapshot() map[string]uint64 {
	s.Lock()
	defer s.Unlock()

	values := make(map[string]uint64, len(s.counters))
	for name, c := range s.counters {
		values[name] = c.Uint64()
	}
	return values
}

// Names - sorted counter names
func (s *Set) Names() []string {
	s.Lock()
	defer s.Unlock()

	names := make([]string, 0, len(s.counters))
	for name := range s.counters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
