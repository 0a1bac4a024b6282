// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/redblack/counter"
)

// test incrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	assert.Equal(t, uint64(0), c1.Uint64(), "counter is not zero at start")

	c1.Increment()
	c1.Increment()
	c1.Increment()

	assert.Equal(t, uint64(3), c1.Uint64())
	assert.Equal(t, uint64(10), c1.Add(7))
}

func TestSet(t *testing.T) {
	s := counter.NewSet("insert", "delete")

	var wg sync.WaitGroup
	for i := 0; i < 8; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j += 1 {
				s.Get("insert").Increment()
			}
			s.Get("delete").Add(2)
		}()
	}
	wg.Wait()

	s.Get("check").Increment()

	assert.Equal(t, map[string]uint64{
		"insert": 8000,
		"delete": 16,
		"check":  1,
	}, s.Snapshot())
	assert.Equal(t, []string{"check", "delete", "insert"}, s.Names())
}
