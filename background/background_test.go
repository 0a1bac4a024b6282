// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/redblack/background"
)

type looper struct {
	loops   int64
	stopped int32
}

func (l *looper) Run(args interface{}, shutdown <-chan struct{}) {
	step := args.(int64)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		atomic.AddInt64(&l.loops, step)
		time.Sleep(time.Millisecond)
	}
	atomic.StoreInt32(&l.stopped, 1)
}

func TestBackground(t *testing.T) {
	proc1 := &looper{}
	proc2 := &looper{}

	p := background.Start(background.Processes{proc1, proc2}, int64(3))
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&proc1.stopped), "process 1 finished")
	assert.Equal(t, int32(1), atomic.LoadInt32(&proc2.stopped), "process 2 finished")
	assert.True(t, atomic.LoadInt64(&proc1.loops) > 0)
	assert.Equal(t, int64(0), atomic.LoadInt64(&proc2.loops)%3)

	// second stop must not block or panic
	p.Stop()
}

func TestBackgroundEmpty(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()
}
