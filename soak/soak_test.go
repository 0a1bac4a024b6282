// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/redblack/background"
	"github.com/bitmark-inc/redblack/fault"
	"github.com/bitmark-inc/redblack/soak"
	"github.com/bitmark-inc/redblack/soak/mocks"
)

func TestNewRejectsBadConfig(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockObserver(ctl)

	good := soak.Config{
		Workers:       1,
		KeyRange:      10,
		InsertPercent: 50,
		CheckInterval: time.Millisecond,
	}

	bad := []func(c *soak.Config){
		func(c *soak.Config) { c.Workers = 0 },
		func(c *soak.Config) { c.KeyRange = -1 },
		func(c *soak.Config) { c.InsertPercent = 101 },
		func(c *soak.Config) { c.CheckInterval = 0 },
		func(c *soak.Config) { c.Rate = -1 },
	}
	for i, change := range bad {
		c := good
		change(&c)
		s, err := soak.New(c, m)
		assert.Nil(t, s, "%d", i)
		assert.Equal(t, fault.ErrInvalidCount, err, "%d", i)
	}

	s, err := soak.New(good, m)
	assert.NoError(t, err)
	assert.NotNil(t, s)
}

func TestSoakRunsClean(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockObserver(ctl)

	m.EXPECT().Checked(gomock.Any()).MinTimes(1)
	m.EXPECT().Violation(gomock.Any(), gomock.Any()).Times(0)
	m.EXPECT().AllocationFailed(gomock.Any()).Times(0)

	s, err := soak.New(soak.Config{
		Workers:       4,
		KeyRange:      200,
		InsertPercent: 60,
		CheckInterval: 5 * time.Millisecond,
		Seed:          77,
	}, m)
	require.NoError(t, err)

	p := background.Start(s.Processes(), nil)
	time.Sleep(60 * time.Millisecond)
	p.Stop()

	report, err := s.Check()
	require.NoError(t, err)

	c := report.Counters
	assert.True(t, c[soak.CountInsert] > 0, "some inserts")
	assert.True(t, c[soak.CountCheck] > 0, "some checks")
	assert.Equal(t, uint64(0), c[soak.CountAllocationFailure])
	assert.Equal(t, int(c[soak.CountInsert]-c[soak.CountDelete]), report.Count, "live keys")
	assert.Equal(t, report.Count, report.Stats.Live)

	select {
	case <-s.Failed():
		t.Fatal("soak reported failure")
	default:
	}
}

func TestSoakNodeLimit(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockObserver(ctl)

	m.EXPECT().Checked(gomock.Any()).AnyTimes()
	m.EXPECT().Violation(gomock.Any(), gomock.Any()).Times(0)
	m.EXPECT().AllocationFailed(gomock.Any()).MinTimes(1)

	s, err := soak.New(soak.Config{
		Workers:       2,
		Rate:          20000,
		Burst:         10,
		KeyRange:      1000,
		InsertPercent: 100,
		NodeLimit:     16,
		CheckInterval: 5 * time.Millisecond,
		Seed:          3,
	}, m)
	require.NoError(t, err)

	p := background.Start(s.Processes(), nil)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	report, err := s.Check()
	require.NoError(t, err)
	assert.Equal(t, 16, report.Count)
	assert.Equal(t, 16, report.Stats.Limit)
	assert.True(t, report.Counters[soak.CountAllocationFailure] > 0)
}
