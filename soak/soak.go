// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/redblack/background"
	"github.com/bitmark-inc/redblack/counter"
	"github.com/bitmark-inc/redblack/fault"
	"github.com/bitmark-inc/redblack/rbtree"
)

// names of the operation counters
const (
	CountInsert            = "insert"
	CountDuplicate         = "duplicate"
	CountDelete            = "delete"
	CountAbsent            = "absent"
	CountAllocationFailure = "allocation-failure"
	CountCheck             = "check"
)

// Config - parameters of a soak run
type Config struct {
	Workers       int           // number of concurrent workers
	Rate          float64       // operations per second per worker, zero for unlimited
	Burst         int           // rate limiter burst
	KeyRange      int           // keys are drawn from [0, KeyRange)
	InsertPercent int           // chance an operation is an insert, the rest are deletes
	NodeLimit     int           // tree node limit, zero for unlimited
	CheckInterval time.Duration // time between full validations
	Seed          int64         // base random seed, worker i uses Seed+i
}

// Report - state of the tree at a check
type Report struct {
	Count    int                   `json:"count"`
	Height   int                   `json:"height"`
	Stats    rbtree.AllocatorStats `json:"stats"`
	Counters map[string]uint64     `json:"counters"`
}

// Observer - receives the results of the soak
type Observer interface {
	Checked(report Report)
	Violation(err error, report Report)
	AllocationFailed(key rbtree.Int)
}

// Soak - a shared tree and its workers
type Soak struct {
	sync.Mutex
	tree     *rbtree.Tree
	config   Config
	counters *counter.Set
	observer Observer
	validate func(*rbtree.Tree) error

	failed   chan struct{}
	failOnce sync.Once
}

// New - set up a soak run
func New(config Config, observer Observer) (*Soak, error) {
	if config.Workers <= 0 || config.KeyRange <= 0 {
		return nil, fault.ErrInvalidCount
	}
	if config.InsertPercent < 0 || config.InsertPercent > 100 {
		return nil, fault.ErrInvalidCount
	}
	if config.CheckInterval <= 0 {
		return nil, fault.ErrInvalidCount
	}
	if config.Rate < 0 {
		return nil, fault.ErrInvalidCount
	}
	if config.Burst <= 0 {
		config.Burst = 1
	}

	return &Soak{
		tree:   rbtree.NewWithLimit(config.NodeLimit),
		config: config,
		counters: counter.NewSet(
			CountInsert,
			CountDuplicate,
			CountDelete,
			CountAbsent,
			CountAllocationFailure,
			CountCheck,
		),
		observer: observer,
		validate: (*rbtree.Tree).Validate,
		failed:   make(chan struct{}),
	}, nil
}

// Processes - the workers and the checker, ready for background.Start
func (s *Soak) Processes() background.Processes {
	processes := make(background.Processes, 0, s.config.Workers+1)
	for i := 0; i < s.config.Workers; i += 1 {
		processes = append(processes, &worker{
			soak: s,
			rng:  rand.New(rand.NewSource(s.config.Seed + int64(i))),
		})
	}
	return append(processes, &checker{soak: s})
}

// Failed - closed when the checker finds a broken tree
func (s *Soak) Failed() <-chan struct{} {
	return s.failed
}

// Check - validate the tree now and describe it
func (s *Soak) Check() (Report, error) {
	s.Lock()
	err := s.validate(s.tree)
	report := Report{
		Count:  s.tree.Count(),
		Height: s.tree.Height(),
		Stats:  s.tree.Stats(),
	}
	s.Unlock()

	s.counters.Get(CountCheck).Increment()
	report.Counters = s.counters.Snapshot()

	if nil != err {
		s.failOnce.Do(func() {
			close(s.failed)
		})
	}
	return report, err
}

// one random operation on the shared tree
func (s *Soak) step(rng *rand.Rand) {
	key := rbtree.Int(rng.Intn(s.config.KeyRange))
	insert := rng.Intn(100) < s.config.InsertPercent

	s.Lock()
	var err error
	name := CountInsert
	if insert {
		before := s.tree.Count()
		_, err = s.tree.Insert(key)
		if nil == err && before == s.tree.Count() {
			name = CountDuplicate
		}
	} else {
		name = CountDelete
		before := s.tree.Count()
		s.tree.Delete(key)
		if before == s.tree.Count() {
			name = CountAbsent
		}
	}
	s.Unlock()

	if nil != err {
		s.counters.Get(CountAllocationFailure).Increment()
		s.observer.AllocationFailed(key)
		return
	}
	s.counters.Get(name).Increment()
}

type worker struct {
	soak *Soak
	rng  *rand.Rand
}

// Run - random operations until shutdown
func (w *worker) Run(args interface{}, shutdown <-chan struct{}) {

	limit := rate.Inf
	if w.soak.config.Rate > 0 {
		limit = rate.Limit(w.soak.config.Rate)
	}
	limiter := rate.NewLimiter(limit, w.soak.config.Burst)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-shutdown:
			cancel()
		case <-ctx.Done():
		}
	}()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		if err := limiter.Wait(ctx); nil != err {
			break loop
		}
		w.soak.step(w.rng)
	}
}

type checker struct {
	soak *Soak
}

// Run - validate at every interval, stop on the first failure
func (c *checker) Run(args interface{}, shutdown <-chan struct{}) {

	ticker := time.NewTicker(c.soak.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
		}

		report, err := c.soak.Check()
		if nil != err {
			c.soak.observer.Violation(err, report)
			return
		}
		c.soak.observer.Checked(report)
	}
}
