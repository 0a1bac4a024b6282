// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/redblack/rbtree"
)

type logObserver struct {
	log *logger.L
}

// NewLogObserver - an observer that writes to a logger channel
func NewLogObserver(log *logger.L) Observer {
	return &logObserver{
		log: log,
	}
}

func (o *logObserver) Checked(report Report) {
	o.log.Infof("check passed: count: %d  height: %d  live: %d  free: %d", report.Count, report.Height, report.Stats.Live, report.Stats.Free)
	o.log.Debugf("counters: %v", report.Counters)
}

func (o *logObserver) Violation(err error, report Report) {
	o.log.Criticalf("check failed: %s  count: %d  height: %d", err, report.Count, report.Height)
	o.log.Criticalf("counters: %v", report.Counters)
	o.log.Flush()
}

func (o *logObserver) AllocationFailed(key rbtree.Int) {
	o.log.Tracef("allocation failed for key: %d", key)
}
