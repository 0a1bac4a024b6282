// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/redblack/fault"
)

// common errors - keep in alphabetic order
const (
	ErrMissingKeys   = fault.InvalidError("at least one key is required")
	ErrNegativeLimit = fault.InvalidError("node limit cannot be negative")
)
