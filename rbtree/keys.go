// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"strings"
)

// Int - integer key
type Int int64

// Compare - integer comparison for the Item interface
func (i Int) Compare(x interface{}) int {
	j := x.(Int)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// String - string key in byte order
type String string

// Compare - string comparison for the Item interface
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}
