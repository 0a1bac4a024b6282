// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/redblack/fault"
	"github.com/bitmark-inc/redblack/rbtree"
)

// split a comma separated list, blank entries are ignored
func parseKeyList(list string, asString bool) ([]rbtree.Item, error) {
	keys := make([]rbtree.Item, 0, 16)
	for _, s := range strings.Split(list, ",") {
		s = strings.TrimSpace(s)
		if "" == s {
			continue
		}
		key, err := parseKey(s, asString)
		if nil != err {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func parseKey(s string, asString bool) (rbtree.Item, error) {
	if asString {
		return rbtree.String(s), nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return nil, fault.ErrInvalidKey
	}
	return rbtree.Int(i), nil
}

// keys from the command arguments
func argumentKeys(args []string, asString bool) ([]rbtree.Item, error) {
	if 0 == len(args) {
		return nil, ErrMissingKeys
	}
	keys := make([]rbtree.Item, 0, len(args))
	for _, s := range args {
		key, err := parseKey(s, asString)
		if nil != err {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
