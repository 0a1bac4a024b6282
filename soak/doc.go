// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package soak - hammer one red-black tree from several background
// workers with random inserts and deletes while a checker validates
// it at intervals
//
// The tree is not thread safe; every access here is made with the
// soak's mutex held, so a rotation is never visible half done.
package soak
