// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// rbtree-cli - build a red-black tree from a list of keys and inspect it
//
// the global --keys option is inserted in order before any command
// runs, so for example:
//
//   rbtree-cli --keys=50,30,70,20,40,60,80 remove 30
//   rbtree-cli --keys=10,20,30 print
//   rbtree-cli --keys=1,2,3,4,5 dot --output=tree.dot.gz
//
package main
