// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rbtree - a red-black balanced tree with the addition of
// parent pointers so a node handle can be walked back to the root
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use a mutex to restrict access.
//       Rotations leave the tree transiently inconsistent, so readers
//       must also be excluded while an Insert or Delete is running.
//
// Insertion attaches a red leaf and walks back up the tree using
// colour flips, finishing with at most one single or double
// rotation.  Deletion of a node with two children copies the in-order
// predecessor key into the node and removes the predecessor instead,
// so only a node with at most one child is ever unlinked; any black
// deficit is then repaired on the way back up.
//
// Only a key is stored, there is no associated data.  An insert of an
// existing key is a no-op that returns the existing node and a delete
// of a missing key does nothing.
package rbtree
