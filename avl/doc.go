// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// links to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes live in a per-tree arena and are linked by index rather than
// by pointer.  The balance factor of each node is
// height(right) - height(left) and is kept in the range -1..+1
// whenever an exported operation returns.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.  Delete swaps tree
// positions rather than copying data so that surviving nodes keep
// their identity.
package avl
