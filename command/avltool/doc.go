// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltool - build an AVL tree from a configured key workload
//
// the keys come from a literal list, a seeded sha3 generator or the
// key range of an existing LevelDB database.  After inserting all of
// the keys every n-th key may be removed again.  The tree invariants
// are verified and the rotation counts are logged.
//
// commands:
//   run    - run the workload and display a summary (default)
//   print  - as run then display the tree
//   check  - as run with verification after every operation
package main
