// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - drive an AVL tree with a configured series of
// inserts and removals
//
// keys come from one of three sources:
//
//   list    - literal keys from the configuration
//   random  - deterministic keys from a sha3 hash of a seed and a counter
//   leveldb - the keys of an existing LevelDB database, optionally
//             restricted to a prefix; the database is only read
package workload
