// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// CheckUp - check the up links for consistency
func (tree *Tree) CheckUp() bool {
	return tree.checkup(tree.root, none)
}

// internal: consistency checker
func (tree *Tree) checkup(h handle, up handle) bool {
	if none == h {
		return true
	}
	p := tree.at(h)
	if p.up != up {
		return false
	}
	if !tree.checkup(p.left, h) {
		return false
	}
	return tree.checkup(p.right, h)
}

// Check - verify all tree invariants: up links, strict key order,
// stored balance equals the height difference, balance within ±1
// and the node count
func (tree *Tree) Check() error {
	if !tree.CheckUp() {
		return fault.ErrParentLinkMismatch
	}
	_, n, err := tree.check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: returns height and node count of a sub-tree whose keys
// must lie strictly between low and high (nil for unbounded)
func (tree *Tree) check(h handle, low Item, high Item) (int, int, error) {
	if none == h {
		return 0, 0, nil
	}
	p := tree.at(h)
	if nil != low && low.Compare(p.key) >= 0 {
		return 0, 0, fault.ErrKeyOrder
	}
	if nil != high && high.Compare(p.key) <= 0 {
		return 0, 0, fault.ErrKeyOrder
	}
	lh, ln, err := tree.check(p.left, low, p.key)
	if nil != err {
		return 0, 0, err
	}
	rh, rn, err := tree.check(p.right, p.key, high)
	if nil != err {
		return 0, 0, err
	}
	if int(p.balance) != rh-lh {
		return 0, 0, fault.ErrBalanceFactor
	}
	if p.balance < -1 || p.balance > 1 {
		return 0, 0, fault.ErrUnbalanced
	}
	return 1 + max(lh, rh), 1 + ln + rn, nil
}

// Height - number of levels in the tree, zero when empty
func (tree *Tree) Height() int {
	return tree.height(tree.root)
}

func (tree *Tree) height(h handle) int {
	if none == h {
		return 0
	}
	p := tree.at(h)
	return 1 + max(tree.height(p.left), tree.height(p.right))
}

func max(a int, b int) int {
	if a > b {
		return a
	}
	return b
}
