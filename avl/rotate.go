// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// make up's link that pointed to old point to replacement instead,
// up == none means old was the root
func (tree *Tree) replaceChild(up handle, old handle, replacement handle) {
	if none == up {
		tree.root = replacement
		return
	}
	p := tree.at(up)
	if p.left == old {
		p.left = replacement
	} else {
		p.right = replacement
	}
}

// right child of h becomes the head of the sub-tree
// balance values are not changed
func (tree *Tree) rotateLeft(h handle) {
	p := tree.at(h)
	head := p.right
	if none == head {
		fault.Panicf("avl: rotate left at %v without a right child", p.key)
	}
	q := tree.at(head)
	inner := q.left

	tree.replaceChild(p.up, h, head)
	q.up = p.up

	q.left = h
	p.up = head

	p.right = inner
	if none != inner {
		tree.at(inner).up = h
	}
}

// left child of h becomes the head of the sub-tree
// balance values are not changed
func (tree *Tree) rotateRight(h handle) {
	p := tree.at(h)
	head := p.left
	if none == head {
		fault.Panicf("avl: rotate right at %v without a left child", p.key)
	}
	q := tree.at(head)
	inner := q.right

	tree.replaceChild(p.up, h, head)
	q.up = p.up

	q.right = h
	p.up = head

	p.left = inner
	if none != inner {
		tree.at(inner).up = h
	}
}

// rotate so that the heavy side (+1 right, -1 left) rises
func (tree *Tree) rotateHeavy(h handle, heavy int8) {
	if heavy > 0 {
		tree.rotateLeft(h)
	} else {
		tree.rotateRight(h)
	}
}

// select the rebalancing case from the balance of the unbalanced
// node (±2) and the balance of its taller child
func classify(parentBalance int8, childBalance int8) Rotation {
	if parentBalance > 0 {
		if childBalance < 0 {
			return RightLeft
		}
		return RightRight
	}
	if childBalance > 0 {
		return LeftRight
	}
	return LeftLeft
}

// balances after a single rotation where heavy is the sign of the
// unbalanced node and child is the prior balance of its taller child
//
// shorter reports whether the sub-tree lost height; a zero child only
// occurs on delete and leaves the height unchanged
func singleBalances(heavy int8, child int8) (parentAfter int8, childAfter int8, shorter bool) {
	if 0 == child {
		return heavy, -heavy, false
	}
	return 0, 0, true
}

// balances after a double rotation, the grandchild always ends at zero
func doubleBalances(heavy int8, grandchild int8) (parentAfter int8, childAfter int8) {
	switch grandchild {
	case heavy:
		return -heavy, 0
	case -heavy:
		return 0, heavy
	default:
		return 0, 0
	}
}

// resolve a ±2 balance at h, returns true if the sub-tree that h
// headed is now shorter than before the rotation
func (tree *Tree) rebalance(h handle, phase Phase) bool {
	p := tree.at(h)
	heavy := p.balance / 2

	child := p.left
	if heavy > 0 {
		child = p.right
	}
	c := tree.at(child)

	rotation := classify(p.balance, c.balance)
	shorter := true

	if rotation.IsDouble() {
		grandchild := c.right
		if heavy > 0 {
			grandchild = c.left
		}
		g := tree.at(grandchild)

		tree.rotateHeavy(child, -heavy)
		tree.rotateHeavy(h, heavy)

		p.balance, c.balance = doubleBalances(heavy, g.balance)
		g.balance = 0
	} else {
		tree.rotateHeavy(h, heavy)
		p.balance, c.balance, shorter = singleBalances(heavy, c.balance)
	}

	if nil != tree.observer {
		tree.observer.Rotated(rotation, phase, p.key)
	}
	return shorter
}
