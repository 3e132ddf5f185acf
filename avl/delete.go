// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Remove - removes a specific item from the tree, a missing key is
// silently ignored
func (tree *Tree) Remove(key Item) {
	_, _ = tree.Delete(key)
}

// Delete - removes a specific item from the tree and returns its value
//
// returns fault.ErrKeyNotFound if the key was not present, in which
// case the tree is unchanged
func (tree *Tree) Delete(key Item) (interface{}, error) {
	h := tree.search(key)
	if none == h {
		return nil, fault.ErrKeyNotFound
	}

	q := tree.at(h)
	if none != q.left && none != q.right {
		tree.swapWithPredecessor(h)
	}

	// h now has at most one child
	child := q.left
	if none == child {
		child = q.right
	}

	parent := q.up
	diff := int8(0)
	if none != parent {
		if tree.at(parent).left == h {
			diff = +1 // left side shrinks
		} else {
			diff = -1 // right side shrinks
		}
	}

	tree.replaceChild(parent, h, child)
	if none != child {
		tree.at(child).up = parent
	}

	value := q.value // preserve the value part
	tree.freeNode(h) // return deleted node to pool
	tree.count -= 1

	tree.removeUpdate(parent, diff)
	return value, nil
}

// exchange the tree positions of h and its in-order predecessor,
// including their balance values; keys and values stay with their
// nodes
func (tree *Tree) swapWithPredecessor(h handle) {
	q := tree.at(h)
	r := q.left
	for none != tree.at(r).right {
		r = tree.at(r).right
	}
	p := tree.at(r)

	qUp, qLeft, qRight := q.up, q.left, q.right
	rUp, rLeft := p.up, p.left

	tree.replaceChild(qUp, h, r)
	p.up = qUp
	p.right = qRight
	tree.at(qRight).up = r

	if r == qLeft {
		p.left = h
		q.up = r
	} else {
		p.left = qLeft
		tree.at(qLeft).up = r
		tree.at(rUp).right = h
		q.up = rUp
	}

	q.left = rLeft
	q.right = none
	if none != rLeft {
		tree.at(rLeft).up = h
	}

	q.balance, p.balance = p.balance, q.balance
}

// walk up from the parent of a removed node, diff is the balance
// change caused by the shortened side
//
// unlike insert this may rebalance at every level up to the root
func (tree *Tree) removeUpdate(parent handle, diff int8) {
	for none != parent {
		p := tree.at(parent)
		p.balance += diff

		up := p.up
		nextDiff := int8(0)
		if none != up {
			if tree.at(up).left == parent {
				nextDiff = +1
			} else {
				nextDiff = -1
			}
		}

		switch p.balance {
		case -1, +1:
			// one side lost height but the sub-tree did not
			return
		case 0:
			// sub-tree is shorter, continue upwards
		default:
			if !tree.rebalance(parent, Deletion) {
				return
			}
		}
		parent = up
		diff = nextDiff
	}
}
