// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value
// of an existing node with the same key
//
// returns true if a node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {
	up := none
	h := tree.root
	leftSide := false
	for none != h {
		p := tree.at(h)
		switch c := p.key.Compare(key); {
		case c > 0: // p.key > key
			up, h, leftSide = h, p.left, true
		case c < 0: // p.key < key
			up, h, leftSide = h, p.right, false
		default:
			// only the value changes, so no rebalancing
			p.value = value
			return false
		}
	}

	n := tree.newNode(key, value, up)
	tree.count += 1

	if none == up {
		tree.root = n
		return true
	}
	if leftSide {
		tree.at(up).left = n
	} else {
		tree.at(up).right = n
	}
	tree.insertUpdate(up, n)
	return true
}

// walk up from a grown child, at most one rebalance is needed
// because only a single leaf was added
func (tree *Tree) insertUpdate(parent handle, child handle) {
	for none != parent {
		p := tree.at(parent)
		if p.left == child {
			p.balance -= 1
		} else {
			p.balance += 1
		}

		switch p.balance {
		case 0:
			// height of this sub-tree is unchanged
			return
		case -1, +1:
			// sub-tree is taller, continue upwards
			child = parent
			parent = p.up
		default:
			tree.rebalance(parent, Insertion)
			return
		}
	}
}
