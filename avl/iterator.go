// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.cursor(tree.first(tree.root))
}

// internal: lowest node in a sub-tree
func (tree *Tree) first(h handle) handle {
	if none == h {
		return none
	}
	for none != tree.at(h).left {
		h = tree.at(h).left
	}
	return h
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.cursor(tree.last(tree.root))
}

// internal: highest node in a sub-tree
func (tree *Tree) last(h handle) handle {
	if none == h {
		return none
	}
	for none != tree.at(h).right {
		h = tree.at(h).right
	}
	return h
}

// internal: in-order successor
func (tree *Tree) next(h handle) handle {
	p := tree.at(h)
	if none != p.right {
		return tree.first(p.right)
	}
	for {
		up := tree.at(h).up
		if none == up || tree.at(up).left == h {
			return up
		}
		h = up
	}
}

// internal: in-order predecessor
func (tree *Tree) prev(h handle) handle {
	p := tree.at(h)
	if none != p.left {
		return tree.last(p.left)
	}
	for {
		up := tree.at(h).up
		if none == up || tree.at(up).right == h {
			return up
		}
		h = up
	}
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node) Next() *Node {
	return p.tree.cursor(p.tree.next(p.h))
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node) Prev() *Node {
	return p.tree.cursor(p.tree.prev(p.h))
}

// Each - call f for every item in ascending key order, stops early
// if f returns false
//
// the tree must not be modified from within f
func (tree *Tree) Each(f func(key Item, value interface{}) bool) {
	for h := tree.first(tree.root); none != h; h = tree.next(h) {
		p := tree.at(h)
		if !f(p.key, p.value) {
			return
		}
	}
}
