// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// index of a node in the tree's arena, zero is the empty link
type handle int32

const none handle = 0

// a node in the tree
type node struct {
	left    handle      // left sub-tree
	right   handle      // right sub-tree
	up      handle      // points to parent node
	key     Item        // key part for ordering
	value   interface{} // value part for data storage
	balance int8        // -1, 0, +1 (transiently ±2)
}

// access a node record, pointer is only valid until the next newNode
func (tree *Tree) at(h handle) *node {
	return &tree.nodes[h]
}

// allocate a new node, reuses reclaimed slots if any are available
func (tree *Tree) newNode(key Item, value interface{}, up handle) handle {
	if none == tree.free {
		tree.nodes = append(tree.nodes, node{
			key:   key,
			value: value,
			up:    up,
		})
		return handle(len(tree.nodes) - 1)
	}
	h := tree.free
	p := tree.at(h)
	tree.free = p.up
	tree.freeNodes -= 1
	*p = node{
		key:   key,
		value: value,
		up:    up,
	}
	return h
}

// reclaim a node and keep its slot on the free list
func (tree *Tree) freeNode(h handle) {
	tree.nodes[h] = node{
		up: tree.free, // use as free list pointer
	}
	tree.free = h
	tree.freeNodes += 1
}
