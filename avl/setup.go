// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0 or +1 as the receiver is less than, equal to
// or greater than the argument
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Tree - type to hold the root node of a tree
type Tree struct {
	nodes     []node // arena, slot zero is never used
	root      handle
	free      handle // linked list of reclaimed slots
	freeNodes int    // number of slots on the free list
	count     int
	observer  Observer
}

// Node - a reference to a node in a tree
//
// it remains valid until the node it refers to is deleted
type Node struct {
	tree *Tree
	h    handle
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		nodes: make([]node, 1, 16),
		root:  none,
		count: 0,
	}
}

// SetObserver - attach an observer to be told about each rebalancing
// rotation, nil detaches
func (tree *Tree) SetObserver(observer Observer) {
	tree.observer = observer
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return none == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.cursor(tree.root)
}

func (tree *Tree) cursor(h handle) *Node {
	if none == h {
		return nil
	}
	return &Node{
		tree: tree,
		h:    h,
	}
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.Left()
		right := p.Right()
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.tree.at(p.h).key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.tree.at(p.h).value
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node) Balance() int {
	return int(p.tree.at(p.h).balance)
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.tree.cursor(p.tree.at(p.h).up)
}

// Left - return the left child of a node
func (p *Node) Left() *Node {
	return p.tree.cursor(p.tree.at(p.h).left)
}

// Right - return the right child of a node
func (p *Node) Right() *Node {
	return p.tree.cursor(p.tree.at(p.h).right)
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.tree.at(p.h).up
	for parent != none {
		count += 1
		parent = p.tree.at(parent).up
	}
	return count
}
