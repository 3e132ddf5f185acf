// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package equalpaths - check whether all leaves of a binary tree are
// at the same depth
package equalpaths

import (
	"github.com/bitmark-inc/avltree/avl"
)

// Node - a plain binary tree node
type Node struct {
	Key   interface{}
	Left  *Node
	Right *Node
}

// EqualPaths - true if every leaf below root is at the same depth
//
// a node with a single child defers to that child since the missing
// side holds no leaves
func EqualPaths(root *Node) bool {
	if nil == root {
		return true
	}
	switch {
	case nil == root.Left && nil == root.Right:
		return true
	case nil == root.Right:
		return EqualPaths(root.Left)
	case nil == root.Left:
		return EqualPaths(root.Right)
	}

	if Depth(root.Left) != Depth(root.Right) {
		return false
	}
	return EqualPaths(root.Left) && EqualPaths(root.Right)
}

// Depth - the maximum number of edges from root down to a leaf, zero
// for a leaf or an empty tree
func Depth(root *Node) int {
	if nil == root || (nil == root.Left && nil == root.Right) {
		return 0
	}
	l := 0
	if nil != root.Left {
		l = 1 + Depth(root.Left)
	}
	r := 0
	if nil != root.Right {
		r = 1 + Depth(root.Right)
	}
	if l > r {
		return l
	}
	return r
}

// FromTree - copy the shape and keys of an AVL tree
func FromTree(tree *avl.Tree) *Node {
	return fromNode(tree.Root())
}

func fromNode(n *avl.Node) *Node {
	if nil == n {
		return nil
	}
	return &Node{
		Key:   n.Key(),
		Left:  fromNode(n.Left()),
		Right: fromNode(n.Right()),
	}
}
