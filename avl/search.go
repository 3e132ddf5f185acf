// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Search - find a specific item, nil if not present
func (tree *Tree) Search(key Item) *Node {
	return tree.cursor(tree.search(key))
}

// Find - return the value stored for a key
func (tree *Tree) Find(key Item) (interface{}, error) {
	h := tree.search(key)
	if none == h {
		return nil, fault.ErrKeyNotFound
	}
	return tree.at(h).value, nil
}

func (tree *Tree) search(key Item) handle {
	h := tree.root
	for none != h {
		p := tree.at(h)
		switch c := p.key.Compare(key); {
		case c > 0: // p.key > key
			h = p.left
		case c < 0: // p.key < key
			h = p.right
		default:
			return h
		}
	}
	return none
}
