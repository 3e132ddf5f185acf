// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
func (tree *Tree) Print(w io.Writer, printData bool) int {
	return tree.printTree(w, tree.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree) printTree(w io.Writer, h handle, prefix string, br branch, printData bool) int {
	if none == h {
		return 0
	}
	p := tree.at(h)
	rd := 0
	ld := 0
	if none != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = tree.printTree(w, p.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if none != p.up {
		up = tree.at(p.up).key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v %+2d\n", p.key, p.value, up, p.balance)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", p.key, up)
	}
	if none != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = tree.printTree(w, p.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
