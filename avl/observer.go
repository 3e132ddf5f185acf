// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Rotation - the rebalancing case resolved at an unbalanced node
type Rotation int

// the four rebalancing cases, named by the side that is too tall
const (
	RightRight Rotation = iota // single left rotation
	LeftLeft                   // single right rotation
	RightLeft                  // right rotation at child then left rotation
	LeftRight                  // left rotation at child then right rotation
)

// String - name of the rotation case
func (r Rotation) String() string {
	switch r {
	case RightRight:
		return "right-right"
	case LeftLeft:
		return "left-left"
	case RightLeft:
		return "right-left"
	case LeftRight:
		return "left-right"
	default:
		return "unknown"
	}
}

// IsDouble - true for the zig-zag cases
func (r Rotation) IsDouble() bool {
	return RightLeft == r || LeftRight == r
}

// Phase - which operation triggered a rotation
type Phase int

// operations that rebalance
const (
	Insertion Phase = iota
	Deletion
)

// String - name of the phase
func (p Phase) String() string {
	switch p {
	case Insertion:
		return "insert"
	case Deletion:
		return "delete"
	default:
		return "unknown"
	}
}

// Observer - receives a call for every rebalancing step
//
// pivot is the key of the node that was found to be unbalanced
type Observer interface {
	Rotated(rotation Rotation, phase Phase, pivot Item)
}
