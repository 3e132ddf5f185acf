// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
)

const (
	rotationKinds = 4
	phases        = 2
)

// Statistics - rotation counts by case and operation
type Statistics struct {
	log       *logger.L
	rotations [rotationKinds][phases]counter.Counter
}

// Rotated - observer for the tree
func (s *Statistics) Rotated(rotation avl.Rotation, phase avl.Phase, pivot avl.Item) {
	s.rotations[rotation][phase].Increment()
	if nil != s.log {
		s.log.Tracef("%s rotation on %s at: %v", rotation, phase, pivot)
	}
}

// Rotations - number of rotations of one kind during one operation
func (s *Statistics) Rotations(rotation avl.Rotation, phase avl.Phase) uint64 {
	return s.rotations[rotation][phase].Uint64()
}

// Total - number of rebalancing steps during one operation
func (s *Statistics) Total(phase avl.Phase) uint64 {
	total := uint64(0)
	for r := range s.rotations {
		total += s.rotations[r][phase].Uint64()
	}
	return total
}

// Reset - clear all counts
func (s *Statistics) Reset() {
	for r := range s.rotations {
		for p := range s.rotations[r] {
			s.rotations[r][p].Reset()
		}
	}
}

// Log - write the counts to the log channel
func (s *Statistics) Log() {
	if nil == s.log {
		return
	}
	for _, phase := range []avl.Phase{avl.Insertion, avl.Deletion} {
		for _, rotation := range []avl.Rotation{avl.RightRight, avl.LeftLeft, avl.RightLeft, avl.LeftRight} {
			s.log.Infof("%s: %s rotations: %d", phase, rotation, s.Rotations(rotation, phase))
		}
	}
}
