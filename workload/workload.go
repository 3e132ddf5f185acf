// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/equalpaths"
	"github.com/bitmark-inc/avltree/fault"
)

// Workload - a tree and the operations to apply to it
type Workload struct {
	log        *logger.L
	conf       Configuration
	source     Source
	tree       *avl.Tree
	statistics *Statistics
}

// Result - summary of a completed run
type Result struct {
	Keys       int  // keys produced by the source
	Inserted   int  // new nodes
	Overwrites int  // inserts of a key already present
	Removed    int  // nodes removed
	Missing    int  // removals of a key no longer present
	Count      int  // nodes remaining
	Height     int  // levels remaining
	EqualPaths bool // all leaves at the same depth
}

// New - create a workload from the configuration
func New(conf *Configuration, log *logger.L) (*Workload, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	source, err := NewSource(conf)
	if nil != err {
		return nil, err
	}
	if conf.RemoveEvery < 0 {
		return nil, fault.ErrInvalidCount
	}

	statistics := &Statistics{log: log}
	tree := avl.New()
	tree.SetObserver(statistics)

	return &Workload{
		log:        log,
		conf:       *conf,
		source:     source,
		tree:       tree,
		statistics: statistics,
	}, nil
}

// Tree - the tree being driven
func (w *Workload) Tree() *avl.Tree {
	return w.tree
}

// Statistics - rotation counts so far
func (w *Workload) Statistics() *Statistics {
	return w.statistics
}

// Run - insert all keys from the source then remove every n-th key
//
// when checking is enabled the tree invariants are verified after
// every operation and the first failure is returned
func (w *Workload) Run() (*Result, error) {
	keys, err := w.source.Keys()
	if nil != err {
		w.log.Errorf("read keys error: %s", err)
		return nil, err
	}
	w.log.Infof("keys: %d from source: %q", len(keys), w.conf.Source)

	result := &Result{
		Keys: len(keys),
	}

	for i, key := range keys {
		if w.tree.Insert(key, i) {
			result.Inserted += 1
		} else {
			result.Overwrites += 1
		}
		if err := w.check("insert", key); nil != err {
			return nil, err
		}
	}
	w.log.Infof("inserted: %d  overwrites: %d  height: %d", result.Inserted, result.Overwrites, w.tree.Height())

	if w.conf.RemoveEvery > 0 {
		for i := 0; i < len(keys); i += w.conf.RemoveEvery {
			key := keys[i]
			if _, err := w.tree.Delete(key); nil != err {
				if !fault.IsErrNotFound(err) {
					return nil, err
				}
				result.Missing += 1
				w.log.Debugf("remove: %q already removed", key)
			} else {
				result.Removed += 1
			}
			if err := w.check("remove", key); nil != err {
				return nil, err
			}
		}
		w.log.Infof("removed: %d  missing: %d", result.Removed, result.Missing)
	}

	if err := w.tree.Check(); nil != err {
		w.log.Criticalf("final check failed: %s", err)
		return nil, err
	}

	result.Count = w.tree.Count()
	result.Height = w.tree.Height()
	result.EqualPaths = equalpaths.EqualPaths(equalpaths.FromTree(w.tree))

	w.log.Infof("count: %d  height: %d  equal paths: %v", result.Count, result.Height, result.EqualPaths)
	w.statistics.Log()

	return result, nil
}

func (w *Workload) check(operation string, key Key) error {
	if !w.conf.Check {
		return nil
	}
	if err := w.tree.Check(); nil != err {
		w.log.Criticalf("%s: %q  check failed: %s", operation, key, err)
		return err
	}
	return nil
}
