// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

// names of the key sources
const (
	SourceList    = "list"
	SourceRandom  = "random"
	SourceLevelDB = "leveldb"
)

// encodings of database keys
const (
	EncodingHex    = "hex"
	EncodingBase58 = "base58"
)

// limits for the random source
const (
	DefaultWidth = 8
	MaximumWidth = 64 // hex digits in a sha3-256 digest
)

// Configuration - workload section of the configuration file
type Configuration struct {
	Source      string   `gluamapper:"source" json:"source"`
	Keys        []string `gluamapper:"keys" json:"keys"`
	Seed        string   `gluamapper:"seed" json:"seed"`
	Count       int      `gluamapper:"count" json:"count"`
	Width       int      `gluamapper:"width" json:"width"`
	Database    string   `gluamapper:"database" json:"database"`
	Prefix      string   `gluamapper:"prefix" json:"prefix"`
	Encoding    string   `gluamapper:"encoding" json:"encoding"`
	RemoveEvery int      `gluamapper:"remove_every" json:"remove_every"`
	Check       bool     `gluamapper:"check" json:"check"`
}
