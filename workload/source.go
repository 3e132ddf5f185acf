// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/avltree/fault"
)

// Source - produces the keys for a workload in insertion order
type Source interface {
	Keys() ([]Key, error)
}

// NewSource - create the key source selected by the configuration
func NewSource(conf *Configuration) (Source, error) {
	switch strings.ToLower(conf.Source) {
	case SourceList, "":
		return &listSource{keys: conf.Keys}, nil

	case SourceRandom:
		if conf.Count <= 0 {
			return nil, fault.ErrInvalidCount
		}
		width := conf.Width
		if 0 == width {
			width = DefaultWidth
		}
		if width < 0 || width > MaximumWidth {
			return nil, fault.ErrInvalidWidth
		}
		return &randomSource{
			seed:  []byte(conf.Seed),
			count: conf.Count,
			width: width,
		}, nil

	case SourceLevelDB:
		prefix, err := hex.DecodeString(conf.Prefix)
		if nil != err {
			return nil, fault.ErrInvalidHexKey
		}
		var encode func([]byte) string
		switch strings.ToLower(conf.Encoding) {
		case EncodingHex, "":
			encode = hex.EncodeToString
		case EncodingBase58:
			encode = base58.Encode
		default:
			return nil, fault.ErrInvalidKeyEncoding
		}
		return &levelDBSource{
			database: conf.Database,
			prefix:   prefix,
			limit:    conf.Count,
			encode:   encode,
		}, nil

	default:
		return nil, fault.ErrInvalidKeySource
	}
}

type listSource struct {
	keys []string
}

func (s *listSource) Keys() ([]Key, error) {
	keys := make([]Key, len(s.keys))
	for i, k := range s.keys {
		keys[i] = Key(k)
	}
	return keys, nil
}

// key n is the leading hex digits of sha3-256(seed ‖ n)
type randomSource struct {
	seed  []byte
	count int
	width int
}

func (s *randomSource) Keys() ([]Key, error) {
	keys := make([]Key, s.count)
	buffer := make([]byte, len(s.seed)+8)
	copy(buffer, s.seed)
	for i := 0; i < s.count; i += 1 {
		binary.BigEndian.PutUint64(buffer[len(s.seed):], uint64(i))
		digest := sha3.Sum256(buffer)
		keys[i] = Key(hex.EncodeToString(digest[:])[:s.width])
	}
	return keys, nil
}

// keys of a database in ascending order, as hex or base58 text
type levelDBSource struct {
	database string
	prefix   []byte
	limit    int // zero for all keys
	encode   func([]byte) string
}

func (s *levelDBSource) Keys() ([]Key, error) {
	db, err := leveldb.OpenFile(s.database, &opt.Options{
		ErrorIfMissing: true,
		ReadOnly:       true,
	})
	if nil != err {
		return nil, err
	}
	defer db.Close()

	var r *util.Range
	if 0 != len(s.prefix) {
		r = util.BytesPrefix(s.prefix)
	}
	iter := db.NewIterator(r, nil)
	defer iter.Release()

	keys := []Key{}
	for iter.Next() {
		keys = append(keys, Key(s.encode(iter.Key())))
		if s.limit > 0 && len(keys) >= s.limit {
			break
		}
	}
	if err := iter.Error(); nil != err {
		return nil, err
	}
	return keys, nil
}
