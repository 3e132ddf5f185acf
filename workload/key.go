// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"strings"
)

// Key - string key ordered bytewise
type Key string

// Compare - key comparison for AVL interface
func (k Key) Compare(x interface{}) int {
	return strings.Compare(string(k), string(x.(Key)))
}

// String - the key as text
func (k Key) String() string {
	return string(k)
}
