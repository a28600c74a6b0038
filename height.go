// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package skiplist

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"time"
)

// internal: draw a random height for a new node
//
// level one is always granted, each further level is granted with
// probability one in four, capped at MaxHeight; the expected height
// is 4/3
func (list *List) randomHeight() int {
	height := 1
	for height < MaxHeight && 0 == list.rnd.Intn(4) {
		height += 1
	}
	return height
}

// internal: seed for lists created without an explicit seed
func randomSeed() int64 {
	buffer := make([]byte, 8)
	if _, err := cryptorand.Read(buffer); nil != err {
		return time.Now().UnixNano()
	}
	return int64(binary.BigEndian.Uint64(buffer))
}
