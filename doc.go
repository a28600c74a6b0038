// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package skiplist - a probabilistic balanced ordered container with
// the addition of back links to allow reverse stepping along the
// lowest level
//
// Note: an individual list is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described by William Pugh in "Skip Lists: A
// Probabilistic Alternative to Balanced Trees".
//
// Each node draws a random height when it is created: level one is
// always granted and every further level is granted with probability
// one in four, capped at MaxHeight.  All nodes are linked in key
// order on level zero; the higher levels are sparse shortcuts over
// that chain giving expected logarithmic search, insert and remove.
//
// Ordering and value ownership are controlled by caller supplied
// callbacks fixed at creation time.  An insert of an equal key is
// rejected, not merged.
package skiplist
