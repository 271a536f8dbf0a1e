/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package memo implements the visited-schash set threaded through the search
// driver (spec.md §4.8/§5): a snapshot of it is handed to every worker at the
// start of a layer, read-only, and the driver folds each layer's new keys
// into it once the layer's merge completes. It grows monotonically for the
// life of a search and is never pruned mid-search.
//
// The set is a power-of-2-sized open-addressing table of schash.Hash values,
// the same sizing/masking trick the teacher's transposition table
// (transpositiontable/tt.go) uses for its Zobrist-key entries - here
// repurposed from a 16-byte move/value/depth record to a bare membership
// set, since the search core only ever needs "have we seen this schash
// before", never an associated value.
package memo

import (
	"github.com/hakoiri/solver/assert"
	"github.com/hakoiri/solver/schash"
)

// initialCapacity is the smallest table size; grown by doubling.
const initialCapacity = 1 << 10

// loadFactorNum/loadFactorDen bound the fraction of slots considered "full"
// before Set grows the table (matches the teacher's power-of-2 sizing
// philosophy, applied to an open set instead of a fixed-size cache).
const (
	loadFactorNum = 3
	loadFactorDen = 4
)

// empty is the sentinel "slot unused" marker: the all-zero Hash. A real
// schash can never be all-zero: every puzzle has at least one piece, and its
// first sorted coord byte would have to be (0,0) to produce an all-zero
// array, but (0,0) is always a border wall cell, never a piece position. So
// zero is safe to reserve as "slot unused".
var empty schash.Hash

// Set is a power-of-2-sized open-addressing membership set of schash.Hash
// values. It doubles its table whenever the load factor is reached and has
// no upper size limit.
type Set struct {
	slots []schash.Hash
	mask  uint64
	count int
}

// New returns an empty Set.
func New() *Set {
	return &Set{
		slots: make([]schash.Hash, initialCapacity),
		mask:  initialCapacity - 1,
	}
}

// Len returns the number of distinct hashes stored.
func (s *Set) Len() int {
	return s.count
}

// Contains reports whether h has been recorded.
func (s *Set) Contains(h schash.Hash) bool {
	if h == empty {
		return false
	}
	idx := s.index(h)
	for {
		cur := s.slots[idx]
		if cur == empty {
			return false
		}
		if cur == h {
			return true
		}
		idx = (idx + 1) & s.mask
	}
}

// Add records h, growing the table first if it has crossed the load factor.
// Adding an already-present hash is a no-op.
func (s *Set) Add(h schash.Hash) {
	if h == empty {
		return
	}
	if (s.count+1)*loadFactorDen >= len(s.slots)*loadFactorNum {
		s.grow()
	}
	s.insert(h)
}

// AddAll records every hash in hs (the driver folds a layer's new next-map
// keys in this way once the layer's merge completes - spec.md §4.8 step 4).
func (s *Set) AddAll(hs []schash.Hash) {
	for _, h := range hs {
		s.Add(h)
	}
}

func (s *Set) insert(h schash.Hash) bool {
	idx := s.index(h)
	for {
		cur := s.slots[idx]
		if cur == empty {
			s.slots[idx] = h
			s.count++
			return true
		}
		if cur == h {
			return false
		}
		idx = (idx + 1) & s.mask
	}
}

func (s *Set) grow() {
	old := s.slots
	oldCount := s.count
	newCap := len(old) * 2
	s.slots = make([]schash.Hash, newCap)
	s.mask = uint64(newCap) - 1
	s.count = 0
	for _, h := range old {
		if h != empty {
			s.insert(h)
		}
	}
	if assert.DEBUG {
		assert.Assert(s.count == oldCount, "memo: grow lost entries")
	}
}

// index hashes h down to a table slot via FNV-1a over its bytes, masked to
// the table size.
func (s *Set) index(h schash.Hash) uint64 {
	var x uint64 = 1469598103934665603 // FNV offset basis
	for _, b := range h {
		x ^= uint64(b)
		x *= 1099511628211 // FNV prime
	}
	return x & s.mask
}
