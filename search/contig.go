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

package search

import (
	"github.com/hakoiri/solver/bitboard"
	"github.com/hakoiri/solver/coord"
	"github.com/hakoiri/solver/piece"
)

// canContinue reports whether the piece last moved in direction `last`,
// which would sit at `co` on `bmx`, could keep moving in at least one
// non-opposite direction (spec.md §4.7). It is the secondary tiebreak
// inside Tie-A and the cross-worker merge - callers MUST only invoke it on
// an exact rlc tie, since materializing/probing the board isn't free.
//
// bmx must NOT have the piece itself stamped in anywhere, at co or at its
// old position: canContinue is a pure probe and never mutates bmx, so a
// caller whose board still carries the piece has to erase it (or build the
// board with that piece excluded) before calling in.
func canContinue(bmx *bitboard.Board, cls piece.Class, co coord.Coord, last coord.Direction) bool {
	opposite := last.Opposite()
	for _, d := range coord.All {
		if d == opposite {
			continue
		}
		if !bmx.Collide(cls, co.Add(d)) {
			return true
		}
	}
	return false
}
