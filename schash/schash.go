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

// Package schash computes the canonical state fingerprint (spec.md §4.3): a
// key that is identical for any two configurations that differ only by
// permuting same-class pieces, and - when the puzzle declares mirror
// identity - for configurations that are horizontal mirror images of one
// another.
//
// The original tool packs the sorted per-piece bytes into a single 64-bit
// integer and notes implementations MUST widen it once a puzzle has more
// than 8 pieces (spec.md §4.3's "Limit"). Rather than special-case N<=8 vs
// N>8, Hash is a fixed-size byte array from the start: wide enough for up
// to MaxPieces pieces (the puzzle-file parser rejects puzzles with more),
// and directly usable as a map key like the teacher's Zobrist Key
// (transpositiontable/tt.go).
package schash

import (
	"bytes"

	"github.com/hakoiri/solver/coord"
	"github.com/hakoiri/solver/piece"
)

// MaxPieces bounds how many pieces a single puzzle may have.
const MaxPieces = 16

// Hash is the canonical fingerprint of a configuration.
type Hash [MaxPieces]byte

// classCoord is one (class, coord) pair prepared for sorting.
type classCoord struct {
	class piece.ClassID
	co    coord.Coord
}

// Of computes the canonical fingerprint of colist (indexed by piece.ID,
// index 0 unused) under the puzzle's class assignment, optionally folding
// in the horizontal mirror when mirrorIdent holds.
//
// classOf maps each piece id to its class id; classWidth maps each class id
// to its bounding width (needed to mirror a piece's top-left coordinate
// correctly, since mirroring reflects the piece's right edge, not just its
// corner - spec.md §4.3 step 4).
func Of(n int, colist []coord.Coord, classOf func(piece.ID) piece.ClassID, classWidth func(piece.ClassID) int, boardWidth int, mirrorIdent bool) Hash {
	r := encode(n, colist, classOf, false, classWidth, boardWidth)
	if !mirrorIdent {
		return r
	}
	rMirror := encode(n, colist, classOf, true, classWidth, boardWidth)
	if less(rMirror, r) {
		return rMirror
	}
	return r
}

func encode(n int, colist []coord.Coord, classOf func(piece.ID) piece.ClassID, mirror bool, classWidth func(piece.ClassID) int, boardWidth int) Hash {
	pairs := make([]classCoord, n)
	for k := 1; k <= n; k++ {
		cls := classOf(piece.ID(k))
		co := colist[k]
		if mirror {
			co = mirrorCoord(co, classWidth(cls), boardWidth)
		}
		pairs[k-1] = classCoord{class: cls, co: co}
	}
	// stable sort by coord (secondary), then by class id (primary) - spec.md
	// §4.3 step 2. Two stable insertion-sort passes, inner key first and
	// outer key last, mirror Python's sorted(sorted(x, key=coord),
	// key=class): the second pass only reorders pairs whose class differs,
	// so pieces that share a class keep the coord order the first pass gave
	// them. N is always small (<= MaxPieces).
	for i := 1; i < len(pairs); i++ {
		j := i
		for j > 0 && pairs[j-1].co > pairs[j].co {
			pairs[j-1], pairs[j] = pairs[j], pairs[j-1]
			j--
		}
	}
	for i := 1; i < len(pairs); i++ {
		j := i
		for j > 0 && pairs[j-1].class > pairs[j].class {
			pairs[j-1], pairs[j] = pairs[j], pairs[j-1]
			j--
		}
	}
	var h Hash
	for i, p := range pairs {
		h[i] = byte(p.co)
	}
	return h
}

// mirrorCoord reflects co horizontally: a piece of the given width occupying
// columns [x, x+width) maps to occupying [boardWidth-width-x, boardWidth-x)
// (spec.md §4.3 step 4).
func mirrorCoord(co coord.Coord, width, boardWidth int) coord.Coord {
	return coord.New(co.Y(), boardWidth-co.X()-width)
}

// less reports whether a sorts before b as a byte string (equivalent to
// comparing the two as big-endian integers, since both are the same fixed
// width - spec.md §4.3 step 4's min(r, r')).
func less(a, b Hash) bool {
	return bytes.Compare(a[:], b[:]) < 0
}
