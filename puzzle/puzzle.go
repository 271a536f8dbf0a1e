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

// Package puzzle holds the read-only puzzle description (spec.md §3/§6) and
// the handful of pure, read-only query methods the search core needs on it:
// bitboard construction, class/piece lookup, and the state hash. Puzzle and
// Options values are treated as read-only and threaded through call sites
// (spec.md §9 "global configuration passed everywhere") - workers receive
// copies of the *Puzzle pointer but never mutate what it points to.
package puzzle

import (
	"github.com/hakoiri/solver/bitboard"
	"github.com/hakoiri/solver/coord"
	"github.com/hakoiri/solver/piece"
	"github.com/hakoiri/solver/schash"
)

// Puzzle is the full puzzle description consumed by the search core
// (spec.md §6). It is produced by an external parser (package puzzlefile)
// and never mutated afterwards.
type Puzzle struct {
	Name string

	BoardHeight int
	BoardWidth  int
	ExtraWalls  []coord.Coord
	MirrorIdent bool

	// Classes is indexed by piece.ClassID; index 0 is unused.
	Classes []piece.Class
	// Pieces is indexed by piece.ID; index 0 is unused.
	Pieces []piece.Piece

	InitColist Colist

	Goal Goal
}

// NumPieces returns N, the number of real pieces (Pieces has N+1 entries).
func (p *Puzzle) NumPieces() int {
	return len(p.Pieces) - 1
}

// Class returns the shape descriptor of the given piece.
func (p *Puzzle) Class(id piece.ID) piece.Class {
	return p.Classes[p.Pieces[id].Class]
}

// ClassOf returns the class id of the given piece - a small adapter so
// schash.Of can be handed a plain function instead of a *Puzzle, keeping
// schash free of a puzzle import (it is a pure leaf package, used by both
// puzzle and search).
func (p *Puzzle) ClassOf(id piece.ID) piece.ClassID {
	return p.Pieces[id].Class
}

// ClassWidth returns the bounding width of the given class.
func (p *Puzzle) ClassWidth(c piece.ClassID) int {
	return p.Classes[c].Width
}

// NewBoard builds the base bitboard (border walls + extra walls) with no
// pieces drawn onto it.
func (p *Puzzle) NewBoard() *bitboard.Board {
	return bitboard.New(p.BoardHeight, p.BoardWidth, p.ExtraWalls)
}

// Bitboard draws every piece of colist onto a fresh base board, skipping
// piece `exclude` if it is non-zero (spec.md §4.1's makebmatrix/xkoma).
func (p *Puzzle) Bitboard(colist Colist, exclude piece.ID) *bitboard.Board {
	b := p.NewBoard()
	for k := 1; k <= p.NumPieces(); k++ {
		id := piece.ID(k)
		if id == exclude || colist[id] == coord.None {
			continue
		}
		b.Stamp(p.Class(id), colist[id], bitboard.Draw)
	}
	return b
}

// Hash computes the canonical fingerprint of colist (spec.md §4.3).
func (p *Puzzle) Hash(colist Colist) schash.Hash {
	return schash.Of(p.NumPieces(), colist, p.ClassOf, p.ClassWidth, p.BoardWidth, p.MirrorIdent)
}

// Options controls how the search is run (spec.md §6's CLI surface and
// §4.9's parallel-partitioning knobs).
type Options struct {
	OptRLC        bool // optimize for RLC instead of step count
	Parallel      bool
	StopSteps     int // -1 means "no cutoff"
	MaxNProcs     int
	MinNSearchDiv int
	CheckOnly     bool
}

// DefaultOptions mirrors the original tool's argparse defaults
// (original_source/hakoiri.py's getoptions()).
func DefaultOptions() Options {
	return Options{
		OptRLC:        false,
		Parallel:      true,
		StopSteps:     -1,
		MaxNProcs:     10,
		MinNSearchDiv: 200,
		CheckOnly:     false,
	}
}
