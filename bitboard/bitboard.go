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

// Package bitboard implements the row-bitmap board used for collision
// detection and move probing (spec.md §4.1/§4.2). Unlike a chess bitboard
// (a single 64-bit integer covering the whole board), a puzzle board can be
// up to 16x16 cells, so the board is one uint32 row-bitmap per board row.
package bitboard

import (
	"strings"

	"github.com/hakoiri/solver/assert"
	"github.com/hakoiri/solver/coord"
	"github.com/hakoiri/solver/piece"
)

// Mode selects how Stamp combines a piece's shape into the board.
type Mode int

const (
	// Draw OR-merges the piece's shape into the board.
	Draw Mode = iota
	// Erase AND-NOT-removes the piece's shape from the board.
	Erase
	// Toggle XORs the piece's shape into the board.
	Toggle
)

// Board is a row-bitmap occupancy grid. Bit x of Rows[y] is set iff cell
// (y,x) is occupied (by a wall or by some piece).
type Board struct {
	Rows []uint32
}

// New builds the base board: the four border rows/columns solid, then the
// extra wall cells OR-merged in (spec.md §4.1).
func New(height, width int, extraWalls []coord.Coord) *Board {
	fullRow := uint32(1)<<uint(width) - 1
	wallRow := uint32(1) | uint32(1)<<uint(width-1)
	rows := make([]uint32, height)
	rows[0] = fullRow
	rows[height-1] = fullRow
	for y := 1; y < height-1; y++ {
		rows[y] = wallRow
	}
	b := &Board{Rows: rows}
	for _, w := range extraWalls {
		b.Rows[w.Y()] |= 1 << uint(w.X())
	}
	return b
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	rows := make([]uint32, len(b.Rows))
	copy(rows, b.Rows)
	return &Board{Rows: rows}
}

// mask returns the class shape shifted into absolute column position co.X().
func mask(cls piece.Class, co coord.Coord) []uint32 {
	m := make([]uint32, cls.Height)
	for y, row := range cls.Rows {
		m[y] = row << uint(co.X())
	}
	return m
}

// Collide reports whether placing cls at co would overlap any solid cell of
// b. A zero Coord ("absent piece") never collides, matching spec.md §4.1's
// treatment of unfilled goal positions.
func (b *Board) Collide(cls piece.Class, co coord.Coord) bool {
	if co == coord.None {
		return false
	}
	m := mask(cls, co)
	y0 := co.Y()
	for yo, row := range m {
		if b.Rows[y0+yo]&row != 0 {
			return true
		}
	}
	return false
}

// Stamp applies cls's shape at co to b using the given Mode. Callers that
// erase a piece to probe its neighborhood MUST draw it back on every exit
// path so the board stays bitwise identical to the entry state (spec.md
// §4.1's invariant).
func (b *Board) Stamp(cls piece.Class, co coord.Coord, mode Mode) {
	if co == coord.None {
		return
	}
	if assert.DEBUG {
		assert.Assert(co.Y()+cls.Height <= len(b.Rows), "bitboard: Stamp out of bounds")
	}
	m := mask(cls, co)
	y0 := co.Y()
	for yo, row := range m {
		switch mode {
		case Draw:
			b.Rows[y0+yo] |= row
		case Erase:
			b.Rows[y0+yo] &^= row
		case Toggle:
			b.Rows[y0+yo] ^= row
		}
	}
}

// Equal reports whether two boards have identical row bitmaps (used by
// tests to check the erase/draw round-trip invariant).
func (b *Board) Equal(o *Board) bool {
	if len(b.Rows) != len(o.Rows) {
		return false
	}
	for i := range b.Rows {
		if b.Rows[i] != o.Rows[i] {
			return false
		}
	}
	return true
}

// String renders the board as rows of '1'/'.' for debugging.
func (b *Board) String() string {
	var sb strings.Builder
	for _, row := range b.Rows {
		for x := 0; x < 32; x++ {
			if row&(1<<uint(x)) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
