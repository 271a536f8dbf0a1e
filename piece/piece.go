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

// Package piece defines the two shape-related value types of the puzzle
// model: Class (komacls), a shape descriptor shared by one or more pieces,
// and Piece (koma), an instance of a class placed on the board.
package piece

import "github.com/hakoiri/solver/coord"

// ID identifies a Piece. 1..N; 0 is reserved/unused (matches spec.md §3's
// Colist indexing convention).
type ID int

// ClassID identifies a Class. 1..len(classes); 0 is reserved for the board
// wall itself (CLS_WALL in the original implementation).
type ClassID int

// WallClass is the reserved class id used to mark a wall cell, never
// assigned to a real piece.
const WallClass ClassID = 0

// Class is a shape descriptor: a bounding size and a per-row bitmap where
// bit x of row y is set iff that cell is solid. A well-formed Class has no
// all-zero row and no all-zero column (spec.md §3).
type Class struct {
	ID     ClassID
	Name   string
	Height int
	Width  int
	// Rows holds one bitmap per row; bit x (0-indexed from the class's own
	// left edge) is set iff the cell is occupied.
	Rows []uint32
}

// Mirror reports whether every row of the class reads the same
// bit-reversed within Width (spec.md §3's "mirror-symmetric" class).
func (c Class) Mirror() bool {
	for _, row := range c.Rows {
		if row != reverseBits(row, c.Width) {
			return false
		}
	}
	return true
}

func reverseBits(row uint32, width int) uint32 {
	var r uint32
	for i := 0; i < width; i++ {
		if row&(1<<uint(i)) != 0 {
			r |= 1 << uint(width-1-i)
		}
	}
	return r
}

// Valid reports whether the class has no all-zero row and no all-zero
// column, as required by spec.md §3.
func (c Class) Valid() bool {
	if c.Height <= 0 || c.Width <= 0 || len(c.Rows) != c.Height {
		return false
	}
	var colMask uint32
	for _, row := range c.Rows {
		if row == 0 {
			return false
		}
		colMask |= row
	}
	fullCols := uint32(1)<<uint(c.Width) - 1
	return colMask == fullCols
}

// Piece is an immutable instance on the board: its id, the class it
// belongs to, a display name and short display name, and the coordinate it
// occupies at puzzle start.
type Piece struct {
	ID        ID
	Class     ClassID
	Name      string
	ShortName string
	Init      coord.Coord
}
