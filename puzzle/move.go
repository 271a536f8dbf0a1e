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

package puzzle

import (
	"fmt"
	"strings"

	"github.com/hakoiri/solver/coord"
	"github.com/hakoiri/solver/piece"
)

// Move is a single unit-step slide: the piece that moves and the direction
// it moves in (spec.md §3).
type Move struct {
	Piece piece.ID
	Dir   coord.Direction
}

func (m Move) String() string {
	return fmt.Sprintf("%d%s", m.Piece, m.Dir)
}

// Sentinel is the initial entry pushed onto a search's history before any
// real move has been made (spec.md §4.8): it carries piece 0, which never
// identifies a real piece, so the "same piece as last move" checks in
// §4.2/§4.5/§4.6 are false for the very first move without special-casing
// an empty history.
var Sentinel = Move{Piece: 0, Dir: coord.N}

// Movehist is an append-only sequence of Moves (spec.md §3). Append never
// mutates the receiver's backing array, so two branches taken from the same
// parent history never alias each other's storage - the Go equivalent of
// the original implementation appending to an immutable Python tuple.
type Movehist []Move

// NewMovehist returns a Movehist containing only the sentinel move.
func NewMovehist() Movehist {
	return Movehist{Sentinel}
}

// Append returns a new Movehist with m appended; the receiver is untouched.
func (h Movehist) Append(m Move) Movehist {
	out := make(Movehist, len(h)+1)
	copy(out, h)
	out[len(h)] = m
	return out
}

// Last returns the most recently appended Move.
func (h Movehist) Last() Move {
	return h[len(h)-1]
}

// Len returns the number of moves, including the sentinel.
func (h Movehist) Len() int {
	return len(h)
}

func (h Movehist) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, m := range h {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString("]")
	return sb.String()
}
