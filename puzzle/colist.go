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
	"github.com/hakoiri/solver/coord"
	"github.com/hakoiri/solver/piece"
)

// Colist is an ordered tuple of N+1 Coords indexed by piece.ID; index 0 is
// unused (spec.md §3).
type Colist []coord.Coord

// With returns a copy of c with piece id's coordinate replaced by co. Like
// Movehist.Append, this never mutates the receiver, so two moves branching
// from the same parent Colist never alias storage.
func (c Colist) With(id piece.ID, co coord.Coord) Colist {
	out := make(Colist, len(c))
	copy(out, c)
	out[id] = co
	return out
}

// Clone returns an independent copy of c.
func (c Colist) Clone() Colist {
	out := make(Colist, len(c))
	copy(out, c)
	return out
}
