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

// Package coord provides the packed board-address type used throughout the
// solver, the four cardinal directions and a few bit-packing helpers.
package coord

import "fmt"

// Coord is a packed 8-bit board address (y<<4 | x), 0 <= y,x <= 15. The zero
// value is reserved to mean "absent" (used by goal configurations where a
// piece has no declared goal position).
type Coord uint8

// None is the reserved "absent" Coord.
const None Coord = 0

// New packs a (y, x) pair into a Coord.
func New(y, x int) Coord {
	return Coord(y<<4 | x)
}

// Y returns the row of the Coord.
func (c Coord) Y() int {
	return int(c>>4) & 0x0f
}

// X returns the column of the Coord.
func (c Coord) X() int {
	return int(c) & 0x0f
}

// Add returns the Coord reached by moving one step in Direction d.
func (c Coord) Add(d Direction) Coord {
	return Coord(int(c) + int(vec[d]))
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Y(), c.X())
}

// Direction is one of the four cardinal directions, indexed 0..3 in N,E,S,W
// order as required by spec.md §4.2 (move generation order) and §5
// (ordering guarantees).
type Direction uint8

const (
	N Direction = 0
	E Direction = 1
	S Direction = 2
	W Direction = 3
)

// vec holds the signed Coord delta for each Direction, packed the same way
// as a Coord itself so plain integer addition moves a Coord.
var vec = [4]int8{
	N: -0x10,
	E: +0x01,
	S: +0x10,
	W: -0x01,
}

// Opposite returns the direction opposite to d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

var dirNames = [4]string{"N", "E", "S", "W"}

func (d Direction) String() string {
	if int(d) >= len(dirNames) {
		return fmt.Sprintf("Direction(%d)", d)
	}
	return dirNames[d]
}

// All enumerates the four directions in N,E,S,W order.
var All = [4]Direction{N, E, S, W}
