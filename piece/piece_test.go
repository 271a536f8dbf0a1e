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

package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test2x2Mirror(t *testing.T) {
	c := Class{Height: 2, Width: 2, Rows: []uint32{0b11, 0b11}}
	assert.True(t, c.Mirror())
	assert.True(t, c.Valid())
}

func Test1x2NotMirror(t *testing.T) {
	// a 2-wide class with an asymmetric row is not mirror-symmetric
	c := Class{Height: 1, Width: 2, Rows: []uint32{0b01}}
	assert.False(t, c.Mirror())
}

func TestValidRejectsEmptyRow(t *testing.T) {
	c := Class{Height: 2, Width: 2, Rows: []uint32{0b11, 0b00}}
	assert.False(t, c.Valid())
}

func TestValidRejectsEmptyColumn(t *testing.T) {
	// a 2x2 shape missing the entire right column
	c := Class{Height: 2, Width: 2, Rows: []uint32{0b01, 0b01}}
	assert.False(t, c.Valid())
}

func TestValidLShape(t *testing.T) {
	// non-rectangular koma (spec.md §3 allows any shape with no empty
	// row/column), an L-tromino
	c := Class{Height: 2, Width: 2, Rows: []uint32{0b01, 0b11}}
	assert.True(t, c.Valid())
	assert.False(t, c.Mirror())
}
