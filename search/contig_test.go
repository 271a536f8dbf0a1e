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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hakoiri/solver/coord"
	"github.com/hakoiri/solver/puzzle"
)

func TestCanContinueTrueWhenRoomAhead(t *testing.T) {
	p := corridorPuzzle()
	// piece 1 itself must be excluded from bmx: canContinue is a pure probe
	// that assumes the piece being tested is absent from the board.
	bmx := p.Bitboard(p.InitColist, 1)
	// piece 1 sits at (1,1) having just moved East; it can still continue
	// East (the cell ahead, (1,2), is empty) or other non-opposite dirs.
	assert.True(t, canContinue(bmx, p.Class(1), coord.New(1, 1), coord.E))
}

func TestCanContinueFalseWhenBoxedIn(t *testing.T) {
	p := trivialPuzzle()
	bmx := p.Bitboard(p.InitColist, 1)
	// at (1,2) (the goal cell) the piece is walled on every non-opposite
	// side when its last move was East: North/South are walls, and West is
	// the opposite of East so it's excluded from consideration entirely,
	// leaving only East itself which is also a wall (board width 4).
	assert.False(t, canContinue(bmx, p.Class(1), coord.New(1, 2), coord.E))
}

func TestCanContinueDoesNotMutateBoard(t *testing.T) {
	p := corridorPuzzle()
	bmx := p.Bitboard(p.InitColist, 1)
	before := bmx.Clone()
	canContinue(bmx, p.Class(1), coord.New(1, 1), coord.E)
	assert.True(t, bmx.Equal(before))
}

// tieA is exercised directly here (rather than only through expandOneStep's
// own merge) so the rlc-tie branch and its board precondition - bmx must
// have the candidate's piece absent entirely, not stamped at co2 - are
// pinned down independently of whether a given fixture happens to produce a
// same-hash collision within a single layer expansion.

func TestTieAPicksContinuableCandidateOnRlcTie(t *testing.T) {
	p := corridorPuzzle()
	cls := p.Class(1)
	bmx := p.Bitboard(p.InitColist, 1)

	existing := puzzle.Mcr{History: puzzle.NewMovehist().Append(puzzle.Move{Piece: 2, Dir: coord.W}), Rlc: 1}
	candidate := puzzle.Mcr{History: puzzle.NewMovehist().Append(puzzle.Move{Piece: 1, Dir: coord.E}), Rlc: 1}

	// piece 1 landing at (1,2) can still continue East (B sits at (1,4),
	// (1,3) is empty), so on an rlc tie the candidate must win.
	got := tieA(bmx, existing, candidate, cls, coord.New(1, 2), coord.E)
	assert.Equal(t, candidate, got)
}

func TestTieAKeepsIncumbentWhenCandidateCannotContinue(t *testing.T) {
	p := trivialPuzzle()
	cls := p.Class(1)
	bmx := p.Bitboard(p.InitColist, 1)

	existing := puzzle.Mcr{History: puzzle.NewMovehist().Append(puzzle.Move{Piece: 1, Dir: coord.W}), Rlc: 2}
	candidate := puzzle.Mcr{History: puzzle.NewMovehist().Append(puzzle.Move{Piece: 1, Dir: coord.E}), Rlc: 2}

	// at (1,2), boxed in on every non-opposite side (board width 4), the
	// candidate cannot continue, so on an rlc tie the incumbent must stay.
	got := tieA(bmx, existing, candidate, cls, coord.New(1, 2), coord.E)
	assert.Equal(t, existing, got)
}
