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

package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hakoiri/solver/coord"
	"github.com/hakoiri/solver/piece"
	"github.com/hakoiri/solver/puzzle"
)

func fixturePuzzle() *puzzle.Puzzle {
	p := &puzzle.Puzzle{
		Name:        "fixture",
		BoardHeight: 3,
		BoardWidth:  4,
		MirrorIdent: true,
		Classes: []piece.Class{
			{},
			{ID: 1, Name: "1x1", Height: 1, Width: 1, Rows: []uint32{0b1}},
		},
		Pieces: []piece.Piece{
			{},
			{ID: 1, Class: 1, Name: "token", ShortName: "tk", Init: coord.New(1, 1)},
		},
		InitColist: puzzle.Colist{coord.None, coord.New(1, 1)},
	}
	p.Goal = puzzle.NewTargetGoal(puzzle.ByIDTarget(1, coord.New(1, 2)))
	return p
}

func TestBoardRendersPieceShortName(t *testing.T) {
	p := fixturePuzzle()
	var sb strings.Builder
	Board(&sb, p, p.InitColist)
	out := sb.String()
	assert.Contains(t, out, "tk")
	assert.Contains(t, out, ". ")
}

func TestBoardRendersExtraWallAsBlank(t *testing.T) {
	p := fixturePuzzle()
	p.ExtraWalls = []coord.Coord{coord.New(1, 2)}
	var sb strings.Builder
	Board(&sb, p, p.InitColist)
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "tk")
	// the only other interior cell is the wall, so no empty-cell marker
	assert.NotContains(t, lines[0], ". ")
}

func TestHistoryReplaysMoves(t *testing.T) {
	p := fixturePuzzle()
	hist := puzzle.NewMovehist().Append(puzzle.Move{Piece: 1, Dir: coord.E})
	var sb strings.Builder
	History(&sb, p, hist)
	out := sb.String()
	assert.Contains(t, out, "initial:")
	assert.Contains(t, out, "step 1, rectlin 1, strlin 1")
	assert.Contains(t, out, "token")
}

func TestInfoPrintsClassLegend(t *testing.T) {
	p := fixturePuzzle()
	var sb strings.Builder
	Info(&sb, p)
	out := sb.String()
	assert.Contains(t, out, "puzzle: fixture")
	assert.Contains(t, out, "mirrorident = true")
	assert.Contains(t, out, "token")
}

func TestInfoPrintsHashWhenGoalIsHashKind(t *testing.T) {
	p := fixturePuzzle()
	h := p.Hash(puzzle.Colist{coord.None, coord.New(1, 2)})
	p.Goal = puzzle.NewHashGoal(h)
	var sb strings.Builder
	Info(&sb, p)
	assert.Contains(t, sb.String(), "byclasshash")
}
