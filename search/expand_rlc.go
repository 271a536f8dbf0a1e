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
	"github.com/hakoiri/solver/bitboard"
	"github.com/hakoiri/solver/coord"
	"github.com/hakoiri/solver/memo"
	"github.com/hakoiri/solver/piece"
	"github.com/hakoiri/solver/puzzle"
)

// ExpandRLC advances one RLC layer (spec.md §4.6). An RLC "step" is a
// maximal straight/turning run of a single piece, so one call here may
// traverse several board cells for a single rlc increment.
func ExpandRLC(p *puzzle.Puzzle, layer []puzzle.Mcr, seen *memo.Set) (found []puzzle.Mcr, next Frontier) {
	next = make(Frontier)
	for _, mcr := range layer {
		expandOneRLC(p, mcr, seen, &found, next)
	}
	return found, next
}

func expandOneRLC(p *puzzle.Puzzle, mcr puzzle.Mcr, seen *memo.Set, found *[]puzzle.Mcr, next Frontier) {
	bmx := p.Bitboard(mcr.Colist, 0)
	lastMove := mcr.History.Last()

	for k := 1; k <= p.NumPieces(); k++ {
		id := piece.ID(k)
		if id == lastMove.Piece {
			// picking the same piece back up would not begin a new run.
			continue
		}
		cls := p.Class(id)
		co := mcr.Colist[id]

		bmx.Stamp(cls, co, bitboard.Erase)
		perpet := map[coord.Coord]bool{co: true}
		r := &rlcRun{p: p, bmx: bmx, cls: cls, id: id, seen: seen, perpet: perpet, found: found, next: next}
		r.walk(mcr, co)
		bmx.Stamp(cls, co, bitboard.Draw)
	}
}

// rlcRun carries the state shared across one piece's recursive DFS run
// (spec.md §4.6): the visited-this-run coord set perpet, and the running
// found/next accumulators of the enclosing layer expansion.
type rlcRun struct {
	p      *puzzle.Puzzle
	bmx    *bitboard.Board
	cls    piece.Class
	id     piece.ID
	seen   *memo.Set
	perpet map[coord.Coord]bool
	found  *[]puzzle.Mcr
	next   Frontier
}

// walk visits every cell reachable from co within the current run, starting
// the run's mcr (whose rlc has not yet been bumped for this run) at co.
func (r *rlcRun) walk(parent puzzle.Mcr, co coord.Coord) {
	for _, d := range coord.All {
		co2 := co.Add(d)
		if r.perpet[co2] || r.bmx.Collide(r.cls, co2) {
			continue
		}
		r.perpet[co2] = true

		newColist := parent.Colist.With(r.id, co2)
		newHistory := parent.History.Append(puzzle.Move{Piece: r.id, Dir: d})
		newHash := r.p.Hash(newColist)
		candidate := puzzle.Mcr{History: newHistory, Colist: newColist, Rlc: parent.Rlc + 1}

		if r.p.IsGoal(newColist, newHash) {
			*r.found = append(*r.found, candidate)
		} else if !r.seen.Contains(newHash) {
			if existing, ok := r.next[newHash]; ok {
				r.next[newHash] = tieB(existing, candidate)
			} else {
				r.next[newHash] = candidate
			}
		}

		r.walk(puzzle.Mcr{History: newHistory, Colist: newColist, Rlc: parent.Rlc}, co2)
	}
}

// tieB applies Tie-B (spec.md §4.6): the smaller rlc wins outright; on a tie
// the shorter history wins (fewer total cells traversed to reach the same
// schash).
func tieB(existing, candidate puzzle.Mcr) puzzle.Mcr {
	if candidate.Rlc < existing.Rlc {
		return candidate
	}
	if candidate.Rlc > existing.Rlc {
		return existing
	}
	if candidate.History.Len() < existing.History.Len() {
		return candidate
	}
	return existing
}
