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

// Package search implements the two frontier expanders (step-optimal and
// RLC-optimal, spec.md §4.5/§4.6), the layered driver that runs them to a
// goal (§4.8), and the parallel orchestrator that fans a layer out across
// workers (§4.9).
package search

import (
	"github.com/hakoiri/solver/bitboard"
	"github.com/hakoiri/solver/coord"
	"github.com/hakoiri/solver/memo"
	"github.com/hakoiri/solver/piece"
	"github.com/hakoiri/solver/puzzle"
	"github.com/hakoiri/solver/schash"
)

// Frontier maps a configuration's canonical hash to the best MCR reaching it
// so far in the layer under construction.
type Frontier map[schash.Hash]puzzle.Mcr

// ExpandStep advances one BFS layer under the step-count metric (spec.md
// §4.5). seen is the memo snapshot for this layer; it is read-only here -
// the caller folds newly-discovered keys into it after the layer merges.
func ExpandStep(p *puzzle.Puzzle, layer []puzzle.Mcr, seen *memo.Set) (found []puzzle.Mcr, next Frontier) {
	next = make(Frontier)
	for _, mcr := range layer {
		expandOneStep(p, mcr, seen, &found, next)
	}
	return found, next
}

func expandOneStep(p *puzzle.Puzzle, mcr puzzle.Mcr, seen *memo.Set, found *[]puzzle.Mcr, next Frontier) {
	bmx := p.Bitboard(mcr.Colist, 0)
	lastMove := mcr.History.Last()

	for k := 1; k <= p.NumPieces(); k++ {
		id := piece.ID(k)
		cls := p.Class(id)
		co := mcr.Colist[id]

		bmx.Stamp(cls, co, bitboard.Erase)
		for _, d := range coord.All {
			if lastMove.Piece == id && d == lastMove.Dir.Opposite() {
				continue
			}
			co2 := co.Add(d)
			if bmx.Collide(cls, co2) {
				continue
			}

			newColist := mcr.Colist.With(id, co2)
			newHistory := mcr.History.Append(puzzle.Move{Piece: id, Dir: d})
			newHash := p.Hash(newColist)
			newRlc := mcr.Rlc
			if newHistory.Len() >= 3 && lastMove.Piece != id {
				newRlc++
			}
			candidate := puzzle.Mcr{History: newHistory, Colist: newColist, Rlc: newRlc}

			if p.IsGoal(newColist, newHash) {
				*found = append(*found, candidate)
				continue
			}
			if seen.Contains(newHash) {
				continue
			}
			if existing, ok := next[newHash]; ok {
				next[newHash] = tieA(bmx, existing, candidate, cls, co2, d)
			} else {
				next[newHash] = candidate
			}
		}
		bmx.Stamp(cls, co, bitboard.Draw)
	}
}

// tieA applies Tie-A (spec.md §4.5): the smaller rlc wins outright; on a tie
// the incumbent stays unless the candidate's moved piece can still continue
// in a non-opposite direction on bmx, in which case the candidate replaces
// it. bmx must currently have the candidate's piece erased and not yet
// redrawn at co2 - exactly the state expandOneStep's erase/probe loop holds
// it in for the whole direction loop (expandOneStep redraws the piece at its
// old co only once the loop over d finishes) - since canContinue is a pure
// probe that assumes the piece is absent from the board entirely.
func tieA(bmx *bitboard.Board, existing, candidate puzzle.Mcr, cls piece.Class, co2 coord.Coord, lastDir coord.Direction) puzzle.Mcr {
	if candidate.Rlc < existing.Rlc {
		return candidate
	}
	if candidate.Rlc > existing.Rlc {
		return existing
	}
	if canContinue(bmx, cls, co2, lastDir) {
		return candidate
	}
	return existing
}
