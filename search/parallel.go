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
	"golang.org/x/sync/errgroup"

	"github.com/hakoiri/solver/memo"
	"github.com/hakoiri/solver/puzzle"
	"github.com/hakoiri/solver/util"
)

// Dispatch partitions layer per spec.md §4.9, runs expand over each
// partition - concurrently when opts.Parallel holds - and merges the
// per-worker results into a single (found, next) pair.
func Dispatch(p *puzzle.Puzzle, opts puzzle.Options, layer []puzzle.Mcr, seen *memo.Set, expand expandFunc) (found []puzzle.Mcr, merged Frontier, err error) {
	parts := partitionLayer(layer, opts)

	type workerResult struct {
		found []puzzle.Mcr
		next  Frontier
	}
	results := make([]workerResult, len(parts))

	var g errgroup.Group
	for i, part := range parts {
		i, part := i, part
		g.Go(func() error {
			f, n := expand(p, part, seen)
			results[i] = workerResult{found: f, next: n}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	merged = make(Frontier)
	for _, r := range results {
		found = append(found, r.found...)
		for h, mcr := range r.next {
			existing, ok := merged[h]
			if !ok {
				merged[h] = mcr
				continue
			}
			merged[h] = mergeTie(p, existing, mcr, opts.OptRLC)
		}
	}
	return found, merged, nil
}

// mergeTie applies the active tiebreak across two workers' candidates for
// the same schash (spec.md §4.9's merge pseudocode). For Tie-A, the
// contiguous-move bitboard check is only materialized on an exact rlc tie -
// the cheap rlc comparison already decides most merges.
func mergeTie(p *puzzle.Puzzle, existing, candidate puzzle.Mcr, optRLC bool) puzzle.Mcr {
	if optRLC {
		return tieB(existing, candidate)
	}
	if candidate.Rlc < existing.Rlc {
		return candidate
	}
	if candidate.Rlc > existing.Rlc {
		return existing
	}
	lastMove := candidate.History.Last()
	cls := p.Class(lastMove.Piece)
	co := candidate.Colist[lastMove.Piece]
	bmx := p.Bitboard(candidate.Colist, lastMove.Piece)
	if canContinue(bmx, cls, co, lastMove.Dir) {
		return candidate
	}
	return existing
}

// partitionLayer splits layer into worker-sized slices per spec.md §4.9's
// P/D formula, or returns it whole when opts.Parallel is false.
func partitionLayer(layer []puzzle.Mcr, opts puzzle.Options) [][]puzzle.Mcr {
	n := len(layer)
	if n == 0 {
		return nil
	}
	if !opts.Parallel {
		return [][]puzzle.Mcr{layer}
	}

	p := util.Max(opts.MaxNProcs, 1)
	d := util.Max(opts.MinNSearchDiv, 1)

	var sizes []int
	if n <= p*d {
		nprocs := ceilDiv(n, d)
		sizes = evenSizes(n, nprocs, d)
	} else {
		sizes = evenSizes(n, p, n/p)
	}

	parts := make([][]puzzle.Mcr, 0, len(sizes))
	offset := 0
	for _, sz := range sizes {
		parts = append(parts, layer[offset:offset+sz])
		offset += sz
	}
	return parts
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

// evenSizes returns nprocs partition sizes of `base` each, with the last
// absorbing whatever remainder is left over (spec.md §4.9: "last worker
// takes the remainder").
func evenSizes(n, nprocs, base int) []int {
	if nprocs <= 1 {
		return []int{n}
	}
	sizes := make([]int, nprocs)
	used := 0
	for i := 0; i < nprocs-1; i++ {
		sizes[i] = base
		used += base
	}
	sizes[nprocs-1] = n - used
	return sizes
}
