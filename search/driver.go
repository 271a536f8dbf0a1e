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
	"time"

	"github.com/hakoiri/solver/logging"
	"github.com/hakoiri/solver/memo"
	"github.com/hakoiri/solver/puzzle"
	"github.com/hakoiri/solver/schash"
)

var log = logging.GetLog("search")

// Status is the terminal outcome of a Search call (spec.md §7).
type Status int

const (
	// StatusSuccess means a goal was reached; Result.Winner is valid.
	StatusSuccess Status = iota
	// StatusNoAnswer means the frontier emptied without reaching the goal.
	StatusNoAnswer
	// StatusStopped means the stopsteps cutoff was hit.
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusStopped:
		return "stopped"
	default:
		return "no answer"
	}
}

// LayerStats records per-layer bookkeeping for diagnostics and tests.
type LayerStats struct {
	Step         int
	FrontierSize int
	MemoSize     int
	Elapsed      time.Duration
}

// Statistics accumulates LayerStats across a full search (spec.md §9's note
// that the driver is the single-threaded fork/join barrier at each layer).
type Statistics struct {
	Layers       []LayerStats
	TotalElapsed time.Duration
}

// Result is what Search returns.
type Result struct {
	Status Status
	Winner puzzle.Mcr
	Stats  Statistics
}

// expandFunc is the shape shared by ExpandStep and ExpandRLC, letting the
// driver and the parallel dispatcher stay agnostic of which objective is
// active.
type expandFunc func(p *puzzle.Puzzle, layer []puzzle.Mcr, seen *memo.Set) (found []puzzle.Mcr, next Frontier)

// Search runs the layered frontier search described in spec.md §4.8 to
// completion, choosing the step-optimal or RLC-optimal expander per
// opts.OptRLC, fanning each layer out across workers per §4.9 when
// opts.Parallel holds.
func Search(p *puzzle.Puzzle, opts puzzle.Options) (Result, error) {
	start := time.Now()

	expand := ExpandStep
	initRlc := puzzle.Rlc(1)
	if opts.OptRLC {
		expand = ExpandRLC
		initRlc = 0
	}

	seen := memo.New()
	seen.Add(p.Hash(p.InitColist))

	tosearch := []puzzle.Mcr{{
		History: puzzle.NewMovehist(),
		Colist:  p.InitColist,
		Rlc:     initRlc,
	}}

	var stats Statistics
	step := 0

	for len(tosearch) > 0 {
		layerStart := time.Now()

		found, next, err := Dispatch(p, opts, tosearch, seen, expand)
		if err != nil {
			return Result{Status: StatusNoAnswer, Stats: stats}, err
		}

		keys := make([]schash.Hash, 0, len(next))
		for h := range next {
			keys = append(keys, h)
		}
		seen.AddAll(keys)

		stats.Layers = append(stats.Layers, LayerStats{
			Step:         step,
			FrontierSize: len(next),
			MemoSize:     seen.Len(),
			Elapsed:      time.Since(layerStart),
		})
		log.Debugf("layer %d: frontier=%d memo=%d found=%d", step, len(next), seen.Len(), len(found))

		if len(found) > 0 {
			stats.TotalElapsed = time.Since(start)
			return Result{Status: StatusSuccess, Winner: selectBest(found, opts.OptRLC), Stats: stats}, nil
		}

		if opts.StopSteps >= 0 && step == opts.StopSteps {
			stats.TotalElapsed = time.Since(start)
			return Result{Status: StatusStopped, Stats: stats}, nil
		}

		tosearch = flatten(next)
		step++
	}

	stats.TotalElapsed = time.Since(start)
	return Result{Status: StatusNoAnswer, Stats: stats}, nil
}

// selectBest picks the winning MCR among a layer's goal-reaching candidates:
// shortest history when optimizing for RLC (all found share the same rlc
// this layer already), smallest rlc when optimizing for steps (all found
// share the same step count this layer already) - spec.md §4.8 step 5.
func selectBest(found []puzzle.Mcr, optRLC bool) puzzle.Mcr {
	best := found[0]
	for _, m := range found[1:] {
		if optRLC {
			if m.History.Len() < best.History.Len() {
				best = m
			}
		} else if m.Rlc < best.Rlc {
			best = m
		}
	}
	return best
}

func flatten(f Frontier) []puzzle.Mcr {
	out := make([]puzzle.Mcr, 0, len(f))
	for _, mcr := range f {
		out = append(out, mcr)
	}
	return out
}
