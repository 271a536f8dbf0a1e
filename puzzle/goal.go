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
	"github.com/hakoiri/solver/schash"
)

// GoalKind selects which of the three goal-matching strategies a GoalSpec
// uses (spec.md §4.4).
type GoalKind int

const (
	// ByID requires specific pieces to sit at specific coordinates.
	ByID GoalKind = iota
	// ByClass requires some piece of a given class to sit at a coordinate,
	// regardless of which piece of that class it is.
	ByClass
	// ByClassHash requires the reachable configuration's class-permutation
	// hash to equal a precomputed target hash - used when a goal names an
	// entire arrangement rather than a single piece's resting place.
	ByClassHash
)

// goalTarget is one coordinate requirement within a GoalSpec.
type goalTarget struct {
	Kind  GoalKind
	ID    piece.ID        // valid when Kind == ByID
	Class piece.ClassID    // valid when Kind == ByClass
	At    coord.Coord
}

// GoalSpec is the parsed goal clause of a puzzle (spec.md §4.4). The parser
// (package puzzlefile) builds all targets of one puzzle with the same kind:
// a by-class goal in which every piece has a goal coordinate is elevated to
// the ByClassHash strategy, and a by-class goal in which every goal piece is
// the only one of its class is degraded to ByID - this package only
// evaluates whatever the parser decided, it does not choose between them
// itself.
type GoalSpec struct {
	Targets []goalTarget
	// Hash, when non-nil, requires the full configuration to canonically
	// hash to *Hash (the ByClassHash strategy). When set it is the only
	// requirement; Targets is empty.
	Hash *schash.Hash
}

// Goal is an alias kept for readability at call sites outside this file.
type Goal = GoalSpec

// NewTargetGoal builds a GoalSpec out of per-piece or per-class coordinate
// requirements.
func NewTargetGoal(targets ...goalTarget) GoalSpec {
	return GoalSpec{Targets: targets}
}

// ByIDTarget builds a target requiring piece id to rest at co.
func ByIDTarget(id piece.ID, co coord.Coord) goalTarget {
	return goalTarget{Kind: ByID, ID: id, At: co}
}

// ByClassTarget builds a target requiring some piece of class c to rest at co.
func ByClassTarget(c piece.ClassID, co coord.Coord) goalTarget {
	return goalTarget{Kind: ByClass, Class: c, At: co}
}

// NewHashGoal builds a GoalSpec that matches purely on the canonical hash.
func NewHashGoal(h schash.Hash) GoalSpec {
	return GoalSpec{Hash: &h}
}

// IsGoal reports whether colist satisfies p's goal (spec.md §4.4). hash is
// the canonical fingerprint of colist, passed in rather than recomputed
// here since callers (the search core) already have it on hand for memo
// lookups.
func (p *Puzzle) IsGoal(colist Colist, hash schash.Hash) bool {
	g := p.Goal
	if g.Hash != nil {
		return hash == *g.Hash
	}
	for _, t := range g.Targets {
		switch t.Kind {
		case ByID:
			if colist[t.ID] != t.At {
				return false
			}
		case ByClass:
			if !p.anyOfClassAt(colist, t.Class, t.At) {
				return false
			}
		}
	}
	return true
}

// anyOfClassAt reports whether some piece of class c currently rests at co.
func (p *Puzzle) anyOfClassAt(colist Colist, c piece.ClassID, co coord.Coord) bool {
	for k := 1; k <= p.NumPieces(); k++ {
		id := piece.ID(k)
		if p.Pieces[id].Class == c && colist[id] == co {
			return true
		}
	}
	return false
}
