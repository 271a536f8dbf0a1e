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

// Package printer renders a Puzzle's board, class legend, and a winning
// move history to a writer, grounded on original_source/hakocom.py's
// printnamematrix/printhist/printpuzzle.
package printer

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hakoiri/solver/coord"
	"github.com/hakoiri/solver/piece"
	"github.com/hakoiri/solver/puzzle"
)

// Board writes a name-matrix rendering of colist onto p's board to w: every
// interior cell prints the short name of whatever piece occupies it, a
// blank extra-wall cell prints spaces, and an empty cell prints ". ".
func Board(w io.Writer, p *puzzle.Puzzle, colist puzzle.Colist) {
	pr := message.NewPrinter(language.English)

	cells := make([][]string, p.BoardHeight)
	for y := range cells {
		cells[y] = make([]string, p.BoardWidth)
		for x := range cells[y] {
			cells[y][x] = ". "
		}
	}
	for _, wall := range p.ExtraWalls {
		cells[wall.Y()][wall.X()] = "  "
	}
	for k := 1; k <= p.NumPieces(); k++ {
		id := piece.ID(k)
		co := colist[id]
		if co == coord.None {
			continue
		}
		cls := p.Class(id)
		name := p.Pieces[id].ShortName
		for yy, row := range cls.Rows {
			for xx := 0; xx < cls.Width; xx++ {
				if row&(1<<uint(xx)) != 0 {
					cells[co.Y()+yy][co.X()+xx] = name
				}
			}
		}
	}

	for y := 1; y < p.BoardHeight-1; y++ {
		for x := 1; x < p.BoardWidth-1; x++ {
			pr.Fprintf(w, "%s ", cells[y][x])
		}
		pr.Fprintln(w)
	}
}

// History replays hist move-by-move from p's initial configuration,
// printing the board after each move along with the running step and
// rectilinear-run counters (original_source/hakocom.py's printhist).
func History(w io.Writer, p *puzzle.Puzzle, hist puzzle.Movehist) {
	pr := message.NewPrinter(language.English)

	pr.Fprintln(w, "initial:")
	Board(w, p, p.InitColist)

	colist := p.InitColist.Clone()
	var rectlin, steplin int
	last := puzzle.Sentinel
	for i := 1; i < hist.Len(); i++ {
		m := hist[i]
		if m.Piece == last.Piece {
			if m.Dir != last.Dir {
				steplin++
			}
		} else {
			steplin++
			rectlin++
		}
		colist = colist.With(m.Piece, colist[m.Piece].Add(m.Dir))
		pr.Fprintf(w, "step %d, rectlin %d, strlin %d: %q to %s:\n",
			i, rectlin, steplin, p.Pieces[m.Piece].Name, m.Dir)
		Board(w, p, colist)
		last = m
	}
}

// Info prints a short description of p's board, mirror setting, goal kind,
// and class legend (original_source/hakocom.py's printpuzzle).
func Info(w io.Writer, p *puzzle.Puzzle) {
	pr := message.NewPrinter(language.English)

	pr.Fprintf(w, "puzzle: %s\n", p.Name)
	pr.Fprintf(w, "        (y, x) = (%d, %d) (including border)\n", p.BoardHeight, p.BoardWidth)
	pr.Fprintf(w, "        mirrorident = %t\n", p.MirrorIdent)
	if p.Goal.Hash != nil {
		pr.Fprintf(w, "        goaltype = byclasshash (hash = %x)\n", *p.Goal.Hash)
	} else {
		pr.Fprintln(w, "        goaltype = byid/byclass")
	}

	pr.Fprintln(w, "koma classes:")
	for ci := 1; ci < len(p.Classes); ci++ {
		cls := p.Classes[ci]
		pr.Fprintf(w, "  (#%2d) %s: size = (%d, %d)\n", ci, cls.Name, cls.Height, cls.Width)
		pr.Fprint(w, "        koma = {")
		for k := 1; k <= p.NumPieces(); k++ {
			if int(p.Pieces[k].Class) == ci {
				pr.Fprintf(w, "%s, ", p.Pieces[k].Name)
			}
		}
		pr.Fprintln(w, "}")
		for _, row := range cls.Rows {
			pr.Fprint(w, "        ")
			for x := 0; x < cls.Width; x++ {
				if row&(1<<uint(x)) != 0 {
					pr.Fprint(w, "o ")
				} else {
					pr.Fprint(w, ". ")
				}
			}
			pr.Fprintln(w)
		}
	}
}
