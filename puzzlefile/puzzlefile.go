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

// Package puzzlefile parses the XML puzzle description (spec.md §6) into a
// puzzle.Puzzle, applying the well-formedness checks and goal-kind
// elevation/degradation rules of the original format (original_source's
// readpuzzle.py).
package puzzlefile

import (
	"encoding/xml"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/hakoiri/solver/coord"
	"github.com/hakoiri/solver/piece"
	"github.com/hakoiri/solver/puzzle"
	"github.com/hakoiri/solver/schash"
)

type xmlPuzzle struct {
	Name    string     `xml:"name,attr"`
	Board   xmlBoard   `xml:"board"`
	Clssiz  xmlClssiz  `xml:"clssiz"`
	Komaset xmlKomaset `xml:"komaset"`
}

type xmlBoard struct {
	Size        string   `xml:"size"`
	ExtWalls    []string `xml:"extwall"`
	MirrorIdent *string  `xml:"mirrorident"`
	GoalType    *string  `xml:"goaltype"`
}

type xmlClssiz struct {
	Classes []xmlClass `xml:"class"`
}

type xmlClass struct {
	Name   string  `xml:"name,attr"`
	Size   string  `xml:"size"`
	Bitmap *string `xml:"bitmap"`
}

type xmlKomaset struct {
	Komas []xmlKoma `xml:"koma"`
}

type xmlKoma struct {
	Name  string  `xml:"name,attr"`
	Short *string `xml:"short"`
	Class string  `xml:"class"`
	Init  string  `xml:"init"`
	Goal  *string `xml:"goal"`
}

// Load reads and parses the puzzle file at path, returning a fully checked
// puzzle.Puzzle or the first input error encountered (spec.md §7's "input
// error" kind - reported once, fatal at setup).
func Load(path string) (*puzzle.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "puzzlefile: open %q", path)
	}
	var x xmlPuzzle
	if err := xml.Unmarshal(data, &x); err != nil {
		return nil, errors.Wrapf(err, "puzzlefile: parse %q", path)
	}
	if x.Name == "" {
		return nil, errors.Errorf("puzzlefile: %q: not a puzzle file?", path)
	}
	return build(&x)
}

func parseCoord(s string) (coord.Coord, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ",", 2)
	if len(parts) != 2 {
		return coord.None, errors.Errorf("puzzlefile: %q is not coords", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return coord.None, errors.Errorf("puzzlefile: %q is not coords", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return coord.None, errors.Errorf("puzzlefile: %q is not coords", s)
	}
	return coord.New(y, x), nil
}

func parseBool(s *string, def bool) (bool, error) {
	if s == nil {
		return def, nil
	}
	switch strings.TrimSpace(*s) {
	case "True", "true":
		return true, nil
	case "False", "false":
		return false, nil
	}
	return false, errors.Errorf("puzzlefile: %q is not bool (True/False)", *s)
}

func build(x *xmlPuzzle) (*puzzle.Puzzle, error) {
	p := &puzzle.Puzzle{Name: x.Name}

	bsize, err := parseCoord(x.Board.Size)
	if err != nil {
		return nil, err
	}
	p.BoardHeight, p.BoardWidth = bsize.Y(), bsize.X()
	if p.BoardHeight < 3 || p.BoardWidth < 3 {
		return nil, errors.Errorf("puzzlefile: board size %v too small", bsize)
	}
	if p.BoardHeight > 16 || p.BoardWidth > 16 {
		return nil, errors.Errorf("puzzlefile: board size %v exceeds 16x16", bsize)
	}

	for _, ew := range x.Board.ExtWalls {
		co, err := parseCoord(ew)
		if err != nil {
			return nil, err
		}
		p.ExtraWalls = append(p.ExtraWalls, co)
	}

	mirrorIdent, err := parseBool(x.Board.MirrorIdent, true)
	if err != nil {
		return nil, err
	}

	goalKind := puzzle.ByClass
	if x.Board.GoalType != nil {
		switch strings.TrimSpace(*x.Board.GoalType) {
		case "byid":
			goalKind = puzzle.ByID
		case "byclass":
			goalKind = puzzle.ByClass
		default:
			return nil, errors.Errorf("puzzlefile: unknown goaltype %q", *x.Board.GoalType)
		}
	}

	classes, classIDs, err := buildClasses(x.Clssiz.Classes)
	if err != nil {
		return nil, err
	}
	p.Classes = classes
	if !allMirror(classes) {
		mirrorIdent = false
	}
	p.MirrorIdent = mirrorIdent

	pieces, initColist, goalCoords, err := buildPieces(x.Komaset.Komas, classIDs)
	if err != nil {
		return nil, err
	}
	p.Pieces = pieces
	p.InitColist = initColist

	goal, err := buildGoal(p, goalKind, goalCoords)
	if err != nil {
		return nil, err
	}
	p.Goal = goal

	if err := checkColist(p, p.InitColist); err != nil {
		return nil, err
	}
	return p, nil
}

func buildClasses(xc []xmlClass) ([]piece.Class, map[string]piece.ClassID, error) {
	classes := []piece.Class{{}}
	ids := map[string]piece.ClassID{}
	for i, c := range xc {
		if _, dup := ids[c.Name]; dup {
			return nil, nil, errors.Errorf("puzzlefile: duplicated class name %q", c.Name)
		}

		size, err := parseCoord(c.Size)
		if err != nil {
			return nil, nil, err
		}
		height, width := size.Y(), size.X()

		var rows []uint32
		if c.Bitmap != nil {
			rows, err = parseBitmap(*c.Bitmap, height, width)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "puzzlefile: class %q", c.Name)
			}
		} else {
			full := uint32(1)<<uint(width) - 1
			rows = make([]uint32, height)
			for y := range rows {
				rows[y] = full
			}
		}

		cid := piece.ClassID(i + 1)
		cls := piece.Class{ID: cid, Name: c.Name, Height: height, Width: width, Rows: rows}
		if !cls.Valid() {
			return nil, nil, errors.Errorf("puzzlefile: class %q has an all-zero row or column", c.Name)
		}
		classes = append(classes, cls)
		ids[c.Name] = cid
	}
	return classes, ids, nil
}

// parseBitmap strips everything but '0'/'1' and reads height rows of width
// bits each, each row reversed before packing (the original's
// `bmpstr[kx-1::-1]` - leftmost character is bit 0, the class's left edge).
func parseBitmap(raw string, height, width int) ([]uint32, error) {
	var b strings.Builder
	for _, r := range raw {
		if r == '0' || r == '1' {
			b.WriteRune(r)
		}
	}
	bits := b.String()
	if len(bits) != height*width {
		return nil, errors.Errorf("bitmap %q does not match size (%d, %d)", raw, height, width)
	}
	rows := make([]uint32, height)
	for y := 0; y < height; y++ {
		row := bits[y*width : (y+1)*width]
		var packed uint32
		for x := 0; x < width; x++ {
			if row[x] == '1' {
				packed |= 1 << uint(x)
			}
		}
		rows[y] = packed
	}
	return rows, nil
}

func allMirror(classes []piece.Class) bool {
	for i := 1; i < len(classes); i++ {
		if !classes[i].Mirror() {
			return false
		}
	}
	return true
}

func buildPieces(xk []xmlKoma, classIDs map[string]piece.ClassID) ([]piece.Piece, puzzle.Colist, map[piece.ID]coord.Coord, error) {
	pieces := []piece.Piece{{}}
	initColist := puzzle.Colist{coord.None}
	goalCoords := map[piece.ID]coord.Coord{}
	shorts := map[piece.ID]string{}
	usedShort := map[string]bool{}

	if len(xk) > schash.MaxPieces {
		return nil, nil, nil, errors.Errorf("puzzlefile: %d komas exceed the limit of %d", len(xk), schash.MaxPieces)
	}

	for i, k := range xk {
		id := piece.ID(i + 1)
		cid, ok := classIDs[k.Class]
		if !ok {
			return nil, nil, nil, errors.Errorf("puzzlefile: komaclass name %q not defined", k.Class)
		}
		init, err := parseCoord(k.Init)
		if err != nil {
			return nil, nil, nil, err
		}
		if k.Short != nil {
			s := padShort(*k.Short)
			if usedShort[s] {
				return nil, nil, nil, errors.Errorf("puzzlefile: short name %q duplicates for koma %q", s, k.Name)
			}
			usedShort[s] = true
			shorts[id] = s
		}
		if k.Goal != nil {
			gco, err := parseCoord(*k.Goal)
			if err != nil {
				return nil, nil, nil, err
			}
			goalCoords[id] = gco
		}
		pieces = append(pieces, piece.Piece{ID: id, Class: cid, Name: k.Name, Init: init})
		initColist = append(initColist, init)
	}

	if len(goalCoords) == 0 {
		return nil, nil, nil, errors.New("puzzlefile: no goal")
	}

	for i := 1; i < len(pieces); i++ {
		id := piece.ID(i)
		if s, ok := shorts[id]; ok {
			pieces[i].ShortName = s
			continue
		}
		s, err := autoShort(pieces[i].Name, id, usedShort)
		if err != nil {
			return nil, nil, nil, err
		}
		pieces[i].ShortName = s
		usedShort[s] = true
	}

	return pieces, initColist, goalCoords, nil
}

func padShort(s string) string {
	for len(s) < 2 {
		s += " "
	}
	return s[:2]
}

func autoShort(name string, id piece.ID, used map[string]bool) (string, error) {
	if name == "" {
		return "", errors.Errorf("puzzlefile: koma %d has no name", id)
	}
	if len(name) == 1 {
		s := name + " "
		if used[s] {
			return "", errors.Errorf("puzzlefile: duplicated 1-letter koma name %q", name)
		}
		return s, nil
	}
	for i := 1; i < len(name); i++ {
		s := string(name[0]) + string(name[i])
		if !used[s] {
			return s, nil
		}
	}
	return "", errors.Errorf("puzzlefile: duplicated auto-generated short name for %q", name)
}

// buildGoal applies spec.md §4.4's elevation/degradation rule: a by-class
// goal where every piece has a goal coord is elevated to by-class-hash; a
// by-class goal where every goal-specified piece is the only one of its
// class is degraded to by-id.
func buildGoal(p *puzzle.Puzzle, kind puzzle.GoalKind, goalCoords map[piece.ID]coord.Coord) (puzzle.Goal, error) {
	n := p.NumPieces()

	if kind == puzzle.ByClass && len(goalCoords) == n {
		full := make(puzzle.Colist, n+1)
		for id, co := range goalCoords {
			full[id] = co
		}
		return puzzle.NewHashGoal(p.Hash(full)), nil
	}

	if kind == puzzle.ByClass && allUniqueInClass(p, goalCoords) {
		kind = puzzle.ByID
	}

	ids := make([]piece.ID, 0, len(goalCoords))
	for id := range goalCoords {
		ids = append(ids, id)
	}
	sortIDs(ids)

	switch kind {
	case puzzle.ByID:
		gts := make([]puzzleGoalTarget, len(ids))
		for i, id := range ids {
			gts[i] = byIDGoalTarget(id, goalCoords[id])
		}
		return assembleGoal(gts), nil
	default:
		gts := make([]puzzleGoalTarget, len(ids))
		for i, id := range ids {
			gts[i] = byClassGoalTarget(p.ClassOf(id), goalCoords[id])
		}
		return assembleGoal(gts), nil
	}
}

func allUniqueInClass(p *puzzle.Puzzle, goalCoords map[piece.ID]coord.Coord) bool {
	n := p.NumPieces()
	for id := range goalCoords {
		cls := p.ClassOf(id)
		count := 0
		for k := 1; k <= n; k++ {
			if p.ClassOf(piece.ID(k)) == cls {
				count++
			}
		}
		if count > 1 {
			return false
		}
	}
	return true
}

func sortIDs(ids []piece.ID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}

// puzzleGoalTarget is the one-element GoalSpec each constructor below
// produces; assembleGoal concatenates their Targets into a single GoalSpec.
type puzzleGoalTarget = puzzle.Goal

func byIDGoalTarget(id piece.ID, co coord.Coord) puzzleGoalTarget {
	return puzzle.NewTargetGoal(puzzle.ByIDTarget(id, co))
}

func byClassGoalTarget(c piece.ClassID, co coord.Coord) puzzleGoalTarget {
	return puzzle.NewTargetGoal(puzzle.ByClassTarget(c, co))
}

func assembleGoal(targets []puzzleGoalTarget) puzzle.Goal {
	g := puzzle.NewTargetGoal()
	for _, t := range targets {
		g.Targets = append(g.Targets, t.Targets...)
	}
	return g
}

// checkColist checks that every piece's coordinate is in bounds and that no
// two pieces overlap (original_source/readpuzzle.py's checkcolist).
func checkColist(p *puzzle.Puzzle, colist puzzle.Colist) error {
	b := p.NewBoard()
	for k := 1; k <= p.NumPieces(); k++ {
		id := piece.ID(k)
		co := colist[id]
		if co == coord.None {
			continue
		}
		cls := p.Class(id)
		if co.Y()+cls.Height > p.BoardHeight || co.X()+cls.Width > p.BoardWidth {
			return errors.Errorf("puzzlefile: koma %d (%q) at %v exceeds board size", id, p.Pieces[id].Name, co)
		}
		if b.Collide(cls, co) {
			return errors.Errorf("puzzlefile: koma %d (%q) collides at %v", id, p.Pieces[id].Name, co)
		}
		b.Stamp(cls, co, 0)
	}
	return nil
}
