// Package board implements the crossword grid: cells with letter domains,
// the slot inventory derived from the black-cell pattern, and the
// cell-to-slot incidence table the constraint engine propagates over.
//
// Grounded on the teacher's pkg/grid (Cell/Grid/Entry types and
// pkg/grid/entries.go's scan-for-runs slot enumeration), generalized from
// a single assigned Letter per cell to a full letterset.LetterSet domain
// per spec.md §3-4.3, the way original_source/solver/src/grid.rs carries
// a Domain instead of a single rune.
package board

import (
	"fmt"

	"github.com/crossplay/backend/pkg/letterset"
)

// Direction is the orientation of a Slot.
type Direction int

const (
	// Across is a horizontal run, left to right.
	Across Direction = iota
	// Down is a vertical run, top to bottom.
	Down
)

func (d Direction) String() string {
	switch d {
	case Across:
		return "across"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Coord is a zero-indexed (row, col) grid position.
type Coord struct {
	Row, Col int
}

// Cell is a single grid position. Non-black cells carry a letter domain
// that only ever shrinks within one search branch (spec.md §3 invariant);
// black cells have a permanently empty domain and belong to no slot.
type Cell struct {
	Row, Col int
	IsBlack  bool
	Domain   letterset.LetterSet
	Fixed    bool // true if this cell's letter was pre-fixed by the input
}

// Slot is a maximal straight run of >= 2 non-black cells.
type Slot struct {
	ID        int
	Direction Direction
	Cells     []Coord // length == Len, in traversal order
}

// Len is the number of cells in the slot.
func (s *Slot) Len() int {
	return len(s.Cells)
}

// Board is the grid skeleton (size, black pattern, slot list, incidence)
// plus the mutable per-cell domains the constraint engine tightens during
// solve. The skeleton is immutable after New; only Cell.Domain and
// Cell.Fixed-derived state change during a search.
type Board struct {
	Width, Height int
	cells         [][]Cell // [row][col]
	Slots         []*Slot
	// incidence[row][col] lists the slot ids passing through that cell (at
	// most two: one across, one down).
	incidence [][][]int
}

// FixedCell pre-assigns letter to the cell at (Row, Col).
type FixedCell struct {
	Row, Col int
	Letter   byte
}

// Config is the host-supplied grid configuration (spec.md §6).
type Config struct {
	Width, Height int
	BlackCells    []Coord
	FixedCells    []FixedCell
}

// ErrMalformedInput is returned by New when config describes an
// impossible grid: out-of-range coordinates, duplicate black cells, a
// fixed letter on a black cell, or a non-letter fixed letter.
type ErrMalformedInput struct {
	Reason string
}

func (e *ErrMalformedInput) Error() string {
	return fmt.Sprintf("malformed grid configuration: %s", e.Reason)
}

// New constructs a Board from config: every cell starts white with a full
// domain, black cells are marked and emptied, fixed cells are narrowed to
// a singleton domain, and the slot inventory plus cell-to-slot incidence
// is computed (spec.md §4.3).
func New(config Config) (*Board, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, &ErrMalformedInput{Reason: "width and height must be positive"}
	}

	b := &Board{Width: config.Width, Height: config.Height}
	b.cells = make([][]Cell, config.Height)
	for r := range b.cells {
		b.cells[r] = make([]Cell, config.Width)
		for c := range b.cells[r] {
			b.cells[r][c] = Cell{Row: r, Col: c, Domain: letterset.Full}
		}
	}

	seenBlack := make(map[Coord]bool, len(config.BlackCells))
	for _, bc := range config.BlackCells {
		if !b.inBounds(bc.Row, bc.Col) {
			return nil, &ErrMalformedInput{Reason: fmt.Sprintf("black cell (%d,%d) out of range", bc.Row, bc.Col)}
		}
		if seenBlack[bc] {
			return nil, &ErrMalformedInput{Reason: fmt.Sprintf("duplicate black cell (%d,%d)", bc.Row, bc.Col)}
		}
		seenBlack[bc] = true
		cell := &b.cells[bc.Row][bc.Col]
		cell.IsBlack = true
		cell.Domain = letterset.Empty
	}

	for _, fc := range config.FixedCells {
		if !b.inBounds(fc.Row, fc.Col) {
			return nil, &ErrMalformedInput{Reason: fmt.Sprintf("fixed cell (%d,%d) out of range", fc.Row, fc.Col)}
		}
		cell := &b.cells[fc.Row][fc.Col]
		if cell.IsBlack {
			return nil, &ErrMalformedInput{Reason: fmt.Sprintf("fixed cell (%d,%d) is black", fc.Row, fc.Col)}
		}
		singleton := letterset.Singleton(fc.Letter)
		if singleton.IsEmpty() {
			return nil, &ErrMalformedInput{Reason: fmt.Sprintf("fixed letter %q at (%d,%d) is not A-Z", fc.Letter, fc.Row, fc.Col)}
		}
		cell.Domain = singleton
		cell.Fixed = true
	}

	b.computeSlots()
	return b, nil
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.Height && col >= 0 && col < b.Width
}

// Cell returns the cell at (row, col).
func (b *Board) Cell(row, col int) *Cell {
	return &b.cells[row][col]
}

// SlotsAt returns the ids of the slots passing through (row, col).
func (b *Board) SlotsAt(row, col int) []int {
	return b.incidence[row][col]
}

// Slot returns the slot with the given id.
func (b *Board) Slot(id int) *Slot {
	return b.Slots[id]
}

// Snapshot captures every cell's current domain, for the constraint
// engine's backtracking to restore on a failed branch (spec.md §4.4.2).
func (b *Board) Snapshot() [][]letterset.LetterSet {
	snap := make([][]letterset.LetterSet, b.Height)
	for r := range b.cells {
		snap[r] = make([]letterset.LetterSet, b.Width)
		for c := range b.cells[r] {
			snap[r][c] = b.cells[r][c].Domain
		}
	}
	return snap
}

// Restore overwrites every cell's domain from a prior Snapshot.
func (b *Board) Restore(snap [][]letterset.LetterSet) {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c].Domain = snap[r][c]
		}
	}
}

// AllSingletons reports whether every non-black cell currently has a
// singleton domain, i.e. the board is fully (and consistently) solved.
func (b *Board) AllSingletons() bool {
	for r := range b.cells {
		for c := range b.cells[r] {
			cell := &b.cells[r][c]
			if cell.IsBlack {
				continue
			}
			if _, ok := cell.Domain.IsSingleton(); !ok {
				return false
			}
		}
	}
	return true
}

// Grid renders the board as a row-major 2-D array of characters: '#' for
// black cells, the assigned uppercase letter for a singleton-domain cell,
// or '?' for any non-black cell that is not currently a singleton
// (spec.md §6 — this should never occur when called on a successful
// solve).
func (b *Board) Grid() [][]byte {
	out := make([][]byte, b.Height)
	for r := range b.cells {
		out[r] = make([]byte, b.Width)
		for c := range b.cells[r] {
			cell := &b.cells[r][c]
			switch {
			case cell.IsBlack:
				out[r][c] = '#'
			default:
				if letter, ok := cell.Domain.IsSingleton(); ok {
					out[r][c] = letter
				} else {
					out[r][c] = '?'
				}
			}
		}
	}
	return out
}
