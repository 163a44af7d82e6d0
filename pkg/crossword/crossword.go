// Package crossword is the host-facing entry point: it wires pkg/wordlist,
// pkg/lexicon, pkg/board, and pkg/constraint into the single call a caller
// actually wants - "fill this grid with these words" - and reports the
// outcome without ever requiring the caller to touch a Board or an Engine
// directly (spec.md §6/§7).
package crossword

import (
	"github.com/crossplay/backend/pkg/board"
	"github.com/crossplay/backend/pkg/constraint"
	"github.com/crossplay/backend/pkg/lexicon"
	"github.com/crossplay/backend/pkg/wordlist"
	"github.com/google/uuid"
)

// Coord is a zero-indexed (row, col) grid position.
type Coord = board.Coord

// FixedCell pins a cell to a known letter before solving begins.
type FixedCell = board.FixedCell

// GridConfig describes the grid shape a caller wants filled.
type GridConfig struct {
	Width, Height int
	BlackCells    []Coord
	FixedCells    []FixedCell
}

// Status classifies how a Solve call ended.
type Status int

const (
	// StatusSuccess means every non-black cell resolved to a single letter
	// forming accepted words along every slot.
	StatusSuccess Status = iota
	// StatusFailed means the grid and word list are individually
	// well-formed but no consistent assignment exists.
	StatusFailed
	// StatusError means config or words failed validation before solving
	// could begin (a malformed GridConfig, most commonly).
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Outcome is the result of a Solve call.
type Outcome struct {
	// Grid is the row-major rendering (see pkg/board.Grid): '#' for black,
	// 'A'-'Z' for a resolved letter. Nil unless Status == StatusSuccess.
	Grid [][]byte
	// Status classifies the outcome.
	Status Status
	// Reason is a human-readable explanation, populated for
	// StatusFailed/StatusError.
	Reason string
	// SessionID identifies this Solve invocation for log correlation; it
	// carries no meaning beyond that (no persistence, no replay).
	SessionID uuid.UUID
}

// Solve builds a Board from config and a Lexicon from words, runs
// constraint propagation and backtracking search, and reports the result.
// It never panics on malformed input; a malformed GridConfig is reported
// as StatusError rather than returned as a Go error, so a caller gets a
// uniform Outcome regardless of which stage failed.
func Solve(config GridConfig, words []string) Outcome {
	sessionID := uuid.New()

	b, err := board.New(board.Config{
		Width:      config.Width,
		Height:     config.Height,
		BlackCells: config.BlackCells,
		FixedCells: config.FixedCells,
	})
	if err != nil {
		return Outcome{Status: StatusError, Reason: err.Error(), SessionID: sessionID}
	}

	list := wordlist.FromSlice(words)
	lex := lexicon.NewWithCache(4096)
	for _, w := range list.Words() {
		lex.Insert(w)
	}

	engine := constraint.New(b, lex)
	if err := engine.Solve(); err != nil {
		return Outcome{Status: StatusFailed, Reason: err.Error(), SessionID: sessionID}
	}

	return Outcome{Grid: b.Grid(), Status: StatusSuccess, SessionID: sessionID}
}
