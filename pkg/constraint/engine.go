// Package constraint implements the two halves of the solver's constraint
// satisfaction: arc-consistency propagation over slots (spec.md §4.4.1)
// and minimum-remaining-values backtracking search (spec.md §4.4.2).
//
// Grounded on the teacher's pkg/fill (fillRecursive's backtrack-then-undo
// shape, and pattern.go/placement.go's per-entry fill/unfill) generalized
// from single-candidate-word placement to per-cell-letter-domain
// propagation, the way original_source/solver/src/solver.rs's Solver
// generalizes the same idea with an explicit work queue and Domain
// bitmasks instead of string patterns.
package constraint

import (
	"fmt"

	"github.com/crossplay/backend/pkg/board"
	"github.com/crossplay/backend/pkg/letterset"
	"github.com/crossplay/backend/pkg/lexicon"
)

// ErrInconsistent is returned by Propagate when some slot has no
// completion consistent with the current domains, or a domain was driven
// to empty.
var ErrInconsistent = fmt.Errorf("constraints are unsatisfiable")

// Engine borrows a Board and a read-only Lexicon for the duration of a
// solve. It owns the backtracking stack (via recursion) but no other
// state; the board's cell domains are the entire mutable search state
// (spec.md §4.4.2 "Snapshot strategy").
type Engine struct {
	b   *board.Board
	lex *lexicon.Lexicon

	// ShouldStop is an optional cooperative cancellation check, polled at
	// every backtrack step (spec.md §5: "the only extension point
	// touching control flow"). A nil ShouldStop never stops the search.
	ShouldStop func() bool
}

// New builds an Engine over b and lex. b is borrowed for the lifetime of
// any Solve/Propagate call; lex is shared read-only and built once by the
// caller.
func New(b *board.Board, lex *lexicon.Lexicon) *Engine {
	return &Engine{b: b, lex: lex}
}

// Propagate runs arc consistency to a fixed point: it repeatedly computes
// each queued slot's lexicon possibility mask against the slot's cells'
// current domains, intersects it in, and re-queues any other slot through
// a cell whose domain shrank, until the queue drains or a domain (or a
// whole slot) is driven empty.
//
// Propagate is idempotent and monotone by construction: it only ever
// narrows a domain via intersection, and re-running it with nothing
// re-enqueued is a no-op.
func (e *Engine) Propagate() error {
	queued := make([]bool, len(e.b.Slots))
	queue := make([]int, len(e.b.Slots))
	for i := range queue {
		queue[i] = i
		queued[i] = true
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		queued[id] = false

		if err := e.tighten(id, &queue, queued); err != nil {
			return err
		}
	}
	return nil
}

// tighten computes slot id's possibility mask and intersects it into each
// of its cells' domains, enqueuing any other slot through a cell whose
// domain changed (spec.md §4.4.1 "Step").
func (e *Engine) tighten(id int, queue *[]int, queued []bool) error {
	slot := e.b.Slot(id)
	domains := make([]letterset.LetterSet, slot.Len())
	for i, coord := range slot.Cells {
		domains[i] = e.b.Cell(coord.Row, coord.Col).Domain
	}

	masks := e.lex.PossibilityMasks(domains)
	if masks == nil {
		return ErrInconsistent
	}

	for i, coord := range slot.Cells {
		cell := e.b.Cell(coord.Row, coord.Col)
		narrowed := cell.Domain.Intersect(masks[i])
		if narrowed == cell.Domain {
			continue
		}
		if narrowed.IsEmpty() {
			return ErrInconsistent
		}
		cell.Domain = narrowed
		for _, other := range e.b.SlotsAt(coord.Row, coord.Col) {
			if other != id && !queued[other] {
				*queue = append(*queue, other)
				queued[other] = true
			}
		}
	}
	return nil
}
