package constraint

import (
	"fmt"

	"github.com/crossplay/backend/pkg/letterset"
)

// ErrNoSolution is returned by Solve when every candidate at every branch
// point has been exhausted without reaching a fully-assigned, consistent
// board (spec.md §4.4.2 step 5 / §7.2).
var ErrNoSolution = fmt.Errorf("no solution")

// ErrCancelled is returned when ShouldStop reports true mid-search.
var ErrCancelled = fmt.Errorf("search cancelled")

// Solve runs the initial propagation and, if consistent, the MRV
// backtracking search described in spec.md §4.4.2. On success it leaves
// the board's cells all at singleton domains and returns nil; otherwise
// it returns ErrNoSolution, ErrCancelled, or an ErrInconsistent from the
// initial propagation pass.
func (e *Engine) Solve() error {
	if err := e.Propagate(); err != nil {
		return err
	}
	return e.backtrack()
}

// backtrack implements spec.md §4.4.2's loop. Each recursive call assumes
// the board is currently arc-consistent (Propagate has just succeeded).
func (e *Engine) backtrack() error {
	if e.ShouldStop != nil && e.ShouldStop() {
		return ErrCancelled
	}

	row, col, found := e.selectBranchCell()
	if !found {
		return nil // every non-black cell is a singleton: solved
	}

	cell := e.b.Cell(row, col)
	letters := cell.Domain.Letters() // ascending A->Z, per the tie-break rule
	snapshot := e.b.Snapshot()

	for _, letter := range letters {
		cell.Domain = letterset.Singleton(letter)

		if err := e.Propagate(); err == nil {
			if err := e.backtrack(); err == nil {
				return nil
			} else if err == ErrCancelled {
				return err
			}
		} else if err != ErrInconsistent {
			return err
		}

		e.b.Restore(snapshot)
	}

	return ErrNoSolution
}

// selectBranchCell applies the minimum-remaining-values heuristic: among
// non-black cells with domain size > 1, pick the one with the smallest
// domain, breaking ties by the lowest (row, col) in row-major order
// (spec.md §4.4.2 step 2 "lowest cell id"). It considers every non-black
// cell, not only cells with an incident slot, so an isolated white cell
// (spec.md §9) is still eventually selected and resolved.
func (e *Engine) selectBranchCell() (row, col int, found bool) {
	best := 27 // one more than the largest possible domain size
	for r := 0; r < e.b.Height; r++ {
		for c := 0; c < e.b.Width; c++ {
			cell := e.b.Cell(r, c)
			if cell.IsBlack {
				continue
			}
			n := cell.Domain.Count()
			if n <= 1 {
				continue
			}
			if n < best {
				best = n
				row, col, found = r, c, true
				if best == 2 {
					return
				}
			}
		}
	}
	return
}
