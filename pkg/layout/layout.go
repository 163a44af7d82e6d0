// Package layout generates a grid skeleton - a black-cell pattern under
// 180-degree rotational symmetry, validated for connectivity and minimum
// word length - as a board.Config a caller can hand to board.New (and the
// resulting Board to pkg/constraint) without writing one by hand.
//
// This is a collaborator of the solver core, not part of it: nothing in
// pkg/board or pkg/constraint imports this package, matching the
// generate-then-solve split original_source/solver/src/layout.rs and the
// teacher's pkg/grid draw between laying out a skeleton and filling it.
//
// Grounded on the teacher's pkg/grid/{generator,seed,symmetry,connectivity,
// wordlength}.go, retargeted to produce []board.Coord black cells for a
// board.Config instead of a teacher-style grid.Grid.
package layout

import (
	"errors"
	"math/rand"

	"github.com/crossplay/backend/pkg/board"
)

// Density is a named black-square density preset, mirroring the teacher's
// Difficulty levels (generator.go's getDifficultyDensity).
type Density string

const (
	// Sparse is a low black-square density: easier to fill, longer words.
	Sparse Density = "sparse"
	// Balanced is a moderate density, the typical open-grid target.
	Balanced Density = "balanced"
	// Dense is a high black-square density: shorter words, more constrained.
	Dense Density = "dense"
)

func densityFraction(d Density) float64 {
	switch d {
	case Sparse:
		return 0.06
	case Dense:
		return 0.12
	default:
		return 0.08
	}
}

// MinWordLength is the shortest slot length a generated layout tolerates
// (spec.md's Board treats any run of length >= 2 as a slot, but a
// generated skeleton targets ordinary crossword word lengths).
const MinWordLength = 3

// MaxAttempts bounds how many random skeletons Generate tries before
// giving up, matching the teacher's MaxGenerationAttempts.
const MaxAttempts = 1000

// ErrGenerationFailed is returned when no valid skeleton was found within
// MaxAttempts tries.
var ErrGenerationFailed = errors.New("layout: failed to generate a valid grid after maximum attempts")

// Config parameterizes Generate.
type Config struct {
	Width, Height int
	Density       Density // zero value resolves to Balanced
	Seed          int64   // 0 picks a fixed default seed (no wall-clock dependency)
}

// Generate produces a board.Config with a symmetric, connected black-cell
// pattern containing no slot shorter than MinWordLength. It retries with a
// freshly seeded random layout up to MaxAttempts times.
func Generate(config Config) (board.Config, error) {
	fraction := densityFraction(config.Density)
	seed := config.Seed
	if seed == 0 {
		seed = 1
	}

	attempts := rand.New(rand.NewSource(seed))
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		black := seedBlackCells(config.Width, config.Height, attempts.Int63(), fraction)
		black = mirror(config.Width, config.Height, black)

		if !connected(config.Width, config.Height, black) {
			continue
		}
		if hasShortRuns(config.Width, config.Height, black) {
			continue
		}

		coords := make([]board.Coord, 0, len(black))
		for c := range black {
			coords = append(coords, c)
		}
		return board.Config{Width: config.Width, Height: config.Height, BlackCells: coords}, nil
	}

	return board.Config{}, ErrGenerationFailed
}

// seedBlackCells randomly places black cells in the top-left quadrant,
// which mirror fills in to the full, symmetric pattern.
func seedBlackCells(width, height int, seed int64, fraction float64) map[board.Coord]bool {
	r := rand.New(rand.NewSource(seed))

	total := width * height
	target := int(float64(total) * fraction / 2)

	quadW, quadH := width/2, height/2
	centerR, centerC := height/2, width/2

	type pos struct{ row, col int }
	positions := make([]pos, 0, quadW*quadH)
	for row := 0; row < quadH; row++ {
		for col := 0; col < quadW; col++ {
			positions = append(positions, pos{row, col})
		}
	}
	r.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	black := make(map[board.Coord]bool, target*2)
	placed := 0
	for _, p := range positions {
		if placed >= target {
			break
		}
		if p.row == centerR && p.col == centerC {
			continue
		}
		black[board.Coord{Row: p.row, Col: p.col}] = true
		placed++
	}
	return black
}

// mirror adds the 180-degree rotational counterpart of every black cell.
func mirror(width, height int, black map[board.Coord]bool) map[board.Coord]bool {
	out := make(map[board.Coord]bool, len(black)*2)
	for c := range black {
		out[c] = true
		out[board.Coord{Row: height - 1 - c.Row, Col: width - 1 - c.Col}] = true
	}
	return out
}

// connected reports whether every white cell is reachable from the grid's
// center via 4-directional moves, via breadth-first flood fill.
func connected(width, height int, black map[board.Coord]bool) bool {
	centerR, centerC := height/2, width/2
	if black[board.Coord{Row: centerR, Col: centerC}] {
		return false
	}

	totalWhite := width*height - len(black)
	if totalWhite == 0 {
		return false
	}

	visited := make(map[board.Coord]bool, totalWhite)
	queue := []board.Coord{{Row: centerR, Col: centerC}}
	visited[queue[0]] = true

	dirs := []board.Coord{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			next := board.Coord{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if next.Row < 0 || next.Row >= height || next.Col < 0 || next.Col >= width {
				continue
			}
			if visited[next] || black[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return len(visited) == totalWhite
}

// hasShortRuns reports whether any across or down run of white cells has
// length in [2, MinWordLength) - a single isolated white cell is fine, but
// a run of exactly 2 cells (say) when MinWordLength is 3 is not.
func hasShortRuns(width, height int, black map[board.Coord]bool) bool {
	for row := 0; row < height; row++ {
		run := 0
		for col := 0; col < width; col++ {
			if black[board.Coord{Row: row, Col: col}] {
				if run > 1 && run < MinWordLength {
					return true
				}
				run = 0
			} else {
				run++
			}
		}
		if run > 1 && run < MinWordLength {
			return true
		}
	}

	for col := 0; col < width; col++ {
		run := 0
		for row := 0; row < height; row++ {
			if black[board.Coord{Row: row, Col: col}] {
				if run > 1 && run < MinWordLength {
					return true
				}
				run = 0
			} else {
				run++
			}
		}
		if run > 1 && run < MinWordLength {
			return true
		}
	}
	return false
}
