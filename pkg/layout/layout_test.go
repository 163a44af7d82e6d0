package layout

import (
	"testing"

	"github.com/crossplay/backend/pkg/board"
)

func TestDensityFraction(t *testing.T) {
	tests := []struct {
		name    string
		density Density
		want    float64
	}{
		{"sparse", Sparse, 0.06},
		{"balanced", Balanced, 0.08},
		{"dense", Dense, 0.12},
		{"unknown defaults to balanced", Density("unknown"), 0.08},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := densityFraction(tt.density); got != tt.want {
				t.Errorf("densityFraction(%v) = %v, want %v", tt.density, got, tt.want)
			}
		})
	}
}

func TestGenerate_ProducesSymmetricPattern(t *testing.T) {
	cfg, err := Generate(Config{Width: 11, Height: 11, Seed: 7})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	black := make(map[[2]int]bool, len(cfg.BlackCells))
	for _, c := range cfg.BlackCells {
		black[[2]int{c.Row, c.Col}] = true
	}
	for _, c := range cfg.BlackCells {
		mirror := [2]int{cfg.Height - 1 - c.Row, cfg.Width - 1 - c.Col}
		if !black[mirror] {
			t.Errorf("black cell (%d,%d) has no symmetric counterpart at %v", c.Row, c.Col, mirror)
		}
	}
}

func TestGenerate_CenterCellNeverBlack(t *testing.T) {
	cfg, err := Generate(Config{Width: 9, Height: 9, Seed: 3})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for _, c := range cfg.BlackCells {
		if c.Row == 4 && c.Col == 4 {
			t.Fatalf("center cell (4,4) is black, want always white")
		}
	}
}

func TestGenerate_NoShortRuns(t *testing.T) {
	cfg, err := Generate(Config{Width: 13, Height: 13, Density: Dense, Seed: 42})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if hasShortRuns(cfg.Width, cfg.Height, toSet(cfg.BlackCells)) {
		t.Errorf("generated layout has a run shorter than %d", MinWordLength)
	}
}

func TestGenerate_DifferentSeedsVaryLayout(t *testing.T) {
	a, err := Generate(Config{Width: 11, Height: 11, Seed: 1})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	b, err := Generate(Config{Width: 11, Height: 11, Seed: 2})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(a.BlackCells) == len(b.BlackCells) && sameCells(a.BlackCells, b.BlackCells) {
		t.Errorf("two different seeds produced an identical layout")
	}
}

func toSet(coords []board.Coord) map[board.Coord]bool {
	m := make(map[board.Coord]bool, len(coords))
	for _, c := range coords {
		m[c] = true
	}
	return m
}

func sameCells(a, b []board.Coord) bool {
	if len(a) != len(b) {
		return false
	}
	setA := toSet(a)
	for _, c := range b {
		if !setA[c] {
			return false
		}
	}
	return true
}
