package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/crossplay/backend/pkg/layout"
	"github.com/spf13/cobra"
)

var (
	layoutWidth   int
	layoutHeight  int
	layoutDensity string
	layoutSeed    int64
	layoutOutput  string
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Generate a symmetric grid skeleton",
	Long: `layout generates a black-cell pattern under 180-degree rotational
symmetry, validated for connectivity and minimum word length, and writes it
as a grid definition JSON that "solve" and "validate" can consume.

This is a separate concern from solving: layout only decides where the
black squares go, it never picks a word.

Examples:
  crosssolve layout --width 15 --height 15 --density balanced --output grid.json`,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)

	layoutCmd.Flags().IntVar(&layoutWidth, "width", 15, "grid width")
	layoutCmd.Flags().IntVar(&layoutHeight, "height", 15, "grid height")
	layoutCmd.Flags().StringVar(&layoutDensity, "density", "balanced", "black-square density (sparse, balanced, dense)")
	layoutCmd.Flags().Int64Var(&layoutSeed, "seed", 0, "random seed (0 picks a fixed default)")
	layoutCmd.Flags().StringVarP(&layoutOutput, "output", "o", "", "output grid JSON path (default: stdout)")
}

func runLayout(cmd *cobra.Command, args []string) error {
	config, err := layout.Generate(layout.Config{
		Width:   layoutWidth,
		Height:  layoutHeight,
		Density: layout.Density(layoutDensity),
		Seed:    layoutSeed,
	})
	if err != nil {
		return fmt.Errorf("layout generation failed: %w", err)
	}
	logInfo("generated a %dx%d layout with %d black cells", config.Width, config.Height, len(config.BlackCells))

	out := gridFile{Width: config.Width, Height: config.Height}
	for _, c := range config.BlackCells {
		out.Black = append(out.Black, struct {
			Row int `json:"row"`
			Col int `json:"col"`
		}{Row: c.Row, Col: c.Col})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode grid JSON: %w", err)
	}

	if layoutOutput == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(layoutOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write grid file: %w", err)
	}
	return nil
}
