package cmd

import (
	"fmt"
	"os"

	"github.com/crossplay/backend/pkg/board"
	"github.com/crossplay/backend/pkg/wordlist"
	"github.com/spf13/cobra"
)

var (
	validateGrid     string
	validateWordlist string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a grid definition and optional word list",
	Long: `validate checks a grid definition JSON for internal consistency
(in-range coordinates, no duplicate black cells, no fixed letter on a
black cell or outside A-Z) and, if given, reports how many entries a word
list file contributes and how many were skipped as malformed.

Examples:
  crosssolve validate --grid grid.json
  crosssolve validate --grid grid.json --wordlist words.txt`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateGrid, "grid", "g", "", "path to grid definition JSON (required)")
	validateCmd.Flags().StringVarP(&validateWordlist, "wordlist", "w", "", "path to a word list to validate alongside the grid")
	validateCmd.MarkFlagRequired("grid")
}

func runValidate(cmd *cobra.Command, args []string) error {
	config, err := loadGridConfig(validateGrid)
	if err != nil {
		fmt.Printf("grid: INVALID - %v\n", err)
		os.Exit(1)
	}

	b, err := board.New(config)
	if err != nil {
		fmt.Printf("grid: INVALID - %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("grid: VALID (%dx%d, %d slots)\n", b.Width, b.Height, len(b.Slots))

	if validateWordlist == "" {
		return nil
	}

	words, err := loadWords(validateWordlist)
	if err != nil {
		return err
	}
	list := wordlist.FromSlice(words)
	fmt.Printf("wordlist: %d accepted, %d skipped\n", list.Size(), list.Skipped)
	return nil
}
