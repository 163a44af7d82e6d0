package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/crossplay/backend/pkg/board"
	"github.com/crossplay/backend/pkg/constraint"
	"github.com/crossplay/backend/pkg/lexicon"
	"github.com/crossplay/backend/pkg/wordlist"
	"github.com/spf13/cobra"
)

var (
	solveGrid     string
	solveWordlist string
	solveCache    string
	solveTimeout  time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Fill a crossword grid with words from a dictionary",
	Long: `solve reads a grid definition and a word list, then fills the grid
using constraint propagation and backtracking search.

Examples:
  # Solve using a plain word list
  crosssolve solve --grid grid.json --wordlist words.txt

  # Solve using Peter Broda's WORD;SCORE format via the sqlite cache
  crosssolve solve --grid grid.json --wordlist broda.txt --cache ./wordlist_cache.db`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveGrid, "grid", "g", "", "path to grid definition JSON (required)")
	solveCmd.Flags().StringVarP(&solveWordlist, "wordlist", "w", "", "path to word list (plain text, or Broda WORD;SCORE with --cache)")
	solveCmd.Flags().StringVarP(&solveCache, "cache", "c", "", "sqlite cache of a compiled Broda word list")
	solveCmd.Flags().DurationVarP(&solveTimeout, "timeout", "t", 0, "abort the search after this long (0 = no limit)")
	solveCmd.MarkFlagRequired("grid")
}

func runSolve(cmd *cobra.Command, args []string) error {
	config, err := loadGridConfig(solveGrid)
	if err != nil {
		return err
	}

	words, err := resolveWords()
	if err != nil {
		return err
	}
	logInfo("loaded %d candidate words", len(words))

	b, err := board.New(config)
	if err != nil {
		return fmt.Errorf("invalid grid: %w", err)
	}

	lex := lexicon.NewWithCache(4096)
	list := wordlist.FromSlice(words)
	for _, w := range list.Words() {
		lex.Insert(w)
	}
	if list.Skipped > 0 {
		logInfo("skipped %d malformed word list entries", list.Skipped)
	}

	engine := constraint.New(b, lex)
	if solveTimeout > 0 {
		deadline := time.Now().Add(solveTimeout)
		engine.ShouldStop = func() bool { return time.Now().After(deadline) }
	}

	start := time.Now()
	err = engine.Solve()
	elapsed := time.Since(start)

	switch err {
	case nil:
		printGrid(b.Grid())
		logInfo("solved in %s", elapsed)
		return nil
	case constraint.ErrCancelled:
		fmt.Fprintln(os.Stderr, "solve: cancelled after timeout")
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "solve: no solution (%v)\n", err)
		os.Exit(1)
	}
	return nil
}

func resolveWords() ([]string, error) {
	if solveCache != "" {
		store, err := wordlist.OpenCache(solveCache)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		if solveWordlist != "" {
			list, err := wordlist.LoadBroda(solveWordlist)
			if err != nil {
				return nil, err
			}
			if err := store.Save(list); err != nil {
				return nil, err
			}
			return list.Words(), nil
		}

		list, err := store.Load()
		if err != nil {
			return nil, err
		}
		return list.Words(), nil
	}

	if solveWordlist == "" {
		return nil, fmt.Errorf("--wordlist or --cache is required")
	}
	return loadWords(solveWordlist)
}

func printGrid(grid [][]byte) {
	for _, row := range grid {
		fmt.Println(string(row))
	}
}
