package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/crossplay/backend/pkg/wordlist"
	"github.com/spf13/cobra"
)

var statsCache string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display word list cache statistics",
	Long: `stats reports the contents of a sqlite word list cache built by
"solve --cache": total word count and a breakdown by length.

Examples:
  crosssolve stats --cache ./wordlist_cache.db`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsCache, "cache", "c", "", "path to word list cache (default: ./wordlist_cache.db)")
}

func runStats(cmd *cobra.Command, args []string) error {
	dbPath := statsCache
	if dbPath == "" {
		dbPath = "./wordlist_cache.db"
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("cache database not found at %s", dbPath)
	}

	store, err := wordlist.OpenCache(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer store.Close()

	counts, err := store.LengthCounts()
	if err != nil {
		return fmt.Errorf("failed to read cache stats: %w", err)
	}

	fmt.Printf("Word List Cache Statistics\n")
	fmt.Printf("===========================\n")
	fmt.Printf("Database: %s\n\n", dbPath)

	if len(counts) == 0 {
		fmt.Println("No cached words found")
		return nil
	}

	lengths := make([]int, 0, len(counts))
	for length := range counts {
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)

	total := 0
	fmt.Println("Words by Length:")
	fmt.Println("----------------")
	for _, length := range lengths {
		fmt.Printf("  %2d letters: %d\n", length, counts[length])
		total += counts[length]
	}
	fmt.Printf("  %-9s: %d\n", "TOTAL", total)

	return nil
}
