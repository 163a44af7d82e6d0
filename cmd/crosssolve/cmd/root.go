package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	cfgFile   string
	verbosity int
)

var rootCmd = &cobra.Command{
	Use:   "crosssolve",
	Short: "Crossword constraint-satisfaction solver CLI",
	Long: `crosssolve fills crossword grids with words from a dictionary using
constraint propagation and minimum-remaining-values backtracking search.

It does not generate clues, score solutions, or serve puzzles over a
network - it solves a grid and reports the filled-in letters.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env in the current directory)")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "verbosity level (0=errors only, 1=info, 2=debug)")
}

func initConfig() {
	envPath := cfgFile
	if envPath == "" {
		envPath = ".env"
	}
	if err := godotenv.Load(envPath); err != nil && verbosity > 0 {
		fmt.Fprintf(os.Stderr, "no config file loaded from %s: %v\n", envPath, err)
	}

	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, "verbosity level: %d\n", verbosity)
	}
}

func logInfo(format string, args ...interface{}) {
	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
