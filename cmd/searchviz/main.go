// searchviz is a terminal visualizer for classic search algorithms.
//
// Usage:
//
//	searchviz list                      - List available problems and algorithms
//	searchviz run [problem] [algorithm] - Drive a search interactively
//	searchviz solve <problem> <algo>    - Run a search headless to completion
//	searchviz history [problem]         - Show past run records
//	searchviz serve                     - Start SSH server for remote viewing
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.searchviz/runs.db)
//	--seed <value>   - Set RNG seed for reproducible MCTS runs
//	--preset <name>  - Budget preset: quick, standard, thorough, fixed
//	--config <path>  - Path to a custom problem config YAML
//	--budgets <path> - Path to a custom budgets YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import problems to register them
	_ "github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/problems/authored"
	_ "github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/problems/puzzle"
	_ "github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/problems/tictactoe"
)

var (
	// Global flags
	flagDBPath  string
	flagSeed    int64
	flagPreset  string
	flagConfig  string
	flagBudgets string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "searchviz",
	Short: "Search algorithm visualizer - Watch searches think in your terminal",
	Long: `Searchviz is a terminal-based visualizer for classic search algorithms.
Every algorithm advances one step at a time, growing an annotated search
tree you can walk through at your own pace.

Available commands:
  list     - Show all available problems and their algorithms
  run      - Drive a search interactively (step, play, fast-forward)
  solve    - Run a search headless and print the solution
  history  - View past runs and the fewest-expansions leaderboard
  config   - Print default config files for customizing
  serve    - Start SSH server for remote viewing

Examples:
  searchviz list
  searchviz run puzzle astar
  searchviz run
  searchviz solve tictactoe alphabeta
  searchviz solve tree ucs --tree ./mytree.yaml
  searchviz history puzzle
  searchviz serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.searchviz/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for MCTS (0 = use config value)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "standard", "Budget preset: quick, standard, thorough, fixed")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom problem config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBudgets, "budgets", "", "Path to custom budgets YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
