package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/registry"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/storage"
)

var flagClear bool

var historyCmd = &cobra.Command{
	Use:   "history [problem] [algorithm]",
	Short: "Show past runs",
	Long: `Display recorded runs.

Without arguments, shows aggregate statistics per problem/algorithm pair.
With a problem ID, shows the ten most recent runs for that problem.
With a problem and an algorithm, shows the fewest-expansions leaderboard
for that pair.

Examples:
  searchviz history
  searchviz history puzzle
  searchviz history puzzle astar
  searchviz history puzzle --clear`,
	Args: cobra.MaximumNArgs(2),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the given problem")
}

func runHistory(cmd *cobra.Command, args []string) {
	if len(args) > 0 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown problem %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'searchviz list' to see available problems.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: --clear requires a problem ID")
			os.Exit(1)
		}
		if err := store.ClearRuns(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared run history for %q.\n", args[0])
		return
	}

	switch len(args) {
	case 0:
		printAllStats(store)
	case 1:
		printRecentRuns(store, args[0])
	default:
		printLeaderboard(store, args[0], args[1])
	}
}

func printAllStats(store *storage.Store) {
	stats, err := store.GetAllRunStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run statistics")
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'searchviz run' or 'searchviz solve' to record the first one.")
		return
	}

	// Print header
	fmt.Printf("  %-10s  %-10s  %-5s  %-9s  %-9s  %-9s  %s\n",
		"Problem", "Algorithm", "Runs", "Completed", "Best exp", "Avg exp", "Last run")
	fmt.Printf("  %-10s  %-10s  %-5s  %-9s  %-9s  %-9s  %s\n",
		"-------", "---------", "----", "---------", "--------", "-------", "--------")

	// Print stats
	for _, st := range stats {
		fmt.Printf("  %-10s  %-10s  %-5d  %-9d  %-9d  %-9.1f  %s\n",
			st.ProblemID, st.AlgorithmID, st.RunsCount, st.Completed,
			st.BestExpanded, st.AvgExpanded, st.LastRun.Format("2006-01-02 15:04"))
	}
}

func printRecentRuns(store *storage.Store, problemID string) {
	runs, err := store.RecentRuns(problemID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	title := problemID
	if p, pErr := registry.Create(problemID); pErr == nil {
		title = p.Title()
	}

	fmt.Printf("Recent runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'searchviz run %s' to record the first one!\n", problemID)
		return
	}

	// Print header
	fmt.Printf("  %-10s  %-9s  %-8s  %-8s  %s\n", "Algorithm", "Status", "Expanded", "Cost", "Date")
	fmt.Printf("  %-10s  %-9s  %-8s  %-8s  %s\n", "---------", "------", "--------", "----", "----")

	// Print runs
	for _, entry := range runs {
		cost := "-"
		if entry.SolutionCost.Valid {
			cost = fmt.Sprintf("%g", entry.SolutionCost.Float64)
		}
		fmt.Printf("  %-10s  %-9s  %-8d  %-8s  %s\n",
			entry.AlgorithmID, entry.Status, entry.NodesExpanded, cost,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printLeaderboard(store *storage.Store, problemID, algorithmID string) {
	runs, err := store.LeastExpanded(problemID, algorithmID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving leaderboard: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Fewest expansions - %s / %s\n", problemID, algorithmID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No completed runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'searchviz solve %s %s' to record the first one!\n", problemID, algorithmID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "Rank", "Expanded", "Steps", "Cost", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "----", "--------", "-----", "----", "----")

	// Print runs
	for i, entry := range runs {
		cost := "-"
		if entry.SolutionCost.Valid {
			cost = fmt.Sprintf("%g", entry.SolutionCost.Float64)
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-8s  %s\n",
			i+1, entry.NodesExpanded, entry.Steps, cost,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show aggregate line
	if stats, sErr := store.GetRunStats(problemID, algorithmID); sErr == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d expanded over %d completed runs\n", stats.BestExpanded, stats.Completed)
	}
}
