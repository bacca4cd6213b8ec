package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/config"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/platform/tui"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/problems/authored"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/problems/puzzle"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/registry"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/search"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/session"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/storage"
)

var (
	flagTree            string
	flagMaxDepth        int
	flagMaxAllowedDepth int
	flagIterations      int
	flagRolloutDepth    int
	flagExploration     float64
)

var runCmd = &cobra.Command{
	Use:   "run [problem] [algorithm]",
	Short: "Drive a search interactively",
	Long: `Start the interactive viewer.

Without arguments you get a problem picker, then an algorithm picker.
With a problem ID you jump straight to the algorithm picker, and with
both arguments the search starts immediately.

Controls:
  Space/N    - Advance one step
  P          - Play/pause automatic stepping
  +/-        - Change playback speed
  F          - Fast-forward to the end
  R          - Reset the search
  B          - Toggle the board panel
  Esc        - Back to menu
  Q/Ctrl+C   - Quit

Budget presets:
  quick    - Half of the configured budgets
  standard - Budgets as configured
  thorough - Double the configured budgets
  fixed    - Config values untouched

Examples:
  searchviz run
  searchviz run puzzle
  searchviz run puzzle astar
  searchviz run tictactoe alphabeta --max-depth 6
  searchviz run tree ucs --tree ./mytree.yaml
  searchviz run puzzle idastar --preset thorough`,
	Args: cobra.MaximumNArgs(2),
	Run:  runInteractive,
}

func init() {
	runCmd.Flags().StringVar(&flagTree, "tree", "", "Path to a custom tree YAML (tree problems)")
	addBudgetFlags(runCmd)
}

// addBudgetFlags registers the per-budget override flags shared by run and
// solve. Zero means "use the configured value".
func addBudgetFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagMaxDepth, "max-depth", 0, "Override minimax depth limit")
	cmd.Flags().IntVar(&flagMaxAllowedDepth, "max-allowed-depth", 0, "Override iterative deepening depth cap")
	cmd.Flags().IntVar(&flagIterations, "iterations", 0, "Override IDA* and MCTS iteration budgets")
	cmd.Flags().IntVar(&flagRolloutDepth, "rollout-depth", 0, "Override MCTS rollout depth")
	cmd.Flags().Float64Var(&flagExploration, "exploration", 0, "Override MCTS exploration constant")
}

// resolveOptions builds searcher options from the budgets config, a preset
// and the override flags.
func resolveOptions(preset config.BudgetPreset) search.Options {
	budgets, err := config.LoadBudgets(flagBudgets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		budgets = config.DefaultBudgetConfig()
	}
	config.ApplyBudgetPreset(&budgets, preset)

	opts := budgets.Options()
	if flagSeed != 0 {
		opts.Seed = flagSeed
	}
	if flagMaxDepth > 0 {
		opts.MaxDepth = flagMaxDepth
	}
	if flagMaxAllowedDepth > 0 {
		opts.MaxAllowedDepth = flagMaxAllowedDepth
	}
	if flagIterations > 0 {
		opts.MaxIterations = flagIterations
		opts.Iterations = flagIterations
	}
	if flagRolloutDepth > 0 {
		opts.RolloutDepth = flagRolloutDepth
	}
	if flagExploration > 0 {
		opts.Exploration = flagExploration
	}
	return opts
}

// applyProblemFlags routes --config and --tree to the problem packages.
// Tree files are parsed up front so a bad path fails loudly instead of
// silently falling back to the built-in sample.
func applyProblemFlags(problemID string) error {
	switch problemID {
	case "puzzle":
		puzzle.SetConfigPath(flagConfig)
	case "tree", "tree_game":
		if flagTree != "" {
			if _, err := authored.LoadFile(flagTree); err != nil {
				return fmt.Errorf("tree file %s: %w", flagTree, err)
			}
			authored.SetTreePath(flagTree)
		}
	}
	return nil
}

// terminalSize reports the current terminal dimensions, with sane defaults
// when stdout is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// findAlgorithm resolves an algorithm ID against a problem's supported set.
func findAlgorithm(p registry.Problem, id string) (registry.AlgorithmInfo, error) {
	supported := make([]string, 0, len(p.Algorithms()))
	for _, a := range p.Algorithms() {
		if a.ID == id {
			return a, nil
		}
		supported = append(supported, a.ID)
	}
	return registry.AlgorithmInfo{}, fmt.Errorf("problem %q does not support algorithm %q (supported: %s)",
		p.ID(), id, strings.Join(supported, ", "))
}

func runInteractive(cmd *cobra.Command, args []string) {
	if len(args) > 0 {
		runDirect(args)
		return
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	width, height := terminalSize()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Track any resize that happened inside the menu
		width, height = menuResult.Width, menuResult.Height

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, hErr := tui.RunHistory(store, width, height)
			if hErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", hErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from history
		}

		problemID := menuResult.ProblemID
		if problemID == "" {
			break
		}

		if err := applyProblemFlags(problemID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		p, err := registry.Create(problemID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating problem: %v\n", err)
			continue
		}

		// Show algorithm and preset picker
		sel, selErr := tui.RunAlgorithmSelector(p, width, height)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			continue
		}

		// User pressed back
		if sel == nil {
			continue
		}

		searcher, sErr := p.NewSearcher(sel.Algorithm.ID, resolveOptions(sel.Preset))
		if sErr != nil {
			fmt.Fprintf(os.Stderr, "Error creating searcher: %v\n", sErr)
			continue
		}

		backToMenu, runErr := tui.RunSearch(p, sel.Algorithm, searcher, runSaver(store), string(session.Local), width, height)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running search: %v\n", runErr)
		}
		if !backToMenu {
			break
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}

// runDirect handles `run <problem>` and `run <problem> <algorithm>`.
func runDirect(args []string) {
	problemID := args[0]

	if !registry.Exists(problemID) {
		fmt.Fprintf(os.Stderr, "Error: unknown problem %q\n", problemID)
		fmt.Fprintln(os.Stderr, "Run 'searchviz list' to see available problems.")
		os.Exit(1)
	}

	if err := applyProblemFlags(problemID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p, err := registry.Create(problemID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating problem: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()

	var algo registry.AlgorithmInfo
	preset := config.ParseBudgetPreset(flagPreset)

	if len(args) == 2 {
		found, findErr := findAlgorithm(p, args[1])
		if findErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", findErr)
			os.Exit(1)
		}
		algo = found
	} else {
		// Show algorithm and preset picker
		sel, selErr := tui.RunAlgorithmSelector(p, width, height)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		if sel == nil {
			return // User pressed back
		}
		algo = sel.Algorithm
		preset = sel.Preset
	}

	searcher, err := p.NewSearcher(algo.ID, resolveOptions(preset))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating searcher: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	_, runErr := tui.RunSearch(p, algo, searcher, runSaver(store), string(session.Local), width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running search: %v\n", runErr)
		os.Exit(1)
	}
}

// runSaver wraps a store as a RunSaver, mapping a nil store to a nil
// interface so the viewer can skip saving.
func runSaver(store *storage.Store) session.RunSaver {
	if store == nil {
		return nil
	}
	return store
}
