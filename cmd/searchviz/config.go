package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <section>",
	Short: "Print a default config YAML",
	Long: `Print the embedded default configuration for a section.

Sections:
  puzzle  - 8-puzzle start and goal boards
  budgets - Per-algorithm search budgets

Redirect the output to a file, edit it, and pass it back with --config
or --budgets, or drop it in ~/.searchviz/configs/ to apply it to every
invocation.

Examples:
  searchviz config puzzle > my-puzzle.yaml
  searchviz config budgets > ~/.searchviz/configs/budgets.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown config section %q (try puzzle or budgets)\n", args[0])
		os.Exit(1)
	}
	fmt.Print(string(data))
}
