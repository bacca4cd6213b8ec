package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available problems",
	Long:  `Shows every registered problem and the algorithms it supports.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	problems := registry.List()

	if len(problems) == 0 {
		fmt.Println("No problems available.")
		return
	}

	fmt.Println("Available problems:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, p := range problems {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
		if len(p.Title) > maxTitleLen {
			maxTitleLen = len(p.Title)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-4s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Kind", "Algorithms")
	fmt.Printf("  %-*s  %-*s  %-4s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----", "----------")

	// Print problems
	for _, info := range problems {
		p, err := registry.Create(info.ID)
		if err != nil {
			continue
		}
		algos := make([]string, 0, len(p.Algorithms()))
		for _, a := range p.Algorithms() {
			algos = append(algos, a.ID)
		}
		fmt.Printf("  %-*s  %-*s  %-4s  %s\n",
			maxIDLen, info.ID, maxTitleLen, info.Title, info.Kind.String(), strings.Join(algos, ", "))
	}

	fmt.Println()
	fmt.Println("Run 'searchviz run <id>' to watch a search, or 'searchviz solve <id> <algorithm>' for a headless run.")
}
