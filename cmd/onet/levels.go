package main

import (
	"fmt"

	"github.com/spf13/cobra"

	onet "github.com/vovakirdan/tui-onet/internal/games/onet"
	"github.com/vovakirdan/tui-onet/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:     "levels",
	Aliases: []string{"list"},
	Short:   "List modes and campaign levels",
	Run:     runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	fmt.Println("Modes:")
	fmt.Println()
	for _, g := range registry.List() {
		fmt.Printf("  %-14s  %s\n", g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Campaign levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-12s  %-6s  %s\n", "#", "Name", "Board", "Types")
	fmt.Printf("  %-3s  %-12s  %-6s  %s\n", "-", "----", "-----", "-----")
	for i, lvl := range onet.Levels {
		board := fmt.Sprintf("%dx%d", lvl.Rows, lvl.Cols)
		fmt.Printf("  %-3d  %-12s  %-6s  %d\n", i+1, lvl.Name, board, lvl.TileTypes)
	}

	fmt.Println()
	fmt.Println("Run 'onet play --level <n>' to start at a level.")
}
