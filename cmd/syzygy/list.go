package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-syzygy/internal/registry"
	"github.com/vovakirdan/tui-syzygy/internal/save/puzzles"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all playable puzzles",
	Long:  `Shows every playable puzzle with its progress in the current save slot.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	infos := registry.List()

	if len(infos) == 0 {
		fmt.Println("No puzzles available.")
		return
	}

	store := openStore()
	defer store.Close()
	game := loadGame(store)

	fmt.Printf("Puzzles (slot %s):\n", cfg.Storage.Slot)
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, info := range infos {
		maxIDLen = max(maxIDLen, len(info.ID))
		maxTitleLen = max(maxTitleLen, len(info.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Status")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")

	for _, info := range infos {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, info.ID, maxTitleLen, info.Title, progressOf(game, info))
	}

	fmt.Println()
	fmt.Println("Run 'syzygy play <id>' to play a puzzle.")
}

func progressOf(game *puzzles.Game, info registry.Info) string {
	switch {
	case !game.IsUnlocked(info.Location):
		return "locked"
	case game.IsSolved(info.Location):
		return "solved"
	case game.Access(info.Location).IsVisited():
		return "in progress"
	}
	return "new"
}
