package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-syzygy/internal/registry"
	"github.com/vovakirdan/tui-syzygy/internal/save"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history <puzzle>",
	Short: "Show the solve history of a puzzle",
	Long: `Display the most recent solves of the specified puzzle across all
save slots, with the fewest moves anyone needed.

Examples:
  syzygy history wrecked_angle
  syzygy history level_up --limit 20`,
	Args: cobra.ExactArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of solves to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	id := args[0]

	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'syzygy list' to see available puzzles.")
		os.Exit(1)
	}
	loc, _ := save.ParseLocation(id)

	store := openStore()
	defer store.Close()

	entries, err := store.SolveHistory(id, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("Solve History - %s\n", loc.Name())
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'syzygy play %s' to record the first one!\n", id)
		return
	}

	// Calculate column widths
	maxSlotLen := 4 // "Slot" header
	for _, e := range entries {
		maxSlotLen = max(maxSlotLen, len(e.Slot))
	}

	fmt.Printf("  %-16s  %-*s  %s\n", "Date", maxSlotLen, "Slot", "Moves")
	fmt.Printf("  %-16s  %-*s  %s\n", "----", maxSlotLen, "----", "-----")

	for _, e := range entries {
		fmt.Printf("  %-16s  %-*s  %d\n", e.CreatedAt.Format("2006-01-02 15:04"), maxSlotLen, e.Slot, e.Moves)
	}

	fmt.Println()
	if best, err := store.BestSolve(id); err == nil && best > 0 {
		fmt.Printf("Fewest moves: %d\n", best)
	}
}
