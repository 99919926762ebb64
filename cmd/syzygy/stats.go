package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-syzygy/internal/save"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show solve statistics",
	Long:  `Shows, for every puzzle solved at least once, how often it was solved and in how many moves.`,
	Run:   runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No solves recorded yet.")
		return
	}

	keys := make([]string, 0, len(stats))
	maxNameLen := 6 // "Puzzle" header
	for k := range stats {
		keys = append(keys, k)
		maxNameLen = max(maxNameLen, len(displayName(k)))
	}
	sort.Strings(keys)

	fmt.Printf("  %-*s  %6s  %6s  %7s  %s\n", maxNameLen, "Puzzle", "Solves", "Best", "Average", "Last solved")
	fmt.Printf("  %-*s  %6s  %6s  %7s  %s\n", maxNameLen, "------", "------", "----", "-------", "-----------")
	for _, k := range keys {
		ps := stats[k]
		fmt.Printf("  %-*s  %6d  %6d  %7.1f  %s\n", maxNameLen, displayName(k),
			ps.Solves, ps.FewestMoves, ps.AvgMoves, ps.LastSolved.Format("2006-01-02 15:04"))
	}
}

func displayName(key string) string {
	if loc, ok := save.ParseLocation(key); ok {
		return loc.Name()
	}
	return key
}
