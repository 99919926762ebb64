// syzygy is a terminal player for the System Syzygy puzzles.
//
// Usage:
//
//	syzygy list                - List puzzles and their progress
//	syzygy play [puzzle]       - Open the map menu, or play one puzzle
//	syzygy serve               - Start SSH server for remote play
//	syzygy history <puzzle>    - Show the solve history of a puzzle
//	syzygy stats               - Show solve statistics
//	syzygy slots               - List save slots
//	syzygy export <file>       - Write the save slot as YAML
//	syzygy import <file>       - Replace the save slot from YAML
//	syzygy reset [puzzle]      - Reset one puzzle or the whole slot
//
// Global flags:
//
//	--config <path> - Configuration file (default: ~/.syzygy/config.yaml)
//	--slot <name>   - Save slot (default from config)
//	--db <path>     - Save database (default: ~/.syzygy/syzygy.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-syzygy/internal/config"
	"github.com/vovakirdan/tui-syzygy/internal/save/puzzles"
	"github.com/vovakirdan/tui-syzygy/internal/storage"

	// Import puzzles to register them
	_ "github.com/vovakirdan/tui-syzygy/internal/games/day"
	_ "github.com/vovakirdan/tui-syzygy/internal/games/icyem"
	_ "github.com/vovakirdan/tui-syzygy/internal/games/levelup"
	_ "github.com/vovakirdan/tui-syzygy/internal/games/syzygy"
	_ "github.com/vovakirdan/tui-syzygy/internal/games/virtue"
	_ "github.com/vovakirdan/tui-syzygy/internal/games/wrecked"
)

var (
	// Global flags
	flagConfig string
	flagSlot   string
	flagDBPath string

	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "syzygy",
	Short: "System Syzygy - logic puzzles in your terminal",
	Long: `syzygy plays the System Syzygy puzzles in a terminal, locally or
over SSH. Progress is kept in save slots in a local SQLite database.

Available commands:
  list     - Show all puzzles and their progress
  play     - Open the map menu or play one puzzle
  serve    - Start SSH server for remote play
  history  - View the solve history of a puzzle
  stats    - View solve statistics
  slots    - List save slots
  export   - Write a save slot to a YAML file
  import   - Load a save slot from a YAML file
  reset    - Reset a puzzle or a whole save slot

Examples:
  syzygy list
  syzygy play
  syzygy play wrecked_angle
  syzygy serve --ssh :2222
  syzygy history column_as_icy_em`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagSlot, "slot", "", "Save slot (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to save database (default from config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
}

// loadConfig reads the configuration, applies the global flags and builds
// the logger shared by every subcommand.
func loadConfig(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagSlot != "" {
		loaded.Storage.Slot = flagSlot
	}
	if flagDBPath != "" {
		loaded.Storage.Path = flagDBPath
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          cfg.Log.Prefix,
		Level:           cfg.Level(),
	})
	return nil
}

// openStore opens the save database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(config.ExpandHome(cfg.Storage.Path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// loadGame reads the configured slot or exits.
func loadGame(store *storage.Store) *puzzles.Game {
	game, err := store.LoadState(cfg.Storage.Slot, logger)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error loading slot %q: %v\n", cfg.Storage.Slot, err)
		os.Exit(1)
	}
	return game
}
