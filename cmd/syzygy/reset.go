package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-syzygy/internal/save"
	"github.com/vovakirdan/tui-syzygy/internal/storage"
)

var (
	flagSolve       bool
	flagClearSolves bool
)

var resetCmd = &cobra.Command{
	Use:   "reset [puzzle]",
	Short: "Reset a puzzle or the whole save slot",
	Long: `With a puzzle ID, puts that puzzle back to its starting layout. A
solved puzzle is restarted for replay and stays solved on the map.
With --solve, marks the puzzle solved instead.

Without an argument, deletes the current save slot entirely.

Examples:
  syzygy reset wrecked_angle
  syzygy reset prolog --solve
  syzygy reset --slot alice --clear-solves`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagSolve, "solve", false, "Mark the puzzle solved instead of resetting it")
	resetCmd.Flags().BoolVar(&flagClearSolves, "clear-solves", false, "Also delete the slot's solve history")
}

func runReset(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	var err error
	if len(args) == 0 {
		err = resetSlot(store)
	} else {
		err = resetPuzzle(store, args[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func resetSlot(store *storage.Store) error {
	err := store.DeleteGame(cfg.Storage.Slot)
	if errors.Is(err, storage.ErrNoSave) {
		fmt.Printf("Slot %q has no save.\n", cfg.Storage.Slot)
	} else if err != nil {
		return err
	} else {
		fmt.Printf("Deleted slot %q.\n", cfg.Storage.Slot)
	}
	if flagClearSolves {
		return store.ClearSolves(cfg.Storage.Slot)
	}
	return nil
}

func resetPuzzle(store *storage.Store, id string) error {
	loc, ok := save.ParseLocation(id)
	if !ok || loc == save.Map {
		return fmt.Errorf("unknown puzzle %q", id)
	}

	game := loadGame(store)
	state := game.Puzzle(loc)
	switch {
	case flagSolve:
		state.Solve()
		fmt.Printf("%s marked solved.\n", loc.Name())
	case state.IsSolved():
		state.Replay()
		fmt.Printf("%s restarted for replay.\n", loc.Name())
	default:
		state.Reset()
		fmt.Printf("%s reset.\n", loc.Name())
	}
	return store.SaveState(cfg.Storage.Slot, game)
}
