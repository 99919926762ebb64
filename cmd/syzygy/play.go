package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/platform/tui"
	"github.com/vovakirdan/tui-syzygy/internal/registry"
	"github.com/vovakirdan/tui-syzygy/internal/save"
)

var flagNoHelp bool

var playCmd = &cobra.Command{
	Use:   "play [puzzle]",
	Short: "Play the puzzles",
	Long: `Without an argument, opens the map menu listing every puzzle.
With a puzzle ID, plays that puzzle directly if it is unlocked.

Controls:
  Arrows/hjkl        - Move the cursor
  Shift+Arrows/HJKL  - Push, slide or rotate
  Enter/Space        - Select
  U/Ctrl+Z           - Undo
  Ctrl+Y             - Redo
  R/Ctrl+R           - Reset (replay once solved)
  Ctrl+S             - Screenshot
  Esc/Q              - Back to the menu
  Ctrl+C             - Quit

Examples:
  syzygy play
  syzygy play wrecked_angle
  syzygy play level_up --slot alice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoHelp, "no-help", false, "Hide the key help line")
}

func runPlay(cmd *cobra.Command, args []string) {
	var puzzleID string
	if len(args) == 1 {
		puzzleID = args[0]
		if !registry.Exists(puzzleID) {
			fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", puzzleID)
			fmt.Fprintln(os.Stderr, "Run 'syzygy list' to see available puzzles.")
			os.Exit(1)
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		ShowHelp: cfg.Play.ShowHelp && !flagNoHelp,
	}

	store := openStore()
	session := &tui.Session{
		Store:  store,
		Slot:   cfg.Storage.Slot,
		Game:   loadGame(store),
		Logger: logger.With("slot", cfg.Storage.Slot),
	}

	var runErr error
	if puzzleID == "" {
		runErr = tui.RunApp(session, rc)
	} else {
		runErr = playOne(session, puzzleID, rc)
	}

	// Close store before potential exit
	store.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func playOne(session *tui.Session, id string, rc core.RuntimeConfig) error {
	loc, _ := save.ParseLocation(id)
	if !session.Enter(loc) {
		return fmt.Errorf("%s is locked; solve %s first", loc.Name(), prereqList(loc))
	}
	puzzle, err := registry.Create(id, session.Game)
	if err != nil {
		return err
	}
	runErr := tui.Run(puzzle, session, rc)
	session.Enter(save.Map)
	return runErr
}

func prereqList(loc save.Location) string {
	var names string
	for i, pre := range loc.Prereqs() {
		if i > 0 {
			names += ", "
		}
		names += pre.Name()
	}
	return names
}
