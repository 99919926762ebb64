// Package registry provides a global registry for puzzle factories.
// Puzzles register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/save"
	"github.com/vovakirdan/tui-syzygy/internal/save/puzzles"
)

// Puzzle is the interface every playable puzzle adapter implements.
// Adapters translate decoded inputs into engine calls and keep the undo
// history; the engines themselves know nothing about terminals.
type Puzzle interface {
	// ID returns the location key (e.g., "wrecked_angle").
	// Used for CLI commands and solve history.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a play session: clears the history and places the
	// cursor. The puzzle's saved progress is kept.
	Reset(cfg core.RuntimeConfig)

	// Step applies one input and reports what happened.
	Step(in core.Input) core.StepResult

	// Render draws the puzzle into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current session state.
	State() core.GameState
}

// Info contains metadata about a registered puzzle.
type Info struct {
	ID       string
	Title    string
	Location save.Location
}

// Factory creates an adapter playing the given game's state.
type Factory func(g *puzzles.Game) Puzzle

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
	mu        sync.RWMutex
)

// Register adds a puzzle factory for loc.
// Typically called from an adapter's init() function.
// Panics if the location is already registered.
func Register(loc save.Location, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	id := loc.Key()
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: puzzle %q already registered", id))
	}

	factories[id] = f
	infos[id] = Info{ID: id, Title: loc.Name(), Location: loc}
}

// List returns information about all registered puzzles, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates the adapter for id on top of g.
// Returns an error if the ID is not registered.
func Create(id string, g *puzzles.Game) (Puzzle, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown puzzle %q", id)
	}

	return f(g), nil
}

// Exists checks if a puzzle with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
