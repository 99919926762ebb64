package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/save"
	"github.com/vovakirdan/tui-syzygy/internal/save/puzzles"
)

type stubPuzzle struct {
	game *puzzles.Game
}

func (stubPuzzle) ID() string                      { return save.PointOfOrder.Key() }
func (stubPuzzle) Title() string                   { return save.PointOfOrder.Name() }
func (stubPuzzle) Reset(core.RuntimeConfig)        {}
func (stubPuzzle) Step(core.Input) core.StepResult { return core.StepResult{} }
func (stubPuzzle) Render(*core.Screen)             {}
func (stubPuzzle) State() core.GameState           { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register(save.PointOfOrder, func(g *puzzles.Game) Puzzle { return stubPuzzle{game: g} })

	assert.True(t, Exists("point_of_order"))
	assert.False(t, Exists("no_such_puzzle"))

	var found bool
	for _, info := range List() {
		if info.ID == "point_of_order" {
			found = true
			assert.Equal(t, "Point of Order", info.Title)
			assert.Equal(t, save.PointOfOrder, info.Location)
		}
	}
	assert.True(t, found)

	g := puzzles.NewGame()
	p, err := Create("point_of_order", g)
	require.NoError(t, err)
	assert.Same(t, g, p.(stubPuzzle).game)

	_, err = Create("no_such_puzzle", g)
	assert.Error(t, err)

	assert.Panics(t, func() {
		Register(save.PointOfOrder, func(*puzzles.Game) Puzzle { return stubPuzzle{} })
	})
}
