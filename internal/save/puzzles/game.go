package puzzles

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-syzygy/internal/save"
)

const locationKey = "location"

// Game is the whole save file: where the player is and the progress of
// every location.
type Game struct {
	Location save.Location

	IcyEm   *IcyEm
	Virtue  *VirtueOrIce
	Day     *PlaneAsDay
	Wrecked *WreckedAngle
	Syzygy  *SystemSyzygy
	LevelUp *LevelUp

	others map[save.Location]*Simple
}

// NewGame starts a fresh game at the prolog.
func NewGame() *Game {
	g := &Game{
		Location: save.Prolog,
		IcyEm:    NewIcyEm(),
		Virtue:   NewVirtueOrIce(),
		Day:      NewPlaneAsDay(),
		Wrecked:  NewWreckedAngle(),
		Syzygy:   NewSystemSyzygy(),
		LevelUp:  NewLevelUp(),
		others:   make(map[save.Location]*Simple),
	}
	for _, loc := range save.AllLocations() {
		if loc != save.Map && g.engine(loc) == nil {
			g.others[loc] = NewSimple(loc)
		}
	}
	return g
}

// engine returns the engine-backed state of loc, or nil.
func (g *Game) engine(loc save.Location) State {
	switch loc {
	case save.ColumnAsIcyEm:
		return g.IcyEm
	case save.VirtueOrIce:
		return g.Virtue
	case save.PlaneAsDay:
		return g.Day
	case save.WreckedAngle:
		return g.Wrecked
	case save.SystemSyzygy:
		return g.Syzygy
	case save.LevelUp:
		return g.LevelUp
	}
	return nil
}

// Puzzle returns the progress record of loc. The map has none.
func (g *Game) Puzzle(loc save.Location) State {
	if s := g.engine(loc); s != nil {
		return s
	}
	if s, ok := g.others[loc]; ok {
		return s
	}
	return nil
}

// Access returns the progress of loc. The map is always solved.
func (g *Game) Access(loc save.Location) save.Access {
	p := g.Puzzle(loc)
	if p == nil {
		return save.Solved
	}
	return p.Access()
}

// IsSolved reports whether loc has been solved, including while it is
// being replayed.
func (g *Game) IsSolved(loc save.Location) bool {
	return g.Access(loc).HasBeenSolved()
}

// IsUnlocked reports whether every prerequisite of loc has been solved.
func (g *Game) IsUnlocked(loc save.Location) bool {
	for _, pre := range loc.Prereqs() {
		if !g.IsSolved(pre) {
			return false
		}
	}
	return true
}

// Enter moves the player to loc and marks it visited. Locked locations
// are refused.
func (g *Game) Enter(loc save.Location) bool {
	if !g.IsUnlocked(loc) {
		return false
	}
	g.Location = loc
	if p := g.Puzzle(loc); p != nil {
		p.Visit()
	}
	return true
}

// MarshalTable encodes the game as nested tables keyed by location.
func (g *Game) MarshalTable() save.Table {
	t := save.Table{locationKey: g.Location.Key()}
	for _, loc := range save.AllLocations() {
		if p := g.Puzzle(loc); p != nil {
			t[loc.Key()] = p.MarshalTable()
		}
	}
	return t
}

// GameFromTable decodes a game saved by MarshalTable. Missing or malformed
// sections fall back to fresh state one location at a time.
func GameFromTable(t save.Table) *Game {
	g := NewGame()
	name, _ := save.StringAt(t, locationKey)
	g.Location, _ = save.ParseLocation(name)

	g.IcyEm = IcyEmFromTable(save.TableAt(t, save.ColumnAsIcyEm.Key()))
	g.Virtue = VirtueOrIceFromTable(save.TableAt(t, save.VirtueOrIce.Key()))
	g.Day = PlaneAsDayFromTable(save.TableAt(t, save.PlaneAsDay.Key()))
	g.Wrecked = WreckedAngleFromTable(save.TableAt(t, save.WreckedAngle.Key()))
	g.Syzygy = SystemSyzygyFromTable(save.TableAt(t, save.SystemSyzygy.Key()))
	g.LevelUp = LevelUpFromTable(save.TableAt(t, save.LevelUp.Key()))
	for loc := range g.others {
		g.others[loc] = SimpleFromTable(loc, save.TableAt(t, loc.Key()))
	}
	return g
}

// Encode writes the game as a YAML document.
func (g *Game) Encode() ([]byte, error) {
	data, err := yaml.Marshal(g.MarshalTable())
	if err != nil {
		return nil, fmt.Errorf("save: cannot encode game: %w", err)
	}
	return data, nil
}

// Decode reads a YAML document written by Encode. Only a document that is
// not YAML at all is an error; anything else degrades to fresh state.
func Decode(data []byte) (*Game, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("save: invalid document: %w", err)
	}
	return GameFromTable(save.ToTable(raw)), nil
}
