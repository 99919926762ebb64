package draw

import (
	"strings"

	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/ice"
)

// IceCellW is the screen width of one ice grid cell.
const IceCellW = 6

var pushPopArrows = map[core.Dir]string{
	core.North: " ^^ ",
	core.East:  " >> ",
	core.South: " vv ",
	core.West:  " << ",
}

// Ice draws an ice grid with its top-left cell at (x, y).
func Ice(dst *core.Screen, x, y int, g *ice.ObjectGrid, cursor core.Point) {
	cols, rows := g.Size()
	for row := range rows {
		for col := range cols {
			p := core.Pt(col, row)
			sx, sy := x+col*IceCellW, y+row
			text, color := iceCell(g, p)
			dst.DrawTextColored(sx+1, sy, text, color)
			if p == cursor {
				dst.SetColored(sx, sy, '[', core.ColorCursor)
				dst.SetColored(sx+IceCellW-1, sy, ']', core.ColorCursor)
			}
		}
	}
}

func iceCell(g *ice.ObjectGrid, p core.Point) (string, core.Color) {
	obj, hasObj := g.ObjectAt(p)
	if sym, ok := g.BlockAt(p); ok {
		if hasObj && obj.Kind == ice.Goal && obj.Symbol == sym {
			return sym.String(), core.ColorSolved
		}
		return sym.String(), core.ColorBrightCyan
	}
	if !hasObj {
		return "  · ", core.ColorDim
	}
	switch obj.Kind {
	case ice.Wall:
		return "████", core.ColorWhite
	case ice.Gap:
		return "    ", core.ColorDefault
	case ice.Rotator:
		return " @@ ", core.ColorDevice
	case ice.Reflector:
		if obj.Vertical {
			return " == ", core.ColorDevice
		}
		return " || ", core.ColorDevice
	case ice.PushPop:
		return pushPopArrows[obj.Dir], core.ColorYellow
	case ice.Goal:
		return strings.ToLower(obj.Symbol.String()), core.ColorDim
	}
	return "  ? ", core.ColorDefault
}
