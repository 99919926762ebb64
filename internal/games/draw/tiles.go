package draw

import (
	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/tiles"
)

// TileCellW is the screen width of one tile.
const TileCellW = 3

var tileColors = [...]core.Color{core.ColorBrightRed, core.ColorGreen, core.ColorBrightBlue}

// Tiles draws a tile grid with its top-left tile at (x, y).
func Tiles(dst *core.Screen, x, y int, g *tiles.Grid, cursor core.Point) {
	cols, rows := g.Size()
	for row := range rows {
		for col := range cols {
			sx, sy := x+col*TileCellW, y+row
			if kind, ok := g.TileAt(col, row); ok && kind < len(tileColors) {
				dst.SetColored(sx+1, sy, '■', tileColors[kind])
			}
			if core.Pt(col, row) == cursor {
				dst.SetColored(sx, sy, '[', core.ColorCursor)
				dst.SetColored(sx+2, sy, ']', core.ColorCursor)
			}
		}
	}
}
