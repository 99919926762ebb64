package draw

import (
	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/lights"
)

// LightCellW is the screen width of one light.
const LightCellW = 3

// Lights draws a light board with its top-left light at (x, y).
func Lights(dst *core.Screen, x, y int, b *lights.Board, cursor core.Point) {
	cols, rows := b.Size()
	for row := range rows {
		for col := range cols {
			p := core.Pt(col, row)
			sx, sy := x+col*LightCellW, y+row
			if b.IsLit(p) {
				dst.SetColored(sx+1, sy, '●', core.ColorPipe)
			} else {
				dst.SetColored(sx+1, sy, '○', core.ColorDim)
			}
			if p == cursor {
				dst.SetColored(sx, sy, '[', core.ColorCursor)
				dst.SetColored(sx+2, sy, ']', core.ColorCursor)
			}
		}
	}
}
