package draw

import (
	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/plane"
)

// Plane draws a pipe grid with its top-left cell at (x, y). Cells sit two
// columns and two rows apart so pipe segments fit between them.
func Plane(dst *core.Screen, x, y int, g *plane.Grid, cursor core.Point) {
	r := g.Rect()
	onPipe := make(map[core.Point]bool)
	for _, pipe := range g.Pipes() {
		for i, p := range pipe {
			onPipe[p] = true
			if i == 0 {
				continue
			}
			q := pipe[i-1]
			if p.Row == q.Row {
				dst.SetColored(x+2*(min(p.Col, q.Col)-r.X)+1, y+2*(p.Row-r.Y), '─', core.ColorPipe)
			} else {
				dst.SetColored(x+2*(p.Col-r.X), y+2*(min(p.Row, q.Row)-r.Y)+1, '│', core.ColorPipe)
			}
		}
	}

	for row := r.Y; row < r.Bottom(); row++ {
		for col := r.X; col < r.Right(); col++ {
			p := core.Pt(col, row)
			ch, color := '·', core.ColorDim
			if onPipe[p] {
				ch, color = '•', core.ColorPipe
			}
			if obj, ok := g.ObjectAt(p); ok {
				switch obj {
				case plane.Wall:
					ch, color = '█', core.ColorWhite
				case plane.Cross:
					ch, color = '┼', core.ColorWhite
				case plane.RedNode:
					ch, color = 'R', core.ColorBrightRed
				case plane.BlueNode:
					ch, color = 'B', core.ColorBrightBlue
				case plane.PurpleNode:
					ch, color = 'P', core.ColorMagenta
				}
			}
			if p == cursor {
				color = core.ColorCursor
				if ch == '·' {
					ch = '▣'
				}
			}
			dst.SetColored(x+2*(col-r.X), y+2*(row-r.Y), ch, color)
		}
	}
}
