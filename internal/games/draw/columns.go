package draw

import (
	"github.com/vovakirdan/tui-syzygy/internal/column"
	"github.com/vovakirdan/tui-syzygy/internal/core"
)

// ColumnW is the screen width of one letter column.
const ColumnW = 3

// Columns draws columns [first, first+n) side by side starting at (x, y).
// The first letter row is the one that must spell the answer; it is
// highlighted. selected marks the column under the cursor.
func Columns(dst *core.Screen, x, y int, c *column.Columns, first, n, selected int) {
	for k := range n {
		i := first + k
		if i >= c.NumColumns() {
			return
		}
		sx := x + k*ColumnW
		if i == selected {
			dst.SetColored(sx, y, 'v', core.ColorCursor)
		}
		length := len([]rune(c.Word(i)))
		for r := range length {
			color := core.ColorDim
			if r == 0 {
				color = core.ColorBrightWhite
			}
			dst.SetColored(sx, y+1+r, c.LetterAt(i, r), color)
		}
	}
}
