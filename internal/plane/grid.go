// Package plane implements the pipe-network grid: polyline pipes laid one
// edge at a time between colored nodes, with merge and split semantics.
package plane

import (
	"maps"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/save"
)

// Obj is a fixed object on a plane grid.
type Obj uint8

const (
	Wall Obj = iota
	Cross
	PurpleNode
	RedNode
	BlueNode
)

// IsNode reports whether pipes may terminate on the object.
func (o Obj) IsNode() bool {
	return o == PurpleNode || o == RedNode || o == BlueNode
}

// Edge is one unit step between two adjacent cells.
type Edge struct {
	A, B core.Point
}

type pieceKind uint8

const (
	pieceEmpty pieceKind = iota // empty cell or node
	pieceStart
	pieceMiddle
	pieceEnd
)

// piece classifies a cell relative to the existing pipes.
type piece struct {
	kind  pieceKind
	node  bool // for pieceEmpty: whether the cell holds a node
	pipe  int
	index int
}

// Grid holds the objects and pipes of one pipe puzzle.
type Grid struct {
	rect    core.Rect
	objects map[core.Point]Obj
	pipes   [][]core.Point
}

// NewGrid creates an empty grid covering rect.
func NewGrid(rect core.Rect) *Grid {
	return &Grid{rect: rect, objects: make(map[core.Point]Obj)}
}

func (g *Grid) Rect() core.Rect { return g.rect }

// Objects returns a copy of the fixed objects.
func (g *Grid) Objects() map[core.Point]Obj { return maps.Clone(g.objects) }

// ObjectAt returns the object at p.
func (g *Grid) ObjectAt(p core.Point) (Obj, bool) {
	o, ok := g.objects[p]
	return o, ok
}

// Pipes returns a deep copy of the pipes.
func (g *Grid) Pipes() [][]core.Point {
	out := make([][]core.Point, len(g.pipes))
	for i, pipe := range g.pipes {
		out[i] = slices.Clone(pipe)
	}
	return out
}

// PlaceObject puts obj at (col, row), dropping any pipe through that cell.
func (g *Grid) PlaceObject(col, row int, obj Obj) {
	p := core.Pt(col, row)
	if !g.rect.Contains(p) {
		return
	}
	g.pipes = slices.DeleteFunc(g.pipes, func(pipe []core.Point) bool {
		return slices.Contains(pipe, p)
	})
	g.objects[p] = obj
}

// RemoveObject clears the object at (col, row).
func (g *Grid) RemoveObject(col, row int) {
	delete(g.objects, core.Pt(col, row))
}

// RemoveAllPipes clears every pipe.
func (g *Grid) RemoveAllPipes() {
	g.pipes = nil
}

func (g *Grid) isWall(p core.Point) bool {
	o, ok := g.objects[p]
	return ok && o == Wall
}

// pieceAt classifies p. On a Cross cell a pipe only counts if its neighbor
// step at p runs along the same axis as the edge being toggled.
func (g *Grid) pieceAt(p core.Point, vertical bool) piece {
	obj, hasObj := g.objects[p]
	if hasObj && obj.IsNode() {
		return piece{kind: pieceEmpty, node: true}
	}
	isCross := hasObj && obj == Cross
	for pi, pipe := range g.pipes {
		for i, q := range pipe {
			if q != p {
				continue
			}
			if isCross {
				j := i - 1
				if i == 0 {
					j = 1
				}
				if (pipe[j].Col == q.Col) != vertical {
					continue
				}
			}
			switch {
			case i == 0:
				return piece{kind: pieceStart, pipe: pi}
			case i+1 == len(pipe):
				return piece{kind: pieceEnd, pipe: pi}
			default:
				return piece{kind: pieceMiddle, pipe: pi, index: i}
			}
		}
	}
	return piece{kind: pieceEmpty}
}

// swapRemove removes pipe i by moving the last pipe into its slot.
func (g *Grid) swapRemove(i int) []core.Point {
	pipe := g.pipes[i]
	last := len(g.pipes) - 1
	g.pipes[i] = g.pipes[last]
	g.pipes[last] = nil
	g.pipes = g.pipes[:last]
	return pipe
}

// TogglePipe adds or removes the pipe segment between adjacent cells a and
// b. It reports false, changing nothing, when the edge is illegal: cells
// out of bounds or not adjacent, a wall at either end, or a removal that
// would not leave well-formed pipes.
func (g *Grid) TogglePipe(a, b core.Point) bool {
	if !g.rect.Contains(a) || !g.rect.Contains(b) || !a.Adjacent(b) {
		return false
	}
	if g.isWall(a) || g.isWall(b) {
		return false
	}
	vertical := a.Col == b.Col
	pa, pb := g.pieceAt(a, vertical), g.pieceAt(b, vertical)

	switch {
	case pa.kind == pieceEmpty && pb.kind == pieceEmpty:
		if pa.node && pb.node {
			for i, pipe := range g.pipes {
				if len(pipe) == 2 && (pipe[0] == a && pipe[1] == b || pipe[0] == b && pipe[1] == a) {
					g.swapRemove(i)
					return true
				}
			}
		}
		g.pipes = append(g.pipes, []core.Point{a, b})

	case pa.kind == pieceEmpty && pb.kind == pieceStart:
		g.extendStart(pb.pipe, a, pa.node)
	case pa.kind == pieceStart && pb.kind == pieceEmpty:
		g.extendStart(pa.pipe, b, pb.node)
	case pa.kind == pieceEmpty && pb.kind == pieceEnd:
		g.extendEnd(pb.pipe, a, pa.node)
	case pa.kind == pieceEnd && pb.kind == pieceEmpty:
		g.extendEnd(pa.pipe, b, pb.node)

	case pa.kind == pieceStart && pb.kind == pieceStart:
		p1, p2 := min(pa.pipe, pb.pipe), max(pa.pipe, pb.pipe)
		pipe2 := g.swapRemove(p2)
		slices.Reverse(g.pipes[p1])
		g.pipes[p1] = append(g.pipes[p1], pipe2...)

	case pa.kind == pieceEnd && pb.kind == pieceEnd:
		p1, p2 := min(pa.pipe, pb.pipe), max(pa.pipe, pb.pipe)
		pipe2 := g.swapRemove(p2)
		slices.Reverse(pipe2)
		g.pipes[p1] = append(g.pipes[p1], pipe2...)

	case pa.kind == pieceEnd && pb.kind == pieceStart:
		return g.joinEndToStart(pa.pipe, pb.pipe)
	case pa.kind == pieceStart && pb.kind == pieceEnd:
		return g.joinEndToStart(pb.pipe, pa.pipe)

	case pa.kind == pieceStart && pb.kind == pieceMiddle:
		return g.trimStart(pa.pipe, pb.pipe, pb.index)
	case pa.kind == pieceMiddle && pb.kind == pieceStart:
		return g.trimStart(pb.pipe, pa.pipe, pa.index)

	case pa.kind == pieceMiddle && pb.kind == pieceEnd:
		return g.trimEnd(pb.pipe, pa.pipe, pa.index)
	case pa.kind == pieceEnd && pb.kind == pieceMiddle:
		return g.trimEnd(pa.pipe, pb.pipe, pb.index)

	case pa.kind == pieceMiddle && pb.kind == pieceMiddle:
		if pa.pipe != pb.pipe {
			return false
		}
		i1, i2 := min(pa.index, pb.index), max(pa.index, pb.index)
		if i1+1 != i2 {
			return false
		}
		pipe := g.pipes[pa.pipe]
		tail := slices.Clone(pipe[i2:])
		g.pipes[pa.pipe] = pipe[:i2:i2]
		g.pipes = append(g.pipes, tail)

	case pa.kind == pieceMiddle && pb.kind == pieceEmpty:
		return g.detachNode(pa.pipe, pa.index, b, pb.node)
	case pa.kind == pieceEmpty && pb.kind == pieceMiddle:
		return g.detachNode(pb.pipe, pb.index, a, pa.node)
	}
	return true
}

// extendStart prepends p to the pipe, or deletes the pipe if p is the node
// it already runs to.
func (g *Grid) extendStart(pi int, p core.Point, node bool) {
	if node && g.pipes[pi][1] == p {
		g.swapRemove(pi)
		return
	}
	g.pipes[pi] = slices.Insert(g.pipes[pi], 0, p)
}

// extendEnd appends p to the pipe, or deletes a two-cell pipe that starts
// at node p.
func (g *Grid) extendEnd(pi int, p core.Point, node bool) {
	pipe := g.pipes[pi]
	if node && len(pipe) == 2 && pipe[0] == p {
		g.swapRemove(pi)
		return
	}
	g.pipes[pi] = append(pipe, p)
}

// joinEndToStart connects the end of pipe p1 to the start of pipe p2.
func (g *Grid) joinEndToStart(p1, p2 int) bool {
	switch {
	case p1 == p2:
		if len(g.pipes[p1]) != 2 {
			return false
		}
		g.swapRemove(p1)
	case p1 < p2:
		pipe2 := g.swapRemove(p2)
		g.pipes[p1] = append(g.pipes[p1], pipe2...)
	default:
		pipe1 := g.swapRemove(p1)
		pipe2 := g.swapRemove(p2)
		g.pipes = append(g.pipes, append(pipe1, pipe2...))
	}
	return true
}

// trimStart removes the first segment of a pipe.
func (g *Grid) trimStart(start, mid, index int) bool {
	if start != mid || index != 1 {
		return false
	}
	g.pipes[start] = slices.Delete(g.pipes[start], 0, 1)
	return true
}

// trimEnd removes the last segment of a pipe.
func (g *Grid) trimEnd(end, mid, index int) bool {
	pipe := g.pipes[end]
	if end != mid || index+2 != len(pipe) {
		return false
	}
	g.pipes[end] = pipe[:len(pipe)-1]
	return true
}

// detachNode removes the segment joining a pipe to node p at either end.
func (g *Grid) detachNode(pi, index int, p core.Point, node bool) bool {
	pipe := g.pipes[pi]
	switch {
	case node && index == 1 && pipe[0] == p:
		g.pipes[pi] = slices.Delete(pipe, 0, 1)
	case node && index+2 == len(pipe) && pipe[index+1] == p:
		g.pipes[pi] = pipe[:len(pipe)-1]
	default:
		return false
	}
	return true
}

type nodePair struct {
	a, b core.Point
}

// AllNodesAreConnected reports whether every purple node has its own pipe
// to every other purple node, and every red node has its own pipe to every
// blue node. A pipe connects exactly the two cells at its ends.
func (g *Grid) AllNodesAreConnected() bool {
	var purple, red, blue []core.Point
	for p, o := range g.objects {
		switch o {
		case PurpleNode:
			purple = append(purple, p)
		case RedNode:
			red = append(red, p)
		case BlueNode:
			blue = append(blue, p)
		}
	}
	required := mapset.New[nodePair]()
	for i, n1 := range purple {
		for _, n2 := range purple[i+1:] {
			required.Put(nodePair{n1, n2})
		}
	}
	for _, r := range red {
		for _, b := range blue {
			required.Put(nodePair{r, b})
		}
	}
	for _, pipe := range g.pipes {
		start, end := pipe[0], pipe[len(pipe)-1]
		required.Remove(nodePair{start, end})
		required.Remove(nodePair{end, start})
	}
	return required.Size() == 0
}

// PipesArray encodes the pipes as a list of lists of [col, row] pairs.
func (g *Grid) PipesArray() []any {
	out := make([]any, 0, len(g.pipes))
	for _, pipe := range g.pipes {
		pts := make([]any, len(pipe))
		for i, p := range pipe {
			pts[i] = []any{p.Col, p.Row}
		}
		out = append(out, pts)
	}
	return out
}

// SetPipesFromArray replaces the pipes by replaying each saved pipe one
// edge at a time, so malformed data can only produce legal pipes.
func (g *Grid) SetPipesFromArray(pipes []any) {
	g.pipes = nil
	for _, v := range pipes {
		pts := save.ToArray(v)
		if len(pts) == 0 {
			continue
		}
		prev := pointFromArray(pts[0])
		for _, raw := range pts[1:] {
			next := pointFromArray(raw)
			g.TogglePipe(prev, next)
			prev = next
		}
	}
}

// pointFromArray reads a [col, row] pair. Unreadable values become (0,0).
func pointFromArray(v any) core.Point {
	arr := save.ToArray(v)
	if len(arr) < 2 {
		return core.Pt(0, 0)
	}
	col, _ := save.ToInt(arr[0])
	row, _ := save.ToInt(arr[1])
	return core.Pt(col, row)
}
