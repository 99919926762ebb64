package ice

import (
	"maps"
	"slices"

	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/save"
)

const (
	blocksKey    = "blocks"
	pushPopsKey  = "push_pops"
	colKey       = "col"
	rowKey       = "row"
	directionKey = "direction"
	symbolKey    = "symbol"
)

// ObjectKind enumerates the fixed objects of an ObjectGrid.
type ObjectKind uint8

const (
	Gap ObjectKind = iota
	Wall
	PushPop
	Rotator
	Reflector
	Goal
)

// Object is a fixed cell object. Dir is meaningful for PushPop (the way the
// gate faces), Vertical for Reflector, Symbol for Goal.
type Object struct {
	Kind     ObjectKind
	Dir      core.Dir
	Vertical bool
	Symbol   Symbol
}

func GapObj() Object                { return Object{Kind: Gap} }
func WallObj() Object               { return Object{Kind: Wall} }
func PushPopObj(d core.Dir) Object  { return Object{Kind: PushPop, Dir: d} }
func RotatorObj() Object            { return Object{Kind: Rotator} }
func ReflectorObj(vert bool) Object { return Object{Kind: Reflector, Vertical: vert} }
func GoalObj(s Symbol) Object       { return Object{Kind: Goal, Symbol: s} }

// GatePush records one push-pop gate moved by a slide.
type GatePush struct {
	From core.Point
	To   core.Point
}

// BlockSlide records one completed slide. It carries enough to undo the
// move exactly or to replay it.
type BlockSlide struct {
	From      core.Point
	Direction core.Dir
	To        core.Point
	Pushed    []GatePush // gates pushed along the way, in push order
	Transform Transform
}

// Distance returns the number of cells the block travelled.
func (s BlockSlide) Distance() int {
	if s.To.Row == s.From.Row {
		return core.Abs(s.To.Col - s.From.Col)
	}
	return core.Abs(s.To.Row - s.From.Row)
}

// ObjectGrid holds the fixed objects and ice blocks of one ice puzzle.
type ObjectGrid struct {
	cols, rows int
	objects    map[core.Point]Object
	blocks     map[core.Point]Symbol
	modified   bool
}

// NewObjectGrid creates an empty grid.
func NewObjectGrid(cols, rows int) *ObjectGrid {
	return &ObjectGrid{
		cols:    cols,
		rows:    rows,
		objects: make(map[core.Point]Object),
		blocks:  make(map[core.Point]Symbol),
	}
}

// Clone returns a deep copy.
func (g *ObjectGrid) Clone() *ObjectGrid {
	return &ObjectGrid{
		cols:     g.cols,
		rows:     g.rows,
		objects:  maps.Clone(g.objects),
		blocks:   maps.Clone(g.blocks),
		modified: g.modified,
	}
}

func (g *ObjectGrid) Size() (cols, rows int) { return g.cols, g.rows }

// IsModified reports whether any slide has ever been applied. It stays set
// even if the blocks are later returned to their starting cells.
func (g *ObjectGrid) IsModified() bool { return g.modified }

func (g *ObjectGrid) inBounds(p core.Point) bool {
	return core.NewRect(0, 0, g.cols, g.rows).Contains(p)
}

// AddObject places a fixed object. Out-of-bounds or occupied cells are
// ignored.
func (g *ObjectGrid) AddObject(col, row int, obj Object) {
	p := core.Pt(col, row)
	if !g.inBounds(p) {
		return
	}
	if _, taken := g.objects[p]; taken {
		return
	}
	g.objects[p] = obj
}

// AddIceBlock places an ice block. Out-of-bounds cells, cells holding
// another block and wall or gap cells are ignored.
func (g *ObjectGrid) AddIceBlock(col, row int, s Symbol) {
	p := core.Pt(col, row)
	if !g.inBounds(p) {
		return
	}
	if _, taken := g.blocks[p]; taken {
		return
	}
	if obj, ok := g.objects[p]; ok && (obj.Kind == Wall || obj.Kind == Gap) {
		return
	}
	g.blocks[p] = s
}

// ObjectAt returns the fixed object at p.
func (g *ObjectGrid) ObjectAt(p core.Point) (Object, bool) {
	obj, ok := g.objects[p]
	return obj, ok
}

// BlockAt returns the ice block symbol at p.
func (g *ObjectGrid) BlockAt(p core.Point) (Symbol, bool) {
	s, ok := g.blocks[p]
	return s, ok
}

// Objects returns a copy of the fixed objects.
func (g *ObjectGrid) Objects() map[core.Point]Object { return maps.Clone(g.objects) }

// IceBlocks returns a copy of the ice blocks.
func (g *ObjectGrid) IceBlocks() map[core.Point]Symbol { return maps.Clone(g.blocks) }

// SlideIceBlock slides the block at p in direction d until it is stopped.
// It returns nil, leaving the grid unchanged, when there is no block at p or
// the block cannot move.
func (g *ObjectGrid) SlideIceBlock(p core.Point, d core.Dir) *BlockSlide {
	symbol, ok := g.blocks[p]
	if !ok {
		return nil
	}
	delete(g.blocks, p)

	delta := d.Delta()
	cur := p
	var pushed []GatePush
	transform := Identity()
	for {
		next := cur.Add(delta)
		if !g.inBounds(next) {
			break
		}
		if _, blocked := g.blocks[next]; blocked {
			break
		}
		if obj, ok := g.objects[next]; ok {
			stop := false
			switch obj.Kind {
			case Gap, Wall:
				stop = true
			case PushPop:
				if obj.Dir != d.Opposite() {
					stop = true
					break
				}
				dest := next.Add(delta)
				for g.hasObject(dest) {
					dest = dest.Add(delta)
				}
				if !g.inBounds(dest) || g.hasBlock(dest) {
					stop = true
					break
				}
				delete(g.objects, next)
				g.objects[dest] = PushPopObj(d)
				pushed = append(pushed, GatePush{From: next, To: dest})
			case Rotator:
				transform = transform.RotatedCW()
			case Reflector:
				if obj.Vertical {
					transform = transform.FlippedVert()
				} else {
					transform = transform.FlippedHorz()
				}
			}
			if stop {
				break
			}
		}
		cur = next
	}

	g.blocks[cur] = symbol.Transformed(transform)
	if cur == p {
		return nil
	}
	g.modified = true
	return &BlockSlide{From: p, Direction: d, To: cur, Pushed: pushed, Transform: transform}
}

func (g *ObjectGrid) hasObject(p core.Point) bool {
	_, ok := g.objects[p]
	return ok
}

func (g *ObjectGrid) countObjects(kind ObjectKind) int {
	n := 0
	for _, obj := range g.objects {
		if obj.Kind == kind {
			n++
		}
	}
	return n
}

func (g *ObjectGrid) hasBlock(p core.Point) bool {
	_, ok := g.blocks[p]
	return ok
}

// UndoSlide reverses a slide previously returned by SlideIceBlock.
func (g *ObjectGrid) UndoSlide(s *BlockSlide) {
	symbol, ok := g.blocks[s.To]
	if !ok {
		return
	}
	delete(g.blocks, s.To)
	g.blocks[s.From] = symbol.Transformed(s.Transform.Inverse())
	for i := len(s.Pushed) - 1; i >= 0; i-- {
		push := s.Pushed[i]
		obj, ok := g.objects[push.To]
		if !ok || obj.Kind != PushPop {
			continue
		}
		delete(g.objects, push.To)
		g.objects[push.From] = PushPopObj(s.Direction.Opposite())
	}
}

// RedoSlide replays a slide.
func (g *ObjectGrid) RedoSlide(s *BlockSlide) {
	g.SlideIceBlock(s.From, s.Direction)
}

// AllBlocksOnGoals reports whether every block sits on a goal whose symbol
// matches it exactly.
func (g *ObjectGrid) AllBlocksOnGoals() bool {
	for p, sym := range g.blocks {
		obj, ok := g.objects[p]
		if !ok || obj.Kind != Goal || obj.Symbol != sym {
			return false
		}
	}
	return true
}

// Solved returns a copy of the grid with a block parked on every goal.
func (g *ObjectGrid) Solved() *ObjectGrid {
	out := g.Clone()
	clear(out.blocks)
	for p, obj := range out.objects {
		if obj.Kind == Goal {
			out.blocks[p] = obj.Symbol
		}
	}
	out.modified = true
	return out
}

// Equal reports whether two grids hold the same objects and blocks.
func (g *ObjectGrid) Equal(other *ObjectGrid) bool {
	return g.cols == other.cols && g.rows == other.rows &&
		maps.Equal(g.objects, other.objects) && maps.Equal(g.blocks, other.blocks)
}

func sortedPoints[V any](m map[core.Point]V) []core.Point {
	pts := slices.Collect(maps.Keys(m))
	slices.SortFunc(pts, func(a, b core.Point) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return pts
}

// MarshalTable encodes the blocks and push-pop gates. Other objects are
// part of the authored layout and are not saved.
func (g *ObjectGrid) MarshalTable() save.Table {
	blocks := make([]any, 0, len(g.blocks))
	for _, p := range sortedPoints(g.blocks) {
		blocks = append(blocks, save.Table{
			colKey:    p.Col,
			rowKey:    p.Row,
			symbolKey: g.blocks[p].String(),
		})
	}
	pushPops := []any{}
	for _, p := range sortedPoints(g.objects) {
		obj := g.objects[p]
		if obj.Kind != PushPop {
			continue
		}
		pushPops = append(pushPops, save.Table{
			colKey:       p.Col,
			rowKey:       p.Row,
			directionKey: obj.Dir.String(),
		})
	}
	return save.Table{blocksKey: blocks, pushPopsKey: pushPops}
}

// GridFromTable decodes a grid saved by MarshalTable on top of the authored
// layout def. Any inconsistency (wrong block or gate count, out-of-bounds or
// colliding cells, unreadable symbols or directions) yields a copy of def.
func GridFromTable(t save.Table, def *ObjectGrid) *ObjectGrid {
	type placed struct {
		p   core.Point
		sym Symbol
		dir core.Dir
	}
	readPoint := func(e save.Table) (core.Point, bool) {
		col, ok1 := save.IntAt(e, colKey)
		row, ok2 := save.IntAt(e, rowKey)
		p := core.Pt(col, row)
		return p, ok1 && ok2 && def.inBounds(p)
	}

	var blocks []placed
	for _, v := range save.ArrayAt(t, blocksKey) {
		e := save.ToTable(v)
		p, ok := readPoint(e)
		if !ok {
			return def.Clone()
		}
		raw, _ := save.StringAt(e, symbolKey)
		sym, ok := ParseSymbol(raw)
		if !ok {
			return def.Clone()
		}
		blocks = append(blocks, placed{p: p, sym: sym})
	}
	if len(blocks) != len(def.blocks) {
		return def.Clone()
	}

	var pushPops []placed
	for _, v := range save.ArrayAt(t, pushPopsKey) {
		e := save.ToTable(v)
		p, ok := readPoint(e)
		if !ok {
			return def.Clone()
		}
		raw, _ := save.StringAt(e, directionKey)
		d, ok := core.ParseDir(raw)
		if !ok {
			return def.Clone()
		}
		pushPops = append(pushPops, placed{p: p, dir: d})
	}
	if len(pushPops) != def.countObjects(PushPop) {
		return def.Clone()
	}

	grid := def.Clone()
	maps.DeleteFunc(grid.objects, func(_ core.Point, obj Object) bool {
		return obj.Kind == PushPop
	})
	for _, pp := range pushPops {
		if grid.hasObject(pp.p) {
			return def.Clone()
		}
		grid.objects[pp.p] = PushPopObj(pp.dir)
	}
	clear(grid.blocks)
	for _, b := range blocks {
		if grid.hasBlock(b.p) {
			return def.Clone()
		}
		if obj, ok := grid.objects[b.p]; ok && (obj.Kind == Wall || obj.Kind == Gap) {
			return def.Clone()
		}
		grid.blocks[b.p] = b.sym
	}
	grid.modified = !maps.Equal(grid.blocks, def.blocks) || !maps.Equal(grid.objects, def.objects)
	return grid
}
