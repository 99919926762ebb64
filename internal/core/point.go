package core

import "fmt"

// Point is an integer grid coordinate.
// Col increases to the right, Row increases downward (screen coordinates).
type Point struct {
	Col int
	Row int
}

// Pt is a convenience constructor for Point.
func Pt(col, row int) Point {
	return Point{Col: col, Row: row}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{Col: p.Col + other.Col, Row: p.Row + other.Row}
}

// Sub returns the difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{Col: p.Col - other.Col, Row: p.Row - other.Row}
}

// Step returns the point one cell away in the given direction.
func (p Point) Step(d Dir) Point {
	return p.Add(d.Delta())
}

// Adjacent reports whether two points differ by exactly one orthogonal step.
func (p Point) Adjacent(other Point) bool {
	d := other.Sub(p)
	return (d.Col == 0 && Abs(d.Row) == 1) || (d.Row == 0 && Abs(d.Col) == 1)
}

// Dir is one of the four cardinal directions.
type Dir uint8

const (
	North Dir = iota
	East
	South
	West
)

// AllDirs lists the directions in clockwise order starting at North.
var AllDirs = [4]Dir{North, East, South, West}

// String returns the lowercase name of the direction.
func (d Dir) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// ParseDir converts a direction name back to a Dir.
func ParseDir(s string) (Dir, bool) {
	for _, d := range AllDirs {
		if d.String() == s {
			return d, true
		}
	}
	return North, false
}

// Delta returns the unit offset for one step in this direction.
// North decreases Row, South increases Row.
func (d Dir) Delta() Point {
	switch d {
	case North:
		return Pt(0, -1)
	case East:
		return Pt(1, 0)
	case South:
		return Pt(0, 1)
	case West:
		return Pt(-1, 0)
	default:
		return Pt(0, 0)
	}
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

// IsVertical reports whether the direction runs along a column.
func (d Dir) IsVertical() bool {
	return d == North || d == South
}
