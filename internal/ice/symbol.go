package ice

import (
	"strings"
)

// Glyph is the identity of a symbol, an uppercase letter.
type Glyph byte

// Valid reports whether g is an uppercase ASCII letter.
func (g Glyph) Valid() bool {
	return g >= 'A' && g <= 'Z'
}

func (g Glyph) String() string {
	return string(rune(g))
}

// Symbol is a glyph in some orientation. Two symbols match only if both the
// glyph and the orientation (including chirality) are equal.
type Symbol struct {
	Glyph     Glyph
	Transform Transform
}

// Sym builds an upright symbol.
func Sym(g Glyph) Symbol {
	return Symbol{Glyph: g}
}

// Transformed returns the symbol after additionally applying t.
func (s Symbol) Transformed(t Transform) Symbol {
	return Symbol{Glyph: s.Glyph, Transform: s.Transform.Compose(t)}
}

// RotatedCW is shorthand for Transformed with a clockwise quarter turn.
func (s Symbol) RotatedCW() Symbol {
	return Symbol{Glyph: s.Glyph, Transform: s.Transform.RotatedCW()}
}

// FlippedHorz is shorthand for Transformed with a left-right mirror.
func (s Symbol) FlippedHorz() Symbol {
	return Symbol{Glyph: s.Glyph, Transform: s.Transform.FlippedHorz()}
}

// FlippedVert is shorthand for Transformed with a top-bottom mirror.
func (s Symbol) FlippedVert() Symbol {
	return Symbol{Glyph: s.Glyph, Transform: s.Transform.FlippedVert()}
}

// String encodes the symbol as "<glyph>/<transform>", e.g. "Q/r2".
func (s Symbol) String() string {
	return s.Glyph.String() + "/" + s.Transform.String()
}

// ParseSymbol decodes the String form. A bare glyph means upright.
func ParseSymbol(s string) (Symbol, bool) {
	glyph, code, hasCode := strings.Cut(s, "/")
	if len(glyph) != 1 || !Glyph(glyph[0]).Valid() {
		return Symbol{}, false
	}
	sym := Sym(Glyph(glyph[0]))
	if !hasCode {
		return sym, true
	}
	t, ok := ParseTransform(code)
	if !ok {
		return Symbol{}, false
	}
	sym.Transform = t
	return sym, true
}
