package save

import (
	"math"
)

// AccessKey is the table key every puzzle uses for its access value.
const AccessKey = "access"

// Table is a decoded YAML mapping. Values are whatever yaml.v3 produces
// when unmarshalling into any: nested Tables, []any, int, float64, string
// and bool.
type Table = map[string]any

// ToTable converts a decoded value to a Table. Anything that is not a
// mapping with string keys becomes an empty Table.
func ToTable(v any) Table {
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		t := make(Table, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				t[ks] = val
			}
		}
		return t
	default:
		return Table{}
	}
}

// ToArray converts a decoded value to a slice, or nil if it is not one.
func ToArray(v any) []any {
	a, _ := v.([]any)
	return a
}

// ToInt converts a decoded number to int. Floats are accepted only when
// they hold an integral value.
func ToInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// ToString converts a decoded value to string.
func ToString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// TableAt returns the sub-table stored under key, or an empty Table.
func TableAt(t Table, key string) Table {
	return ToTable(t[key])
}

// ArrayAt returns the array stored under key, or nil.
func ArrayAt(t Table, key string) []any {
	return ToArray(t[key])
}

// IntAt returns the integer stored under key.
func IntAt(t Table, key string) (int, bool) {
	return ToInt(t[key])
}

// StringAt returns the string stored under key.
func StringAt(t Table, key string) (string, bool) {
	return ToString(t[key])
}

// BoolAt returns the boolean stored under key.
func BoolAt(t Table, key string) (bool, bool) {
	b, ok := t[key].(bool)
	return b, ok
}

// IntArray converts every element of a decoded array to int, failing if any
// element is not an integer.
func IntArray(a []any) ([]int, bool) {
	out := make([]int, 0, len(a))
	for _, v := range a {
		n, ok := ToInt(v)
		if !ok {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

// Ints converts a slice of ints to a value that encodes as a YAML sequence.
func Ints(values []int) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
