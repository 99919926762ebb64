// Package save holds the persistence vocabulary shared by every puzzle:
// progress access, the location table, the tolerant table codec and the
// undo/redo history.
package save

// Access is the progress state of one location.
// Values are ordered; comparisons such as a >= Solved are meaningful.
type Access int

const (
	Unvisited Access = iota
	Visited
	Solved
	BeginReplay
	Replaying
)

var accessNames = [...]string{
	Unvisited:   "unvisited",
	Visited:     "visited",
	Solved:      "solved",
	BeginReplay: "begin_replay",
	Replaying:   "replaying",
}

// String returns the persisted name of the access value.
func (a Access) String() string {
	if a < Unvisited || a > Replaying {
		return accessNames[Unvisited]
	}
	return accessNames[a]
}

// ParseAccess converts a persisted name back to Access.
// Unknown names yield Unvisited.
func ParseAccess(s string) Access {
	for i, name := range accessNames {
		if name == s {
			return Access(i)
		}
	}
	return Unvisited
}

// IsVisited reports whether the location has ever been entered.
func (a Access) IsVisited() bool {
	return a >= Visited
}

// HasBeenSolved reports whether the location was solved at some point,
// including while it is being replayed.
func (a Access) HasBeenSolved() bool {
	return a >= Solved
}

// Visit returns the access value after entering the location.
func (a Access) Visit() Access {
	switch a {
	case Unvisited:
		return Visited
	case BeginReplay:
		return Replaying
	default:
		return a
	}
}

// AccessFromTable reads the access entry of a puzzle table.
func AccessFromTable(t Table) Access {
	s, _ := StringAt(t, AccessKey)
	return ParseAccess(s)
}
