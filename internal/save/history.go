package save

// History is an undo/redo stack of reversible move records.
// Pushing a new move discards any redo entries.
type History[M any] struct {
	undo []M
	redo []M
}

// Push records a freshly applied move.
func (h *History[M]) Push(m M) {
	h.undo = append(h.undo, m)
	h.redo = h.redo[:0]
}

// Undo pops the most recent move so the caller can invert it.
func (h *History[M]) Undo() (M, bool) {
	var zero M
	if len(h.undo) == 0 {
		return zero, false
	}
	m := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, m)
	return m, true
}

// Redo pops the most recently undone move so the caller can replay it.
func (h *History[M]) Redo() (M, bool) {
	var zero M
	if len(h.redo) == 0 {
		return zero, false
	}
	m := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, m)
	return m, true
}

// Clear drops both stacks.
func (h *History[M]) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

func (h *History[M]) CanUndo() bool { return len(h.undo) > 0 }
func (h *History[M]) CanRedo() bool { return len(h.redo) > 0 }

// Len returns the number of moves that can currently be undone.
func (h *History[M]) Len() int { return len(h.undo) }

// Last returns the most recent undoable move without removing it.
func (h *History[M]) Last() (M, bool) {
	var zero M
	if len(h.undo) == 0 {
		return zero, false
	}
	return h.undo[len(h.undo)-1], true
}
