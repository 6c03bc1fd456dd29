package rustique

// MaxUndoSteps is the number of committed strokes the undo history retains.
// Committing beyond the limit evicts the oldest stroke.
const MaxUndoSteps = 20

// Change records a single cell write: the position, the stack index of the
// layer that was written, and the cell content before and after. Replaying
// a change targets the recorded stack index, not the active layer, so
// history stays correct after layers are reordered.
type Change struct {
	X, Y  int
	Layer int
	Old   Cell
	New   Cell
}

// Stroke is the ordered list of changes produced by one editing gesture.
type Stroke []Change

// record applies a single cell write to the active layer and appends it to
// the in-progress stroke. Out-of-bounds coordinates and writes that would
// not change the cell are silently ignored.
func (e *Editor) record(x, y int, cell Cell) {
	if x < 0 || x >= e.canvas.width || y < 0 || y >= e.canvas.height {
		return
	}
	old := e.canvas.ActiveCell(x, y)
	if old == cell {
		return
	}
	e.pending = append(e.pending, Change{
		X:     x,
		Y:     y,
		Layer: e.canvas.active,
		Old:   old,
		New:   cell,
	})
	e.canvas.SetActiveCell(x, y, cell)
	e.unsaved = true
}

// CommitStroke finalizes the in-progress stroke and pushes it onto the undo
// history. Committing with no recorded changes is a no-op. The redo history
// is discarded, and the oldest stroke is evicted once the history exceeds
// MaxUndoSteps.
func (e *Editor) CommitStroke() {
	if len(e.pending) == 0 {
		return
	}
	e.undoStack = append(e.undoStack, e.pending)
	e.pending = nil
	if len(e.undoStack) > MaxUndoSteps {
		e.undoStack = e.undoStack[1:]
	}
	e.redoStack = nil
	e.unsaved = true
}

// CancelStroke reverts the in-progress stroke without touching the
// histories. Changes are rolled back in reverse order so overlapping writes
// restore the exact pre-stroke cells. The unsaved flag is left as it is.
func (e *Editor) CancelStroke() {
	if len(e.pending) == 0 {
		return
	}
	for i := len(e.pending) - 1; i >= 0; i-- {
		ch := e.pending[i]
		e.canvas.setOnLayer(ch.Layer, ch.X, ch.Y, ch.Old)
	}
	e.pending = nil
	e.dirty = true
}

// Undo reverts the most recently committed stroke and moves it to the redo
// history. Changes are applied in reverse order against the layer index each
// change was recorded on. With an empty undo history, Undo is a no-op.
func (e *Editor) Undo() {
	n := len(e.undoStack)
	if n == 0 {
		return
	}
	stroke := e.undoStack[n-1]
	e.undoStack = e.undoStack[:n-1]

	redo := make(Stroke, 0, len(stroke))
	for i := len(stroke) - 1; i >= 0; i-- {
		ch := stroke[i]
		redo = append(redo, ch)
		e.canvas.setOnLayer(ch.Layer, ch.X, ch.Y, ch.Old)
	}
	e.redoStack = append(e.redoStack, redo)
	e.dirty = true
	e.unsaved = true
}

// Redo reapplies the most recently undone stroke and moves it back to the
// undo history. The mirror stroke records the cells as they were right
// before the redo, so a following Undo restores them faithfully. With an
// empty redo history, Redo is a no-op.
func (e *Editor) Redo() {
	n := len(e.redoStack)
	if n == 0 {
		return
	}
	stroke := e.redoStack[n-1]
	e.redoStack = e.redoStack[:n-1]

	undo := make(Stroke, 0, len(stroke))
	for i := len(stroke) - 1; i >= 0; i-- {
		ch := stroke[i]
		undo = append(undo, Change{
			X:     ch.X,
			Y:     ch.Y,
			Layer: ch.Layer,
			Old:   e.canvas.cellOnLayer(ch.Layer, ch.X, ch.Y),
			New:   ch.New,
		})
		e.canvas.setOnLayer(ch.Layer, ch.X, ch.Y, ch.New)
	}
	e.undoStack = append(e.undoStack, undo)
	e.dirty = true
	e.unsaved = true
}

// UndoDepth returns the number of strokes available to Undo.
func (e *Editor) UndoDepth() int { return len(e.undoStack) }

// RedoDepth returns the number of strokes available to Redo.
func (e *Editor) RedoDepth() int { return len(e.redoStack) }
