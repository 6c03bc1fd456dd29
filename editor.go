package rustique

import (
	"image"
	"image/color"
)

// MaxSavedColors caps the saved color palette. Adding beyond the limit
// evicts the oldest entry.
const MaxSavedColors = 16

// Tool identifies the active editing tool.
type Tool int

const (
	// ToolBrush paints with the configured brush footprint.
	ToolBrush Tool = iota
	// ToolEraser clears cells with a circular footprint.
	ToolEraser
	// ToolBucket flood-fills a contiguous region of the active layer.
	ToolBucket
	// ToolPicker samples the composited color under the cursor.
	ToolPicker
	// ToolLine draws a straight brush stroke between two anchor points.
	ToolLine
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolBrush:
		return "brush"
	case ToolEraser:
		return "eraser"
	case ToolBucket:
		return "bucket"
	case ToolPicker:
		return "picker"
	case ToolLine:
		return "line"
	default:
		return "unknown"
	}
}

// Editor owns a layered canvas together with the interactive state around
// it: tool selection, colors, brush configuration, the saved palette, the
// undo/redo history, and the change-tracking flags consumed by display and
// persistence code.
//
// The exported fields are plain tool state and may be read and assigned
// freely. Everything that needs bookkeeping goes through methods.
//
// An Editor is confined to a single goroutine.
type Editor struct {
	canvas *Canvas

	// Tool is the active tool. It does not gate any Editor method; the
	// drawing, fill, and erase operations are invoked explicitly.
	Tool Tool

	// Primary and Secondary are the two active color slots.
	Primary   Color
	Secondary Color

	// Brush configures the footprint used by DrawPoint and DrawLine.
	Brush BrushStyle

	// EraserSize is the radius of the circular eraser footprint, in cells.
	EraserSize int

	savedColors []Color

	undoStack []Stroke
	redoStack []Stroke
	pending   Stroke

	lineStartX   int
	lineStartY   int
	hasLineStart bool

	dirty        bool
	unsaved      bool
	lastSavePath string
}

// NewEditor creates an editor for a fresh canvas of the given dimensions,
// holding a single "Background" layer. Dimensions smaller than 1 are
// clamped to 1.
func NewEditor(width, height int) *Editor {
	return &Editor{
		canvas:     NewCanvas(width, height),
		Tool:       ToolBrush,
		Primary:    Black,
		Secondary:  White,
		Brush:      DefaultBrushStyle(),
		EraserSize: 3,
		dirty:      true,
	}
}

// NewEditorFromImage creates an editor whose single "Background" layer is
// initialized from img. Only pixels with nonzero alpha become painted
// cells; fully transparent pixels stay unpainted.
func NewEditorFromImage(img image.Image) *Editor {
	bounds := img.Bounds()
	e := NewEditor(bounds.Dx(), bounds.Dy())
	layer := e.canvas.ActiveLayer()
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			n := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			if n.A > 0 {
				layer.SetCell(x, y, PaintedCell(Color{R: n.R, G: n.G, B: n.B, A: n.A}))
			}
		}
	}
	return e
}

// Canvas returns the canvas the editor operates on. Mutating the canvas
// directly bypasses change recording; use the Editor methods for anything
// that should take part in undo/redo and unsaved-change tracking.
func (e *Editor) Canvas() *Canvas { return e.canvas }

// Width returns the canvas width.
func (e *Editor) Width() int { return e.canvas.width }

// Height returns the canvas height.
func (e *Editor) Height() int { return e.canvas.height }

// Dirty reports whether the canvas changed visually since the last
// ClearDirty. Display code polls this to decide when to re-upload the
// composite.
func (e *Editor) Dirty() bool { return e.dirty }

// ClearDirty resets the dirty flag.
func (e *Editor) ClearDirty() { e.dirty = false }

// Unsaved reports whether the document has changes that are not persisted.
func (e *Editor) Unsaved() bool { return e.unsaved }

// LastSavePath returns the path of the most recent successful save or open,
// or "" when the document never touched disk.
func (e *Editor) LastSavePath() string { return e.lastSavePath }

// AddLayer appends a new layer on top of the stack and makes it active.
func (e *Editor) AddLayer(name string) {
	e.canvas.AddLayer(name)
	e.dirty = true
	e.unsaved = true
}

// RemoveLayer removes the layer at the given index. The last remaining
// layer cannot be removed; invalid indices are silently ignored.
func (e *Editor) RemoveLayer(i int) {
	if e.canvas.LayerCount() <= 1 || i < 0 || i >= e.canvas.LayerCount() {
		return
	}
	e.canvas.RemoveLayer(i)
	e.dirty = true
	e.unsaved = true
}

// MoveLayerUp swaps the layer at the given index toward the bottom of the
// stack (index 0). Invalid indices are silently ignored.
func (e *Editor) MoveLayerUp(i int) {
	if i <= 0 || i >= e.canvas.LayerCount() {
		return
	}
	e.canvas.MoveLayerUp(i)
	e.dirty = true
	e.unsaved = true
}

// MoveLayerDown swaps the layer at the given index toward the top of the
// stack. Invalid indices are silently ignored.
func (e *Editor) MoveLayerDown(i int) {
	if i < 0 || i >= e.canvas.LayerCount()-1 {
		return
	}
	e.canvas.MoveLayerDown(i)
	e.dirty = true
	e.unsaved = true
}

// ToggleLayerVisibility flips the visibility of the layer at the given
// index. Invalid indices are silently ignored.
func (e *Editor) ToggleLayerVisibility(i int) {
	if i < 0 || i >= e.canvas.LayerCount() {
		return
	}
	e.canvas.ToggleLayerVisibility(i)
	e.dirty = true
	e.unsaved = true
}

// RenameLayer sets the name of the layer at the given index.
// Invalid indices are silently ignored.
func (e *Editor) RenameLayer(i int, name string) {
	if i < 0 || i >= e.canvas.LayerCount() {
		return
	}
	e.canvas.RenameLayer(i, name)
	e.unsaved = true
}

// SetActiveLayer makes the layer at the given index the target of edits.
// Invalid indices are silently ignored.
func (e *Editor) SetActiveLayer(i int) {
	e.canvas.SetActiveLayer(i)
}

// PickColor samples the composited color at (x, y) into the primary color
// slot, or the secondary slot when secondary is true. Sampling an unpainted
// position leaves the slot untouched.
func (e *Editor) PickColor(x, y int, secondary bool) {
	cell := e.canvas.CellAt(x, y)
	if !cell.Painted {
		return
	}
	if secondary {
		e.Secondary = cell.Color
	} else {
		e.Primary = cell.Color
	}
}

// SavedColors returns a copy of the saved color palette, oldest first.
func (e *Editor) SavedColors() []Color {
	out := make([]Color, len(e.savedColors))
	copy(out, e.savedColors)
	return out
}

// AddSavedColor appends a color to the saved palette. Colors already in the
// palette are ignored; once the palette holds MaxSavedColors entries, the
// oldest one is evicted.
func (e *Editor) AddSavedColor(c Color) {
	for _, sc := range e.savedColors {
		if sc == c {
			return
		}
	}
	if len(e.savedColors) >= MaxSavedColors {
		e.savedColors = e.savedColors[1:]
	}
	e.savedColors = append(e.savedColors, c)
}

// RemoveSavedColor removes the palette entry at the given index.
// Invalid indices are silently ignored.
func (e *Editor) RemoveSavedColor(i int) {
	if i < 0 || i >= len(e.savedColors) {
		return
	}
	e.savedColors = append(e.savedColors[:i], e.savedColors[i+1:]...)
}

// UseSavedColor copies the palette entry at the given index into the
// primary color slot, or the secondary slot when secondary is true.
// Invalid indices are silently ignored.
func (e *Editor) UseSavedColor(i int, secondary bool) {
	if i < 0 || i >= len(e.savedColors) {
		return
	}
	if secondary {
		e.Secondary = e.savedColors[i]
	} else {
		e.Primary = e.savedColors[i]
	}
}

// BeginLine anchors the start of a straight line stroke at (x, y).
// A previously pending anchor is replaced.
func (e *Editor) BeginLine(x, y int) {
	e.lineStartX = x
	e.lineStartY = y
	e.hasLineStart = true
}

// LineStart returns the pending line anchor, if any.
func (e *Editor) LineStart() (x, y int, ok bool) {
	return e.lineStartX, e.lineStartY, e.hasLineStart
}

// EndLine draws a straight brush stroke from the pending anchor to (x, y)
// with the given fill, commits it as one stroke, and clears the anchor.
// Without a pending anchor, EndLine is a no-op.
func (e *Editor) EndLine(x, y int, fill Cell) {
	if !e.hasLineStart {
		return
	}
	e.DrawLine(e.lineStartX, e.lineStartY, x, y, fill)
	e.hasLineStart = false
	e.CommitStroke()
}

// CancelLine discards the pending line anchor without drawing.
func (e *Editor) CancelLine() {
	e.hasLineStart = false
}
