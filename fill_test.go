package rustique

import (
	"testing"
)

// TestFillAt_EmptyLayer verifies filling an all-unpainted layer reaches
// every cell, and undo restores all of them.
func TestFillAt_EmptyLayer(t *testing.T) {
	e := NewEditor(10, 10)
	e.FillAt(0, 0, PaintedCell(Red))
	e.CommitStroke()

	if n := e.Canvas().ActiveLayer().PaintedCount(); n != 100 {
		t.Fatalf("PaintedCount() = %d after fill, want 100", n)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := e.Canvas().ActiveCell(x, y); got.Color != Red {
				t.Fatalf("cell (%d, %d) = %+v, want red", x, y, got)
			}
		}
	}

	e.Undo()
	if n := e.Canvas().ActiveLayer().PaintedCount(); n != 0 {
		t.Errorf("PaintedCount() = %d after undo, want 0", n)
	}
}

// TestFillAt_SameColor verifies filling with the seed's own cell performs
// zero writes.
func TestFillAt_SameColor(t *testing.T) {
	e := NewEditor(10, 10)
	e.FillAt(0, 0, PaintedCell(Red))
	e.CommitStroke()

	e.FillAt(5, 5, PaintedCell(Red))
	if len(e.pending) != 0 {
		t.Errorf("fill with the target color recorded %d changes, want 0", len(e.pending))
	}
}

// TestFillAt_BoundedRegion verifies the fill stops at cells that differ
// from the seed.
func TestFillAt_BoundedRegion(t *testing.T) {
	e := NewEditor(9, 9)
	// Close a 4-connected box around the center.
	for i := 2; i <= 6; i++ {
		e.Canvas().ActiveLayer().SetCell(i, 2, PaintedCell(Black))
		e.Canvas().ActiveLayer().SetCell(i, 6, PaintedCell(Black))
		e.Canvas().ActiveLayer().SetCell(2, i, PaintedCell(Black))
		e.Canvas().ActiveLayer().SetCell(6, i, PaintedCell(Black))
	}

	e.FillAt(4, 4, PaintedCell(Red))
	e.CommitStroke()

	if got := e.Canvas().ActiveCell(4, 4); got.Color != Red {
		t.Errorf("interior cell = %+v, want red", got)
	}
	if got := e.Canvas().ActiveCell(3, 3); got.Color != Red {
		t.Errorf("interior corner = %+v, want red", got)
	}
	if got := e.Canvas().ActiveCell(4, 2); got.Color != Black {
		t.Errorf("wall cell = %+v, want black", got)
	}
	if got := e.Canvas().ActiveCell(0, 0); got.Painted {
		t.Errorf("cell outside the box = %+v, want unpainted", got)
	}
}

// TestFillAt_DiagonalDoesNotConnect verifies regions touching only at
// corners stay separate.
func TestFillAt_DiagonalDoesNotConnect(t *testing.T) {
	e := NewEditor(4, 4)
	// A diagonal wall of painted cells between two unpainted triangles.
	for i := 0; i < 4; i++ {
		e.Canvas().ActiveLayer().SetCell(i, i, PaintedCell(Black))
	}

	e.FillAt(3, 0, PaintedCell(Red))
	e.CommitStroke()

	if got := e.Canvas().ActiveCell(3, 0); got.Color != Red {
		t.Errorf("seed side = %+v, want red", got)
	}
	if got := e.Canvas().ActiveCell(0, 3); got.Painted {
		t.Errorf("far side of the diagonal = %+v, want unpainted", got)
	}
}

// TestFillAt_ErasesRegion verifies an unpainted fill clears the region.
func TestFillAt_ErasesRegion(t *testing.T) {
	e := NewEditor(6, 6)
	e.FillAt(0, 0, PaintedCell(Green))
	e.CommitStroke()

	e.FillAt(0, 0, Cell{})
	e.CommitStroke()
	if n := e.Canvas().ActiveLayer().PaintedCount(); n != 0 {
		t.Errorf("PaintedCount() = %d after erasing fill, want 0", n)
	}
}

// TestFillAt_InvalidSeed verifies out-of-bounds seeds and hidden layers are
// silent no-ops.
func TestFillAt_InvalidSeed(t *testing.T) {
	e := NewEditor(5, 5)
	e.FillAt(-1, 0, PaintedCell(Red))
	e.FillAt(0, 5, PaintedCell(Red))

	e.ToggleLayerVisibility(0)
	e.FillAt(2, 2, PaintedCell(Red))

	if n := e.Canvas().ActiveLayer().PaintedCount(); n != 0 {
		t.Errorf("PaintedCount() = %d after invalid fills, want 0", n)
	}
}

// TestFillAt_OnlyActiveLayer verifies the fill reads and writes the active
// layer, ignoring the composite.
func TestFillAt_OnlyActiveLayer(t *testing.T) {
	e := NewEditor(5, 5)
	e.FillAt(0, 0, PaintedCell(Blue))
	e.CommitStroke()

	e.AddLayer("top")
	e.FillAt(0, 0, PaintedCell(Red))
	e.CommitStroke()

	// The new layer was unpainted everywhere, so the whole layer fills even
	// though the composite showed blue.
	if n := e.Canvas().Layer(1).PaintedCount(); n != 25 {
		t.Errorf("top layer painted cells = %d, want 25", n)
	}
	if got := e.Canvas().Layer(0).Cell(2, 2); got.Color != Blue {
		t.Errorf("bottom layer cell = %+v, want untouched blue", got)
	}
}
