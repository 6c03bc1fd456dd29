package rustique

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// buildTestEditor assembles an editor exercising every persisted field.
func buildTestEditor() *Editor {
	e := NewEditor(6, 4)
	e.Canvas().ActiveLayer().SetCell(0, 0, PaintedCell(Red))
	e.Canvas().ActiveLayer().SetCell(5, 3, PaintedCell(RGBA(1, 2, 3, 4)))

	e.AddLayer("Ink")
	e.Canvas().ActiveLayer().SetCell(2, 2, PaintedCell(Blue))
	e.ToggleLayerVisibility(1)
	e.SetActiveLayer(0)

	e.Primary = Magenta
	e.Secondary = Cyan
	e.AddSavedColor(Red)
	e.AddSavedColor(Green)
	e.Brush = BrushStyle{
		Shape:         ShapeFilbert,
		Size:          17.5,
		Angle:         -42,
		Hardness:      0.65,
		BristleCount:  7,
		TaperStrength: 0.5,
	}
	e.EraserSize = 9
	return e
}

// TestDocumentRoundTrip verifies encode/decode reproduces the canvas and
// tool state exactly.
func TestDocumentRoundTrip(t *testing.T) {
	src := buildTestEditor()

	var buf bytes.Buffer
	if err := EncodeDocument(&buf, src); err != nil {
		t.Fatalf("EncodeDocument() error: %v", err)
	}

	dst, err := DecodeDocument(&buf)
	if err != nil {
		t.Fatalf("DecodeDocument() error: %v", err)
	}

	if dst.Width() != 6 || dst.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, want 6x4", dst.Width(), dst.Height())
	}
	if dst.Canvas().LayerCount() != 2 {
		t.Fatalf("LayerCount() = %d, want 2", dst.Canvas().LayerCount())
	}
	if dst.Canvas().ActiveIndex() != 0 {
		t.Errorf("ActiveIndex() = %d, want 0", dst.Canvas().ActiveIndex())
	}

	for i := 0; i < 2; i++ {
		sl, dl := src.Canvas().Layer(i), dst.Canvas().Layer(i)
		if dl.Name() != sl.Name() || dl.Visible() != sl.Visible() {
			t.Errorf("layer %d meta = (%q, %v), want (%q, %v)",
				i, dl.Name(), dl.Visible(), sl.Name(), sl.Visible())
		}
		for y := 0; y < 4; y++ {
			for x := 0; x < 6; x++ {
				if dl.Cell(x, y) != sl.Cell(x, y) {
					t.Errorf("layer %d cell (%d, %d) = %+v, want %+v",
						i, x, y, dl.Cell(x, y), sl.Cell(x, y))
				}
			}
		}
	}

	if dst.Primary != Magenta || dst.Secondary != Cyan {
		t.Errorf("colors = (%+v, %+v), want magenta/cyan", dst.Primary, dst.Secondary)
	}
	if got := dst.SavedColors(); len(got) != 2 || got[0] != Red || got[1] != Green {
		t.Errorf("palette = %+v, want [red green]", got)
	}
	if dst.Brush != src.Brush {
		t.Errorf("Brush = %+v, want %+v", dst.Brush, src.Brush)
	}
	if dst.EraserSize != 9 {
		t.Errorf("EraserSize = %d, want 9", dst.EraserSize)
	}
	if dst.Unsaved() {
		t.Error("freshly decoded editor reports unsaved changes")
	}
}

// TestDecodeDocument_LegacyMigration verifies a V1 document (flat
// brush_size) loads as a round brush at full hardness.
func TestDecodeDocument_LegacyMigration(t *testing.T) {
	legacy := `{
		"width": 2, "height": 1,
		"layers": [
			{"name": "Background", "data": [[255, 0, 0, 255], null], "visible": true}
		],
		"active_layer_index": 0,
		"primary_color": [0, 0, 0, 255],
		"secondary_color": [255, 255, 255, 255],
		"saved_colors": [[10, 20, 30, 255]],
		"brush_size": 12,
		"eraser_size": 5
	}`

	e, err := DecodeDocument(strings.NewReader(legacy))
	if err != nil {
		t.Fatalf("DecodeDocument() error: %v", err)
	}

	want := BrushStyle{Shape: ShapeRound, Size: 12, Angle: 0, Hardness: 1}
	if e.Brush != want {
		t.Errorf("migrated Brush = %+v, want %+v", e.Brush, want)
	}
	if e.EraserSize != 5 {
		t.Errorf("EraserSize = %d, want 5", e.EraserSize)
	}
	if got := e.Canvas().ActiveCell(0, 0); got.Color != Red {
		t.Errorf("cell (0, 0) = %+v, want red", got)
	}
	if got := e.Canvas().ActiveCell(1, 0); got.Painted {
		t.Errorf("cell (1, 0) = %+v, want unpainted", got)
	}
	if got := e.SavedColors(); len(got) != 1 || got[0] != RGBA(10, 20, 30, 255) {
		t.Errorf("palette = %+v, want the migrated color", got)
	}
}

// TestDecodeDocument_Invalid verifies junk and structurally broken documents
// are rejected with ErrInvalidDocument.
func TestDecodeDocument_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "this is not a document"},
		{"empty object", "{}"},
		{"no brush field", `{"width": 1, "height": 1, "layers": []}`},
		{"no layers", `{"width": 1, "height": 1, "layers": [],
			"current_brush_style": {"brush_type": "Round", "size": 1, "angle": 0, "hardness": 1}}`},
		{"bad dimensions", `{"width": 0, "height": 5,
			"layers": [{"name": "a", "data": [], "visible": true}],
			"current_brush_style": {"brush_type": "Round", "size": 1, "angle": 0, "hardness": 1}}`},
		{"layer size mismatch", `{"width": 2, "height": 2,
			"layers": [{"name": "a", "data": [null, null], "visible": true}],
			"current_brush_style": {"brush_type": "Round", "size": 1, "angle": 0, "hardness": 1}}`},
		{"unknown shape", `{"width": 1, "height": 1,
			"layers": [{"name": "a", "data": [null], "visible": true}],
			"current_brush_style": {"brush_type": "Sponge", "size": 1, "angle": 0, "hardness": 1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDocument(strings.NewReader(tt.data))
			if !errors.Is(err, ErrInvalidDocument) {
				t.Errorf("DecodeDocument() error = %v, want ErrInvalidDocument", err)
			}
		})
	}
}

// TestDecodeDocument_ClampsActiveIndex verifies an out-of-range persisted
// active index is clamped instead of rejected.
func TestDecodeDocument_ClampsActiveIndex(t *testing.T) {
	doc := `{
		"width": 1, "height": 1,
		"layers": [{"name": "a", "data": [null], "visible": true}],
		"active_layer_index": 7,
		"primary_color": [0, 0, 0, 255],
		"secondary_color": [255, 255, 255, 255],
		"saved_colors": [],
		"current_brush_style": {"brush_type": "Round", "size": 1, "angle": 0, "hardness": 1},
		"eraser_size": 3
	}`
	e, err := DecodeDocument(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeDocument() error: %v", err)
	}
	if e.Canvas().ActiveIndex() != 0 {
		t.Errorf("ActiveIndex() = %d, want clamped 0", e.Canvas().ActiveIndex())
	}
}

// TestDecodeDocument_ShapeCaseInsensitive verifies shape names decode
// regardless of case.
func TestDecodeDocument_ShapeCaseInsensitive(t *testing.T) {
	doc := `{
		"width": 1, "height": 1,
		"layers": [{"name": "a", "data": [null], "visible": true}],
		"active_layer_index": 0,
		"primary_color": [0, 0, 0, 255],
		"secondary_color": [255, 255, 255, 255],
		"saved_colors": [],
		"current_brush_style": {"brush_type": "fiLBert", "size": 2, "angle": 0, "hardness": 1},
		"eraser_size": 3
	}`
	e, err := DecodeDocument(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeDocument() error: %v", err)
	}
	if e.Brush.Shape != ShapeFilbert {
		t.Errorf("Shape = %v, want Filbert", e.Brush.Shape)
	}
}

// TestEncodeDocument_WireNames verifies the emitted JSON keeps the original
// field names other implementations expect.
func TestEncodeDocument_WireNames(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, NewEditor(1, 1)); err != nil {
		t.Fatalf("EncodeDocument() error: %v", err)
	}
	out := buf.String()
	for _, key := range []string{
		`"width"`, `"height"`, `"layers"`, `"active_layer_index"`,
		`"primary_color"`, `"secondary_color"`, `"saved_colors"`,
		`"current_brush_style"`, `"brush_type"`, `"eraser_size"`,
	} {
		if !strings.Contains(out, key) {
			t.Errorf("encoded document lacks %s", key)
		}
	}
	if !strings.Contains(out, `"brush_type":"Round"`) {
		t.Errorf("brush_type not serialized as a variant name: %s", out)
	}
}
