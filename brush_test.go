package rustique

import (
	"testing"
)

// TestShapeString verifies the canonical names and the out-of-range form.
func TestShapeString(t *testing.T) {
	tests := []struct {
		shape Shape
		want  string
	}{
		{ShapeRound, "Round"},
		{ShapeFlat, "Flat"},
		{ShapeBright, "Bright"},
		{ShapeFilbert, "Filbert"},
		{ShapeFan, "Fan"},
		{ShapeAngle, "Angle"},
		{ShapeMop, "Mop"},
		{ShapeRigger, "Rigger"},
		{Shape(99), "Shape(99)"},
		{Shape(-1), "Shape(-1)"},
	}
	for _, tt := range tests {
		if got := tt.shape.String(); got != tt.want {
			t.Errorf("Shape(%d).String() = %q, want %q", int(tt.shape), got, tt.want)
		}
	}
}

// TestParseShape verifies round-tripping every shape name plus case
// insensitivity and rejection of unknown names.
func TestParseShape(t *testing.T) {
	for s := ShapeRound; s <= ShapeRigger; s++ {
		got, err := ParseShape(s.String())
		if err != nil {
			t.Errorf("ParseShape(%q) error: %v", s.String(), err)
			continue
		}
		if got != s {
			t.Errorf("ParseShape(%q) = %v, want %v", s.String(), got, s)
		}
	}

	if got, err := ParseShape("mOP"); err != nil || got != ShapeMop {
		t.Errorf("ParseShape(\"mOP\") = (%v, %v), want Mop", got, err)
	}
	if _, err := ParseShape("Sponge"); err == nil {
		t.Error("ParseShape(\"Sponge\") succeeded, want an error")
	}
}

// TestDefaultBrushStyle verifies the fresh-editor brush configuration.
func TestDefaultBrushStyle(t *testing.T) {
	b := DefaultBrushStyle()
	if b.Shape != ShapeRound {
		t.Errorf("Shape = %v, want Round", b.Shape)
	}
	if b.Size != 10 || b.Angle != 0 || b.Hardness != 1 {
		t.Errorf("parameters = (%.1f, %.1f, %.2f), want (10, 0, 1)", b.Size, b.Angle, b.Hardness)
	}
	if b.BristleCount != 10 {
		t.Errorf("BristleCount = %d, want 10", b.BristleCount)
	}
}
