package rustique

import (
	"fmt"
	"strings"
)

// Shape selects the footprint geometry of the brush.
type Shape int

const (
	// ShapeRound is a circular footprint with a hardness-controlled soft edge.
	ShapeRound Shape = iota
	// ShapeFlat is a rotated rectangle whose thickness follows hardness.
	ShapeFlat
	// ShapeBright is a rotated rectangle with a fixed thickness ratio.
	ShapeBright
	// ShapeFilbert is a rotated ellipse whose aspect follows hardness.
	ShapeFilbert
	// ShapeFan is a spread of thin rectangular bristles.
	ShapeFan
	// ShapeAngle is a rotated parallelogram with a built-in 45 degree shear.
	ShapeAngle
	// ShapeMop is a large, very soft circular footprint at reduced opacity.
	ShapeMop
	// ShapeRigger is a fixed two-cell round tip for fine lines.
	ShapeRigger
)

// shapeNames holds the canonical names used in documents.
var shapeNames = [...]string{
	ShapeRound:   "Round",
	ShapeFlat:    "Flat",
	ShapeBright:  "Bright",
	ShapeFilbert: "Filbert",
	ShapeFan:     "Fan",
	ShapeAngle:   "Angle",
	ShapeMop:     "Mop",
	ShapeRigger:  "Rigger",
}

// String returns the canonical shape name.
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape parses a shape name. Matching is case-insensitive.
func ParseShape(name string) (Shape, error) {
	for s, n := range shapeNames {
		if strings.EqualFold(name, n) {
			return Shape(s), nil
		}
	}
	return 0, fmt.Errorf("rustique: unknown brush shape %q", name)
}

// BrushStyle configures the brush footprint. How each field is interpreted
// depends on the shape; see the Shape constants and the drawing operations.
type BrushStyle struct {
	// Shape selects the footprint geometry.
	Shape Shape

	// Size is the footprint diameter, or the width along the main axis for
	// the rectangular shapes, in cells.
	Size float64

	// Angle is the footprint orientation in degrees.
	Angle float64

	// Hardness is in [0, 1]. Round and Mop use it for edge softness, Flat
	// and Angle for thickness, Filbert for the aspect ratio, Fan for
	// bristle thickness. Bright and Rigger ignore it.
	Hardness float64

	// BristleCount is the number of bristles of the Fan shape.
	// Zero selects the default of 10; values below 2 are raised to 2.
	BristleCount int

	// TaperStrength is reserved. It is carried through documents but no
	// footprint consumes it yet.
	TaperStrength float64
}

// DefaultBrushStyle returns the brush configuration of a fresh editor:
// a round brush of size 10 with full hardness.
func DefaultBrushStyle() BrushStyle {
	return BrushStyle{
		Shape:        ShapeRound,
		Size:         10,
		Angle:        0,
		Hardness:     1,
		BristleCount: 10,
	}
}
