package rustique

import "math"

// DrawPoint stamps the configured brush once at (x, y), recording every
// cell write into the in-progress stroke. Stamping while the active layer
// is hidden is a no-op. An unpainted fill erases with the brush footprint
// (the Mop shape excepted, which only ever paints).
func (e *Editor) DrawPoint(x, y int, fill Cell) {
	e.drawPointStyle(x, y, e.Brush, fill)
}

// drawPointStyle dispatches one stamp of the given style. The style is
// passed explicitly so a line stroke can stamp with an adjusted copy while
// e.Brush stays untouched.
func (e *Editor) drawPointStyle(x, y int, style BrushStyle, fill Cell) {
	if !e.canvas.ActiveLayer().Visible() {
		return
	}
	switch style.Shape {
	case ShapeRound:
		e.stampRound(x, y, style, fill)
	case ShapeMop:
		e.stampMop(x, y, style, fill)
	case ShapeBright:
		e.stampBright(x, y, style, fill)
	case ShapeFan:
		e.stampFan(x, y, style, fill)
	case ShapeRigger:
		e.stampRigger(x, y, style, fill)
	case ShapeFilbert:
		e.stampFilbert(x, y, style, fill)
	case ShapeAngle:
		e.stampAngle(x, y, style, fill)
	case ShapeFlat:
		e.stampFlat(x, y, style, fill)
	default:
		e.stampFallback(x, y, style, fill)
	}
	e.dirty = true
}

// DrawLine stamps the brush at every lattice point of the line from
// (x0, y0) to (x1, y1).
//
// For the Flat, Angle, and Filbert shapes the effective hardness adapts to
// the stroke direction: strokes running along the footprint orientation
// thin out, strokes running across it keep the full thickness. Flat and
// Angle scale their thickness down toward a 10% floor; Filbert blends its
// aspect ratio toward circular. The adjustment operates on a copy, so the
// caller's brush style is never mutated.
func (e *Editor) DrawLine(x0, y0, x1, y1 int, fill Cell) {
	style := e.Brush

	if style.Shape == ShapeFlat || style.Shape == ShapeAngle || style.Shape == ShapeFilbert {
		sdx := float64(x1 - x0)
		sdy := float64(y1 - y0)

		// Degenerate strokes keep the plain footprint.
		if math.Hypot(sdx, sdy) > 0.1 {
			strokeAngle := math.Atan2(sdy, sdx)
			orientation := radians(style.Angle)

			diff := math.Abs(strokeAngle - orientation)
			if diff > math.Pi {
				diff = 2*math.Pi - diff
			}
			if diff > math.Pi/2 {
				diff = math.Pi - diff
			}

			// 0 along the brush orientation, largest across it.
			factor := math.Sin(diff / (math.Pi / 2))

			switch style.Shape {
			case ShapeFlat, ShapeAngle:
				style.Hardness = clampFloat(style.Hardness*math.Max(factor, 0.1), 0.01, 1)
			case ShapeFilbert:
				style.Hardness = clampFloat(style.Hardness*(1-factor)+factor, 0.1, 1)
			}
		}
	}

	lineWalk(x0, y0, x1, y1, func(x, y int) {
		e.drawPointStyle(x, y, style, fill)
	})
	e.dirty = true
}

// ErasePoint clears a circular area of radius EraserSize centered at
// (x, y), recording the writes into the in-progress stroke. Erasing while
// the active layer is hidden is a no-op.
func (e *Editor) ErasePoint(x, y int) {
	if !e.canvas.ActiveLayer().Visible() {
		return
	}
	size := e.EraserSize
	for dy := -size; dy <= size; dy++ {
		for dx := -size; dx <= size; dx++ {
			if dx*dx+dy*dy <= size*size {
				e.record(x+dx, y+dy, Cell{})
			}
		}
	}
	e.dirty = true
}

// EraseLine erases along the line from (x0, y0) to (x1, y1) with the
// circular eraser footprint.
func (e *Editor) EraseLine(x0, y0, x1, y1 int) {
	lineWalk(x0, y0, x1, y1, func(x, y int) {
		e.ErasePoint(x, y)
	})
}

// lineWalk visits every lattice point of the line from (x0, y0) to
// (x1, y1) using Bresenham's algorithm, endpoints included.
func lineWalk(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
