package rustique

import "math"

// radians converts degrees to radians.
func radians(deg float64) float64 { return deg * math.Pi / 180 }

// clampFloat restricts v to [lo, hi].
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// brushLocal rotates the offset (dx, dy) into the brush frame given by the
// cosine and sine of the footprint orientation. Containment tests then run
// against the unrotated footprint.
func brushLocal(dx, dy, cosA, sinA float64) (lx, ly float64) {
	return dx*cosA + dy*sinA, -dx*sinA + dy*cosA
}

// stampRound paints a circular footprint. Hardness sets the radius of the
// fully opaque core; alpha falls off linearly from the core to the rim.
func (e *Editor) stampRound(x, y int, style BrushStyle, fill Cell) {
	radius := style.Size / 2
	bound := int(math.Ceil(radius))
	for dy := -bound; dy <= bound; dy++ {
		for dx := -bound; dx <= bound; dx++ {
			distSq := float64(dx*dx + dy*dy)
			if distSq > radius*radius {
				continue
			}
			cell := fill
			if fill.Painted {
				dist := math.Sqrt(distSq)
				hardRadius := radius * style.Hardness
				mult := 1.0
				if dist > hardRadius {
					if radius > hardRadius {
						mult = clampFloat((radius-dist)/(radius-hardRadius), 0, 1)
					} else {
						mult = 0
					}
				}
				cell.Color.A = uint8(math.Round(float64(fill.Color.A) * mult))
			}
			e.record(x+dx, y+dy, cell)
		}
	}
}

// stampMop paints a large, very soft circular footprint at 30% of the fill
// alpha. Hardness is compressed into [0.01, 0.25] so the footprint always
// keeps a wide falloff. Cells whose resulting alpha rounds to zero are
// skipped, as is an unpainted fill.
func (e *Editor) stampMop(x, y int, style BrushStyle, fill Cell) {
	if !fill.Painted {
		return
	}
	radius := style.Size / 2
	actualHardness := clampFloat(style.Hardness*0.24+0.01, 0.01, 0.25)
	const baseAlpha = 0.3

	if radius < 0.5 {
		a := uint8(math.Round(float64(fill.Color.A) * baseAlpha))
		if a > 0 {
			cell := fill
			cell.Color.A = a
			e.record(x, y, cell)
		}
		return
	}

	hardRadius := radius * actualHardness
	bound := int(math.Ceil(radius))
	for dy := -bound; dy <= bound; dy++ {
		for dx := -bound; dx <= bound; dx++ {
			distSq := float64(dx*dx + dy*dy)
			if distSq > radius*radius {
				continue
			}
			dist := math.Sqrt(distSq)
			mult := 1.0
			if dist > hardRadius {
				if radius > hardRadius {
					mult = (radius - dist) / (radius - hardRadius)
				} else {
					mult = 0
				}
				mult = clampFloat(mult, 0, 1)
			}
			a := uint8(math.Round(float64(fill.Color.A) * baseAlpha * mult))
			if a == 0 {
				continue
			}
			cell := fill
			cell.Color.A = a
			e.record(x+dx, y+dy, cell)
		}
	}
}

// stampRect paints a rectangle of the given length and thickness centered
// at (cx, cy) and rotated by angleRad. Iteration covers the bounding box of
// the rotated rectangle around the rounded center.
func (e *Editor) stampRect(cx, cy, length, thickness, angleRad float64, fill Cell) {
	cosA := math.Cos(angleRad)
	sinA := math.Sin(angleRad)
	bound := int(math.Ceil(math.Hypot(length, thickness) / 2))
	icx := int(math.Round(cx))
	icy := int(math.Round(cy))
	for dy := -bound; dy <= bound; dy++ {
		for dx := -bound; dx <= bound; dx++ {
			px := icx + dx
			py := icy + dy
			lx, ly := brushLocal(float64(px)-cx, float64(py)-cy, cosA, sinA)
			if math.Abs(lx) <= length/2 && math.Abs(ly) <= thickness/2 {
				e.record(px, py, fill)
			}
		}
	}
}

// stampFlat paints a rotated rectangle whose thickness scales with both
// hardness and size, with a one-cell minimum.
func (e *Editor) stampFlat(x, y int, style BrushStyle, fill Cell) {
	thickness := style.Hardness * style.Size * 0.25
	if thickness < 1 {
		thickness = 1
	}
	e.stampRect(float64(x), float64(y), style.Size, thickness, radians(style.Angle), fill)
}

// stampBright paints a rotated rectangle with a fixed 20% thickness ratio.
// Hardness does not affect the footprint.
func (e *Editor) stampBright(x, y int, style BrushStyle, fill Cell) {
	thickness := math.Max(style.Size*0.20, 1)
	e.stampRect(float64(x), float64(y), style.Size, thickness, radians(style.Angle), fill)
}

// stampFan paints a spread of thin rectangular bristles fanning over 90
// degrees. Each bristle extends outward from the stamp center; size sets
// the bristle length and hardness scales the bristle thickness.
func (e *Editor) stampFan(x, y int, style BrushStyle, fill Cell) {
	n := style.BristleCount
	if n == 0 {
		n = 10
	}
	if n < 2 {
		n = 2
	}
	length := math.Max(style.Size, 1)
	thickness := math.Min(math.Max(style.Hardness*length*0.05, 1), length*0.2)

	const spreadDeg = 90.0
	rotation := radians(style.Angle)

	for i := 0; i < n; i++ {
		norm := 0.5
		if n > 1 {
			norm = float64(i) / float64(n-1)
		}
		angle := (norm-0.5)*radians(spreadDeg) + rotation
		midX := float64(x) + (length/2)*math.Cos(angle)
		midY := float64(y) + (length/2)*math.Sin(angle)
		e.stampRect(midX, midY, length, thickness, angle, fill)
	}
}

// stampRigger paints a fixed two-cell diameter round tip. Size, angle, and
// hardness are ignored.
func (e *Editor) stampRigger(x, y int, _ BrushStyle, fill Cell) {
	const radius = 1.0
	bound := int(math.Ceil(radius))
	for dy := -bound; dy <= bound; dy++ {
		for dx := -bound; dx <= bound; dx++ {
			if float64(dx*dx+dy*dy) <= radius*radius {
				e.record(x+dx, y+dy, fill)
			}
		}
	}
}

// stampFilbert paints a rotated ellipse. Size sets the major axis and
// hardness the minor/major aspect ratio, clamped to [0.1, 1]. Footprints
// smaller than one cell collapse to a single point.
func (e *Editor) stampFilbert(x, y int, style BrushStyle, fill Cell) {
	major := style.Size
	minor := major * clampFloat(style.Hardness, 0.1, 1)

	rotation := radians(style.Angle)
	cosA := math.Cos(rotation)
	sinA := math.Sin(rotation)

	semiMajor := major / 2
	semiMinor := minor / 2
	if semiMajor < 0.5 || semiMinor < 0.5 {
		e.record(x, y, fill)
		return
	}

	sqMajor := semiMajor * semiMajor
	sqMinor := semiMinor * semiMinor
	bound := int(math.Ceil(math.Max(semiMajor, semiMinor)))
	for dy := -bound; dy <= bound; dy++ {
		for dx := -bound; dx <= bound; dx++ {
			lx, ly := brushLocal(float64(dx), float64(dy), cosA, sinA)
			if (lx*lx)/sqMajor+(ly*ly)/sqMinor <= 1 {
				e.record(x+dx, y+dy, fill)
			}
		}
	}
}

// stampAngle paints a rotated rectangle sheared into a parallelogram by a
// built-in 45 degree slant. Size sets the width, hardness scales the
// thickness with a one-cell minimum, and the angle rotates the whole
// footprint.
func (e *Editor) stampAngle(x, y int, style BrushStyle, fill Cell) {
	width := style.Size
	thickness := style.Hardness * width * 0.25
	if thickness < 1 {
		thickness = 1
	}

	rotation := radians(style.Angle)
	cosA := math.Cos(rotation)
	sinA := math.Sin(rotation)
	tanShear := math.Tan(radians(45))

	maxShear := (width / 2) * math.Abs(tanShear)
	bound := int(math.Ceil(math.Hypot(width, thickness)/2 + maxShear))
	for dy := -bound; dy <= bound; dy++ {
		for dx := -bound; dx <= bound; dx++ {
			lx, ly := brushLocal(float64(dx), float64(dy), cosA, sinA)
			if math.Abs(lx) > width/2 {
				continue
			}
			if math.Abs(ly-lx*tanShear) <= thickness/2 {
				e.record(x+dx, y+dy, fill)
			}
		}
	}
}

// stampFallback covers shape values without a dedicated footprint, such as
// values decoded from documents written by a newer revision: a hard round
// stamp derived from the configured size.
func (e *Editor) stampFallback(x, y int, style BrushStyle, fill Cell) {
	radius := math.Max(style.Size/2, 0.5)
	bound := int(math.Ceil(radius))
	for dy := -bound; dy <= bound; dy++ {
		for dx := -bound; dx <= bound; dx++ {
			if float64(dx*dx+dy*dy) <= radius*radius {
				e.record(x+dx, y+dy, fill)
			}
		}
	}
}
