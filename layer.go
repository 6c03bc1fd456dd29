package rustique

// Cell is the content of a single layer pixel. A cell is either unpainted
// (the zero value) or carries a color. Unpainted cells let lower layers
// show through during compositing; they are distinct from painted cells
// with zero alpha.
//
// Cell is comparable, so writes that would not change anything can be
// elided with a plain equality check.
type Cell struct {
	Color   Color
	Painted bool
}

// PaintedCell creates a cell holding the given color.
func PaintedCell(c Color) Cell {
	return Cell{Color: c, Painted: true}
}

// Layer represents one rectangular raster sheet of a canvas.
// Cells are stored in row-major order.
type Layer struct {
	name    string
	visible bool
	width   int
	height  int
	cells   []Cell
}

// NewLayer creates a visible, fully unpainted layer with the given
// dimensions. Dimensions smaller than 1 are clamped to 1.
func NewLayer(name string, width, height int) *Layer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Layer{
		name:    name,
		visible: true,
		width:   width,
		height:  height,
		cells:   make([]Cell, width*height),
	}
}

// Name returns the layer name.
func (l *Layer) Name() string { return l.name }

// SetName sets the layer name.
func (l *Layer) SetName(name string) { l.name = name }

// Visible reports whether the layer takes part in compositing.
func (l *Layer) Visible() bool { return l.visible }

// SetVisible sets the layer visibility.
func (l *Layer) SetVisible(v bool) { l.visible = v }

// Width returns the width of the layer.
func (l *Layer) Width() int { return l.width }

// Height returns the height of the layer.
func (l *Layer) Height() int { return l.height }

// Cell returns the cell at (x, y). Out-of-bounds coordinates return an
// unpainted cell.
func (l *Layer) Cell(x, y int) Cell {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return Cell{}
	}
	return l.cells[y*l.width+x]
}

// SetCell sets the cell at (x, y). Out-of-bounds coordinates are silently
// ignored.
func (l *Layer) SetCell(x, y int, c Cell) {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return
	}
	l.cells[y*l.width+x] = c
}

// PaintedCount returns the number of painted cells.
func (l *Layer) PaintedCount() int {
	n := 0
	for _, c := range l.cells {
		if c.Painted {
			n++
		}
	}
	return n
}
