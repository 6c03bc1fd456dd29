package rustique

import "image"

// CheckerboardSize is the edge length, in cells, of the backdrop squares
// rendered under unpainted areas.
const CheckerboardSize = 8

var (
	checkerLight = Gray(200)
	checkerDark  = Gray(160)
)

// CheckerboardColor returns the backdrop shade for (x, y): light and dark
// squares alternating every CheckerboardSize cells.
func CheckerboardColor(x, y int) Color {
	if (x/CheckerboardSize+y/CheckerboardSize)%2 == 0 {
		return checkerLight
	}
	return checkerDark
}

// Render writes the composited canvas into dst as 8-bit RGBA rows, with
// the checkerboard backdrop under unpainted positions. dst must hold at
// least Width()*Height()*4 bytes. This is the readout display code uses to
// refresh a texture.
func (c *Canvas) Render(dst []uint8) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cell := c.CellAt(x, y)
			col := cell.Color
			if !cell.Painted {
				col = CheckerboardColor(x, y)
			}
			i := (y*c.width + x) * 4
			dst[i+0] = col.R
			dst[i+1] = col.G
			dst[i+2] = col.B
			dst[i+3] = col.A
		}
	}
}

// RenderRGBA writes the composited canvas into dst as 8-bit RGBA rows,
// fully transparent where nothing is painted. dst must hold at least
// Width()*Height()*4 bytes.
func (c *Canvas) RenderRGBA(dst []uint8) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			i := (y*c.width + x) * 4
			cell := c.CellAt(x, y)
			if !cell.Painted {
				dst[i+0] = 0
				dst[i+1] = 0
				dst[i+2] = 0
				dst[i+3] = 0
				continue
			}
			dst[i+0] = cell.Color.R
			dst[i+1] = cell.Color.G
			dst[i+2] = cell.Color.B
			dst[i+3] = cell.Color.A
		}
	}
}

// Flatten returns the composite as a standard image, transparent where
// nothing is painted. The result feeds any raster encoder directly.
func (c *Canvas) Flatten() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cell := c.CellAt(x, y)
			if !cell.Painted {
				continue
			}
			i := y*img.Stride + x*4
			img.Pix[i+0] = cell.Color.R
			img.Pix[i+1] = cell.Color.G
			img.Pix[i+2] = cell.Color.B
			img.Pix[i+3] = cell.Color.A
		}
	}
	return img
}
