// Package export renders flattened composites to document formats.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// pdfDPI converts canvas cells to PDF points: one cell per point would
// produce unwieldy page sizes for large canvases, so pages are laid out at
// 96 cells per inch.
const pdfDPI = 96.0

// PDF writes img to w as a single-page PDF document whose page matches the
// image proportions.
func PDF(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	pageW := float64(bounds.Dx()) * 72.0 / pdfDPI
	pageH := float64(bounds.Dy()) * 72.0 / pdfDPI

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("export: encode page image: %w", err)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("composite", opts, &buf)
	pdf.ImageOptions("composite", 0, 0, pageW, pageH, false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}
