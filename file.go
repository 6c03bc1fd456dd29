package rustique

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/aurelienmaze/rustique/export"
)

// File I/O errors.
var (
	// ErrUnsupportedFormat is returned when a file extension maps to no
	// supported format, or the format cannot serve the requested direction
	// (webp is decode-only, pdf is encode-only).
	ErrUnsupportedFormat = errors.New("rustique: unsupported format")

	// ErrNoSavePath is returned by QuickSave when the document has never
	// been saved or opened from a path.
	ErrNoSavePath = errors.New("rustique: no previous save path")
)

// Format identifies a file format the editor can read or write.
// Formats are derived from file extensions, never from content sniffing:
// an unknown extension is a reported error, not a guess.
type Format int

const (
	FormatUnknown Format = iota
	FormatPNG
	FormatJPEG
	FormatBMP
	FormatTIFF
	FormatGIF
	FormatWebP
	FormatRustiq
	FormatPDF
)

// String returns the canonical file extension of the format, without a dot.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpg"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	case FormatGIF:
		return "gif"
	case FormatWebP:
		return "webp"
	case FormatRustiq:
		return "rustiq"
	case FormatPDF:
		return "pdf"
	default:
		return "unknown"
	}
}

// FormatForPath maps a file path to its format by extension,
// case-insensitively. Unrecognized extensions map to FormatUnknown.
func FormatForPath(path string) Format {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "png":
		return FormatPNG
	case "jpg", "jpeg":
		return FormatJPEG
	case "bmp":
		return FormatBMP
	case "tiff", "tif":
		return FormatTIFF
	case "gif":
		return FormatGIF
	case "webp":
		return FormatWebP
	case "rustiq":
		return FormatRustiq
	case "pdf":
		return FormatPDF
	default:
		return FormatUnknown
	}
}

// SaveFile writes the document to path in the format implied by the
// extension. A .rustiq path persists the full layered document; raster and
// pdf extensions export the flattened composite. On success the unsaved
// flag clears and the path is remembered for QuickSave. A failed save
// leaves both untouched.
func (e *Editor) SaveFile(path string) error {
	format := FormatForPath(path)
	switch format {
	case FormatUnknown:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	case FormatWebP:
		return fmt.Errorf("%w: no webp encoder, save as png instead", ErrUnsupportedFormat)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("rustique: create file: %w", err)
	}

	if err := e.encodeAs(f, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("rustique: close file: %w", err)
	}

	e.unsaved = false
	e.lastSavePath = path
	Logger().Debug("saved document", "path", path, "format", format.String())
	return nil
}

// QuickSave re-saves the document to the path of the most recent save or
// open. Without such a path it returns ErrNoSavePath.
func (e *Editor) QuickSave() error {
	if e.lastSavePath == "" {
		return ErrNoSavePath
	}
	return e.SaveFile(e.lastSavePath)
}

// encodeAs writes the document to w in the given format.
func (e *Editor) encodeAs(w io.Writer, format Format) error {
	if format == FormatRustiq {
		return EncodeDocument(w, e)
	}

	img := e.canvas.Flatten()
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, nil)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, nil)
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	case FormatPDF:
		err = export.PDF(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format.String())
	}
	if err != nil {
		return fmt.Errorf("rustique: encode %s: %w", format.String(), err)
	}
	return nil
}

// OpenFile reads a document from path. A .rustiq file restores the full
// layered document, migrating legacy schemas forward; raster formats import
// as a single "Background" layer where only pixels with nonzero alpha
// become painted cells. The path is remembered for QuickSave.
func OpenFile(path string) (*Editor, error) {
	format := FormatForPath(path)
	switch format {
	case FormatUnknown, FormatPDF:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("rustique: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var e *Editor
	if format == FormatRustiq {
		e, err = DecodeDocument(f)
		if err != nil {
			return nil, err
		}
	} else {
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("rustique: decode image: %w", err)
		}
		e = NewEditorFromImage(img)
	}

	e.unsaved = false
	e.lastSavePath = path
	Logger().Debug("opened document", "path", path, "format", format.String(),
		"width", e.Width(), "height", e.Height(), "layers", e.Canvas().LayerCount())
	return e, nil
}
