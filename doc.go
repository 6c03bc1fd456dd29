// Package rustique implements the editing core of a layered raster paint
// program.
//
// # Overview
//
// rustique models a painting as an ordered stack of pixel layers. Every cell
// of a layer is either unpainted or holds an 8-bit RGBA color, and the visible
// picture is the top-down composite of the stack. An Editor owns the canvas
// together with the interactive state around it: the active tool, brush
// configuration, color slots, delta-based undo/redo, and change tracking for
// display and persistence.
//
// # Quick Start
//
//	import "github.com/aurelienmaze/rustique"
//
//	// Create a 512x512 document with a single background layer
//	e := rustique.NewEditor(512, 512)
//
//	// Paint a stroke with the default round brush
//	e.DrawLine(100, 100, 400, 300, rustique.PaintedCell(rustique.Red))
//	e.CommitStroke()
//
//	// Fill a region and save everything
//	e.FillAt(10, 10, rustique.PaintedCell(rustique.Blue))
//	e.CommitStroke()
//	if err := e.SaveFile("out.rustiq"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The package is organized into:
//   - Pixel model: Color, Cell, Layer, Canvas (compositing, layer stack ops)
//   - Editing: Editor, BrushStyle and the brush footprints, flood fill
//   - History: per-stroke change deltas with bounded undo/redo
//   - Persistence: versioned JSON documents plus raster import/export
//
// The export/ subpackage renders flattened composites to document formats,
// and cmd/rustiq is a command-line front end for inspection and conversion.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Layer index 0 is the bottom of the stack
//
// # Concurrency
//
// An Editor and its Canvas are confined to a single goroutine. None of the
// editing operations are safe for concurrent use; SetLogger is the only
// exception.
package rustique

// Version information
const (
	// Version is the current version of the library
	Version = "3.0.0"

	// VersionMajor is the major version
	VersionMajor = 3

	// VersionMinor is the minor version
	VersionMinor = 0

	// VersionPatch is the patch version
	VersionPatch = 0
)
