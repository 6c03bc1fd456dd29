package rustique

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidDocument is returned when document data does not match any known
// schema.
var ErrInvalidDocument = errors.New("rustique: invalid document")

// The wire schema of .rustiq documents. Field names and value shapes match
// the original format: colors are [r,g,b,a] arrays, unpainted cells are
// null, and the brush shape is a variant-name string.
type wireDocument struct {
	Width            int             `json:"width"`
	Height           int             `json:"height"`
	Layers           []wireLayer     `json:"layers"`
	ActiveLayerIndex int             `json:"active_layer_index"`
	PrimaryColor     [4]uint8        `json:"primary_color"`
	SecondaryColor   [4]uint8        `json:"secondary_color"`
	SavedColors      [][4]uint8      `json:"saved_colors"`
	CurrentBrush     *wireBrushStyle `json:"current_brush_style"`
	EraserSize       int             `json:"eraser_size"`
}

type wireLayer struct {
	Name    string      `json:"name"`
	Data    []*[4]uint8 `json:"data"`
	Visible bool        `json:"visible"`
}

type wireBrushStyle struct {
	BrushType     wireShape `json:"brush_type"`
	Size          float64   `json:"size"`
	Angle         float64   `json:"angle"`
	Hardness      float64   `json:"hardness"`
	BristleCount  *int      `json:"bristle_count"`
	TaperStrength *float64  `json:"taper_strength"`
}

// wireShape marshals a Shape as its canonical name. Decoding is
// case-insensitive and rejects unknown names.
type wireShape Shape

func (s wireShape) MarshalJSON() ([]byte, error) {
	return json.Marshal(Shape(s).String())
}

func (s *wireShape) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	shape, err := ParseShape(name)
	if err != nil {
		return err
	}
	*s = wireShape(shape)
	return nil
}

// wireDocumentV1 is the legacy schema: a flat brush_size field instead of a
// brush style.
type wireDocumentV1 struct {
	Width            int         `json:"width"`
	Height           int         `json:"height"`
	Layers           []wireLayer `json:"layers"`
	ActiveLayerIndex int         `json:"active_layer_index"`
	PrimaryColor     [4]uint8    `json:"primary_color"`
	SecondaryColor   [4]uint8    `json:"secondary_color"`
	SavedColors      [][4]uint8  `json:"saved_colors"`
	BrushSize        int         `json:"brush_size"`
	EraserSize       int         `json:"eraser_size"`
}

// schemaProbe distinguishes the current schema from V1 before full decoding:
// exactly one of the two brush fields is present in a valid document.
type schemaProbe struct {
	CurrentBrush *json.RawMessage `json:"current_brush_style"`
	BrushSize    *json.RawMessage `json:"brush_size"`
}

// EncodeDocument writes the editor's canvas and tool state to w in the
// current document schema.
func EncodeDocument(w io.Writer, e *Editor) error {
	c := e.canvas
	doc := wireDocument{
		Width:            c.width,
		Height:           c.height,
		Layers:           make([]wireLayer, 0, len(c.layers)),
		ActiveLayerIndex: c.active,
		PrimaryColor:     wireColor(e.Primary),
		SecondaryColor:   wireColor(e.Secondary),
		SavedColors:      make([][4]uint8, 0, len(e.savedColors)),
		CurrentBrush: &wireBrushStyle{
			BrushType: wireShape(e.Brush.Shape),
			Size:      e.Brush.Size,
			Angle:     e.Brush.Angle,
			Hardness:  e.Brush.Hardness,
		},
		EraserSize: e.EraserSize,
	}
	if e.Brush.BristleCount > 0 {
		n := e.Brush.BristleCount
		doc.CurrentBrush.BristleCount = &n
	}
	if e.Brush.TaperStrength != 0 {
		ts := e.Brush.TaperStrength
		doc.CurrentBrush.TaperStrength = &ts
	}

	for _, l := range c.layers {
		wl := wireLayer{
			Name:    l.name,
			Data:    make([]*[4]uint8, len(l.cells)),
			Visible: l.visible,
		}
		for i, cell := range l.cells {
			if cell.Painted {
				rgba := wireColor(cell.Color)
				wl.Data[i] = &rgba
			}
		}
		doc.Layers = append(doc.Layers, wl)
	}
	for _, sc := range e.savedColors {
		doc.SavedColors = append(doc.SavedColors, wireColor(sc))
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("rustique: encode document: %w", err)
	}
	return nil
}

// DecodeDocument reads a document from r and builds a fresh editor from it.
// Data in the legacy schema is migrated to the current one: the flat brush
// size becomes a round brush of that size at full hardness. Data matching
// neither schema yields an error wrapping ErrInvalidDocument; no partially
// decoded state escapes.
func DecodeDocument(r io.Reader) (*Editor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("rustique: read document: %w", err)
	}

	var probe schemaProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var doc wireDocument
	switch {
	case probe.CurrentBrush != nil:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	case probe.BrushSize != nil:
		var old wireDocumentV1
		if err := json.Unmarshal(data, &old); err != nil {
			return nil, fmt.Errorf("%w: legacy schema: %v", ErrInvalidDocument, err)
		}
		doc = migrateV1(old)
		Logger().Debug("migrated legacy document", "brush_size", old.BrushSize)
	default:
		return nil, fmt.Errorf("%w: no brush field in any known schema", ErrInvalidDocument)
	}

	return editorFromWire(&doc)
}

// migrateV1 lifts a legacy document into the current schema. The flat brush
// size maps to a round brush at full hardness; everything else carries over
// unchanged.
func migrateV1(old wireDocumentV1) wireDocument {
	return wireDocument{
		Width:            old.Width,
		Height:           old.Height,
		Layers:           old.Layers,
		ActiveLayerIndex: old.ActiveLayerIndex,
		PrimaryColor:     old.PrimaryColor,
		SecondaryColor:   old.SecondaryColor,
		SavedColors:      old.SavedColors,
		CurrentBrush: &wireBrushStyle{
			BrushType: wireShape(ShapeRound),
			Size:      float64(old.BrushSize),
			Angle:     0,
			Hardness:  1,
		},
		EraserSize: old.EraserSize,
	}
}

// editorFromWire validates a decoded document and builds the editor.
func editorFromWire(doc *wireDocument) (*Editor, error) {
	if doc.Width < 1 || doc.Height < 1 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidDocument, doc.Width, doc.Height)
	}
	if len(doc.Layers) == 0 {
		return nil, fmt.Errorf("%w: no layers", ErrInvalidDocument)
	}
	for i, wl := range doc.Layers {
		if len(wl.Data) != doc.Width*doc.Height {
			return nil, fmt.Errorf("%w: layer %d holds %d cells, want %d",
				ErrInvalidDocument, i, len(wl.Data), doc.Width*doc.Height)
		}
	}

	c := &Canvas{
		width:  doc.Width,
		height: doc.Height,
		layers: make([]*Layer, 0, len(doc.Layers)),
	}
	for _, wl := range doc.Layers {
		l := NewLayer(wl.Name, doc.Width, doc.Height)
		l.visible = wl.Visible
		for i, rgba := range wl.Data {
			if rgba != nil {
				l.cells[i] = PaintedCell(Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]})
			}
		}
		c.layers = append(c.layers, l)
	}

	c.active = doc.ActiveLayerIndex
	if c.active < 0 || c.active >= len(c.layers) {
		Logger().Warn("clamping active layer index", "index", c.active, "layers", len(c.layers))
		c.active = len(c.layers) - 1
	}

	e := &Editor{
		canvas:     c,
		Tool:       ToolBrush,
		Primary:    colorFromWire(doc.PrimaryColor),
		Secondary:  colorFromWire(doc.SecondaryColor),
		EraserSize: doc.EraserSize,
		dirty:      true,
	}

	wb := doc.CurrentBrush
	e.Brush = BrushStyle{
		Shape:    Shape(wb.BrushType),
		Size:     wb.Size,
		Angle:    wb.Angle,
		Hardness: wb.Hardness,
	}
	if wb.BristleCount != nil {
		e.Brush.BristleCount = *wb.BristleCount
	}
	if wb.TaperStrength != nil {
		e.Brush.TaperStrength = *wb.TaperStrength
	}

	saved := doc.SavedColors
	if len(saved) > MaxSavedColors {
		Logger().Warn("truncating saved palette", "colors", len(saved), "cap", MaxSavedColors)
		saved = saved[len(saved)-MaxSavedColors:]
	}
	for _, sc := range saved {
		e.savedColors = append(e.savedColors, colorFromWire(sc))
	}

	return e, nil
}

func wireColor(c Color) [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

func colorFromWire(rgba [4]uint8) Color {
	return Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
}
