package editor

import (
	"math"

	"github.com/caarlosandree/editor-pdf/pkg/core"
)

// Stroke width bounds for line drawings, in points.
const (
	MinStrokeWidth     = 1.0
	MaxStrokeWidth     = 10.0
	DefaultStrokeWidth = 2.0
)

// DrawingTool holds the two endpoints of a straight-line annotation.
type DrawingTool struct {
	X1, Y1      float64
	X2, Y2      float64
	StrokeWidth float64
}

// NewDrawingTool returns a drawing tool at its defaults.
func NewDrawingTool() DrawingTool {
	return DrawingTool{X1: 100, Y1: 100, X2: 200, Y2: 200, StrokeWidth: DefaultStrokeWidth}
}

// Reset restores the defaults.
func (d *DrawingTool) Reset() {
	*d = NewDrawingTool()
}

// Submit builds a drawing instruction and resets the form. The instruction
// anchors at the first endpoint; width and height are the absolute deltas of
// the two endpoints, and the second endpoint plus stroke width travel in the
// metadata so the backend can reconstruct the line.
func (d *DrawingTool) Submit() (core.EditInstruction, error) {
	stroke := d.StrokeWidth
	if stroke == 0 {
		stroke = DefaultStrokeWidth
	}
	stroke = clamp(stroke, MinStrokeWidth, MaxStrokeWidth)

	inst := core.EditInstruction{
		Type:   core.KindDrawing,
		Page:   1, // re-stamped by the session at add time
		X:      d.X1,
		Y:      d.Y1,
		Width:  core.Float(math.Abs(d.X2 - d.X1)),
		Height: core.Float(math.Abs(d.Y2 - d.Y1)),
		Metadata: core.Metadata{
			"x2":          d.X2,
			"y2":          d.Y2,
			"strokeWidth": stroke,
			"drawingType": "line",
		},
	}
	d.Reset()
	return inst, nil
}
