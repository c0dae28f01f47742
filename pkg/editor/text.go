package editor

import (
	"strings"

	"github.com/caarlosandree/editor-pdf/pkg/core"
)

// Font size bounds for text instructions, in points.
const (
	MinFontSize     = 8.0
	MaxFontSize     = 72.0
	DefaultFontSize = 12.0
)

// TextTool holds the transient form state for a text instruction.
type TextTool struct {
	Content  string
	FontSize float64
	X, Y     float64
}

// NewTextTool returns a text tool at its defaults.
func NewTextTool() TextTool {
	return TextTool{FontSize: DefaultFontSize, X: 100, Y: 100}
}

// Reset restores the defaults, discarding any typed input.
func (t *TextTool) Reset() {
	*t = NewTextTool()
}

// Submit builds a text instruction from the current form state and resets
// the form. Blank content is rejected and the form is retained for
// correction. The font size is clamped to [MinFontSize, MaxFontSize].
func (t *TextTool) Submit() (core.EditInstruction, error) {
	if strings.TrimSpace(t.Content) == "" {
		return core.EditInstruction{}, core.ErrMissingContent
	}

	size := t.FontSize
	if size == 0 {
		size = DefaultFontSize
	}
	size = clamp(size, MinFontSize, MaxFontSize)

	inst := core.EditInstruction{
		Type:     core.KindText,
		Page:     1, // re-stamped by the session at add time
		X:        t.X,
		Y:        t.Y,
		Content:  t.Content,
		FontSize: core.Float(size),
	}
	t.Reset()
	return inst, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
