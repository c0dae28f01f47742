package editor

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlosandree/editor-pdf/pkg/core"

	// Raster decoders for sniffing and dimension probing. The x/image set
	// covers formats the standard library does not register.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageTool holds the transient form state for an embedded-image
// instruction. A file must be selected before Submit can succeed.
type ImageTool struct {
	X, Y          float64
	Width, Height float64

	file string
	mime string
}

// NewImageTool returns an image tool at its defaults.
func NewImageTool() ImageTool {
	return ImageTool{X: 100, Y: 100, Width: 200, Height: 200}
}

// Reset restores the defaults and clears the selected file.
func (t *ImageTool) Reset() {
	*t = NewImageTool()
}

// SelectFile records the file to embed. The media kind is sniffed from the
// file head and must be image/*; anything else is rejected and the previous
// selection is kept.
func (t *ImageTool) SelectFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && n == 0 {
		return fmt.Errorf("read image: %w", err)
	}

	mime := http.DetectContentType(head[:n])
	if !strings.HasPrefix(mime, "image/") {
		return fmt.Errorf("%s: %w", path, core.ErrNotAnImage)
	}

	t.file = path
	t.mime = mime
	return nil
}

// File reports the selected file path, empty when none is selected.
func (t *ImageTool) File() string {
	return t.file
}

// Submit reads the selected file, encodes it as a data URL and builds the
// image instruction. This is the only builder with a suspension point: the
// encode happens here, not at selection time, and honors ctx cancellation.
// Without a selected file the form is retained and ErrMissingFile returned.
func (t *ImageTool) Submit(ctx context.Context) (core.EditInstruction, error) {
	if t.file == "" {
		return core.EditInstruction{}, core.ErrMissingFile
	}
	if err := ctx.Err(); err != nil {
		return core.EditInstruction{}, err
	}

	data, err := os.ReadFile(t.file)
	if err != nil {
		return core.EditInstruction{}, fmt.Errorf("read image: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return core.EditInstruction{}, err
	}

	meta := core.Metadata{
		"filename": filepath.Base(t.file),
		"mimeType": t.mime,
	}
	// Record the intrinsic pixel size when the payload is decodable.
	if cfg, _, derr := image.DecodeConfig(bytes.NewReader(data)); derr == nil {
		meta["sourceWidth"] = cfg.Width
		meta["sourceHeight"] = cfg.Height
	}

	inst := core.EditInstruction{
		Type:     core.KindImage,
		Page:     1, // re-stamped by the session at add time
		X:        t.X,
		Y:        t.Y,
		Width:    core.Float(t.Width),
		Height:   core.Float(t.Height),
		Content:  "data:" + t.mime + ";base64," + base64.StdEncoding.EncodeToString(data),
		Metadata: meta,
	}
	t.Reset()
	return inst, nil
}
