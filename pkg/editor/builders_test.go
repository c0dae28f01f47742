package editor_test

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/caarlosandree/editor-pdf/pkg/core"
	"github.com/caarlosandree/editor-pdf/pkg/editor"
)

func TestTextTool_Submit(t *testing.T) {
	tool := editor.NewTextTool()
	tool.Content = "Hello"
	tool.X = 10
	tool.Y = 20

	inst, err := tool.Submit()
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if inst.Type != core.KindText || inst.X != 10 || inst.Y != 20 || inst.Content != "Hello" {
		t.Errorf("unexpected instruction: %+v", inst)
	}
	if inst.FontSize == nil || *inst.FontSize != 12 {
		t.Errorf("expected default font size 12, got %v", inst.FontSize)
	}
	// Submit resets the form.
	if tool.Content != "" || tool.X != 100 {
		t.Errorf("expected form reset, got %+v", tool)
	}
}

func TestTextTool_RejectsBlankContent(t *testing.T) {
	tool := editor.NewTextTool()
	tool.Content = "   "
	tool.X = 42

	_, err := tool.Submit()
	if !errors.Is(err, core.ErrMissingContent) {
		t.Fatalf("expected ErrMissingContent, got %v", err)
	}
	// The form is retained for correction.
	if tool.X != 42 {
		t.Errorf("expected form retained, got %+v", tool)
	}
}

func TestTextTool_ClampsFontSize(t *testing.T) {
	tool := editor.NewTextTool()
	tool.Content = "big"
	tool.FontSize = 500

	inst, err := tool.Submit()
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if *inst.FontSize != editor.MaxFontSize {
		t.Errorf("expected font size clamped to %v, got %v", editor.MaxFontSize, *inst.FontSize)
	}
}

func TestDrawingTool_BoundingBox(t *testing.T) {
	tool := editor.NewDrawingTool()
	tool.X1, tool.Y1 = 50, 50
	tool.X2, tool.Y2 = 30, 80

	inst, err := tool.Submit()
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if inst.X != 50 || inst.Y != 50 {
		t.Errorf("expected anchor (50,50), got (%v,%v)", inst.X, inst.Y)
	}
	if *inst.Width != 20 || *inst.Height != 30 {
		t.Errorf("expected 20x30 bounding box, got %vx%v", *inst.Width, *inst.Height)
	}
	if inst.Metadata["x2"] != 30.0 || inst.Metadata["y2"] != 80.0 {
		t.Errorf("expected endpoint metadata, got %v", inst.Metadata)
	}
	if inst.Metadata["strokeWidth"] != 2.0 {
		t.Errorf("expected default stroke width 2, got %v", inst.Metadata["strokeWidth"])
	}
	if inst.Metadata["drawingType"] != "line" {
		t.Errorf("expected line drawing type, got %v", inst.Metadata["drawingType"])
	}
}

func TestDrawingTool_ClampsStrokeWidth(t *testing.T) {
	tool := editor.NewDrawingTool()
	tool.StrokeWidth = 99

	inst, err := tool.Submit()
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if inst.Metadata["strokeWidth"] != editor.MaxStrokeWidth {
		t.Errorf("expected stroke clamped to %v, got %v", editor.MaxStrokeWidth, inst.Metadata["strokeWidth"])
	}
}

// writeTestPNG creates a small real PNG on disk.
func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return path
}

func TestImageTool_Submit(t *testing.T) {
	path := writeTestPNG(t, 3, 4)

	tool := editor.NewImageTool()
	if err := tool.SelectFile(path); err != nil {
		t.Fatalf("SelectFile failed: %v", err)
	}

	inst, err := tool.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if inst.Type != core.KindImage {
		t.Errorf("expected image instruction, got %s", inst.Type)
	}
	if !strings.HasPrefix(inst.Content, "data:image/png;base64,") {
		t.Errorf("expected data URL content, got %q", inst.Content[:min(40, len(inst.Content))])
	}
	if inst.Metadata["filename"] != "test.png" || inst.Metadata["mimeType"] != "image/png" {
		t.Errorf("unexpected metadata: %v", inst.Metadata)
	}
	if inst.Metadata["sourceWidth"] != 3 || inst.Metadata["sourceHeight"] != 4 {
		t.Errorf("expected intrinsic size 3x4 in metadata, got %v", inst.Metadata)
	}
	if *inst.Width != 200 || *inst.Height != 200 {
		t.Errorf("expected default 200x200 placement, got %vx%v", *inst.Width, *inst.Height)
	}
	if tool.File() != "" {
		t.Error("expected selection cleared after submit")
	}
}

func TestImageTool_RejectsWithoutFile(t *testing.T) {
	tool := editor.NewImageTool()
	_, err := tool.Submit(context.Background())
	if !errors.Is(err, core.ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile, got %v", err)
	}
}

func TestImageTool_RejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("plain text, definitely not a raster"), 0644); err != nil {
		t.Fatal(err)
	}

	tool := editor.NewImageTool()
	if err := tool.SelectFile(path); !errors.Is(err, core.ErrNotAnImage) {
		t.Fatalf("expected ErrNotAnImage, got %v", err)
	}
	if tool.File() != "" {
		t.Error("expected no file selected")
	}
}
