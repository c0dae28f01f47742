package main

import (
	"fmt"
	"log/slog"
	"os"

	editorpdf "github.com/caarlosandree/editor-pdf"
)

// consoleNotifier prints notices the way the web UI would toast them.
type consoleNotifier struct{}

func (consoleNotifier) Success(msg string) {
	fmt.Println("✔", msg)
}

func (consoleNotifier) Error(msg string) {
	fmt.Fprintln(os.Stderr, "✘", msg)
}

// newService wires the library against the configured backend.
func newService() *editorpdf.Service {
	svc, err := editorpdf.New(requireServer(),
		editorpdf.WithLogger(slog.Default()),
		editorpdf.WithNotifier(consoleNotifier{}),
	)
	if err != nil {
		fatal("Failed to initialize service", err)
	}
	return svc
}
