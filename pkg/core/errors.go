package core

import "errors"

// Sentinel errors shared across the annotation core.
var (
	// ErrNotFound marks a document the backend does not know about.
	ErrNotFound = errors.New("document not found")

	// ErrBusy is returned when a submission is already pending.
	ErrBusy = errors.New("a submission is already pending")

	// ErrNoInstructions is returned for an empty batch.
	ErrNoInstructions = errors.New("no instructions to submit")

	// ErrToolInactive is returned when an instruction is added without an active tool.
	ErrToolInactive = errors.New("no annotation tool is active")

	// ErrMissingContent is returned by the text tool for blank content.
	ErrMissingContent = errors.New("text content cannot be empty")

	// ErrMissingFile is returned by the image tool when no file is selected.
	ErrMissingFile = errors.New("no image file selected")

	// ErrNotAnImage is returned when a selected file is not a raster image.
	ErrNotAnImage = errors.New("selected file is not an image")
)
