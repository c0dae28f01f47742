package core

import (
	"fmt"
	"strings"
)

// FieldError tags a validation message with the path of the offending field,
// e.g. "instructions[2].width".
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationError aggregates the field errors of a rejected batch.
// It never reaches the network; submission is blocked while it is non-empty.
type ValidationError []FieldError

func (e ValidationError) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.String()
	}
	return "invalid batch: " + strings.Join(msgs, "; ")
}

// ValidateInstruction schema-checks a single instruction. The prefix is
// prepended to field paths ("instructions[2]"); pass "" for a bare path.
//
// Validation is pure and synchronous. Variant-specific obligations (text
// content, image payload) are the builders' contract, not the schema's.
func ValidateInstruction(inst EditInstruction, prefix string) []FieldError {
	field := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}

	var errs []FieldError
	switch inst.Type {
	case KindText, KindImage, KindDrawing:
	default:
		errs = append(errs, FieldError{field("type"), "must be text, image or drawing"})
	}
	if inst.Page < 1 {
		errs = append(errs, FieldError{field("page"), "must be at least 1"})
	}
	if inst.X < 0 {
		errs = append(errs, FieldError{field("x"), "must be zero or positive"})
	}
	if inst.Y < 0 {
		errs = append(errs, FieldError{field("y"), "must be zero or positive"})
	}
	if inst.Width != nil && *inst.Width <= 0 {
		errs = append(errs, FieldError{field("width"), "must be positive"})
	}
	if inst.Height != nil && *inst.Height <= 0 {
		errs = append(errs, FieldError{field("height"), "must be positive"})
	}
	if inst.FontSize != nil && *inst.FontSize <= 0 {
		errs = append(errs, FieldError{field("fontSize"), "must be positive"})
	}
	return errs
}

// ValidateRequest schema-checks a full batch. An empty result is the sole
// precondition the processing gateway requires before submitting.
func ValidateRequest(req ProcessRequest) []FieldError {
	if len(req.Instructions) == 0 {
		return []FieldError{{Field: "instructions", Message: "at least one edit instruction is required"}}
	}
	var errs []FieldError
	for i, inst := range req.Instructions {
		errs = append(errs, ValidateInstruction(inst, fmt.Sprintf("instructions[%d]", i))...)
	}
	return errs
}
