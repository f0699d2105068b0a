package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"def-modifier/internal/common"
)

// Diagnostics holds everything reported while applying a mod file.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Definition identifies the modifier definition, e.g. "guid:a" or "cls:pkg.Type".
	Definition string
	// FieldPath identifies which field this relates to (if any).
	FieldPath string
	// Err is the underlying error for error diagnostics.
	Err error
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic. The code is derived from err.
func (d *Diagnostics) AddError(err error, definition, fieldPath string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:   DiagnosticError,
		Code:       CodeOf(err),
		Message:    err.Error(),
		Definition: definition,
		FieldPath:  fieldPath,
		Err:        err,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, definition, fieldPath string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:   DiagnosticWarning,
		Code:       code,
		Message:    message,
		Definition: definition,
		FieldPath:  fieldPath,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, definition, fieldPath string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:   DiagnosticInfo,
		Code:       code,
		Message:    message,
		Definition: definition,
		FieldPath:  fieldPath,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if there are none.
// The result matches every wrapped error with errors.Is.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		errs = append(errs, diagnosticError{e})
	}

	return errors.Join(errs...)
}

type diagnosticError struct{ d Diagnostic }

func (e diagnosticError) Error() string { return e.d.String() }
func (e diagnosticError) Unwrap() error { return e.d.Err }

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Definition != "" {
		prefix = append(prefix, "["+d.Definition+"]")
	}

	if d.FieldPath != "" {
		prefix = append(prefix, d.FieldPath)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
