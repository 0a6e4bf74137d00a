// Package schema is the validation and constraint engine for registration
// records. It checks field shapes (formats, enums, bounds) and cross-field
// invariants (date ordering, age eligibility) and returns either a normalized
// record or the full list of field errors from a single pass.
//
// The engine is pure and stateless: it performs no I/O and reads no global
// clock. Entry points that need the current time take it as a parameter so
// validation stays deterministic under test.
package schema

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a validation failure
type ErrorKind string

const (
	// KindRequired marks a missing mandatory field
	KindRequired ErrorKind = "REQUIRED"
	// KindInvalidFormat marks a field that does not match its expected format
	KindInvalidFormat ErrorKind = "INVALID_FORMAT"
	// KindInvalidEnum marks a value outside a closed enum set
	KindInvalidEnum ErrorKind = "INVALID_ENUM"
	// KindOutOfRange marks a numeric value outside its allowed bounds
	KindOutOfRange ErrorKind = "OUT_OF_RANGE"
	// KindTooShort marks a string below its minimum length
	KindTooShort ErrorKind = "TOO_SHORT"
	// KindCrossField marks a failed cross-field invariant
	KindCrossField ErrorKind = "CROSS_FIELD"
)

// FieldError describes a single failed check, attributed to one field path.
type FieldError struct {
	Path    string    `json:"field"`
	Message string    `json:"message"`
	Kind    ErrorKind `json:"code"`
}

// Error implements the error interface
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Errors is the ordered list of field errors from one validation pass.
// A nil/empty Errors means the record was accepted.
type Errors []FieldError

// Error implements the error interface
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation passed"
	}
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether any error is attributed to the given field path.
func (e Errors) Has(path string) bool {
	for _, fe := range e {
		if fe.Path == path {
			return true
		}
	}
	return false
}

// First returns the first error for the given field path, or nil.
func (e Errors) First(path string) *FieldError {
	for i := range e {
		if e[i].Path == path {
			return &e[i]
		}
	}
	return nil
}
