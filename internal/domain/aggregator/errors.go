package aggregator

import (
	"fmt"
	"strings"
)

const (
	ReasonRequired         = "required"
	ReasonPositiveInteger  = "must be a positive integer"
	ReasonNonNegativePrice = "must be a non-negative decimal"
	ReasonNoItems          = "at least one item is required"
	ReasonSingleItem       = "exactly one item is required"
)

// FieldError names one missing or malformed draft field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Reason
}

// ValidationError rejects a whole draft. The draft is left untouched for correction.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("invalid draft: %s", strings.Join(parts, "; "))
}

// Has reports whether field was rejected.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}
