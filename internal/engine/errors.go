package engine

import (
	"fmt"
	"strings"
)

// FieldError names one violated input precondition.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every input precondition violated by an Input. It
// is returned before any computation begins; no partial result accompanies
// it.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// DomainError reports an intermediate quantity that left the real domain,
// e.g. a negative radicand. With validated inputs it cannot occur; it exists
// so a validation bypass surfaces as an error instead of a NaN.
type DomainError struct {
	Quantity string  `json:"quantity"`
	Value    float64 `json:"value"`
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("computation left real domain at %s (value %g)", e.Quantity, e.Value)
}
