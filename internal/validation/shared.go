package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ndewijer/FinLedge-Backend/internal/apperrors"
)

// Error carries one message per invalid request field, keyed by the JSON
// path of the field (for example "stocks[1].weight").
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, field := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return strings.Join(msgs, "; ")
}

// Unwrap lets callers match any validation failure with apperrors.ErrInvalidInput.
func (e *Error) Unwrap() error {
	return apperrors.ErrInvalidInput
}

func fieldError(field, msg string) *Error {
	return &Error{Fields: map[string]string{field: msg}}
}
