// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Messages reported for failing credential rules. They are shown to the user
// verbatim next to the offending form field.
const (
	MessageRequired = "Required"
	MessageInvalid  = "Invalid"
	MessageTooShort = "String must contain at least %s character(s)"
	MessageTooLong  = "String must contain at most %s character(s)"
)

// ValidationError carries every failing rule message keyed by form field name.
type ValidationError struct {
	FieldErrors map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.FieldErrors))
	for field := range e.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed")
	for _, field := range fields {
		b.WriteString("; ")
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(strings.Join(e.FieldErrors[field], ", "))
	}
	return b.String()
}

func (e *ValidationError) add(field, message string) {
	if e.FieldErrors == nil {
		e.FieldErrors = make(map[string][]string)
	}
	e.FieldErrors[field] = append(e.FieldErrors[field], message)
}

func (e *ValidationError) empty() bool {
	return len(e.FieldErrors) == 0
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}
