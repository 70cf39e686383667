// internal/services/errors.go
package services

// ValidationFailure carries per-field violation messages for 422 responses.
type ValidationFailure struct {
	Errors map[string][]string
}

func (e *ValidationFailure) Error() string {
	return "validation failed"
}

func NewValidationFailure(field, message string) *ValidationFailure {
	return &ValidationFailure{Errors: map[string][]string{field: {message}}}
}

func (e *ValidationFailure) Add(field, message string) {
	if e.Errors == nil {
		e.Errors = make(map[string][]string)
	}
	e.Errors[field] = append(e.Errors[field], message)
}

func (e *ValidationFailure) HasErrors() bool {
	return len(e.Errors) > 0
}
