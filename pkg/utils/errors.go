package utils

// FieldErrors maps a form field name to its user-facing error message.
type FieldErrors map[string]string

// Has reports whether the field has a recorded error.
func (f FieldErrors) Has(field string) bool {
	_, ok := f[field]
	return ok
}

// NotFoundError signals a missing entity. Handlers respond with a
// redirect to the relevant listing plus a flash notice.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func NewNotFoundError(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}
