package domain

// FieldErrors maps a form field name to a user-visible error message.
// A nil or empty map means the submission passed validation.
type FieldErrors map[string]string

// Has reports whether the field carries an error.
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the error message for the field, or "".
func (e FieldErrors) Get(field string) string {
	return e[field]
}
