package vars

import "errors"

// ErrSetReadOnlyVar is returned by the Set method of a read-only variable.
var ErrSetReadOnlyVar = errors.New("cannot set read-only variable")

type readOnly struct {
	value any
}

// NewReadOnly creates a variable that is read-only and always returns an error
// on Set. Its value must be a number or a string.
func NewReadOnly(v any) Var {
	return readOnly{v}
}

func (rv readOnly) Set(val any) error {
	return ErrSetReadOnlyVar
}

func (rv readOnly) Get() any {
	return rv.value
}
