package payload

import (
	"errors"
)

var (
	// ErrBadValue is returned when value can not be converted to cell type.
	ErrBadValue = errors.New("bad value")

	errInvalidJSON  = errors.New("payload is not valid json")
	errNotObject    = errors.New("payload must be a json object")
	errNotNumber    = errors.New("value is not a number")
	errNotInteger   = errors.New("value is not an integer")
	errEmptyPayload = errors.New("empty payload")
)
