package schema

import "errors"

var (
	// ErrFieldsFileRequired is returned when no fields file path was given
	ErrFieldsFileRequired = errors.New("fields file is required")
)
