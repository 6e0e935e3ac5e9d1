package schema

import "errors"

// Schema validation errors
var (
	ErrEmptyTitle      = errors.New("field title cannot be empty")
	ErrInvalidType     = errors.New("unknown column type")
	ErrOptionsRequired = errors.New("select columns need at least one option")
	ErrOptionsOnSelect = errors.New("options are only valid on select columns")
	ErrDuplicateOption = errors.New("option values must be unique")
)
