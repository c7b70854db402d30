package udf

import "errors"

// Sentinel errors for the function registry.
var (
	ErrNotFound      = errors.New("function not found")
	ErrAlreadyExists = errors.New("function already registered")
	ErrEmptyName     = errors.New("function name is empty")
)
