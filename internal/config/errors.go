package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	ErrFileNotFound     = errors.New("config file not found")
	ErrTypeMismatch     = errors.New("config value has the wrong type")
	ErrValidationFailed = errors.New("config validation failed")
)

// ParseError describes a configuration file that could not be decoded.
// Line and Column are 1-indexed and zero when unknown.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
