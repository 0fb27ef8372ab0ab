package api

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures so the CLI can pick an exit code.
type ErrorKind int

const (
	KindConfig ErrorKind = iota + 1
	KindAuth
	KindAPI
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "configuration"
	case KindAuth:
		return "authentication"
	case KindAPI:
		return "api"
	default:
		return "unknown"
	}
}

// Error is a failure tagged with its kind and the operation that produced it.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}
