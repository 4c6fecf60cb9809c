package util

import (
	"fmt"

	"github.com/pingcap/errors"
)

// ParseError reports a malformed input line. Line is 1-based.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse line %d %q: %s", e.Line, e.Text, e.Reason)
}

// UnknownIDError reports a node id outside the known universe.
type UnknownIDError struct {
	ID uint64
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("unknown node id %d", e.ID)
}

// IsParseError checks if a ParseError is in the chain of err. It supports
// pingcap/errors package.
func IsParseError(err error) bool {
	for err != nil {
		if _, ok := err.(*ParseError); ok {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsUnknownIDError checks if an UnknownIDError is in the chain of err. It
// supports pingcap/errors package.
func IsUnknownIDError(err error) bool {
	for err != nil {
		if _, ok := err.(*UnknownIDError); ok {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
