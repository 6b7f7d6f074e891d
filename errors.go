package jsonml

import (
	"errors"
	"fmt"
)

// Sentinel errors. Decoding and rendering wrap them with position or name
// details; test for them with errors.Is.
var (
	// ErrMissingName is returned when a tag array has no name item.
	ErrMissingName = errors.New("jsonml: missing tag name")

	// ErrMalformedSequence is returned when the item after a tag name is
	// neither an attributes object nor an element.
	ErrMalformedSequence = errors.New("jsonml: item after tag name is neither attributes nor element")

	// ErrMaxDepth is returned when the input nests deeper than the MaxDepth
	// option allows.
	ErrMaxDepth = errors.New("jsonml: reached max nesting depth")

	// ErrInvalidTagName is returned when a tag name contains a character
	// other than an ASCII letter or digit.
	ErrInvalidTagName = errors.New("jsonml: invalid tag name")

	// ErrInvalidAttributeName is returned when an attribute name contains a
	// character HTML forbids in attribute names.
	ErrInvalidAttributeName = errors.New("jsonml: invalid attribute name")
)

// A TypeError describes a JSON value that has the wrong kind for its place
// in a JsonML document, such as a number where a tag name is expected.
type TypeError struct {
	Value    string // JSON kind found: "number", "object", ...
	Expected string // what the position requires
	Line     int
	Column   int
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("jsonml: cannot decode %s into %s at line %d, column %d", e.Value, e.Expected, e.Line, e.Column)
}

// A NameError reports a tag or attribute name rejected by the HTML renderer.
// Err is ErrInvalidTagName or ErrInvalidAttributeName.
type NameError struct {
	Err  error
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%s %q", e.Err.Error(), e.Name)
}

func (e *NameError) Unwrap() error { return e.Err }

// An UnsupportedValueError is returned when a tree holds something that
// cannot be written out, such as a nil element or a NaN number.
type UnsupportedValueError struct {
	Reason string
}

func (e *UnsupportedValueError) Error() string {
	return "jsonml: unsupported value: " + e.Reason
}

// positioned wraps a sentinel error with the source position of a value.
func positioned(err error, line, column int) error {
	return fmt.Errorf("%w at line %d, column %d", err, line, column)
}
