package jsonml

import "fmt"

const defaultMaxDepth = 1000

// DecodeOption configures a Decoder.
type DecodeOption func(*decodeOptions) error

// EncodeOption configures an Encoder.
type EncodeOption func(*encodeOptions) error

type decodeOptions struct {
	maxDepth int
}

type encodeOptions struct {
	indent int
}

// MaxDepth returns a DecodeOption that sets the maximum tag nesting depth
// for the decoder. The bound applies while parsing, so deeply nested hostile
// input is rejected before it is materialized.
//
// The depth n must be a positive integer.
func MaxDepth(n int) DecodeOption {
	return func(o *decodeOptions) error {
		if n <= 0 {
			return fmt.Errorf("jsonml: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// Indent returns an EncodeOption that pretty prints the output with n
// spaces per level. Zero, the default, writes compact JSON.
func Indent(n int) EncodeOption {
	return func(o *encodeOptions) error {
		if n < 0 {
			return fmt.Errorf("jsonml: indent must not be negative")
		}
		o.indent = n
		return nil
	}
}

func newDecodeOptions(opts []DecodeOption) (*decodeOptions, error) {
	o := &decodeOptions{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func newEncodeOptions(opts []EncodeOption) (*encodeOptions, error) {
	o := &encodeOptions{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}
