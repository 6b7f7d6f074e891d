package jsonml

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/KimNorgaard/go-jsonml/internal/ast"
	"github.com/KimNorgaard/go-jsonml/internal/formatter"
	"github.com/KimNorgaard/go-jsonml/internal/token"
)

// Encoder writes JsonML documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []EncodeOption
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...EncodeOption) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the JsonML encoding of e to the stream.
//
// Text is written as a JSON string. A *Tag is written as an array holding
// the name, then the attributes object if there are any attributes, then
// each child. Attributes are written in sorted key order.
func (e *Encoder) Encode(el Element) error {
	o, err := newEncodeOptions(e.opts)
	if err != nil {
		return err
	}

	es := &encodeState{}
	node, err := es.encodeElement(el)
	if err != nil {
		return err
	}

	return formatter.New(e.w, &o.indent).Format(node)
}

type encodeState struct{}

func (es *encodeState) encodeElement(el Element) (ast.Expression, error) {
	switch v := el.(type) {
	case Text:
		return es.encodeString(string(v), "text")
	case *Tag:
		if v == nil {
			return nil, &UnsupportedValueError{Reason: "nil *Tag"}
		}
		return es.encodeTag(v)
	case nil:
		return nil, &UnsupportedValueError{Reason: "nil element"}
	default:
		return nil, &UnsupportedValueError{Reason: fmt.Sprintf("element type %T", el)}
	}
}

func (es *encodeState) encodeTag(t *Tag) (ast.Expression, error) {
	elements := make([]ast.Expression, 0, 2+len(t.Children))
	name, err := es.encodeString(t.Name, "tag name")
	if err != nil {
		return nil, err
	}
	elements = append(elements, name)

	if len(t.Attributes) > 0 {
		obj, err := es.encodeAttributes(t.Attributes)
		if err != nil {
			return nil, err
		}
		elements = append(elements, obj)
	}

	for _, child := range t.Children {
		node, err := es.encodeElement(child)
		if err != nil {
			return nil, err
		}
		elements = append(elements, node)
	}

	return &ast.ArrayLiteral{
		Token:    token.Token{Type: token.LBRACK, Literal: "["},
		Elements: elements,
	}, nil
}

func (es *encodeState) encodeAttributes(attrs Attributes) (ast.Expression, error) {
	pairs := make([]*ast.KeyValueExpression, 0, len(attrs))
	for _, key := range attrs.Keys() {
		k, err := es.encodeString(key, "attribute name")
		if err != nil {
			return nil, err
		}
		value, err := es.encodeValue(attrs[key])
		if err != nil {
			return nil, fmt.Errorf("jsonml: attribute %q: %w", key, err)
		}
		pairs = append(pairs, &ast.KeyValueExpression{
			Token: token.Token{Type: token.COLON, Literal: ":"},
			Key:   k,
			Value: value,
		})
	}
	return &ast.ObjectLiteral{
		Token: token.Token{Type: token.LBRACE, Literal: "{"},
		Pairs: pairs,
	}, nil
}

func (es *encodeState) encodeValue(v AttributeValue) (ast.Expression, error) {
	switch val := v.(type) {
	case String:
		return es.encodeString(string(val), "string")
	case Number:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &UnsupportedValueError{Reason: "number " + formatNumber(val)}
		}
		lit := formatNumber(val)
		return &ast.NumberLiteral{Token: token.Token{Type: token.NUMBER, Literal: lit}, Value: f}, nil
	case Bool:
		lit := strconv.FormatBool(bool(val))
		tokType := token.FALSE
		if val {
			tokType = token.TRUE
		}
		return &ast.BooleanLiteral{Token: token.Token{Type: tokType, Literal: lit}, Value: bool(val)}, nil
	case Null, nil:
		return &ast.NullLiteral{Token: token.Token{Type: token.NULL, Literal: "null"}}, nil
	default:
		return nil, &UnsupportedValueError{Reason: fmt.Sprintf("attribute value type %T", v)}
	}
}

// encodeString refuses invalid UTF-8, which JSON text cannot carry without
// replacing bytes.
func (es *encodeState) encodeString(s, what string) (*ast.StringLiteral, error) {
	if !utf8.ValidString(s) {
		return nil, &UnsupportedValueError{Reason: fmt.Sprintf("invalid UTF-8 in %s %q", what, s)}
	}
	return &ast.StringLiteral{Token: token.Token{Type: token.STRING, Literal: s}, Value: s}, nil
}

// formatNumber writes n in its shortest decimal form without an exponent.
// It is the form Render and Number.String use; the encoder uses it too but
// refuses NaN and infinities first.
func formatNumber(n Number) string {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 32)
}
