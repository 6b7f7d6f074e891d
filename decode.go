package jsonml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/KimNorgaard/go-jsonml/internal/ast"
	"github.com/KimNorgaard/go-jsonml/internal/lexer"
	"github.com/KimNorgaard/go-jsonml/internal/parser"
)

// Decoder reads and decodes a JsonML document from an input stream.
type Decoder struct {
	r    io.Reader
	opts []DecodeOption
}

// NewDecoder returns a new decoder that reads from r.
//
// Functional options can be provided to configure the decoding process,
// such as setting a maximum nesting depth with the MaxDepth option.
func NewDecoder(r io.Reader, opts ...DecodeOption) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads one JsonML document from its input and returns the markup
// tree it encodes.
//
// A JSON string decodes to Text. A JSON array decodes to a *Tag: its first
// item is the tag name, the second item is the attributes object if it has
// that shape and the first child otherwise, and every further item is a
// child.
//
// Syntax errors are returned as errors.ParseErrors. JSON values of the wrong
// kind are reported as *TypeError. A tag array without a name wraps
// ErrMissingName and a second item that fits neither shape wraps
// ErrMalformedSequence.
//
// Input nested deeper than the MaxDepth option allows wraps ErrMaxDepth;
// errors from the reader are returned as they are.
//
// Note: This is a non-streaming implementation. It reads the entire reader
// into memory before parsing.
func (d *Decoder) Decode() (Element, error) {
	if d.r == nil {
		return nil, fmt.Errorf("jsonml: Decode(nil reader)")
	}
	o, err := newDecodeOptions(d.opts)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}

	// Every tag may carry one attributes object below it, so the JSON
	// nesting bound is one level deeper than the tag bound.
	p := parser.New(lexer.New(bytes.NewReader(data)), o.maxDepth+1)
	expr := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		if p.DepthExceeded() {
			return nil, positioned(ErrMaxDepth, errs[0].Line, errs[0].Column)
		}
		return nil, errs
	}

	ds := &decodeState{depth: o.maxDepth}
	return ds.decodeElement(expr)
}

type decodeState struct {
	depth int
}

func (ds *decodeState) decodeElement(expr ast.Expression) (Element, error) {
	switch node := expr.(type) {
	case *ast.StringLiteral:
		return Text(node.Value), nil
	case *ast.ArrayLiteral:
		return ds.decodeTag(node)
	default:
		return nil, newTypeError(expr, "JsonML element")
	}
}

func (ds *decodeState) decodeTag(arr *ast.ArrayLiteral) (*Tag, error) {
	ds.depth--
	defer func() { ds.depth++ }()
	if ds.depth < 0 {
		return nil, ErrMaxDepth
	}

	if len(arr.Elements) == 0 {
		line, column := arr.Pos()
		return nil, positioned(ErrMissingName, line, column)
	}
	name, ok := arr.Elements[0].(*ast.StringLiteral)
	if !ok {
		return nil, newTypeError(arr.Elements[0], "tag name")
	}

	tag := &Tag{Name: name.Value, Attributes: Attributes{}, Children: []Element{}}
	rest := arr.Elements[1:]
	if len(rest) > 0 {
		attrs, first, err := ds.decodeAttributesOrElement(rest[0])
		if err != nil {
			return nil, err
		}
		if attrs != nil {
			tag.Attributes = attrs
		} else {
			tag.Children = append(tag.Children, first)
		}
		rest = rest[1:]
	}

	for _, item := range rest {
		child, err := ds.decodeElement(item)
		if err != nil {
			return nil, err
		}
		tag.Children = append(tag.Children, child)
	}
	return tag, nil
}

// decodeAttributesOrElement resolves the one ambiguity of the format: the
// item after a tag name carries no marker saying whether it is the
// attributes object or the first child. The attributes shape is tried
// first; only if that fails is the item decoded as an element.
func (ds *decodeState) decodeAttributesOrElement(expr ast.Expression) (Attributes, Element, error) {
	if attrs, ok := tryAttributes(expr); ok {
		return attrs, nil, nil
	}
	el, err := ds.tryElement(expr)
	if err == nil {
		return nil, el, nil
	}
	if errors.Is(err, ErrMaxDepth) {
		return nil, nil, err
	}
	line, column := expr.Pos()
	return nil, nil, positioned(ErrMalformedSequence, line, column)
}

// tryAttributes reports whether expr is an object whose values are all
// scalars, and returns it as Attributes if so.
func tryAttributes(expr ast.Expression) (Attributes, bool) {
	obj, ok := expr.(*ast.ObjectLiteral)
	if !ok {
		return nil, false
	}
	attrs := make(Attributes, len(obj.Pairs))
	for _, pair := range obj.Pairs {
		v, ok := decodeAttributeValue(pair.Value)
		if !ok {
			return nil, false
		}
		attrs[pair.Key.Value] = v
	}
	return attrs, true
}

// tryElement decodes expr as an element. Any failure below it makes the
// whole item malformed, so the caller only inspects the error for depth.
func (ds *decodeState) tryElement(expr ast.Expression) (Element, error) {
	return ds.decodeElement(expr)
}

func decodeAttributeValue(expr ast.Expression) (AttributeValue, bool) {
	switch v := expr.(type) {
	case *ast.StringLiteral:
		return String(v.Value), true
	case *ast.NumberLiteral:
		return Number(narrow(v)), true
	case *ast.BooleanLiteral:
		return Bool(v.Value), true
	case *ast.NullLiteral:
		return Null{}, true
	default:
		return nil, false
	}
}

// narrow converts a number to float32, rounding once from the source text.
// Values outside the float32 range saturate to an infinity.
func narrow(n *ast.NumberLiteral) float32 {
	f, err := strconv.ParseFloat(n.TokenLiteral(), 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return toFloat32(n.Value)
	}
	return float32(f)
}

func toFloat32(f float64) float32 {
	if f > math.MaxFloat32 {
		return float32(math.Inf(1))
	}
	if f < -math.MaxFloat32 {
		return float32(math.Inf(-1))
	}
	return float32(f)
}

func newTypeError(expr ast.Expression, expected string) *TypeError {
	line, column := expr.Pos()
	return &TypeError{Value: expr.Kind(), Expected: expected, Line: line, Column: column}
}
