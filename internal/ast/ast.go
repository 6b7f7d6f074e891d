package ast

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-jsonml/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	// TokenLiteral returns the literal value of the token associated with the node.
	TokenLiteral() string
	// String returns a string representation of the node.
	String() string
}

// Expression is a node that represents a JSON value.
type Expression interface {
	Node
	// Kind names the JSON kind of the value ("string", "array", ...).
	Kind() string
	// Pos returns the position of the first token of the value.
	Pos() (line, column int)
	expressionNode()
}

// StringLiteral represents a string literal.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) Kind() string         { return "string" }
func (sl *StringLiteral) Pos() (int, int)      { return sl.Token.Line, sl.Token.Column }
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return strconv.Quote(sl.Value) }

// NumberLiteral represents a number literal. Literal keeps the source text.
type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (nl *NumberLiteral) expressionNode()      {}
func (nl *NumberLiteral) Kind() string         { return "number" }
func (nl *NumberLiteral) Pos() (int, int)      { return nl.Token.Line, nl.Token.Column }
func (nl *NumberLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NumberLiteral) String() string       { return nl.Token.Literal }

// BooleanLiteral represents a boolean literal.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()      {}
func (b *BooleanLiteral) Kind() string         { return "boolean" }
func (b *BooleanLiteral) Pos() (int, int)      { return b.Token.Line, b.Token.Column }
func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BooleanLiteral) String() string       { return strconv.FormatBool(b.Value) }

// NullLiteral represents a null literal.
type NullLiteral struct {
	Token token.Token
}

func (nl *NullLiteral) expressionNode()      {}
func (nl *NullLiteral) Kind() string         { return "null" }
func (nl *NullLiteral) Pos() (int, int)      { return nl.Token.Line, nl.Token.Column }
func (nl *NullLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NullLiteral) String() string       { return "null" }

// ArrayLiteral represents an array literal.
type ArrayLiteral struct {
	Token    token.Token // the '[' token
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode()      {}
func (al *ArrayLiteral) Kind() string         { return "array" }
func (al *ArrayLiteral) Pos() (int, int)      { return al.Token.Line, al.Token.Column }
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *ArrayLiteral) String() string {
	var out bytes.Buffer
	elements := []string{}
	for _, el := range al.Elements {
		elements = append(elements, el.String())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(elements, ","))
	out.WriteString("]")
	return out.String()
}

// ObjectLiteral represents an object literal. Pairs keep source order.
type ObjectLiteral struct {
	Token token.Token // the '{' token
	Pairs []*KeyValueExpression
}

func (ol *ObjectLiteral) expressionNode()      {}
func (ol *ObjectLiteral) Kind() string         { return "object" }
func (ol *ObjectLiteral) Pos() (int, int)      { return ol.Token.Line, ol.Token.Column }
func (ol *ObjectLiteral) TokenLiteral() string { return ol.Token.Literal }
func (ol *ObjectLiteral) String() string {
	var out bytes.Buffer
	pairs := []string{}
	for _, p := range ol.Pairs {
		pairs = append(pairs, p.String())
	}
	out.WriteString("{")
	out.WriteString(strings.Join(pairs, ","))
	out.WriteString("}")
	return out.String()
}

// KeyValueExpression represents a member of an object literal.
type KeyValueExpression struct {
	Token token.Token // The ':' token
	Key   *StringLiteral
	Value Expression
}

func (kv *KeyValueExpression) TokenLiteral() string { return kv.Token.Literal }
func (kv *KeyValueExpression) String() string {
	return kv.Key.String() + ":" + kv.Value.String()
}
