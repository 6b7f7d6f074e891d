// Package token defines the lexical vocabulary of JSON text: the six
// structural characters, string and number literals, and the three
// literal names true, false and null.
package token

import "fmt"

// Type classifies a token. Structural tokens use their own character as
// the type so that error messages can print them directly.
type Type string

// Token is one lexeme together with the 1-based position of its first rune.
// For ILLEGAL tokens Literal carries the lexer's error message.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
}

const (
	ILLEGAL Type = "ILLEGAL"
	EOF     Type = "EOF"

	NUMBER Type = "NUMBER"
	STRING Type = "STRING" // Literal holds the unescaped value

	LBRACE Type = "{"
	RBRACE Type = "}"
	LBRACK Type = "["
	RBRACK Type = "]"
	COMMA  Type = ","
	COLON  Type = ":"

	TRUE  Type = "TRUE"
	FALSE Type = "FALSE"
	NULL  Type = "NULL"
)

// LookupKeyword maps a run of letters to TRUE, FALSE or NULL.
// JSON has no identifiers, so every other word is ILLEGAL.
func LookupKeyword(word string) Type {
	switch word {
	case "true":
		return TRUE
	case "false":
		return FALSE
	case "null":
		return NULL
	}
	return ILLEGAL
}

// String describes the token the way it appears in syntax errors.
func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "end of input"
	case STRING:
		return fmt.Sprintf("string %q", t.Literal)
	case NUMBER:
		return "number " + t.Literal
	case TRUE, FALSE, NULL:
		return t.Literal
	default:
		return fmt.Sprintf("'%s'", t.Literal)
	}
}
