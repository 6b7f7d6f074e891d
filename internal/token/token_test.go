package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		input    string
		expected Type
	}{
		{"true", TRUE},
		{"false", FALSE},
		{"null", NULL},
		{"True", ILLEGAL},
		{"nil", ILLEGAL},
		{"ul", ILLEGAL},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual := LookupKeyword(tt.input)
			require.Equal(t, tt.expected, actual)
		})
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok      Token
		expected string
	}{
		{Token{Type: EOF}, "end of input"},
		{Token{Type: STRING, Literal: "li"}, `string "li"`},
		{Token{Type: NUMBER, Literal: "-1.5e3"}, "number -1.5e3"},
		{Token{Type: NULL, Literal: "null"}, "null"},
		{Token{Type: RBRACE, Literal: "}"}, "'}'"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.tok.String())
		})
	}
}
