package ast

import (
	"testing"

	"github.com/KimNorgaard/go-jsonml/internal/token"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	array := &ArrayLiteral{
		Token: token.Token{Type: token.LBRACK, Literal: "["},
		Elements: []Expression{
			&StringLiteral{Value: "li"},
			&ObjectLiteral{
				Token: token.Token{Type: token.LBRACE, Literal: "{"},
				Pairs: []*KeyValueExpression{
					{
						Token: token.Token{Type: token.COLON, Literal: ":"},
						Key:   &StringLiteral{Value: "style"},
						Value: &StringLiteral{Value: "color:red"},
					},
					{
						Token: token.Token{Type: token.COLON, Literal: ":"},
						Key:   &StringLiteral{Value: "hidden"},
						Value: &BooleanLiteral{Value: true},
					},
				},
			},
			&NumberLiteral{Token: token.Token{Type: token.NUMBER, Literal: "1.5"}, Value: 1.5},
			&NullLiteral{},
		},
	}

	expected := `["li",{"style":"color:red","hidden":true},1.5,null]`
	require.Equal(t, expected, array.String())
}

func TestKindAndPos(t *testing.T) {
	nodes := []struct {
		node Expression
		kind string
	}{
		{&StringLiteral{Token: token.Token{Line: 1, Column: 2}}, "string"},
		{&NumberLiteral{Token: token.Token{Line: 1, Column: 2}}, "number"},
		{&BooleanLiteral{Token: token.Token{Line: 1, Column: 2}}, "boolean"},
		{&NullLiteral{Token: token.Token{Line: 1, Column: 2}}, "null"},
		{&ArrayLiteral{Token: token.Token{Line: 1, Column: 2}}, "array"},
		{&ObjectLiteral{Token: token.Token{Line: 1, Column: 2}}, "object"},
	}

	for _, n := range nodes {
		t.Run(n.kind, func(t *testing.T) {
			require.Equal(t, n.kind, n.node.Kind())
			line, column := n.node.Pos()
			require.Equal(t, 1, line)
			require.Equal(t, 2, column)
		})
	}
}
