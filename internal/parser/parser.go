package parser

import (
	"fmt"
	"strconv"

	"github.com/KimNorgaard/go-jsonml/errors"
	"github.com/KimNorgaard/go-jsonml/internal/ast"
	"github.com/KimNorgaard/go-jsonml/internal/lexer"
	"github.com/KimNorgaard/go-jsonml/internal/token"
)

type prefixParseFn func() ast.Expression

// Parser holds the state of the parser.
type Parser struct {
	l      *lexer.Lexer
	errors errors.ParseErrors

	curToken  token.Token
	peekToken token.Token

	depth         int
	maxDepth      int
	depthExceeded bool

	prefixParseFns map[token.Type]prefixParseFn
}

// New creates a new parser. Arrays and objects may nest at most maxDepth
// levels deep; zero means no limit.
func New(l *lexer.Lexer, maxDepth int) *Parser {
	p := &Parser{l: l, maxDepth: maxDepth}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	p.registerPrefix(token.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NULL, p.parseNullLiteral)
	p.registerPrefix(token.LBRACK, p.parseArrayLiteral)
	p.registerPrefix(token.LBRACE, p.parseObjectLiteral)
	p.registerPrefix(token.ILLEGAL, p.parseIllegal)

	// Read two tokens, so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()

	return p
}

// DepthExceeded reports whether parsing stopped because the input nested
// deeper than the limit given to New. The position is in the first error.
func (p *Parser) DepthExceeded() bool {
	return p.depthExceeded
}

// Errors returns the errors encountered during parsing.
func (p *Parser) Errors() errors.ParseErrors {
	return p.errors
}

// Parse parses a single JSON value. It returns nil if a syntax error was
// found; the errors are available from Errors.
func (p *Parser) Parse() ast.Expression {
	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	if !p.curTokenIs(token.EOF) {
		p.errorf(p.curToken, "unexpected %s after top-level value", p.curToken)
		return nil
	}
	return expr
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) parseExpression() ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errorf(p.curToken, "unexpected %s", p.curToken)
		return nil
	}
	return prefix()
}

// The contract for all parse functions is that they are entered with p.curToken
// being the first token of the construct, and they must return with p.curToken
// pointing to the token *after* the construct. They return nil after
// recording an error, and parsing stops there.

func (p *Parser) parseNumberLiteral() ast.Expression {
	lit := &ast.NumberLiteral{Token: p.curToken}
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.errorf(p.curToken, "number %s out of range", p.curToken.Literal)
		return nil
	}
	lit.Value = value
	p.nextToken()
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	expr := &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	p.nextToken()
	return expr
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	expr := &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
	p.nextToken()
	return expr
}

func (p *Parser) parseNullLiteral() ast.Expression {
	expr := &ast.NullLiteral{Token: p.curToken}
	p.nextToken()
	return expr
}

func (p *Parser) parseIllegal() ast.Expression {
	p.errorf(p.curToken, "%s", p.curToken.Literal)
	return nil
}

// enter records one more level of nesting for the container opened by the
// current token. It reports false, after recording an error, when the limit
// is reached.
func (p *Parser) enter() bool {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		p.depthExceeded = true
		p.errorf(p.curToken, "exceeded max nesting depth %d", p.maxDepth)
		return false
	}
	return true
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	array := &ast.ArrayLiteral{Token: p.curToken, Elements: []ast.Expression{}}
	p.nextToken() // Consume '['

	if p.curTokenIs(token.RBRACK) {
		p.nextToken()
		return array
	}

	for {
		elem := p.parseExpression()
		if elem == nil {
			return nil
		}
		array.Elements = append(array.Elements, elem)

		switch p.curToken.Type {
		case token.COMMA:
			p.nextToken()
		case token.RBRACK:
			p.nextToken()
			return array
		default:
			p.unexpected("expected ',' or ']' in array")
			return nil
		}
	}
}

// parseObjectLiteral keeps every pair in source order, duplicates included;
// consumers decide which one wins.
func (p *Parser) parseObjectLiteral() ast.Expression {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	obj := &ast.ObjectLiteral{Token: p.curToken, Pairs: []*ast.KeyValueExpression{}}
	p.nextToken() // Consume '{'

	if p.curTokenIs(token.RBRACE) {
		p.nextToken()
		return obj
	}

	for {
		pair := p.parseKeyValuePair()
		if pair == nil {
			return nil
		}
		obj.Pairs = append(obj.Pairs, pair)

		switch p.curToken.Type {
		case token.COMMA:
			p.nextToken()
		case token.RBRACE:
			p.nextToken()
			return obj
		default:
			p.unexpected("expected ',' or '}' in object")
			return nil
		}
	}
}

func (p *Parser) parseKeyValuePair() *ast.KeyValueExpression {
	if !p.curTokenIs(token.STRING) {
		p.unexpected("expected string key in object")
		return nil
	}
	key := &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	p.nextToken()

	if !p.curTokenIs(token.COLON) {
		p.unexpected("expected ':' after object key")
		return nil
	}
	colon := p.curToken
	p.nextToken() // Consume ':'

	value := p.parseExpression()
	if value == nil {
		return nil
	}
	return &ast.KeyValueExpression{Token: colon, Key: key, Value: value}
}

func (p *Parser) registerPrefix(tokenType token.Type, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

// unexpected records an error for the current token. Illegal tokens carry
// their own lexer message, which is more precise than the expectation.
func (p *Parser) unexpected(expectation string) {
	if p.curTokenIs(token.ILLEGAL) {
		p.parseIllegal()
		return
	}
	p.errorf(p.curToken, "%s, got %s", expectation, p.curToken)
}

func (p *Parser) errorf(tok token.Token, format string, args ...any) {
	p.errors = append(p.errors, errors.ParseError{
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
	})
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}
