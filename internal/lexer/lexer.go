package lexer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/KimNorgaard/go-jsonml/internal/token"
)

// Lexer holds the state for tokenizing JSON source.
type Lexer struct {
	r      *bufio.Reader
	buf    bytes.Buffer
	ch     rune
	line   int
	column int
}

// New creates and returns a new Lexer.
func New(r io.Reader) *Lexer {
	l := &Lexer{
		r:      bufio.NewReader(r),
		line:   1,
		column: 1,
	}
	l.readRune()
	return l
}

// NextToken scans the input and returns the next token.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()
	tok := token.Token{Line: l.line, Column: l.column}
	switch l.ch {
	case '{', '}', '[', ']', ',', ':':
		tok.Type = token.Type(l.ch)
		tok.Literal = string(l.ch)
	case '"':
		lit, ok := l.readString()
		if !ok {
			tok.Type = token.ILLEGAL
		} else {
			tok.Type = token.STRING
		}
		tok.Literal = lit
		return tok
	case -1: // Corresponds to io.EOF
		tok.Type = token.EOF
		tok.Literal = ""
		return tok
	default:
		if isDigit(l.ch) || l.ch == '-' {
			literal := l.readNumber()
			if ParseAsNumber(literal) {
				tok.Type = token.NUMBER
				tok.Literal = literal
			} else {
				tok.Type = token.ILLEGAL
				tok.Literal = fmt.Sprintf("invalid number %q", literal)
			}
			return tok
		}
		if isLetter(l.ch) {
			word := l.readWord()
			tok.Type = token.LookupKeyword(word)
			tok.Literal = word
			if tok.Type == token.ILLEGAL {
				tok.Literal = fmt.Sprintf("unexpected word %q", word)
			}
			return tok
		}
		tok.Type = token.ILLEGAL
		if l.ch == invalidRune {
			tok.Literal = "invalid utf-8"
		} else {
			tok.Literal = fmt.Sprintf("unexpected character %q", l.ch)
		}
	}
	l.advance()
	return tok
}

// invalidRune marks a byte that does not start a valid UTF-8 sequence, so
// it can be told apart from an encoded U+FFFD.
const invalidRune rune = -2

func (l *Lexer) readRune() {
	r, size, err := l.r.ReadRune()
	switch {
	case err != nil:
		l.ch = -1
	case r == utf8.RuneError && size == 1:
		l.ch = invalidRune
	default:
		l.ch = r
	}
}

func (l *Lexer) advance() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	l.readRune()
	l.column++
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.advance()
	}
}

func (l *Lexer) readWord() string {
	l.buf.Reset()
	for isLetter(l.ch) || isDigit(l.ch) {
		l.buf.WriteRune(l.ch)
		l.advance()
	}
	return l.buf.String()
}

func (l *Lexer) readNumber() string {
	l.buf.Reset()
	for isDigit(l.ch) || l.ch == '-' || l.ch == '+' || l.ch == '.' || l.ch == 'e' || l.ch == 'E' {
		l.buf.WriteRune(l.ch)
		l.advance()
	}
	return l.buf.String()
}

func (l *Lexer) readEscapeSequence() (rune, bool, string) {
	l.advance() // consume backslash
	switch l.ch {
	case 'b', 'f', 'n', 'r', 't', '"', '\\', '/':
		return unescape(l.ch), true, ""
	case 'u':
		val, ok := l.readHex(4)
		if !ok {
			return 0, false, "invalid unicode escape"
		}
		if !utf16.IsSurrogate(val) {
			return val, true, ""
		}
		if val >= 0xDC00 {
			return 0, false, "unpaired low surrogate in unicode escape"
		}
		// A high surrogate must be followed by an escaped low surrogate.
		l.advance()
		if l.ch != '\\' {
			return 0, false, "unpaired high surrogate in unicode escape"
		}
		l.advance()
		if l.ch != 'u' {
			return 0, false, "unpaired high surrogate in unicode escape"
		}
		low, ok := l.readHex(4)
		if !ok {
			return 0, false, "invalid unicode escape"
		}
		r := utf16.DecodeRune(val, low)
		if r == utf8.RuneError {
			return 0, false, "invalid surrogate pair in unicode escape"
		}
		return r, true, ""
	default:
		return 0, false, fmt.Sprintf("invalid escape sequence \\%c", l.ch)
	}
}

func (l *Lexer) readString() (string, bool) {
	l.advance() // consume opening quote
	l.buf.Reset()
	for {
		if l.ch == '"' {
			l.advance() // consume closing quote
			return l.buf.String(), true
		}
		if l.ch == -1 {
			return "unterminated string", false
		}

		if l.ch == '\\' {
			r, ok, errMsg := l.readEscapeSequence()
			if !ok {
				return errMsg, false
			}
			l.buf.WriteRune(r)
		} else {
			if l.ch == invalidRune {
				return "invalid utf-8 sequence in string", false
			}
			if isControlChar(l.ch) {
				return fmt.Sprintf("unescaped control character U+%04X in string", l.ch), false
			}
			l.buf.WriteRune(l.ch)
		}
		l.advance()
	}
}

func (l *Lexer) readHex(n int) (rune, bool) {
	var val rune
	for i := 0; i < n; i++ {
		l.advance()
		var d rune
		switch {
		case '0' <= l.ch && l.ch <= '9':
			d = l.ch - '0'
		case 'a' <= l.ch && l.ch <= 'f':
			d = l.ch - 'a' + 10
		case 'A' <= l.ch && l.ch <= 'F':
			d = l.ch - 'A' + 10
		default:
			return 0, false
		}
		val = val*16 + d
	}
	return val, true
}

func isControlChar(ch rune) bool {
	return ch >= 0x00 && ch <= 0x1F
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func unescape(ch rune) rune {
	switch ch {
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case '"':
		return '"'
	case '\\':
		return '\\'
	case '/':
		return '/'
	}
	return 0
}

func consumeDigits(s string, i int) int {
	for i < len(s) && isDigit(rune(s[i])) {
		i++
	}
	return i
}

func parseIntegerPart(s string, i int) (newIndex int, ok bool) {
	integerStart := i
	i = consumeDigits(s, i)
	if i == integerStart {
		return i, false // No digits found.
	}
	integerPart := s[integerStart:i]
	if len(integerPart) > 1 && integerPart[0] == '0' {
		return i, false // Leading zeros are not allowed.
	}
	return i, true
}

func parseFractionalPart(s string, i int) (newIndex int, ok bool) {
	if i >= len(s) || s[i] != '.' {
		return i, true
	}
	i++ // Consume '.'.
	fractionStart := i
	i = consumeDigits(s, i)
	if i == fractionStart {
		return i, false // No digits after '.'.
	}
	return i, true
}

func parseExponentPart(s string, i int) (newIndex int, ok bool) {
	if i >= len(s) || (s[i] != 'e' && s[i] != 'E') {
		return i, true
	}
	i++ // Consume 'e' or 'E'.
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	exponentStart := i
	i = consumeDigits(s, i)
	if i == exponentStart {
		return i, false // No digits in exponent.
	}
	return i, true
}

// ParseAsNumber reports whether s is a number per the JSON grammar.
func ParseAsNumber(s string) bool {
	if len(s) == 0 {
		return false
	}
	i := 0

	// Optional sign.
	if s[i] == '-' {
		if len(s) == 1 {
			return false
		}
		i++
	}

	var ok bool
	if i, ok = parseIntegerPart(s, i); !ok {
		return false
	}
	if i, ok = parseFractionalPart(s, i); !ok {
		return false
	}
	if i, ok = parseExponentPart(s, i); !ok {
		return false
	}

	// Must consume the whole string.
	return i == len(s)
}
