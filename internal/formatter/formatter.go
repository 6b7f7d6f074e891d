package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KimNorgaard/go-jsonml/internal/ast"
)

const (
	defaultIndent = 2
	hexDigits     = "0123456789abcdef"
)

// Formatter writes a JSON AST to an output stream.
type Formatter struct {
	w      io.Writer
	indent string
	depth  int
}

// New returns a new formatter that writes to w. A nil indentSpaces selects
// the default indent; zero selects compact output.
func New(w io.Writer, indentSpaces *int) *Formatter {
	spaces := defaultIndent
	if indentSpaces != nil {
		spaces = *indentSpaces
	}
	var indentStr string
	if spaces > 0 {
		indentStr = strings.Repeat(" ", spaces)
	}
	return &Formatter{w: w, indent: indentStr}
}

// Format writes the JSON text of the AST node to the writer.
func (f *Formatter) Format(node ast.Node) error {
	return f.writeNode(node)
}

func (f *Formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *Formatter) writeIndent() error {
	if f.indent == "" {
		return nil
	}
	return f.write(strings.Repeat(f.indent, f.depth))
}

// writeNewline starts a new indented line in pretty mode and is a no-op in
// compact mode.
func (f *Formatter) writeNewline() error {
	if f.indent == "" {
		return nil
	}
	if err := f.write("\n"); err != nil {
		return err
	}
	return f.writeIndent()
}

func (f *Formatter) writeNode(node ast.Node) error {
	switch n := node.(type) {
	case *ast.ObjectLiteral:
		return f.writeObject(n)

	case *ast.ArrayLiteral:
		return f.writeArray(n)

	case *ast.StringLiteral:
		return f.write(Quote(n.Value))

	case *ast.NumberLiteral:
		if lit := n.TokenLiteral(); lit != "" {
			return f.write(lit)
		}
		return f.write(strconv.FormatFloat(n.Value, 'g', -1, 64))

	case *ast.BooleanLiteral:
		return f.write(strconv.FormatBool(n.Value))

	case *ast.NullLiteral:
		return f.write("null")

	default:
		return fmt.Errorf("jsonml: unsupported node type for formatting: %T", n)
	}
}

func (f *Formatter) writeObject(obj *ast.ObjectLiteral) error {
	if err := f.write("{"); err != nil {
		return err
	}
	if len(obj.Pairs) == 0 {
		return f.write("}")
	}

	sep := ":"
	if f.indent != "" {
		sep = ": "
	}
	f.depth++
	for i, pair := range obj.Pairs {
		if i > 0 {
			if err := f.write(","); err != nil {
				return err
			}
		}
		if err := f.writeNewline(); err != nil {
			return err
		}
		if err := f.write(Quote(pair.Key.Value) + sep); err != nil {
			return err
		}
		if err := f.writeNode(pair.Value); err != nil {
			return err
		}
	}
	f.depth--
	if err := f.writeNewline(); err != nil {
		return err
	}
	return f.write("}")
}

func (f *Formatter) writeArray(arr *ast.ArrayLiteral) error {
	if err := f.write("["); err != nil {
		return err
	}
	if len(arr.Elements) == 0 {
		return f.write("]")
	}

	f.depth++
	for i, elem := range arr.Elements {
		if i > 0 {
			if err := f.write(","); err != nil {
				return err
			}
		}
		if err := f.writeNewline(); err != nil {
			return err
		}
		if err := f.writeNode(elem); err != nil {
			return err
		}
	}
	f.depth--
	if err := f.writeNewline(); err != nil {
		return err
	}
	return f.write("]")
}

// Quote returns s as a JSON string literal. Only the characters JSON
// requires are escaped; everything else is written as UTF-8.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch c {
			case '"', '\\':
				b.WriteByte('\\')
				b.WriteByte(c)
			case '\b':
				b.WriteString(`\b`)
			case '\f':
				b.WriteString(`\f`)
			case '\n':
				b.WriteString(`\n`)
			case '\r':
				b.WriteString(`\r`)
			case '\t':
				b.WriteString(`\t`)
			default:
				if c < 0x20 {
					b.WriteString(`\u00`)
					b.WriteByte(hexDigits[c>>4])
					b.WriteByte(hexDigits[c&0xF])
				} else {
					b.WriteByte(c)
				}
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteString("\ufffd")
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	b.WriteByte('"')
	return b.String()
}
