package jsonml

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Render returns the HTML text of e.
//
// Text is written verbatim: it is NOT escaped. Callers that put untrusted
// text into a tree must escape it first. A *Tag is written as
// <name key="value" ...>children</name>, never in self-closing form, with
// attributes in sorted key order and attribute values escaped.
//
// Tag names must consist of ASCII letters and digits, and attribute names
// must not contain space, quotes, '>', '/', '=' or Unicode noncharacters.
// A violation anywhere in the tree fails the whole render with a
// *NameError wrapping ErrInvalidTagName or ErrInvalidAttributeName.
func Render(e Element) (string, error) {
	var b strings.Builder
	r := &htmlRenderer{b: &b}
	if err := r.renderElement(e); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderTo writes the HTML text of e to w. Nothing is written if the tree
// fails validation.
func RenderTo(w io.Writer, e Element) error {
	s, err := Render(e)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

type htmlRenderer struct {
	b *strings.Builder
}

func (r *htmlRenderer) renderElement(e Element) error {
	switch v := e.(type) {
	case Text:
		r.b.WriteString(string(v))
		return nil
	case *Tag:
		if v == nil {
			return &UnsupportedValueError{Reason: "nil *Tag"}
		}
		return r.renderTag(v)
	case nil:
		return &UnsupportedValueError{Reason: "nil element"}
	default:
		return &UnsupportedValueError{Reason: fmt.Sprintf("element type %T", e)}
	}
}

func (r *htmlRenderer) renderTag(t *Tag) error {
	if err := validateTagName(t.Name); err != nil {
		return err
	}
	r.b.WriteString("<")
	r.b.WriteString(t.Name)
	for _, key := range t.Attributes.Keys() {
		if err := validateAttributeName(key); err != nil {
			return err
		}
		r.b.WriteString(" ")
		r.b.WriteString(key)
		r.b.WriteString(`="`)
		r.b.WriteString(attributeText(t.Attributes[key]))
		r.b.WriteString(`"`)
	}
	r.b.WriteString(">")
	for _, child := range t.Children {
		if err := r.renderElement(child); err != nil {
			return err
		}
	}
	r.b.WriteString("</")
	r.b.WriteString(t.Name)
	r.b.WriteString(">")
	return nil
}

// validateTagName checks the HTML tag name syntax: ASCII alphanumerics only.
// https://html.spec.whatwg.org/multipage/syntax.html#syntax-tag-name
func validateTagName(name string) error {
	for _, c := range name {
		if !isASCIIAlphanumeric(c) {
			return &NameError{Err: ErrInvalidTagName, Name: name}
		}
	}
	return nil
}

// validateAttributeName checks the HTML attribute name syntax.
// https://html.spec.whatwg.org/multipage/syntax.html#attributes-2
func validateAttributeName(name string) error {
	for _, c := range name {
		switch {
		case c == ' ', c == '"', c == '\'', c == '>', c == '/', c == '=':
		case isNoncharacter(c):
		default:
			continue
		}
		return &NameError{Err: ErrInvalidAttributeName, Name: name}
	}
	return nil
}

func isASCIIAlphanumeric(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// isNoncharacter reports whether c is one of the 66 Unicode noncharacters:
// U+FDD0..U+FDEF and the last two code points of every plane.
func isNoncharacter(c rune) bool {
	if c >= 0xFDD0 && c <= 0xFDEF {
		return true
	}
	return c <= 0x10FFFF && c&0xFFFE == 0xFFFE
}

// attributeText returns the text written between the quotes of an
// attribute.
func attributeText(v AttributeValue) string {
	switch val := v.(type) {
	case String:
		return escapeAttributeValue(string(val))
	case Number:
		return formatNumber(val)
	case Bool:
		return strconv.FormatBool(bool(val))
	default:
		return "null"
	}
}

// escapeAttributeValue escapes the characters that are unsafe in an
// unquoted attribute value, so the result is also safe between quotes.
func escapeAttributeValue(s string) string {
	if !strings.ContainsAny(s, unsafeAttributeChars) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, c := range s {
		switch c {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'', '=', '`', ' ', '\t', '\n', '\f', '\r':
			fmt.Fprintf(&b, "&#x%X;", c)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

const unsafeAttributeChars = "&<>\"'=` \t\n\f\r"
