package jsonml

import (
	"slices"
)

// Element is a node of a markup tree. It is either Text or *Tag.
type Element interface {
	isElement()
}

// Text is a leaf holding literal textual content.
type Text string

func (Text) isElement() {}

// Tag is an interior node of a markup tree.
//
// Names and attribute keys are not validated when a Tag is built; the HTML
// renderer validates them.
type Tag struct {
	Name       string
	Attributes Attributes
	Children   []Element
}

func (*Tag) isElement() {}

// NewTag returns a Tag with the given name, attributes and children.
// A nil attrs is replaced with an empty map.
func NewTag(name string, attrs Attributes, children ...Element) *Tag {
	if attrs == nil {
		attrs = Attributes{}
	}
	if children == nil {
		children = []Element{}
	}
	return &Tag{Name: name, Attributes: attrs, Children: children}
}

// DefaultElement returns the default element, an empty Text.
func DefaultElement() Element {
	return Text("")
}

// Attributes maps attribute names to their values.
type Attributes map[string]AttributeValue

// Keys returns the attribute names in sorted order. Everything that writes
// attributes out iterates in this order, so output is deterministic.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Equal reports whether two trees are structurally equal. Attribute maps are
// compared as sets and children in order. A nil map or slice equals an empty
// one.
func Equal(a, b Element) bool {
	switch x := a.(type) {
	case Text:
		y, ok := b.(Text)
		return ok && x == y
	case *Tag:
		y, ok := b.(*Tag)
		if !ok {
			return false
		}
		if x == nil || y == nil {
			return x == y
		}
		return x.Name == y.Name &&
			equalAttributes(x.Attributes, y.Attributes) &&
			slices.EqualFunc(x.Children, y.Children, Equal)
	default:
		return a == nil && b == nil
	}
}

func equalAttributes(a, b Attributes) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !equalValues(av, bv) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of e.
func Clone(e Element) Element {
	t, ok := e.(*Tag)
	if !ok || t == nil {
		return e
	}
	children := make([]Element, len(t.Children))
	for i, c := range t.Children {
		children[i] = Clone(c)
	}
	return &Tag{Name: t.Name, Attributes: cloneAttributes(t.Attributes), Children: children}
}
