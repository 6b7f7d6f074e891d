package jsonml

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"
)

// Node converts e into a gomponents node so a JsonML fragment can be
// embedded in pages built with gomponents.
//
// Names are validated and attribute values escaped exactly as Render does,
// and text stays verbatim (it becomes a g.Raw node). gomponents' own rules
// for void elements apply, so a "br" tag renders without a closing tag.
func Node(e Element) (g.Node, error) {
	switch v := e.(type) {
	case Text:
		return g.Raw(string(v)), nil
	case *Tag:
		if v == nil {
			return nil, &UnsupportedValueError{Reason: "nil *Tag"}
		}
		return tagNode(v)
	case nil:
		return nil, &UnsupportedValueError{Reason: "nil element"}
	default:
		return nil, &UnsupportedValueError{Reason: fmt.Sprintf("element type %T", e)}
	}
}

func tagNode(t *Tag) (g.Node, error) {
	if err := validateTagName(t.Name); err != nil {
		return nil, err
	}
	nodes := make([]g.Node, 0, len(t.Attributes)+len(t.Children))
	for _, key := range t.Attributes.Keys() {
		if err := validateAttributeName(key); err != nil {
			return nil, err
		}
		nodes = append(nodes, attributeNode{name: key, value: attributeText(t.Attributes[key])})
	}
	for _, child := range t.Children {
		n, err := Node(child)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return g.El(t.Name, nodes...), nil
}

// attributeNode is a gomponents attribute whose value is already escaped.
// g.Attr would escape it a second time.
type attributeNode struct {
	name  string
	value string
}

func (a attributeNode) Render(w io.Writer) error {
	_, err := io.WriteString(w, " "+a.name+`="`+a.value+`"`)
	return err
}

func (a attributeNode) Type() g.NodeType {
	return g.AttributeType
}
