/*
Package jsonml converts between JsonML, the array-based JSON encoding of
markup, and an in-memory markup tree, and renders that tree as HTML. The API
mirrors the standard `encoding/json` package where it can.

A markup tree is made of Element values. An Element is either Text, a leaf
holding literal content, or a *Tag holding a name, Attributes and ordered
children. Attribute values are String, Number, Bool or Null.

1. Decoding and Encoding

In JsonML a text node is a JSON string and a tag is a JSON array whose first
item is the tag name, optionally followed by an object of attributes,
followed by the children:

	var data = []byte(`["ul", ["li", {"style": "color:red"}, "First Item"]]`)

	e, err := jsonml.Unmarshal(data)
	if err != nil {
		// handle error
	}
	// e is &Tag{Name: "ul", Children: []Element{&Tag{Name: "li", ...}}}

The format has no marker for the attributes object, so the decoder treats
the item after the name as attributes when it is an object of scalar values
and as the first child otherwise.

Marshal writes a tree back. The attributes object is left out when a tag has
no attributes, and attributes are written in sorted key order:

	out, err := jsonml.Marshal(e, jsonml.Indent(2))

2. Rendering HTML

Render turns a tree into HTML text:

	html, err := jsonml.Render(e)
	// html == `<ul><li style="color:red">First Item</li></ul>`

Tag names must be ASCII alphanumeric and attribute names must follow the
HTML attribute-name rules; otherwise Render fails and produces no output.
Attribute values are escaped. Text content is written verbatim and is never
escaped: callers must escape untrusted text before putting it in a tree.

Node adapts a tree to maragu.dev/gomponents for use in gomponents pages.
*/
package jsonml
