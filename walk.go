package jsonml

// MapBottomUp returns a new tree built by applying fn to every node of e,
// children before their parent. fn receives each tag with its children
// already mapped. e itself is not modified.
func MapBottomUp(e Element, fn func(Element) Element) Element {
	t, ok := e.(*Tag)
	if !ok || t == nil {
		return fn(e)
	}
	children := make([]Element, len(t.Children))
	for i, c := range t.Children {
		children[i] = MapBottomUp(c, fn)
	}
	return fn(&Tag{Name: t.Name, Attributes: cloneAttributes(t.Attributes), Children: children})
}

// MapTopDown returns a new tree built by applying fn to a node first and then
// descending into the children of the node fn returned. e itself is not
// modified.
func MapTopDown(e Element, fn func(Element) Element) Element {
	mapped := fn(Clone(e))
	t, ok := mapped.(*Tag)
	if !ok || t == nil {
		return mapped
	}
	children := make([]Element, len(t.Children))
	for i, c := range t.Children {
		children[i] = MapTopDown(c, fn)
	}
	return &Tag{Name: t.Name, Attributes: t.Attributes, Children: children}
}

// Walk visits e and its descendants in document order. Returning false
// from fn skips the children of the node just visited.
func Walk(e Element, fn func(Element) bool) {
	if !fn(e) {
		return
	}
	if t, ok := e.(*Tag); ok && t != nil {
		for _, c := range t.Children {
			Walk(c, fn)
		}
	}
}

func cloneAttributes(attrs Attributes) Attributes {
	out := make(Attributes, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
