package jsonml_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-jsonml"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		e, err := jsonml.Unmarshal([]byte(`"hello world"`))
		require.NoError(t, err)
		require.Equal(t, jsonml.Text("hello world"), e)
	})

	t.Run("Escaped Text", func(t *testing.T) {
		e, err := jsonml.Unmarshal([]byte(`"a\"b\\cé😀\n"`))
		require.NoError(t, err)
		require.Equal(t, jsonml.Text("a\"b\\cé\U0001F600\n"), e)
	})

	t.Run("Name Only", func(t *testing.T) {
		e, err := jsonml.Unmarshal([]byte(`["br"]`))
		require.NoError(t, err)
		require.Equal(t, jsonml.NewTag("br", nil), e)
	})

	t.Run("Empty Name", func(t *testing.T) {
		e, err := jsonml.Unmarshal([]byte(`[""]`))
		require.NoError(t, err)
		require.Equal(t, jsonml.NewTag("", nil), e)
	})

	t.Run("Attributes Only", func(t *testing.T) {
		e, err := jsonml.Unmarshal([]byte(`["li", {"style": "color:red"}]`))
		require.NoError(t, err)
		require.Equal(t, jsonml.NewTag("li", jsonml.Attributes{"style": jsonml.String("color:red")}), e)
	})

	t.Run("Empty Attributes Object", func(t *testing.T) {
		e, err := jsonml.Unmarshal([]byte(`["li", {}, "x"]`))
		require.NoError(t, err)
		require.Equal(t, jsonml.NewTag("li", nil, jsonml.Text("x")), e)
	})

	t.Run("Scalar Attribute Values", func(t *testing.T) {
		e, err := jsonml.Unmarshal([]byte(`["input", {"s": "v", "n": 3.14, "i": -2, "e": 1e3, "t": true, "f": false, "z": null}]`))
		require.NoError(t, err)
		tag := e.(*jsonml.Tag)
		require.Equal(t, jsonml.Attributes{
			"s": jsonml.String("v"),
			"n": jsonml.Number(3.14),
			"i": jsonml.Number(-2),
			"e": jsonml.Number(1000),
			"t": jsonml.Bool(true),
			"f": jsonml.Bool(false),
			"z": jsonml.Null{},
		}, tag.Attributes)
	})

	t.Run("Duplicate Attribute Last Wins", func(t *testing.T) {
		e, err := jsonml.Unmarshal([]byte(`["a", {"x": "1", "y": true, "x": "2"}]`))
		require.NoError(t, err)
		require.Equal(t, jsonml.NewTag("a", jsonml.Attributes{"x": jsonml.String("2"), "y": jsonml.Bool(true)}), e)
	})

	t.Run("Number Outside Float32 Range Saturates", func(t *testing.T) {
		e, err := jsonml.Unmarshal([]byte(`["a", {"big": 1e39, "small": -1e39}]`))
		require.NoError(t, err)
		tag := e.(*jsonml.Tag)
		require.True(t, math.IsInf(float64(tag.Attributes["big"].(jsonml.Number)), 1))
		require.True(t, math.IsInf(float64(tag.Attributes["small"].(jsonml.Number)), -1))
	})

	t.Run("Text First Child", func(t *testing.T) {
		e, err := jsonml.Unmarshal([]byte(`["b", "now", "!"]`))
		require.NoError(t, err)
		require.Equal(t, jsonml.NewTag("b", nil, jsonml.Text("now"), jsonml.Text("!")), e)
	})

	t.Run("Tag First Child", func(t *testing.T) {
		e, err := jsonml.Unmarshal([]byte(`["ul", ["li", "a"], "tail"]`))
		require.NoError(t, err)
		require.Equal(t, jsonml.NewTag("ul", nil,
			jsonml.NewTag("li", nil, jsonml.Text("a")),
			jsonml.Text("tail"),
		), e)
	})

	t.Run("Mixed Children Keep Order", func(t *testing.T) {
		e, err := jsonml.Unmarshal([]byte(`["p", {"id": "x"}, "a", ["b", "c"], "d", ["i"]]`))
		require.NoError(t, err)
		require.Equal(t, jsonml.NewTag("p", jsonml.Attributes{"id": jsonml.String("x")},
			jsonml.Text("a"),
			jsonml.NewTag("b", nil, jsonml.Text("c")),
			jsonml.Text("d"),
			jsonml.NewTag("i", nil),
		), e)
	})
}

// The item after the name is read as attributes whenever it has that shape,
// even if the author meant something else.
func TestUnmarshal_AttributesTakePriority(t *testing.T) {
	e, err := jsonml.Unmarshal([]byte(`["x", {}]`))
	require.NoError(t, err)
	tag := e.(*jsonml.Tag)
	require.Empty(t, tag.Attributes)
	require.Empty(t, tag.Children)

	// A later object is not in attribute position and is not an element.
	_, err = jsonml.Unmarshal([]byte(`["x", "a", {"k": "v"}]`))
	var typeErr *jsonml.TypeError
	require.ErrorAs(t, err, &typeErr)
	require.Equal(t, "object", typeErr.Value)
}

func TestDecoder(t *testing.T) {
	t.Run("Reads From Stream", func(t *testing.T) {
		dec := jsonml.NewDecoder(strings.NewReader(`["li", {"style": "color:red"}, "First Item"]`))
		e, err := dec.Decode()
		require.NoError(t, err)
		require.True(t, jsonml.Equal(
			jsonml.NewTag("li", jsonml.Attributes{"style": jsonml.String("color:red")}, jsonml.Text("First Item")),
			e,
		))
	})

	t.Run("Nil Reader", func(t *testing.T) {
		_, err := jsonml.NewDecoder(nil).Decode()
		require.EqualError(t, err, "jsonml: Decode(nil reader)")
	})

	t.Run("Invalid Option", func(t *testing.T) {
		_, err := jsonml.NewDecoder(bytes.NewReader([]byte(`"x"`)), jsonml.MaxDepth(0)).Decode()
		require.EqualError(t, err, "jsonml: max depth must be a positive integer")
	})
}

func TestUnmarshal_MaxDepth(t *testing.T) {
	nested := func(n int) []byte {
		return []byte(strings.Repeat(`["a",`, n) + `"x"` + strings.Repeat(`]`, n))
	}

	t.Run("Within Limit", func(t *testing.T) {
		_, err := jsonml.Unmarshal(nested(3), jsonml.MaxDepth(3))
		require.NoError(t, err)
	})

	t.Run("Exceeds Limit", func(t *testing.T) {
		_, err := jsonml.Unmarshal(nested(4), jsonml.MaxDepth(3))
		require.ErrorIs(t, err, jsonml.ErrMaxDepth)
	})

	t.Run("Exceeds Limit In Attribute Position", func(t *testing.T) {
		// The nested tag sits where attributes could be; the depth error must
		// not be reported as a malformed sequence.
		_, err := jsonml.Unmarshal([]byte(`["a", ["b", ["c"]]]`), jsonml.MaxDepth(2))
		require.ErrorIs(t, err, jsonml.ErrMaxDepth)
		require.NotErrorIs(t, err, jsonml.ErrMalformedSequence)
	})

	t.Run("Default Limit", func(t *testing.T) {
		_, err := jsonml.Unmarshal(nested(1000))
		require.NoError(t, err)

		_, err = jsonml.Unmarshal(nested(1001))
		require.ErrorIs(t, err, jsonml.ErrMaxDepth)
	})
}
