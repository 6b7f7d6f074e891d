package jsonml

// AttributeValue is the value of a tag attribute. It is one of String,
// Number, Bool or Null.
type AttributeValue interface {
	isAttributeValue()
}

// String is a textual attribute value.
type String string

// Number is a numeric attribute value.
type Number float32

// String returns n in its shortest decimal form without an exponent, as it
// appears in rendered HTML: 1e20 is "100000000000000000000". NaN and the
// infinities are "NaN", "inf" and "-inf".
func (n Number) String() string {
	return formatNumber(n)
}

// Bool is a boolean attribute value.
type Bool bool

// Null is the absent attribute value. It is still rendered, as null.
type Null struct{}

func (String) isAttributeValue() {}
func (Number) isAttributeValue() {}
func (Bool) isAttributeValue()   {}
func (Null) isAttributeValue()   {}

// DefaultAttributeValue returns the default attribute value, Null.
func DefaultAttributeValue() AttributeValue {
	return Null{}
}

// equalValues compares two attribute values. A nil value counts as Null.
// Numbers compare as floats, so NaN never equals itself.
func equalValues(a, b AttributeValue) bool {
	if a == nil {
		a = Null{}
	}
	if b == nil {
		b = Null{}
	}
	return a == b
}
