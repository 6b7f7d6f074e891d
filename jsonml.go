package jsonml

import (
	"bytes"
	"fmt"
)

// Marshal returns the JsonML encoding of e.
func Marshal(e Element, opts ...EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, opts...)
	if err := enc.Encode(e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses the JsonML-encoded data and returns the markup tree.
// See Decoder.Decode for the decoding rules and errors.
func Unmarshal(data []byte, opts ...DecodeOption) (Element, error) {
	return NewDecoder(bytes.NewReader(data), opts...).Decode()
}

// MarshalJSON implements json.Marshaler, so a *Tag can be embedded in
// values encoded with encoding/json.
func (t *Tag) MarshalJSON() ([]byte, error) {
	return Marshal(t)
}

// UnmarshalJSON implements json.Unmarshaler. The data must encode a tag;
// a bare string is rejected because it decodes to Text.
func (t *Tag) UnmarshalJSON(data []byte) error {
	e, err := Unmarshal(data)
	if err != nil {
		return err
	}
	tag, ok := e.(*Tag)
	if !ok {
		return fmt.Errorf("jsonml: cannot unmarshal %T into *jsonml.Tag", e)
	}
	*t = *tag
	return nil
}
