/*
Package cbor provides CBOR encoding/decoding functions.

It's a thin wrapper for github.com/fxamacker/cbor/v2, the reason for
having it is to make sure the same encoding options are used everywhere -
admin records, event payloads and digests all share the deterministic
encoding, so structurally equal values always encode to the same bytes.
*/
package cbor

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Tag is a CBOR tag number, used to mark the type of an encoded event
// payload.
type Tag = uint64

var encMode cbor.EncMode

/*
Set Core Deterministic Encoding as standard. See <https://www.rfc-editor.org/rfc/rfc8949.html#name-deterministically-encoded-c>.
*/
func cborEncoder() (_ cbor.EncMode, err error) {
	if encMode != nil {
		return encMode, nil
	}
	if encMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		return nil, err
	}
	return encMode, nil
}

func Marshal(v any) ([]byte, error) {
	enc, err := cborEncoder()
	if err != nil {
		return nil, err
	}
	return enc.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return cbor.Unmarshal(data, v)
}

// MarshalTaggedValue encodes v and wraps the encoding into the given tag.
func MarshalTaggedValue(tag Tag, v any) ([]byte, error) {
	data, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	return Marshal(cbor.RawTag{
		Number:  tag,
		Content: data,
	})
}

// UnmarshalTagged splits tagged data into the tag number and the still
// encoded content.
func UnmarshalTagged(data []byte) (Tag, []byte, error) {
	var raw cbor.RawTag
	if err := Unmarshal(data, &raw); err != nil {
		return 0, nil, err
	}
	return raw.Number, raw.Content, nil
}

// UnmarshalTaggedValue decodes data tagged with the given tag into v,
// failing when the data carries some other tag.
func UnmarshalTaggedValue(tag Tag, data []byte, v any) error {
	number, content, err := UnmarshalTagged(data)
	if err != nil {
		return err
	}
	if number != tag {
		return fmt.Errorf("unexpected tag: %d, expected: %d", number, tag)
	}
	return Unmarshal(content, v)
}
