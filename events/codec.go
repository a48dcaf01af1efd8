package events

import (
	"fmt"

	"github.com/trozler/erc721admin/cbor"
	"github.com/trozler/erc721admin/registry"
)

// CBOR tags marking the event type of an encoded payload.
const (
	adminChangedTag cbor.Tag = 721 + iota
	approvalSetTag
)

// Encode serializes the event as tagged CBOR.
func Encode(ev registry.Event) ([]byte, error) {
	switch e := ev.(type) {
	case *registry.AdminChanged:
		return cbor.MarshalTaggedValue(adminChangedTag, e)
	case *registry.ApprovalSet:
		return cbor.MarshalTaggedValue(approvalSetTag, e)
	default:
		return nil, fmt.Errorf("no tag assigned to event type %T", ev)
	}
}

// Decode is the inverse of Encode.
func Decode(data []byte) (registry.Event, error) {
	tag, content, err := cbor.UnmarshalTagged(data)
	if err != nil {
		return nil, fmt.Errorf("reading event tag: %w", err)
	}
	var ev registry.Event
	switch tag {
	case adminChangedTag:
		ev = &registry.AdminChanged{}
	case approvalSetTag:
		ev = &registry.ApprovalSet{}
	default:
		return nil, fmt.Errorf("unknown event tag %d", tag)
	}
	if err := cbor.Unmarshal(content, ev); err != nil {
		return nil, fmt.Errorf("decoding event payload: %w", err)
	}
	return ev, nil
}
