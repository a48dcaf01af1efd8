package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trozler/erc721admin/cbor"
	"github.com/trozler/erc721admin/registry"
	"github.com/trozler/erc721admin/types"
)

func Test_Codec(t *testing.T) {
	t.Run("admin-changed roundtrip", func(t *testing.T) {
		ev := &registry.AdminChanged{TokenID: 7, OldAdmin: types.Account{0x01}, NewAdmin: types.Account{0x02}}
		data, err := Encode(ev)
		require.NoError(t, err)
		decoded, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, ev, decoded)
	})

	t.Run("approval-set roundtrip", func(t *testing.T) {
		ev := &registry.ApprovalSet{TokenID: 7, Owner: types.Account{0x01}, Delegate: types.Account{0x02}}
		data, err := Encode(ev)
		require.NoError(t, err)
		decoded, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, ev, decoded)
	})

	t.Run("unknown tag", func(t *testing.T) {
		data, err := cbor.MarshalTaggedValue(999, &registry.AdminChanged{TokenID: 1})
		require.NoError(t, err)
		_, err = Decode(data)
		require.EqualError(t, err, "unknown event tag 999")
	})
}

func Test_Bus(t *testing.T) {
	t.Run("handler receives published events", func(t *testing.T) {
		bus := NewBus()
		defer bus.Close()

		received := make(chan registry.Event, 1)
		require.NoError(t, bus.RegisterHandler(registry.TopicAdminChanged, func(ev registry.Event) {
			received <- ev
		}))

		ev := &registry.AdminChanged{TokenID: 42, NewAdmin: types.Account{0x0c}}
		require.NoError(t, bus.Publish(context.Background(), ev))

		select {
		case got := <-received:
			require.Equal(t, ev, got)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	})

	t.Run("handlers only see their topic", func(t *testing.T) {
		bus := NewBus()
		defer bus.Close()

		adminChanges := make(chan registry.Event, 2)
		require.NoError(t, bus.RegisterHandler(registry.TopicAdminChanged, func(ev registry.Event) {
			adminChanges <- ev
		}))

		require.NoError(t, bus.Publish(context.Background(),
			&registry.ApprovalSet{TokenID: 1},
			&registry.AdminChanged{TokenID: 2, NewAdmin: types.Account{0x01}},
		))

		select {
		case got := <-adminChanges:
			require.IsType(t, &registry.AdminChanged{}, got)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	})
}

func Test_Collector(t *testing.T) {
	c := NewCollector()
	ev := &registry.AdminChanged{TokenID: 1}
	require.NoError(t, c.Publish(context.Background(), ev))
	require.Equal(t, []registry.Event{ev}, c.Events())
	c.Reset()
	require.Empty(t, c.Events())
}
