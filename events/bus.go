/*
Package events fans registry events out to subscribed handlers through an
in process watermill pub/sub. Payloads are CBOR encoded and tagged with
the event type, so consumers can decode a payload without knowing which
topic it arrived on.
*/
package events

import (
	"context"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	log "github.com/sirupsen/logrus"

	"github.com/trozler/erc721admin/registry"
)

// Handler receives every event published on the topic it was registered
// for, in publish order.
type Handler func(registry.Event)

type Bus struct {
	pubsub *gochannel.GoChannel
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu         sync.Mutex
	handlers   map[string][]Handler
	subscribed map[string]bool
}

func NewBus() *Bus {
	ctx, cancel := context.WithCancel(context.Background())
	return &Bus{
		pubsub:     gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{}),
		ctx:        ctx,
		cancel:     cancel,
		handlers:   make(map[string][]Handler),
		subscribed: make(map[string]bool),
	}
}

// Publish implements registry.EventSink. The message id is the event
// digest, so replays of the same state change are distinguishable from
// distinct changes with equal content only by their position.
func (b *Bus) Publish(_ context.Context, events ...registry.Event) error {
	for _, ev := range events {
		payload, err := Encode(ev)
		if err != nil {
			return fmt.Errorf("encoding %s event: %w", ev.Topic(), err)
		}
		digest, err := ev.Digest()
		if err != nil {
			return fmt.Errorf("hashing %s event: %w", ev.Topic(), err)
		}
		msg := message.NewMessage(hex.EncodeToString(digest), payload)
		if err := b.pubsub.Publish(ev.Topic(), msg); err != nil {
			return fmt.Errorf("publishing %s event: %w", ev.Topic(), err)
		}
	}
	return nil
}

// RegisterHandler subscribes the handler to the topic. Handlers for the
// same topic run sequentially on a single dispatch goroutine.
func (b *Bus) RegisterHandler(topic string, h Handler) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], h)
	if b.subscribed[topic] {
		return nil
	}
	msgs, err := b.pubsub.Subscribe(b.ctx, topic)
	if err != nil {
		return fmt.Errorf("subscribing to topic %q: %w", topic, err)
	}
	b.subscribed[topic] = true
	b.wg.Add(1)
	go b.dispatch(topic, msgs)
	return nil
}

func (b *Bus) dispatch(topic string, msgs <-chan *message.Message) {
	defer b.wg.Done()
	for msg := range msgs {
		ev, err := Decode(msg.Payload)
		if err != nil {
			log.WithError(err).WithField("topic", topic).Warn("dropping undecodable event")
			msg.Ack()
			continue
		}
		b.mu.Lock()
		handlers := append([]Handler(nil), b.handlers[topic]...)
		b.mu.Unlock()
		for _, h := range handlers {
			h(ev)
		}
		msg.Ack()
	}
}

// Close stops the dispatch goroutines and waits for them to drain.
func (b *Bus) Close() error {
	b.cancel()
	err := b.pubsub.Close()
	b.wg.Wait()
	return err
}
