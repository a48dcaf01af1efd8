package events

import (
	"context"
	"sync"

	"github.com/trozler/erc721admin/registry"
)

// Collector is an EventSink that retains published events in memory, in
// publish order. Meant for tests and simple synchronous observers.
type Collector struct {
	mu     sync.Mutex
	events []registry.Event
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Publish(_ context.Context, events ...registry.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, events...)
	return nil
}

// Events returns a snapshot of the collected events.
func (c *Collector) Events() []registry.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]registry.Event(nil), c.events...)
}

func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = nil
}
