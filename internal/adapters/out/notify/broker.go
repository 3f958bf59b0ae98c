// Package notify fans order events out to in-process subscribers, such as
// the SSE tracking stream.
package notify

import (
	"context"
	"log/slog"
	"sync"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

const defaultBuffer = 16

type subscription struct {
	ch chan order.StatusChanged
}

// Broker is an OrderEventPublisher that delivers each event to everyone
// watching that order. A slow subscriber whose buffer is full misses the
// event rather than blocking the publisher.
type Broker struct {
	mu     sync.Mutex
	subs   map[kernel.UUID]map[*subscription]struct{}
	buffer int
	logger *slog.Logger
}

func NewBroker(buffer int, logger *slog.Logger) *Broker {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Broker{
		subs:   make(map[kernel.UUID]map[*subscription]struct{}),
		buffer: buffer,
		logger: logger.With("component", "notify_broker"),
	}
}

// Subscribe registers interest in one order. The returned cancel func must
// be called when the subscriber goes away; it closes the channel.
func (b *Broker) Subscribe(orderID kernel.UUID) (<-chan order.StatusChanged, func()) {
	sub := &subscription{ch: make(chan order.StatusChanged, b.buffer)}

	b.mu.Lock()
	if b.subs[orderID] == nil {
		b.subs[orderID] = make(map[*subscription]struct{})
	}
	b.subs[orderID][sub] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs[orderID], sub)
			if len(b.subs[orderID]) == 0 {
				delete(b.subs, orderID)
			}
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Subscribers reports how many streams are watching orderID.
func (b *Broker) Subscribers(orderID kernel.UUID) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[orderID])
}

func (b *Broker) Publish(ctx context.Context, events ...order.StatusChanged) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, e := range events {
		for sub := range b.subs[e.OrderID] {
			select {
			case sub.ch <- e:
			default:
				b.logger.WarnContext(ctx, "dropping event for slow subscriber",
					"order_id", e.OrderID.String(), "status", e.Status.String())
			}
		}
	}
	return nil
}
