package services

import (
	"sort"
	"sync"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// DefaultOfferWindow is how long a rider has to react to an offer.
const DefaultOfferWindow = 30 * time.Second

// Offer is one delivery request sitting on a rider's board.
type Offer struct {
	OrderID      kernel.UUID
	Reference    string
	RestaurantID string
	Address      string
	Area         string
	Destination  *kernel.Location
	ItemCount    int
	Total        int
	OfferedAt    time.Time
	ExpiresAt    time.Time
}

// RequestBoard tracks which riders are online and which offers each of them
// currently sees. It lives in memory and is safe for concurrent use; a
// restart simply lets the next broadcast repopulate it.
//
// An order is offered to each online, available rider at most once: after a
// decline or an expiry it is not pushed to that rider again.
type RequestBoard struct {
	mu     sync.Mutex
	window time.Duration
	now    func() time.Time

	online map[kernel.UUID]struct{}
	offers map[kernel.UUID]map[kernel.UUID]Offer    // rider -> order -> offer
	seen   map[kernel.UUID]map[kernel.UUID]struct{} // order -> riders already offered
}

func NewRequestBoard(window time.Duration, now func() time.Time) *RequestBoard {
	if window <= 0 {
		window = DefaultOfferWindow
	}
	if now == nil {
		now = time.Now
	}
	return &RequestBoard{
		window: window,
		now:    now,
		online: make(map[kernel.UUID]struct{}),
		offers: make(map[kernel.UUID]map[kernel.UUID]Offer),
		seen:   make(map[kernel.UUID]map[kernel.UUID]struct{}),
	}
}

func (b *RequestBoard) GoOnline(riderID kernel.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.online[riderID] = struct{}{}
}

// GoOffline drops the rider's pending offers.
func (b *RequestBoard) GoOffline(riderID kernel.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.online, riderID)
	delete(b.offers, riderID)
}

func (b *RequestBoard) IsOnline(riderID kernel.UUID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, ok := b.online[riderID]
	return ok
}

// OnlineRiders returns the ids of riders currently accepting offers.
func (b *RequestBoard) OnlineRiders() []kernel.UUID {
	b.mu.Lock()
	defer b.mu.Unlock()

	ids := make([]kernel.UUID, 0, len(b.online))
	for id := range b.online {
		ids = append(ids, id)
	}
	return ids
}

// Broadcast offers o to every online rider in available who has not seen it
// yet and returns how many new offers were made. Riders outside available
// (busy ones) are skipped without being marked, so they get the offer once
// they are free again. Orders that are not waiting for a rider are ignored.
func (b *RequestBoard) Broadcast(o *order.Order, available []kernel.UUID) int {
	if o.Validate() != nil || !o.IsAwaitingRider() || len(available) == 0 {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	offer := Offer{
		OrderID:      o.ID(),
		Reference:    o.Reference(),
		RestaurantID: o.RestaurantID(),
		Address:      o.Destination().Address(),
		Area:         o.Destination().Area(),
		Destination:  o.Destination().Location(),
		ItemCount:    o.Items().Count(),
		Total:        o.Payment().Total(),
		OfferedAt:    now,
		ExpiresAt:    now.Add(b.window),
	}

	seen := b.seen[o.ID()]
	if seen == nil {
		seen = make(map[kernel.UUID]struct{})
		b.seen[o.ID()] = seen
	}

	offered := 0
	for _, riderID := range available {
		if _, on := b.online[riderID]; !on {
			continue
		}
		if _, done := seen[riderID]; done {
			continue
		}
		if b.offers[riderID] == nil {
			b.offers[riderID] = make(map[kernel.UUID]Offer)
		}
		b.offers[riderID][o.ID()] = offer
		seen[riderID] = struct{}{}
		offered++
	}
	return offered
}

// Pending lists the rider's live offers, oldest first.
func (b *RequestBoard) Pending(riderID kernel.UUID) []Offer {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	out := make([]Offer, 0, len(b.offers[riderID]))
	for _, offer := range b.offers[riderID] {
		if now.Before(offer.ExpiresAt) {
			out = append(out, offer)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OfferedAt.Equal(out[j].OfferedAt) {
			return out[i].Reference < out[j].Reference
		}
		return out[i].OfferedAt.Before(out[j].OfferedAt)
	})
	return out
}

// Decline removes one offer from one rider. Other riders keep theirs.
func (b *RequestBoard) Decline(riderID, orderID kernel.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.offers[riderID][orderID]; !ok {
		return errs.NewObjectNotFoundError("offer", orderID.String())
	}
	delete(b.offers[riderID], orderID)
	return nil
}

// Withdraw removes the order from every board, e.g. after it was accepted or
// cancelled.
func (b *RequestBoard) Withdraw(orderID kernel.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, offers := range b.offers {
		delete(offers, orderID)
	}
	delete(b.seen, orderID)
}

// Expire drops offers whose window has passed and returns how many went.
func (b *RequestBoard) Expire() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	expired := 0
	for _, offers := range b.offers {
		for orderID, offer := range offers {
			if !now.Before(offer.ExpiresAt) {
				delete(offers, orderID)
				expired++
			}
		}
	}
	return expired
}
