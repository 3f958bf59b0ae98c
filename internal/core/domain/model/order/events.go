package order

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// StatusChanged is recorded on creation and on every lifecycle transition.
// Version is stamped when the events are pulled after persistence.
type StatusChanged struct {
	OrderID    kernel.UUID
	Reference  string
	Status     Status
	RiderID    *kernel.UUID
	Version    int
	OccurredAt time.Time
}
