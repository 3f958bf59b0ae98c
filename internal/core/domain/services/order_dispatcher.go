package services

import (
	"fmt"
	"sort"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rider"
	"fooddelivery/internal/pkg/errs"
)

// ErrRiderNotFound is returned when no available rider can be picked.
var ErrRiderNotFound = fmt.Errorf("%w: no available rider", errs.ErrObjectNotFound)

// OrderDispatcher pairs confirmed orders with riders.
type OrderDispatcher struct{}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Assign gives o to r: the order moves to preparing with a snapshot of the
// rider, and the rider becomes busy. Both a rider accepting an offer and an
// admin assigning manually go through here.
func (d OrderDispatcher) Assign(o *order.Order, r *rider.Rider, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}
	if !r.IsAvailable() {
		return rider.ErrRiderIsBusy
	}

	loc := r.Location()
	snapshot, err := order.NewAssignedRider(r.ID(), r.Name(), r.Phone(), r.Vehicle().String(), r.Rating(), &loc)
	if err != nil {
		return err
	}
	if err = o.AssignRider(snapshot, now); err != nil {
		return err
	}
	return r.Occupy(o.ID())
}

// Candidate is a rider together with the distance to the point of interest.
// DistanceKm is nil when there is no point to measure against.
type Candidate struct {
	Rider      *rider.Rider
	DistanceKm *float64
}

// Rank orders available riders by haversine distance to target, nearest
// first. Busy riders are skipped. With no target the input order is kept.
func (d OrderDispatcher) Rank(target *kernel.Location, riders []*rider.Rider) []Candidate {
	candidates := make([]Candidate, 0, len(riders))
	for _, r := range riders {
		if r.Validate() != nil || !r.IsAvailable() {
			continue
		}
		c := Candidate{Rider: r}
		if target != nil {
			km := r.DistanceTo(*target)
			c.DistanceKm = &km
		}
		candidates = append(candidates, c)
	}

	if target != nil {
		sort.SliceStable(candidates, func(i, j int) bool {
			return *candidates[i].DistanceKm < *candidates[j].DistanceKm
		})
	}
	return candidates
}

// Nearest returns the closest available rider to target, or the first
// available one when target is nil.
func (d OrderDispatcher) Nearest(target *kernel.Location, riders []*rider.Rider) (*rider.Rider, error) {
	ranked := d.Rank(target, riders)
	if len(ranked) == 0 {
		return nil, ErrRiderNotFound
	}
	return ranked[0].Rider, nil
}
