package queries

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// DayLayout is the format of the day parameter, e.g. 2026-03-14.
const DayLayout = "2006-01-02"

var ErrGetRiderStatsQueryIsNotConstructed = errors.New(
	"GetRiderStatsQuery must be created via NewGetRiderStatsQuery constructor",
)

// GetRiderStatsQuery summarizes one rider's deliveries on one UTC day.
type GetRiderStatsQuery struct {
	riderID kernel.UUID
	day     time.Time

	guard guard.ConstructorGuard
}

// NewGetRiderStatsQuery accepts an empty day, meaning today.
func NewGetRiderStatsQuery(riderID kernel.UUID, day string) (GetRiderStatsQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetRiderStatsQuery{}, err
	}

	var parsed time.Time
	if day = strings.TrimSpace(day); day != "" {
		var err error
		parsed, err = time.Parse(DayLayout, day)
		if err != nil {
			return GetRiderStatsQuery{}, errs.NewValueIsInvalidErrorWithCause("day", err)
		}
	}

	return GetRiderStatsQuery{riderID: riderID, day: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRiderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderStatsQueryIsNotConstructed)
}

// GetRiderStatsQueryResponse is the rider dashboard header. Earnings are the
// delivery fees of the day's delivered orders and DistanceKm the straight-line
// restaurant to drop-off distance summed over those with a pinned drop-off.
type GetRiderStatsQueryResponse struct {
	RiderID         kernel.UUID
	Day             string
	Deliveries      int
	Earnings        int
	DistanceKm      float64
	PendingRequests int
	TotalDeliveries int
}
