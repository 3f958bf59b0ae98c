package order

import (
	"fmt"
	"time"

	"fooddelivery/internal/pkg/errs"
)

// MinScheduleLead is how far ahead a scheduled delivery must be booked.
const MinScheduleLead = 30 * time.Minute

type ScheduleKind string

const (
	ASAP      ScheduleKind = "asap"
	Scheduled ScheduleKind = "scheduled"
)

// Schedule is the requested delivery time.
type Schedule struct {
	kind ScheduleKind
	at   *time.Time
}

// NewSchedule validates a customer request made at now. A scheduled delivery
// needs a time at least MinScheduleLead in the future.
func NewSchedule(kind ScheduleKind, at *time.Time, now time.Time) (Schedule, error) {
	switch kind {
	case "", ASAP:
		return Schedule{kind: ASAP}, nil
	case Scheduled:
		if at == nil {
			return Schedule{}, errs.NewValueIsRequiredError("scheduled time")
		}
		earliest := now.Add(MinScheduleLead)
		if at.Before(earliest) {
			return Schedule{}, errs.NewValueIsInvalidErrorWithCause(
				"scheduled time",
				fmt.Errorf("%s is earlier than %s", at.Format(time.RFC3339), earliest.Format(time.RFC3339)),
			)
		}
		t := at.UTC()
		return Schedule{kind: Scheduled, at: &t}, nil
	default:
		return Schedule{}, errs.NewValueIsInvalidErrorWithCause("delivery type", fmt.Errorf("%q is not supported", kind))
	}
}

// RestoreSchedule skips the lead-time check, which only applies at checkout.
func RestoreSchedule(kind ScheduleKind, at *time.Time) (Schedule, error) {
	if kind == Scheduled {
		if at == nil {
			return Schedule{}, errs.NewValueIsRequiredError("scheduled time")
		}
		t := at.UTC()
		return Schedule{kind: Scheduled, at: &t}, nil
	}
	if kind != ASAP {
		return Schedule{}, errs.NewValueIsInvalidErrorWithCause("delivery type", fmt.Errorf("%q is not supported", kind))
	}
	return Schedule{kind: ASAP}, nil
}

func (s Schedule) Kind() ScheduleKind { return s.kind }

// At is nil for ASAP deliveries.
func (s Schedule) At() *time.Time {
	if s.at == nil {
		return nil
	}
	t := *s.at
	return &t
}
