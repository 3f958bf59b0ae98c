package rider

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Available
	Busy
)

func (s Status) String() string {
	switch s {
	case Available:
		return "available"
	case Busy:
		return "busy"
	default:
		return "unknown"
	}
}

func ParseStatus(name string) (Status, error) {
	switch name {
	case "available":
		return Available, nil
	case "busy":
		return Busy, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("rider status", fmt.Errorf("%q is not a known status", name))
	}
}

func (s Status) Validate() error {
	if s != Available && s != Busy {
		return errs.NewValueIsInvalidErrorWithCause("rider status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}
