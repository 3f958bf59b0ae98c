package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// ErrForbidden marks an action on an order the caller does not own.
var ErrForbidden = errors.New("forbidden")

var (
	ErrOrderIsAssignedToAnotherRider = fmt.Errorf("%w: order is assigned to another rider", ErrForbidden)
	ErrOrderBelongsToAnotherCustomer = fmt.Errorf("%w: order belongs to another customer", ErrForbidden)

	ErrOrderIsNotDelivered = errs.NewValueIsInvalidErrorWithCause("order status", errors.New("only delivered orders can be rated"))
)
