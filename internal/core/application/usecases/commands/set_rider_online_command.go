package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrSetRiderOnlineCommandIsNotConstructed = errors.New(
	"SetRiderOnlineCommand must be created via NewSetRiderOnlineCommand constructor",
)

// SetRiderOnlineCommand toggles whether a rider receives offers.
type SetRiderOnlineCommand struct {
	riderID kernel.UUID
	online  bool

	guard guard.ConstructorGuard
}

func NewSetRiderOnlineCommand(riderID kernel.UUID, online bool) (SetRiderOnlineCommand, error) {
	if err := riderID.Validate(); err != nil {
		return SetRiderOnlineCommand{}, err
	}
	return SetRiderOnlineCommand{
		riderID: riderID,
		online:  online,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetRiderOnlineCommand) Validate() error {
	return c.guard.Validate(ErrSetRiderOnlineCommandIsNotConstructed)
}

func (c SetRiderOnlineCommand) RiderID() kernel.UUID { return c.riderID }
func (c SetRiderOnlineCommand) Online() bool { return c.online }
