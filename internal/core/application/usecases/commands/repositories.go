package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	FavoriteRepoFactory interface {
		FavoriteRepository() ports.FavoriteRepository
	}

	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	RiderUoW interface {
		TxManager
		RiderRepoFactory
	}

	RiderUoWFactory interface {
		Create() RiderUoW
	}

	// UoW spans orders and riders, for everything that changes both.
	UoW interface {
		TxManager
		OrderRepoFactory
		RiderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	RatingUoW interface {
		TxManager
		OrderRepoFactory
		RatingRepoFactory
	}

	RatingUoWFactory interface {
		Create() RatingUoW
	}

	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	FavoriteUoW interface {
		TxManager
		FavoriteRepoFactory
	}

	FavoriteUoWFactory interface {
		Create() FavoriteUoW
	}

	// OfferBoard is the part of services.RequestBoard the commands drive.
	OfferBoard interface {
		GoOnline(riderID kernel.UUID)
		GoOffline(riderID kernel.UUID)
		Broadcast(o *order.Order, available []kernel.UUID) int
		Decline(riderID, orderID kernel.UUID) error
		Withdraw(orderID kernel.UUID)
		Expire() int
	}
)

// Clock returns the current time. A nil Clock means time.Now.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}
