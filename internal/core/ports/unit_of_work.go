package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after
// Begin share its transaction. Aggregates saved through them are tracked and
// their domain events are published once Commit succeeds.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	RiderRepository() RiderRepository
	RatingRepository() RatingRepository
	UserRepository() UserRepository
	FavoriteRepository() FavoriteRepository
}
