package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/favorite"
	"fooddelivery/internal/core/ports"
)

// AddFavoriteCommandHandler stars catalog restaurants. Starring the same
// restaurant twice succeeds and leaves one favorite.
type AddFavoriteCommandHandler struct {
	uowFactory FavoriteUoWFactory
	catalog    ports.RestaurantCatalog
	clock      Clock
}

// NewAddFavoriteCommandHandler checks restaurants against catalog before
// storing them.
func NewAddFavoriteCommandHandler(uowFactory FavoriteUoWFactory, catalog ports.RestaurantCatalog, clock Clock) AddFavoriteCommandHandler {
	return AddFavoriteCommandHandler{uowFactory: uowFactory, catalog: catalog, clock: clock}
}

// Handle returns errs.ObjectNotFoundError for a restaurant missing from the
// catalog.
func (h AddFavoriteCommandHandler) Handle(ctx context.Context, command AddFavoriteCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if _, err := h.catalog.Get(command.restaurantID); err != nil {
		return err
	}

	f, err := favorite.NewFavorite(command.userEmail, command.restaurantID, h.clock.now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.FavoriteRepository().Add(ctx, f); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// RemoveFavoriteCommandHandler unstars restaurants. Removing one that is not
// starred succeeds, so is removing one that left the catalog.
type RemoveFavoriteCommandHandler struct {
	uowFactory FavoriteUoWFactory
}

// NewRemoveFavoriteCommandHandler creates a handler for unsaving restaurants.
// Requires a FavoriteUoWFactory for transactional persistence.
func NewRemoveFavoriteCommandHandler(uowFactory FavoriteUoWFactory) RemoveFavoriteCommandHandler {
	return RemoveFavoriteCommandHandler{uowFactory: uowFactory}
}

func (h RemoveFavoriteCommandHandler) Handle(ctx context.Context, command RemoveFavoriteCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.FavoriteRepository().Remove(ctx, command.userEmail, command.restaurantID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
