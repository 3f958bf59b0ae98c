package queries_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/model/rider"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newOrder(t *testing.T, reference, email string, createdAt time.Time) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("Asha", "9800000001", "", email)
	require.NoError(t, err)
	pin := kernel.MustNewLocation(27.7172, 85.3240)
	destination, err := order.NewDestination("Road 1", "Kathmandu", "Thamel", "", &pin)
	require.NoError(t, err)
	items, err := order.NewItems(map[string]order.LineItem{
		"Momo":     {UnitPrice: 200, Quantity: 2},
		"Chowmein": {UnitPrice: 180, Quantity: 1},
	})
	require.NoError(t, err)
	payment, err := order.NewPayment(order.CashOnDelivery, items.Subtotal(), 50, 0, "")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), reference, customer, destination, "himalayan-wok",
		items, payment, order.Schedule{}, createdAt, 0)
	require.NoError(t, err)
	o.PullDomainEvents()
	return o
}

func newRider(t *testing.T, name string, lat, lng float64) *rider.Rider {
	t.Helper()
	vehicle, err := rider.ParseVehicle("Bike - BA 1 PA 1")
	require.NoError(t, err)
	r, err := rider.NewRider(kernel.NewUUID(), name, "9841000000", vehicle, kernel.MustNewLocation(lat, lng), 4.5)
	require.NoError(t, err)
	return r
}

func assign(t *testing.T, o *order.Order, r *rider.Rider) {
	t.Helper()
	snapshot, err := order.NewAssignedRider(r.ID(), r.Name(), r.Phone(), r.Vehicle().String(), r.Rating(), nil)
	require.NoError(t, err)
	require.NoError(t, o.AssignRider(snapshot, now))
	require.NoError(t, r.Occupy(o.ID()))
}

type stubCatalog struct {
	restaurants []restaurant.Restaurant
}

func newCatalog(t *testing.T) stubCatalog {
	t.Helper()
	wok, err := restaurant.NewRestaurant("himalayan-wok", "Himalayan Wok", "Chinese", "Thamel",
		kernel.MustNewLocation(27.7150, 85.3120), 900)
	require.NoError(t, err)
	pizza, err := restaurant.NewRestaurant("everest-pizza", "Everest Pizza", "Italian", "Lazimpat",
		kernel.MustNewLocation(27.7230, 85.3220), 1200)
	require.NoError(t, err)
	return stubCatalog{restaurants: []restaurant.Restaurant{wok, pizza}}
}

func (c stubCatalog) Get(id string) (restaurant.Restaurant, error) {
	for _, r := range c.restaurants {
		if r.ID() == id {
			return r, nil
		}
	}
	return restaurant.Restaurant{}, errs.NewObjectNotFoundError("restaurant", id)
}

func (c stubCatalog) List() []restaurant.Restaurant {
	return c.restaurants
}
