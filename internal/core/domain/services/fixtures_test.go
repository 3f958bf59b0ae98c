package services_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rider"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func mustItems(t *testing.T, lines map[string]order.LineItem) order.Items {
	t.Helper()
	items, err := order.NewItems(lines)
	require.NoError(t, err)
	return items
}

func newConfirmedOrder(t *testing.T, ref string, pin *kernel.Location) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("Asha", "9800000001", "", "asha@example.com")
	require.NoError(t, err)
	destination, err := order.NewDestination("Road 1", "Kathmandu", "Thamel", "", pin)
	require.NoError(t, err)
	items := mustItems(t, map[string]order.LineItem{"Momo": {UnitPrice: 200, Quantity: 2}})
	payment, err := order.NewPayment(order.CashOnDelivery, items.Subtotal(), 50, 0, "")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), ref, customer, destination, "himalayan-wok",
		items, payment, order.Schedule{}, now, 0)
	require.NoError(t, err)
	require.NoError(t, o.Confirm(now))
	return o
}

func newRider(t *testing.T, name string, lat, lng float64) *rider.Rider {
	t.Helper()

	vehicle, err := rider.ParseVehicle("Bike - BA 1 PA 1")
	require.NoError(t, err)
	r, err := rider.NewRider(kernel.NewUUID(), name, "98410", vehicle, kernel.MustNewLocation(lat, lng), 4.5)
	require.NoError(t, err)
	return r
}
