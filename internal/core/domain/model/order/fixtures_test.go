package order_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var checkoutTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("Asha Gurung", "9800000001", "", "Asha@Example.com")
	require.NoError(t, err)

	pin := kernel.MustNewLocation(27.7100, 85.3200)
	destination, err := order.NewDestination("Jhamsikhel Road 12", "Lalitpur", "Jhamsikhel", "Ring twice", &pin)
	require.NoError(t, err)

	items, err := order.NewItems(map[string]order.LineItem{
		"Margherita Pizza": {UnitPrice: 600, Quantity: 2},
	})
	require.NoError(t, err)

	payment, err := order.NewPayment(order.CashOnDelivery, items.Subtotal(), 50, 10, "")
	require.NoError(t, err)

	schedule, err := order.NewSchedule(order.ASAP, nil, checkoutTime)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "ck7x2p", customer, destination, "everest-pizza",
		items, payment, schedule, checkoutTime, order.DefaultETA)
	require.NoError(t, err)
	return o
}

func newTestRider(t *testing.T) order.AssignedRider {
	t.Helper()

	loc := kernel.MustNewLocation(27.7172, 85.3240)
	r, err := order.NewAssignedRider(kernel.NewUUID(), "Raj Kumar", "9841234567", "Bike - BA 12 PA 3456", 4.8, &loc)
	require.NoError(t, err)
	return r
}
