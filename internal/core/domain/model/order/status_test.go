package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.Pending:        {order.Confirmed, order.Cancelled},
		order.Confirmed:      {order.Preparing, order.Cancelled},
		order.Preparing:      {order.OutForDelivery},
		order.OutForDelivery: {order.Delivered},
	}

	for _, from := range order.AllStatuses() {
		for _, to := range order.AllStatuses() {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}

			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)

			next, err := from.TransitionTo(to)
			if want {
				require.NoError(t, err)
				assert.Equal(t, to, next)
			} else {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid, "%s -> %s", from, to)
			}
		}
	}
}

func TestOutForDeliveryCannotBeCancelled(t *testing.T) {
	_, err := order.OutForDelivery.TransitionTo(order.Cancelled)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range order.AllStatuses() {
		assert.Equal(t, s == order.Delivered || s == order.Cancelled, s.IsTerminal(), s.String())
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range order.AllStatuses() {
		parsed, err := order.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := order.ParseStatus("shipped")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatusValidate(t *testing.T) {
	require.NoError(t, order.Preparing.Validate())
	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(42).Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestValidateCanHaveRider(t *testing.T) {
	tests := []struct {
		status   order.Status
		hasRider bool
		wantErr  bool
	}{
		{order.Pending, false, false},
		{order.Pending, true, true},
		{order.Confirmed, false, false},
		{order.Confirmed, true, true},
		{order.Preparing, true, false},
		{order.Preparing, false, true},
		{order.OutForDelivery, true, false},
		{order.Delivered, true, false},
		{order.Delivered, false, true},
		{order.Cancelled, false, false},
		{order.Cancelled, true, true},
	}

	for _, tt := range tests {
		err := tt.status.ValidateCanHaveRider(tt.hasRider)
		if tt.wantErr {
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "%s rider=%v", tt.status, tt.hasRider)
		} else {
			require.NoError(t, err, "%s rider=%v", tt.status, tt.hasRider)
		}
	}
}
