package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/rider"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"invalid", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("stars", 7, 1, 5), http.StatusBadRequest},
		{"not found", errs.NewObjectNotFoundError("order", "42"), http.StatusNotFound},
		{"already exists", errs.NewObjectAlreadyExistsError("rating for order", "ab12"), http.StatusConflict},
		{"stale version", errs.NewVersionIsInvalidError("order"), http.StatusConflict},
		{"rider busy", fmt.Errorf("accept: %w", rider.ErrRiderIsBusy), http.StatusConflict},
		{"credentials", account.ErrInvalidCredentials, http.StatusUnauthorized},
		{"another rider", commands.ErrOrderIsAssignedToAnotherRider, http.StatusForbidden},
		{"another customer", commands.ErrOrderBelongsToAnotherCustomer, http.StatusForbidden},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
