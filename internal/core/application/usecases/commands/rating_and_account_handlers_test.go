package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func deliveredOrder(t *testing.T) *order.Order {
	t.Helper()
	o, _ := assignedOrder(t)
	require.NoError(t, o.StartDelivery(now))
	require.NoError(t, o.Complete(now))
	return o
}

func TestSubmitRatingCommand_StarsOutOfRange(t *testing.T) {
	_, err := commands.NewSubmitRatingCommand(kernel.NewUUID(), "asha@example.com", kernel.NewUUID(), 6, nil, "")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestSubmitRatingCommandHandler_Handle(t *testing.T) {
	ctx := testContext(t)
	o := deliveredOrder(t)
	cmd, err := commands.NewSubmitRatingCommand(kernel.NewUUID(), "Asha@Example.com", o.ID(), 5,
		[]string{"Tasty", "on time", "tasty"}, "great momo")
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.ratings.On("ExistsForOrder", ctx, o.ID()).Return(false, nil).Once()

	var saved *rating.Rating
	uow.ratings.On("Add", ctx, mock.AnythingOfType("*rating.Rating")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*rating.Rating) }).
		Return(nil).Once()

	require.NoError(t, commands.NewSubmitRatingCommandHandler(ratingUoWFactory{uow}, clock).Handle(ctx, cmd))
	uow.assertAll(t)

	require.NotNil(t, saved)
	assert.Equal(t, "himalayan-wok", saved.RestaurantID())
	assert.Equal(t, 5, saved.Stars())
	assert.Len(t, saved.Tags(), 2)
}

func TestSubmitRatingCommandHandler_Handle_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		order   func(t *testing.T) *order.Order
		user    string
		exists  bool
		wantErr error
	}{
		{
			name:    "someone else's order",
			order:   deliveredOrder,
			user:    "bishal@example.com",
			wantErr: commands.ErrOrderBelongsToAnotherCustomer,
		},
		{
			name:    "not delivered yet",
			order:   func(t *testing.T) *order.Order { return newConfirmedOrder(t) },
			user:    "asha@example.com",
			wantErr: commands.ErrOrderIsNotDelivered,
		},
		{
			name:    "already rated",
			order:   deliveredOrder,
			user:    "asha@example.com",
			exists:  true,
			wantErr: errs.ErrObjectAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			o := tt.order(t)
			cmd, err := commands.NewSubmitRatingCommand(kernel.NewUUID(), tt.user, o.ID(), 4, nil, "")
			require.NoError(t, err)

			uow := newMockUoW()
			uow.expectTx(ctx, false)
			uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
			uow.ratings.On("ExistsForOrder", ctx, o.ID()).Return(tt.exists, nil).Maybe()

			err = commands.NewSubmitRatingCommandHandler(ratingUoWFactory{uow}, clock).Handle(ctx, cmd)
			require.ErrorIs(t, err, tt.wantErr)
			uow.ratings.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		})
	}
}

func TestRegisterUserCommandHandler_Handle(t *testing.T) {
	ctx := testContext(t)
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(id, "Asha", "Asha@Example.com", "9800000001", "secret1", "secret1")
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.users.On("Add", ctx, mock.MatchedBy(func(u *account.User) bool {
		return u.ID().IsEqual(id) && u.Email() == "asha@example.com" && u.Authenticate("secret1") == nil
	})).Return(nil).Once()

	require.NoError(t, commands.NewRegisterUserCommandHandler(userUoWFactory{uow}, clock).Handle(ctx, cmd))
	uow.assertAll(t)
}

func TestRegisterUserCommandHandler_Handle_PasswordMismatch(t *testing.T) {
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "Asha", "asha@example.com", "9800000001", "secret1", "secret2")
	require.NoError(t, err)

	uow := newMockUoW()
	err = commands.NewRegisterUserCommandHandler(userUoWFactory{uow}, clock).Handle(testContext(t), cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestRegisterUserCommandHandler_Handle_Duplicate(t *testing.T) {
	ctx := testContext(t)
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "Asha", "asha@example.com", "9800000001", "secret1", "secret1")
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.users.On("Add", ctx, mock.Anything).Return(errs.NewObjectAlreadyExistsError("email", "asha@example.com")).Once()

	err = commands.NewRegisterUserCommandHandler(userUoWFactory{uow}, clock).Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestLoginUserCommandHandler_Handle(t *testing.T) {
	ctx := testContext(t)
	u, err := account.RegisterUser(kernel.NewUUID(), "Asha", "asha@example.com", "9800000001", "secret1", "secret1", now)
	require.NoError(t, err)

	tokens := new(MockTokenIssuer)
	tokens.On("Issue", u).Return("signed.jwt", nil).Once()

	tests := []struct {
		name     string
		login    string
		password string
		found    bool
		want     string
		wantErr  error
	}{
		{name: "email login", login: " ASHA@example.com ", password: "secret1", found: true, want: "signed.jwt"},
		{name: "wrong password", login: "9800000001", password: "nope", found: true, wantErr: account.ErrInvalidCredentials},
		{name: "unknown login", login: "ghost@example.com", password: "secret1", wantErr: account.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewLoginUserCommand(tt.login, tt.password)
			require.NoError(t, err)

			uow := newMockUoW()
			if tt.found {
				uow.users.On("FindByLogin", ctx, cmd.Login()).Return(u, nil).Once()
			} else {
				uow.users.On("FindByLogin", ctx, cmd.Login()).
					Return(nil, errs.NewObjectNotFoundError("user", cmd.Login())).Once()
			}

			token, err := commands.NewLoginUserCommandHandler(userUoWFactory{uow}, tokens).Handle(ctx, cmd)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
	tokens.AssertExpectations(t)
}

func TestNewLoginUserCommand_RequiresBoth(t *testing.T) {
	_, err := commands.NewLoginUserCommand("  ", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
