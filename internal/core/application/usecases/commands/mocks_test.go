package commands_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/favorite"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/model/rider"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetAllAwaitingRider(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRiderRepository) Update(ctx context.Context, r *rider.Rider) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*rider.Rider)
	return r, args.Error(1)
}

func (m *MockRiderRepository) GetAllAvailable(ctx context.Context) ([]*rider.Rider, error) {
	args := m.Called(ctx)
	riders, _ := args.Get(0).([]*rider.Rider)
	return riders, args.Error(1)
}

type MockRatingRepository struct{ mock.Mock }

func (m *MockRatingRepository) Add(ctx context.Context, r *rating.Rating) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRatingRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *account.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) FindByLogin(ctx context.Context, login string) (*account.User, error) {
	args := m.Called(ctx, login)
	u, _ := args.Get(0).(*account.User)
	return u, args.Error(1)
}

type MockFavoriteRepository struct{ mock.Mock }

func (m *MockFavoriteRepository) Add(ctx context.Context, f *favorite.Favorite) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, restaurantID string) error {
	return m.Called(ctx, userID, restaurantID).Error(0)
}

// MockUoW satisfies every unit of work shape the handlers ask for.
type MockUoW struct {
	mock.Mock

	orders    *MockOrderRepository
	riders    *MockRiderRepository
	ratings   *MockRatingRepository
	users     *MockUserRepository
	favorites *MockFavoriteRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		orders:    new(MockOrderRepository),
		riders:    new(MockRiderRepository),
		ratings:   new(MockRatingRepository),
		users:     new(MockUserRepository),
		favorites: new(MockFavoriteRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository   { return m.orders }
func (m *MockUoW) RiderRepository() ports.RiderRepository   { return m.riders }
func (m *MockUoW) RatingRepository() ports.RatingRepository { return m.ratings }
func (m *MockUoW) UserRepository() ports.UserRepository     { return m.users }

func (m *MockUoW) FavoriteRepository() ports.FavoriteRepository { return m.favorites }

// expectTx registers Begin, an optional Commit and the deferred Rollback.
func (m *MockUoW) expectTx(ctx context.Context, commit bool) {
	m.On("Begin", ctx).Return(nil).Once()
	if commit {
		m.On("Commit", ctx).Return(nil).Once()
	}
	m.On("Rollback", ctx).Return(nil).Maybe()
}

func (m *MockUoW) assertAll(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.riders.AssertExpectations(t)
	m.ratings.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.favorites.AssertExpectations(t)
}

type orderUoWFactory struct{ uow *MockUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type riderUoWFactory struct{ uow *MockUoW }

func (f riderUoWFactory) Create() commands.RiderUoW { return f.uow }

type uowFactory struct{ uow *MockUoW }

func (f uowFactory) Create() commands.UoW { return f.uow }

type ratingUoWFactory struct{ uow *MockUoW }

func (f ratingUoWFactory) Create() commands.RatingUoW { return f.uow }

type userUoWFactory struct{ uow *MockUoW }

func (f userUoWFactory) Create() commands.UserUoW { return f.uow }

type favoriteUoWFactory struct{ uow *MockUoW }

func (f favoriteUoWFactory) Create() commands.FavoriteUoW { return f.uow }

type MockOfferBoard struct{ mock.Mock }

func (m *MockOfferBoard) GoOnline(riderID kernel.UUID)  { m.Called(riderID) }
func (m *MockOfferBoard) GoOffline(riderID kernel.UUID) { m.Called(riderID) }
func (m *MockOfferBoard) Withdraw(orderID kernel.UUID)  { m.Called(orderID) }
func (m *MockOfferBoard) Expire() int                   { return m.Called().Int(0) }

func (m *MockOfferBoard) Broadcast(o *order.Order, available []kernel.UUID) int {
	return m.Called(o, available).Int(0)
}

func (m *MockOfferBoard) Decline(riderID, orderID kernel.UUID) error {
	return m.Called(riderID, orderID).Error(0)
}

type MockProofStore struct{ mock.Mock }

func (m *MockProofStore) Save(ctx context.Context, orderID kernel.UUID, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, orderID, contentType, data)
	return args.String(0), args.Error(1)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(u *account.User) (string, error) {
	args := m.Called(u)
	return args.String(0), args.Error(1)
}

type stubCatalog map[string]restaurant.Restaurant

func (c stubCatalog) Get(id string) (restaurant.Restaurant, error) {
	r, ok := c[id]
	if !ok {
		return restaurant.Restaurant{}, errs.NewObjectNotFoundError("restaurant", id)
	}
	return r, nil
}

func (c stubCatalog) List() []restaurant.Restaurant {
	out := make([]restaurant.Restaurant, 0, len(c))
	for _, r := range c {
		out = append(out, r)
	}
	return out
}

func newCatalog(t *testing.T) stubCatalog {
	t.Helper()
	r, err := restaurant.NewRestaurant("himalayan-wok", "Himalayan Wok", "Chinese", "Thamel",
		kernel.MustNewLocation(27.7154, 85.3123), 800)
	require.NoError(t, err)
	return stubCatalog{r.ID(): r}
}

func newPendingOrder(t *testing.T, email string) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("Asha", "9800000001", "", email)
	require.NoError(t, err)
	destination, err := order.NewDestination("Road 1", "Kathmandu", "Thamel", "", nil)
	require.NoError(t, err)
	items, err := order.NewItems(map[string]order.LineItem{"Momo": {UnitPrice: 200, Quantity: 2}})
	require.NoError(t, err)
	payment, err := order.NewPayment(order.CashOnDelivery, items.Subtotal(), 50, 0, "")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "ord123", customer, destination, "himalayan-wok",
		items, payment, order.Schedule{}, now, 0)
	require.NoError(t, err)
	o.PullDomainEvents()
	return o
}

func newConfirmedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newPendingOrder(t, "asha@example.com")
	require.NoError(t, o.Confirm(now))
	return o
}

func newRider(t *testing.T) *rider.Rider {
	t.Helper()
	vehicle, err := rider.ParseVehicle("Bike - BA 1 PA 1")
	require.NoError(t, err)
	r, err := rider.NewRider(kernel.NewUUID(), "Ramesh", "9841000000", vehicle, kernel.MustNewLocation(27.71, 85.32), 4.5)
	require.NoError(t, err)
	return r
}
