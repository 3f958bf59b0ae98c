package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite runs the repository against a real
// PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(pin *kernel.Location, scheduled bool) *order.Order {
	customer, err := order.NewCustomer("Asha Gurung", "9800000001", "9800000002", "asha@example.com")
	suite.Require().NoError(err)
	destination, err := order.NewDestination("Jyatha Road", "Kathmandu", "Thamel", "ring twice", pin)
	suite.Require().NoError(err)
	items, err := order.NewItems(map[string]order.LineItem{
		"Margherita Pizza": {UnitPrice: 600, Quantity: 2},
		"Coke":             {UnitPrice: 100, Quantity: 1},
	})
	suite.Require().NoError(err)
	payment, err := order.NewPayment(order.Esewa, items.Subtotal(), 50, 10, "proofs/abc.png")
	suite.Require().NoError(err)

	schedule, err := order.NewSchedule(order.ASAP, nil, now)
	suite.Require().NoError(err)
	if scheduled {
		at := now.Add(2 * time.Hour)
		schedule, err = order.NewSchedule(order.Scheduled, &at, now)
		suite.Require().NoError(err)
	}

	o, err := order.NewOrder(kernel.NewUUID(), "ref"+kernel.NewUUID().String()[:8], customer, destination,
		"everest-pizza", items, payment, schedule, now, 0)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsEveryField() {
	ctx := context.Background()
	pin := kernel.MustNewLocation(27.7150, 85.3123)
	original := suite.newOrder(&pin, true)

	suite.Require().NoError(suite.repository.Add(ctx, original))

	got, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(got.ID()))
	suite.Equal(original.Reference(), got.Reference())
	suite.Equal(original.Customer(), got.Customer())
	suite.Equal("Thamel", got.Destination().Area())
	suite.Require().NotNil(got.Destination().Location())
	suite.True(pin.IsEqual(*got.Destination().Location()))
	suite.Equal(original.Items().Lines(), got.Items().Lines())
	suite.Equal(1300, got.Payment().Subtotal())
	suite.Equal(1340, got.Payment().Total())
	suite.Equal("proofs/abc.png", got.Payment().ProofKey())
	suite.Equal(order.Scheduled, got.Schedule().Kind())
	suite.Require().NotNil(got.Schedule().At())
	suite.True(now.Add(2 * time.Hour).Equal(*got.Schedule().At()))
	suite.Equal(order.Pending, got.Status())
	suite.Nil(got.Rider())
	suite.True(now.Equal(got.Timeline().CreatedAt))
	suite.True(now.Add(order.DefaultETA).Equal(got.EstimatedDelivery()))
	suite.Equal(1, got.Version())

	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", original.ID(), original)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(got)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransitionsAndRider() {
	ctx := context.Background()
	o := suite.newOrder(nil, false)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.Confirm(now))
	suite.Require().NoError(suite.repository.Update(ctx, o))
	suite.Equal(2, o.Version())

	riderPin := kernel.MustNewLocation(27.70, 85.31)
	snapshot, err := order.NewAssignedRider(kernel.NewUUID(), "Ramesh", "9841000000", "Bike - BA 1 PA 1", 4.5, &riderPin)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AssignRider(snapshot, now.Add(time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, o))
	suite.Equal(3, o.Version())

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, got.Status())
	suite.Equal(3, got.Version())
	suite.Require().NotNil(got.Rider())
	suite.Equal("Ramesh", got.Rider().Name())
	suite.True(got.Rider().ID().IsEqual(snapshot.ID()))
	suite.Require().NotNil(got.Rider().Location())
	suite.True(riderPin.IsEqual(*got.Rider().Location()))
	suite.Require().NotNil(got.Timeline().ConfirmedAt)
	suite.Require().NotNil(got.Timeline().PreparingAt)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionIsInvalid() {
	ctx := context.Background()
	o := suite.newOrder(nil, false)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	first, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Confirm(now))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Cancel(now))
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
	suite.Equal(1, second.Version())

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, got.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	o := suite.newOrder(nil, false)

	err := suite.repository.Update(context.Background(), o)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllAwaitingRider_OnlyConfirmedWithoutRider() {
	ctx := context.Background()

	pending := suite.newOrder(nil, false)
	confirmed := suite.newOrder(nil, false)
	suite.Require().NoError(confirmed.Confirm(now))
	taken := suite.newOrder(nil, false)
	suite.Require().NoError(taken.Confirm(now))
	snapshot, err := order.NewAssignedRider(kernel.NewUUID(), "Sita", "9841000001", "Scooter", 4.9, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(taken.AssignRider(snapshot, now))

	for _, o := range []*order.Order{pending, confirmed, taken} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	awaiting, err := suite.repository.GetAllAwaitingRider(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(awaiting, 1)
	suite.True(confirmed.ID().IsEqual(awaiting[0].ID()))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
