package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	postgres_adapter "fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rider"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	mu     sync.Mutex
	events []order.StatusChanged
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, events ...order.StatusChanged) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return p.err
}

func (p *recordingPublisher) Events() []order.StatusChanged {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]order.StatusChanged(nil), p.events...)
}

// UnitOfWorkIntegrationTestSuite exercises transactions spanning several
// repositories against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *recordingPublisher
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, riders, ratings, users, favorites").Error)
	suite.publisher = &recordingPublisher{}
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher, nil)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newConfirmedOrder() *order.Order {
	customer, err := order.NewCustomer("Asha", "9800000001", "", "asha@example.com")
	suite.Require().NoError(err)
	destination, err := order.NewDestination("Road 1", "Kathmandu", "Thamel", "", nil)
	suite.Require().NoError(err)
	items, err := order.NewItems(map[string]order.LineItem{"Momo": {UnitPrice: 200, Quantity: 2}})
	suite.Require().NoError(err)
	payment, err := order.NewPayment(order.CashOnDelivery, items.Subtotal(), 50, 0, "")
	suite.Require().NoError(err)
	schedule, err := order.NewSchedule(order.ASAP, nil, now)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), "ref"+kernel.NewUUID().String()[:8], customer, destination,
		"himalayan-wok", items, payment, schedule, now, 0)
	suite.Require().NoError(err)
	suite.Require().NoError(o.Confirm(now))
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) newRider() *rider.Rider {
	vehicle, err := rider.NewVehicle("Bike", "BA 1 PA 1")
	suite.Require().NoError(err)
	r, err := rider.NewRider(kernel.NewUUID(), "Ramesh", "9841000000", vehicle, kernel.MustNewLocation(27.71, 85.32), 4.5)
	suite.Require().NoError(err)
	return r
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PublishesOrderEvents() {
	ctx := context.Background()
	o := suite.newConfirmedOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Empty(suite.publisher.Events(), "nothing is published before commit")
	suite.Require().NoError(uow.Commit(ctx))

	events := suite.publisher.Events()
	suite.Require().Len(events, 2)
	suite.Equal(order.Pending, events[0].Status)
	suite.Equal(order.Confirmed, events[1].Status)
	suite.Equal(o.Reference(), events[1].Reference)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWritesAndEvents() {
	ctx := context.Background()
	o := suite.newConfirmedOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Empty(suite.publisher.Events())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAssignment_SpansOrderAndRider() {
	ctx := context.Background()
	o := suite.newConfirmedOrder()
	r := suite.newRider()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, o))
	suite.Require().NoError(setup.RiderRepository().Add(ctx, r))
	suite.Require().NoError(setup.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loadedOrder, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	loadedRider, err := uow.RiderRepository().Get(ctx, r.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(services.NewOrderDispatcher().Assign(loadedOrder, loadedRider, now))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loadedOrder))
	suite.Require().NoError(uow.RiderRepository().Update(ctx, loadedRider))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	gotOrder, err := reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, gotOrder.Status())
	gotRider, err := reader.RiderRepository().Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(rider.Busy, gotRider.Status())

	last := suite.publisher.Events()[len(suite.publisher.Events())-1]
	suite.Equal(order.Preparing, last.Status)
	suite.Require().NotNil(last.RiderID)
	suite.True(r.ID().IsEqual(*last.RiderID))
	suite.Equal(2, last.Version)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPartialFailure_RollsBackOrder() {
	ctx := context.Background()
	o := suite.newConfirmedOrder()
	r := suite.newRider()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, o))
	suite.Require().NoError(setup.RiderRepository().Add(ctx, r))
	suite.Require().NoError(setup.Commit(ctx))

	// A competing writer bumps the rider's version first.
	competitor := suite.factory.Create()
	busyRider, err := competitor.RiderRepository().Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(busyRider.MoveTo(kernel.MustNewLocation(27.70, 85.30)))
	suite.Require().NoError(competitor.RiderRepository().Update(ctx, busyRider))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loadedOrder, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(services.NewOrderDispatcher().Assign(loadedOrder, r, now))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loadedOrder))
	err = uow.RiderRepository().Update(ctx, r)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
	suite.Require().NoError(uow.Rollback(ctx))

	gotOrder, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, gotOrder.Status())
	suite.Nil(gotOrder.Rider())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPublishFailure_DoesNotFailCommit() {
	ctx := context.Background()
	suite.publisher.err = errors.New("broker down")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newConfirmedOrder()))
	suite.Require().NoError(uow.Commit(ctx))
}

type sharedUoWFactory func() commands.UoW

func (f sharedUoWFactory) Create() commands.UoW { return f() }

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentAccept_ExactlyOneRiderWins() {
	ctx := context.Background()
	board := services.NewRequestBoard(time.Minute, func() time.Time { return now })
	handler := commands.NewAcceptOrderCommandHandler(
		sharedUoWFactory(func() commands.UoW { return suite.factory.Create() }),
		board,
		func() time.Time { return now },
	)

	for round := 0; round < 10; round++ {
		o := suite.newConfirmedOrder()
		riders := []*rider.Rider{suite.newRider(), suite.newRider()}

		setup := suite.factory.Create()
		suite.Require().NoError(setup.Begin(ctx))
		suite.Require().NoError(setup.OrderRepository().Add(ctx, o))
		for _, r := range riders {
			suite.Require().NoError(setup.RiderRepository().Add(ctx, r))
		}
		suite.Require().NoError(setup.Commit(ctx))

		start := make(chan struct{})
		results := make([]error, len(riders))
		var wg sync.WaitGroup
		for i, r := range riders {
			cmd, err := commands.NewAcceptOrderCommand(r.ID(), o.ID())
			suite.Require().NoError(err)
			wg.Add(1)
			go func(i int, cmd commands.AcceptOrderCommand) {
				defer wg.Done()
				<-start
				results[i] = handler.Handle(ctx, cmd)
			}(i, cmd)
		}
		close(start)
		wg.Wait()

		winner := -1
		for i, err := range results {
			if err == nil {
				suite.Require().Equal(-1, winner, "round %d: both accepts succeeded", round)
				winner = i
				continue
			}
			suite.True(errors.Is(err, errs.ErrVersionIsInvalid) || errors.Is(err, errs.ErrValueIsInvalid),
				"round %d: unexpected error %v", round, err)
		}
		suite.Require().NotEqual(-1, winner, "round %d: no accept succeeded: %v", round, results)

		reader := suite.factory.Create()
		gotOrder, err := reader.OrderRepository().Get(ctx, o.ID())
		suite.Require().NoError(err)
		suite.Equal(order.Preparing, gotOrder.Status())
		suite.Require().NotNil(gotOrder.Rider())
		suite.True(gotOrder.IsAssignedTo(riders[winner].ID()))

		loser, err := reader.RiderRepository().Get(ctx, riders[1-winner].ID())
		suite.Require().NoError(err)
		suite.Equal(rider.Available, loser.Status())
	}
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
