package http_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fooddelivery/cmd"
	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// APIIntegrationTestSuite drives the whole service over HTTP against a
// PostgreSQL container: checkout, dispatch through the request board,
// delivery, live tracking and rating.
type APIIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	root      *cmd.CompositionRoot
	server    *httptest.Server
}

func TestAPIIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(APIIntegrationTestSuite))
}

func (suite *APIIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.Require().NoError(postgres.Migrate(db))
	suite.db = db

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	root, err := cmd.NewCompositionRoot(ctx, cmd.Config{
		JWTSecret:   "integration-test-secret-0123456789",
		DeliveryFee: 50,
		OfferWindow: time.Minute,
	}, db, logger)
	suite.Require().NoError(err)
	suite.root = root

	e, err := root.NewRouter(ctx)
	suite.Require().NoError(err)
	suite.server = httptest.NewServer(e)
}

func (suite *APIIntegrationTestSuite) TearDownSuite() {
	if suite.server != nil {
		suite.server.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *APIIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, riders, ratings, users, favorites").Error)
}

func (suite *APIIntegrationTestSuite) do(method, path, token string, body any, out any) int {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, suite.server.URL+httpin.BaseURL+path, reader)
	suite.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := suite.server.Client().Do(req)
	suite.Require().NoError(err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		suite.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (suite *APIIntegrationTestSuite) createRider(name string, lat, lng float64) string {
	var created httpin.Created
	status := suite.do(http.MethodPost, "/riders", "", map[string]any{
		"name": name, "phone": "98" + name, "vehicle": "Bike - BA 12 PA 3456",
		"latitude": lat, "longitude": lng, "rating": 4.8,
	}, &created)
	suite.Require().Equal(http.StatusCreated, status)
	return created.Id.String()
}

func (suite *APIIntegrationTestSuite) placeOrder(email string) httpin.Order {
	var placed httpin.Order
	status := suite.do(http.MethodPost, "/orders", "", map[string]any{
		"customer": map[string]any{"name": "Asha Shrestha", "phone": "9800000000", "email": email},
		"delivery": map[string]any{
			"address": "Thamel Marg 12", "city": "Kathmandu", "area": "Thamel",
			"latitude": 27.7154, "longitude": 85.3123,
		},
		"restaurantId": "himalayan-wok",
		"items": []map[string]any{
			{"name": "Momo", "unitPrice": 200, "quantity": 2},
			{"name": "Chowmein", "unitPrice": 180, "quantity": 1},
		},
		"promoCode": "SAVE10",
		"payment":   map[string]any{"method": "cod"},
	}, &placed)
	suite.Require().Equal(http.StatusCreated, status)
	return placed
}

type sseEvent struct {
	name string
	data string
}

// openStream subscribes to an order's events and returns them on a channel.
func (suite *APIIntegrationTestSuite) openStream(ctx context.Context, orderID string) <-chan sseEvent {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		suite.server.URL+httpin.BaseURL+"/orders/"+orderID+"/events", nil)
	suite.Require().NoError(err)

	resp, err := suite.server.Client().Do(req)
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, resp.StatusCode)
	suite.Require().Equal("text/event-stream", resp.Header.Get("Content-Type"))

	events := make(chan sseEvent, 8)
	go func() {
		defer resp.Body.Close()
		defer close(events)

		var current sseEvent
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			switch {
			case strings.HasPrefix(line, "event: "):
				current.name = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				current.data = strings.TrimPrefix(line, "data: ")
			case line == "" && current.name != "":
				events <- current
				current = sseEvent{}
			}
		}
	}()
	return events
}

func (suite *APIIntegrationTestSuite) nextEvent(events <-chan sseEvent) sseEvent {
	select {
	case e, ok := <-events:
		suite.Require().True(ok, "stream closed")
		return e
	case <-time.After(5 * time.Second):
		suite.FailNow("no event received")
		return sseEvent{}
	}
}

func (suite *APIIntegrationTestSuite) TestOrderLifecycle() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Customer account.
	status := suite.do(http.MethodPost, "/auth/register", "", map[string]any{
		"name": "Asha Shrestha", "email": "asha@example.com", "phone": "9800000000",
		"password": "momo-lover", "confirmPassword": "momo-lover",
	}, nil)
	suite.Require().Equal(http.StatusCreated, status)

	var login httpin.LoginResponse
	status = suite.do(http.MethodPost, "/auth/login", "", map[string]any{
		"login": "ASHA@example.com", "password": "momo-lover",
	}, &login)
	suite.Require().Equal(http.StatusOK, status)
	suite.Require().NotEmpty(login.Token)

	status = suite.do(http.MethodPost, "/auth/login", "", map[string]any{
		"login": "asha@example.com", "password": "wrong-password",
	}, nil)
	suite.Equal(http.StatusUnauthorized, status)

	// Riders.
	ramesh := suite.createRider("Ramesh", 27.7172, 85.3240)
	sita := suite.createRider("Sita", 27.6000, 85.3000)
	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodPost, "/riders/"+ramesh+"/online", "", nil, nil))
	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodPost, "/riders/"+sita+"/online", "", nil, nil))

	// Checkout.
	placed := suite.placeOrder("asha@example.com")
	suite.Equal("pending", placed.Status)
	suite.Equal(620, placed.Payment.Total)
	suite.Equal(10, placed.Payment.Discount)
	suite.Nil(placed.Rider)
	orderID := placed.Id.String()

	events := suite.openStream(ctx, orderID)
	snapshot := suite.nextEvent(events)
	suite.Equal("order", snapshot.name)
	suite.Contains(snapshot.data, placed.Reference)

	// Admin confirms; the stream reports it.
	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodPost, "/orders/"+orderID+"/confirm", "", nil, nil))
	confirmed := suite.nextEvent(events)
	suite.Equal("status", confirmed.name)
	var change httpin.OrderStatusEvent
	suite.Require().NoError(json.Unmarshal([]byte(confirmed.data), &change))
	suite.Equal("confirmed", change.Status)
	suite.Equal(orderID, change.OrderId.String())

	// The broadcast job offers it to both online riders.
	sent, err := suite.root.CreateBroadcastOffersCommandHandler().Handle(ctx)
	suite.Require().NoError(err)
	suite.Equal(2, sent)

	var offers []httpin.DeliveryOffer
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodGet, "/riders/"+ramesh+"/requests", "", nil, &offers))
	suite.Require().Len(offers, 1)
	suite.Equal(orderID, offers[0].OrderId.String())
	suite.Require().NotNil(offers[0].DistanceKm)

	// First accept wins, the second rider is too late.
	suite.Require().Equal(http.StatusNoContent,
		suite.do(http.MethodPost, "/riders/"+ramesh+"/requests/"+orderID+"/accept", "", nil, nil))
	suite.Equal(http.StatusConflict,
		suite.do(http.MethodPost, "/riders/"+sita+"/requests/"+orderID+"/accept", "", nil, nil))
	suite.Require().NoError(json.Unmarshal([]byte(suite.nextEvent(events).data), &change))
	suite.Equal("preparing", change.Status)
	suite.Require().NotNil(change.RiderId)
	suite.Equal(ramesh, change.RiderId.String())

	suite.Require().Equal(http.StatusOK, suite.do(http.MethodGet, "/riders/"+sita+"/requests", "", nil, &offers))
	suite.Empty(offers)

	// Only the assigned rider can move the order on.
	suite.Equal(http.StatusForbidden,
		suite.do(http.MethodPost, "/riders/"+sita+"/orders/"+orderID+"/pickup", "", nil, nil))
	suite.Require().Equal(http.StatusNoContent,
		suite.do(http.MethodPost, "/riders/"+ramesh+"/orders/"+orderID+"/pickup", "", nil, nil))
	suite.Require().Equal(http.StatusNoContent,
		suite.do(http.MethodPost, "/riders/"+ramesh+"/orders/"+orderID+"/deliver", "", nil, nil))

	var delivered httpin.Order
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodGet, "/orders/"+orderID, "", nil, &delivered))
	suite.Equal("delivered", delivered.Status)
	suite.NotNil(delivered.Timeline.DeliveredAt)
	suite.Require().NotNil(delivered.Rider)
	suite.Equal("Ramesh", delivered.Rider.Name)

	// The rider is free again.
	var riders []httpin.Rider
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodGet, "/riders?available=true", "", nil, &riders))
	suite.Len(riders, 2)

	// Customer sees and rates the order once.
	var mine []httpin.OrderSummary
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodGet, "/me/orders", login.Token, nil, &mine))
	suite.Require().Len(mine, 1)
	suite.Equal("delivered", mine[0].Status)

	rating := map[string]any{"stars": 5, "tags": []string{"hot food"}, "comment": "Quick!"}
	suite.Equal(http.StatusCreated, suite.do(http.MethodPost, "/me/orders/"+orderID+"/rating", login.Token, rating, nil))
	suite.Equal(http.StatusConflict, suite.do(http.MethodPost, "/me/orders/"+orderID+"/rating", login.Token, rating, nil))

	var summary httpin.RestaurantRating
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodGet, "/restaurants/himalayan-wok/rating", "", nil, &summary))
	suite.Equal(1, summary.Count)
	suite.InDelta(5.0, summary.Average, 0.001)
}

func (suite *APIIntegrationTestSuite) TestCancelAndRatingRules() {
	placed := suite.placeOrder("bina@example.com")
	orderID := placed.Id.String()

	status := suite.do(http.MethodPost, "/auth/register", "", map[string]any{
		"name": "Bina", "email": "bina@example.com", "phone": "9811111111",
		"password": "secret-pass", "confirmPassword": "secret-pass",
	}, nil)
	suite.Require().Equal(http.StatusCreated, status)

	var login httpin.LoginResponse
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodPost, "/auth/login", "", map[string]any{
		"login": "9811111111", "password": "secret-pass",
	}, &login))

	rating := map[string]any{"stars": 4}
	suite.Equal(http.StatusConflict, suite.do(http.MethodPost, "/me/orders/"+orderID+"/rating", login.Token, rating, nil))

	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodPost, "/orders/"+orderID+"/cancel", "", nil, nil))
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/orders/"+orderID+"/confirm", "", nil, nil))

	var cancelled []httpin.OrderSummary
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodGet, "/orders?status=cancelled", "", nil, &cancelled))
	suite.Require().Len(cancelled, 1)
	suite.Equal(placed.Reference, cancelled[0].Reference)

	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/orders/7d444840-9dc0-11d1-b245-5ffdce74fad2", "", nil, nil))
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/restaurants/nowhere/rating", "", nil, nil))
}

func (suite *APIIntegrationTestSuite) TestRestaurantsAndWalletWithoutStorage() {
	var restaurants []httpin.Restaurant
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodGet, "/restaurants", "", nil, &restaurants))
	suite.Len(restaurants, 6)

	status := suite.do(http.MethodPost, "/orders", "", map[string]any{
		"customer":     map[string]any{"name": "Asha", "phone": "9800000000"},
		"delivery":     map[string]any{"address": "Thamel", "city": "Kathmandu", "area": "Thamel"},
		"restaurantId": "everest-pizza",
		"items":        []map[string]any{{"name": "Margherita Pizza", "unitPrice": 600, "quantity": 1}},
		"payment": map[string]any{
			"method": "esewa", "proof": []byte{0x89, 'P', 'N', 'G'}, "proofContentType": "image/png",
		},
	}, nil)
	suite.Equal(http.StatusBadRequest, status)
}

func (suite *APIIntegrationTestSuite) TestAdminAssignsNearestRider() {
	far := suite.createRider("Far", 27.6000, 85.2000)
	near := suite.createRider("Near", 27.7150, 85.3120)
	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodPost, "/riders/"+far+"/online", "", nil, nil))
	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodPost, "/riders/"+near+"/online", "", nil, nil))

	first := suite.placeOrder("asha@example.com")
	firstID := first.Id.String()
	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodPost, "/orders/"+firstID+"/confirm", "", nil, nil))
	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodPost, "/orders/"+firstID+"/assign", "", nil, nil))

	var assigned httpin.Order
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodGet, "/orders/"+firstID, "", nil, &assigned))
	suite.Equal("preparing", assigned.Status)
	suite.Require().NotNil(assigned.Rider)
	suite.Equal(near, assigned.Rider.Id.String())

	// A busy rider cannot be named explicitly.
	second := suite.placeOrder("asha@example.com")
	secondID := second.Id.String()
	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodPost, "/orders/"+secondID+"/confirm", "", nil, nil))
	suite.Equal(http.StatusConflict, suite.do(http.MethodPost, "/orders/"+secondID+"/assign", "",
		map[string]any{"riderId": near}, nil))
	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodPost, "/orders/"+secondID+"/assign", "",
		map[string]any{"riderId": far}, nil))

	third := suite.placeOrder("asha@example.com")
	thirdID := third.Id.String()
	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodPost, "/orders/"+thirdID+"/confirm", "", nil, nil))
	suite.Equal(http.StatusNotFound, suite.do(http.MethodPost, "/orders/"+thirdID+"/assign", "", nil, nil))
}

func (suite *APIIntegrationTestSuite) TestFavorites() {
	suite.Require().Equal(http.StatusCreated, suite.do(http.MethodPost, "/auth/register", "", map[string]any{
		"name": "Asha", "email": "asha@example.com", "phone": "9800000000",
		"password": "momo-lover", "confirmPassword": "momo-lover",
	}, nil))
	var login httpin.LoginResponse
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodPost, "/auth/login", "", map[string]any{
		"login": "asha@example.com", "password": "momo-lover",
	}, &login))

	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodPut, "/me/favorites/himalayan-wok", login.Token, nil, nil))
	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodPut, "/me/favorites/himalayan-wok", login.Token, nil, nil))
	suite.Equal(http.StatusNotFound, suite.do(http.MethodPut, "/me/favorites/nowhere", login.Token, nil, nil))

	var favorites []httpin.Favorite
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodGet, "/me/favorites", login.Token, nil, &favorites))
	suite.Require().Len(favorites, 1)
	suite.Equal("himalayan-wok", favorites[0].RestaurantId)
	suite.NotEmpty(favorites[0].Name)

	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/me/favorites/himalayan-wok", login.Token, nil, nil))
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/me/favorites/himalayan-wok", login.Token, nil, nil))
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodGet, "/me/favorites", login.Token, nil, &favorites))
	suite.Empty(favorites)
}

func (suite *APIIntegrationTestSuite) TestDashboardStats() {
	ramesh := suite.createRider("Ramesh", 27.7150, 85.3120)

	var admin httpin.AdminStats
	placed := suite.placeOrder("asha@example.com")
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodGet, "/admin/stats", "", nil, &admin))
	suite.Equal(httpin.AdminStats{TotalOrders: 1, PendingOrders: 1, ActiveRiders: 1, Revenue: 620}, admin)

	orderID := placed.Id.String()
	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodPost, "/orders/"+orderID+"/confirm", "", nil, nil))
	suite.Require().Equal(http.StatusNoContent, suite.do(http.MethodPost, "/orders/"+orderID+"/assign", "",
		map[string]any{"riderId": ramesh}, nil))
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodGet, "/admin/stats", "", nil, &admin))
	suite.Equal(0, admin.PendingOrders)
	suite.Equal(0, admin.ActiveRiders)

	suite.Require().Equal(http.StatusNoContent,
		suite.do(http.MethodPost, "/riders/"+ramesh+"/orders/"+orderID+"/pickup", "", nil, nil))
	suite.Require().Equal(http.StatusNoContent,
		suite.do(http.MethodPost, "/riders/"+ramesh+"/orders/"+orderID+"/deliver", "", nil, nil))

	var stats httpin.RiderStats
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodGet, "/riders/"+ramesh+"/stats", "", nil, &stats))
	suite.Equal(ramesh, stats.RiderId.String())
	suite.Equal(time.Now().UTC().Format("2006-01-02"), stats.Day)
	suite.Equal(1, stats.Deliveries)
	suite.Equal(50, stats.Earnings)
	suite.Equal(1, stats.TotalDeliveries)
	suite.GreaterOrEqual(stats.DistanceKm, 0.0)

	suite.Require().Equal(http.StatusOK, suite.do(http.MethodGet, "/riders/"+ramesh+"/stats?day=2001-01-01", "", nil, &stats))
	suite.Equal(0, stats.Deliveries)
	suite.Equal(0, stats.Earnings)

	suite.Equal(http.StatusNotFound,
		suite.do(http.MethodGet, "/riders/7d444840-9dc0-11d1-b245-5ffdce74fad2/stats", "", nil, nil))
}
