package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// OrderEventSubscriber feeds the live tracking stream.
type OrderEventSubscriber interface {
	Subscribe(orderID kernel.UUID) (<-chan order.StatusChanged, func())
}

// Handlers groups the use cases the API exposes.
type Handlers struct {
	PlaceOrder          commands.PlaceOrderCommandHandler
	ConfirmOrder        commands.ConfirmOrderCommandHandler
	CancelOrder         commands.CancelOrderCommandHandler
	AssignRider         commands.AssignRiderCommandHandler
	AcceptOrder         commands.AcceptOrderCommandHandler
	DeclineOrder        commands.DeclineOrderCommandHandler
	StartDelivery       commands.StartDeliveryCommandHandler
	CompleteDelivery    commands.CompleteDeliveryCommandHandler
	CreateRider         commands.CreateRiderCommandHandler
	SetRiderOnline      commands.SetRiderOnlineCommandHandler
	UpdateRiderLocation commands.UpdateRiderLocationCommandHandler
	SubmitRating        commands.SubmitRatingCommandHandler
	RegisterUser        commands.RegisterUserCommandHandler
	LoginUser           commands.LoginUserCommandHandler
	AddFavorite         commands.AddFavoriteCommandHandler
	RemoveFavorite      commands.RemoveFavoriteCommandHandler

	GetOrder            queries.GetOrderQueryHandler
	ListOrders          queries.ListOrdersQueryHandler
	QuoteOrder          queries.QuoteOrderQueryHandler
	ListRiders          queries.ListRidersQueryHandler
	ListAvailableRiders queries.ListAvailableRidersQueryHandler
	ListRiderRequests   queries.ListRiderRequestsQueryHandler
	ListRestaurants     queries.ListRestaurantsQueryHandler
	GetRestaurantRating queries.GetRestaurantRatingQueryHandler
	ListFavorites       queries.ListFavoritesQueryHandler
	GetAdminStats       queries.GetAdminStatsQueryHandler
	GetRiderStats       queries.GetRiderStatsQueryHandler
}

// Server implements ServerInterface. It translates HTTP requests into
// commands and queries and their results back into JSON.
type Server struct {
	h         Handlers
	events    OrderEventSubscriber
	heartbeat time.Duration
	logger    *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

func NewServer(h Handlers, events OrderEventSubscriber, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		h:         h,
		events:    events,
		heartbeat: 15 * time.Second,
		logger:    logger.With("component", "http"),
	}
}

func toKernelID(id openapi_types.UUID) kernel.UUID {
	// A parsed openapi UUID is always 16 bytes, so this cannot fail.
	kid, _ := kernel.UUIDFromBytes(id[:])
	return kid
}

func (s *Server) bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	if err := ctx.Validate(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}

func lineItems(items []LineItem) (map[string]order.LineItem, error) {
	lines := make(map[string]order.LineItem, len(items))
	for _, it := range items {
		if _, dup := lines[it.Name]; dup {
			return nil, errs.NewObjectAlreadyExistsError("item", it.Name)
		}
		lines[it.Name] = order.LineItem{UnitPrice: it.UnitPrice, Quantity: it.Quantity}
	}
	return lines, nil
}

// RegisterUser handles POST /api/v1/auth/register.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req RegisterRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), req.Name, req.Email, req.Phone,
		req.Password, req.ConfirmPassword)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.RegisterUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.failed(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: cmd.UserID().Bytes()})
}

// LoginUser handles POST /api/v1/auth/login.
func (s *Server) LoginUser(ctx echo.Context) error {
	var req LoginRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewLoginUserCommand(req.Login, req.Password)
	if err != nil {
		return badRequest(ctx, err)
	}
	token, err := s.h.LoginUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.failed(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

// ListRestaurants handles GET /api/v1/restaurants.
func (s *Server) ListRestaurants(ctx echo.Context) error {
	list, err := s.h.ListRestaurants.Handle(ctx.Request().Context(), queries.NewListRestaurantsQuery())
	if err != nil {
		return s.failed(ctx, err)
	}

	response := make([]Restaurant, len(list))
	for i, r := range list {
		response[i] = Restaurant{
			Id:          r.ID,
			Name:        r.Name,
			Cuisine:     r.Cuisine,
			Area:        r.Area,
			Location:    toLocation(r.Location),
			PriceForTwo: r.PriceForTwo,
			Rating:      r.Rating,
			RatingCount: r.RatingCount,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetRestaurantRating handles GET /api/v1/restaurants/{restaurantId}/rating.
func (s *Server) GetRestaurantRating(ctx echo.Context, restaurantId string) error {
	query, err := queries.NewGetRestaurantRatingQuery(restaurantId)
	if err != nil {
		return badRequest(ctx, err)
	}
	summary, err := s.h.GetRestaurantRating.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.failed(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RestaurantRating{
		RestaurantId: summary.RestaurantID,
		Count:        summary.Count,
		Average:      summary.Average,
	})
}

// GetAdminStats handles GET /api/v1/admin/stats.
func (s *Server) GetAdminStats(ctx echo.Context) error {
	stats, err := s.h.GetAdminStats.Handle(ctx.Request().Context(), queries.NewGetAdminStatsQuery())
	if err != nil {
		return s.failed(ctx, err)
	}
	return ctx.JSON(http.StatusOK, AdminStats{
		TotalOrders:   stats.TotalOrders,
		PendingOrders: stats.PendingOrders,
		ActiveRiders:  stats.ActiveRiders,
		Revenue:       stats.Revenue,
	})
}

// QuoteOrder handles POST /api/v1/orders/quote.
func (s *Server) QuoteOrder(ctx echo.Context) error {
	var req QuoteRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	lines, err := lineItems(req.Items)
	if err != nil {
		return badRequest(ctx, err)
	}
	query, err := queries.NewQuoteOrderQuery(lines, req.PromoCode)
	if err != nil {
		return badRequest(ctx, err)
	}
	quote, err := s.h.QuoteOrder.Handle(query)
	if err != nil {
		return s.failed(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Quote{
		Subtotal:    quote.Subtotal,
		DeliveryFee: quote.DeliveryFee,
		Discount:    quote.Discount,
		Total:       quote.Total,
		PromoCode:   quote.PromoCode,
	})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	status := ""
	if params.Status != nil {
		status = *params.Status
	}
	query, err := queries.NewListOrdersQuery(status, "")
	if err != nil {
		return badRequest(ctx, err)
	}
	return s.listOrders(ctx, query)
}

func (s *Server) listOrders(ctx echo.Context, query queries.ListOrdersQuery) error {
	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.failed(ctx, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			Id:            o.ID.Bytes(),
			Reference:     o.Reference,
			Status:        o.Status,
			CustomerName:  o.CustomerName,
			CustomerEmail: o.CustomerEmail,
			Area:          o.Area,
			RestaurantId:  o.RestaurantID,
			Total:         o.Total,
			PaymentMethod: o.PaymentMethod,
			RiderName:     o.RiderName,
			CreatedAt:     o.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders and returns the stored order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	lines, err := lineItems(req.Items)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(commands.PlaceOrderParams{
		OrderID:          kernel.NewUUID(),
		CustomerName:     req.Customer.Name,
		CustomerPhone:    req.Customer.Phone,
		AltPhone:         req.Customer.AltPhone,
		Email:            req.Customer.Email,
		Address:          req.Delivery.Address,
		City:             req.Delivery.City,
		Area:             req.Delivery.Area,
		Instructions:     req.Delivery.Instructions,
		Latitude:         req.Delivery.Latitude,
		Longitude:        req.Delivery.Longitude,
		RestaurantID:     req.RestaurantId,
		Items:            lines,
		PromoCode:        req.PromoCode,
		PaymentMethod:    req.Payment.Method,
		Proof:            req.Payment.Proof,
		ProofContentType: req.Payment.ProofContentType,
		DeliveryType:     req.Delivery.Type,
		ScheduledAt:      req.Delivery.ScheduledAt,
	})
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.failed(ctx, err)
	}

	return s.writeOrder(ctx, http.StatusCreated, cmd.OrderID())
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.writeOrder(ctx, http.StatusOK, toKernelID(orderId))
}

func (s *Server) loadOrder(ctx echo.Context, id kernel.UUID) (Order, error) {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return Order{}, err
	}
	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return Order{}, err
	}
	return toOrder(o), nil
}

func (s *Server) writeOrder(ctx echo.Context, status int, id kernel.UUID) error {
	o, err := s.loadOrder(ctx, id)
	if err != nil {
		return s.failed(ctx, err)
	}
	return ctx.JSON(status, o)
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	cmd, err := commands.NewConfirmOrderCommand(toKernelID(orderId))
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.ConfirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.failed(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	cmd, err := commands.NewCancelOrderCommand(toKernelID(orderId))
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.failed(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AssignRider handles POST /api/v1/orders/{orderId}/assign. An empty body
// picks the nearest available rider.
func (s *Server) AssignRider(ctx echo.Context, orderId openapi_types.UUID) error {
	var req AssignRiderRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignNearestRiderCommand(toKernelID(orderId))
	if req.RiderId != nil {
		cmd, err = commands.NewAssignRiderCommand(toKernelID(*req.RiderId), toKernelID(orderId))
	}
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.AssignRider.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.claimFailed(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListRiders handles GET /api/v1/riders. With available=true it lists free
// riders only, nearest first when lat and lng are given.
func (s *Server) ListRiders(ctx echo.Context, params ListRidersParams) error {
	if params.Available != nil && *params.Available {
		return s.listAvailableRiders(ctx, params)
	}

	riders, err := s.h.ListRiders.Handle(ctx.Request().Context(), queries.NewListRidersQuery())
	if err != nil {
		return s.failed(ctx, err)
	}

	response := make([]Rider, len(riders))
	for i, r := range riders {
		total := r.TotalDeliveries
		response[i] = Rider{
			Id:              r.ID.Bytes(),
			Name:            r.Name,
			Phone:           r.Phone,
			Vehicle:         r.Vehicle,
			Status:          r.Status,
			Location:        toLocation(r.Location),
			Rating:          r.Rating,
			TotalDeliveries: &total,
		}
		if r.CurrentOrderID != nil {
			id := openapi_types.UUID(r.CurrentOrderID.Bytes())
			response[i].CurrentOrderId = &id
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) listAvailableRiders(ctx echo.Context, params ListRidersParams) error {
	query, err := queries.NewListAvailableRidersQuery(params.Lat, params.Lng)
	if err != nil {
		return badRequest(ctx, err)
	}
	riders, err := s.h.ListAvailableRiders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.failed(ctx, err)
	}

	response := make([]Rider, len(riders))
	for i, r := range riders {
		response[i] = Rider{
			Id:         r.ID.Bytes(),
			Name:       r.Name,
			Phone:      r.Phone,
			Vehicle:    r.Vehicle,
			Status:     "available",
			Location:   toLocation(r.Location),
			Rating:     r.Rating,
			DistanceKm: r.DistanceKm,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateRider handles POST /api/v1/riders.
func (s *Server) CreateRider(ctx echo.Context) error {
	var req CreateRiderRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateRiderCommand(id, req.Name, req.Phone, req.Vehicle,
		req.Latitude, req.Longitude, req.Rating)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.CreateRider.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.failed(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: id.Bytes()})
}

func (s *Server) setOnline(ctx echo.Context, riderId openapi_types.UUID, online bool) error {
	cmd, err := commands.NewSetRiderOnlineCommand(toKernelID(riderId), online)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.SetRiderOnline.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.failed(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetRiderOnline handles POST /api/v1/riders/{riderId}/online.
func (s *Server) SetRiderOnline(ctx echo.Context, riderId openapi_types.UUID) error {
	return s.setOnline(ctx, riderId, true)
}

// SetRiderOffline handles POST /api/v1/riders/{riderId}/offline.
func (s *Server) SetRiderOffline(ctx echo.Context, riderId openapi_types.UUID) error {
	return s.setOnline(ctx, riderId, false)
}

// UpdateRiderLocation handles PUT /api/v1/riders/{riderId}/location.
func (s *Server) UpdateRiderLocation(ctx echo.Context, riderId openapi_types.UUID) error {
	var req Location
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateRiderLocationCommand(toKernelID(riderId), req.Latitude, req.Longitude)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.UpdateRiderLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.failed(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListRiderRequests handles GET /api/v1/riders/{riderId}/requests.
func (s *Server) ListRiderRequests(ctx echo.Context, riderId openapi_types.UUID) error {
	query, err := queries.NewListRiderRequestsQuery(toKernelID(riderId))
	if err != nil {
		return badRequest(ctx, err)
	}
	offers, err := s.h.ListRiderRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.failed(ctx, err)
	}

	response := make([]DeliveryOffer, len(offers))
	for i, o := range offers {
		response[i] = DeliveryOffer{
			OrderId:      o.OrderID.Bytes(),
			Reference:    o.Reference,
			RestaurantId: o.RestaurantID,
			Address:      o.Address,
			Area:         o.Area,
			Destination:  toLocationPtr(o.Destination),
			ItemCount:    o.ItemCount,
			Total:        o.Total,
			DistanceKm:   o.DistanceKm,
			OfferedAt:    o.OfferedAt,
			ExpiresAt:    o.ExpiresAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetRiderStats handles GET /api/v1/riders/{riderId}/stats.
func (s *Server) GetRiderStats(ctx echo.Context, riderId openapi_types.UUID, params GetRiderStatsParams) error {
	day := ""
	if params.Day != nil {
		day = *params.Day
	}
	query, err := queries.NewGetRiderStatsQuery(toKernelID(riderId), day)
	if err != nil {
		return badRequest(ctx, err)
	}
	stats, err := s.h.GetRiderStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.failed(ctx, err)
	}
	return ctx.JSON(http.StatusOK, RiderStats{
		RiderId:         stats.RiderID.Bytes(),
		Day:             stats.Day,
		Deliveries:      stats.Deliveries,
		Earnings:        stats.Earnings,
		DistanceKm:      stats.DistanceKm,
		PendingRequests: stats.PendingRequests,
		TotalDeliveries: stats.TotalDeliveries,
	})
}

// AcceptOrder handles POST /api/v1/riders/{riderId}/requests/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, riderId openapi_types.UUID, orderId openapi_types.UUID) error {
	cmd, err := commands.NewAcceptOrderCommand(toKernelID(riderId), toKernelID(orderId))
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.claimFailed(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeclineOrder handles POST /api/v1/riders/{riderId}/requests/{orderId}/decline.
func (s *Server) DeclineOrder(ctx echo.Context, riderId openapi_types.UUID, orderId openapi_types.UUID) error {
	cmd, err := commands.NewDeclineOrderCommand(toKernelID(riderId), toKernelID(orderId))
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.DeclineOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.failed(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// StartDelivery handles POST /api/v1/riders/{riderId}/orders/{orderId}/pickup.
func (s *Server) StartDelivery(ctx echo.Context, riderId openapi_types.UUID, orderId openapi_types.UUID) error {
	cmd, err := commands.NewStartDeliveryCommand(toKernelID(riderId), toKernelID(orderId))
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.StartDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.failed(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/riders/{riderId}/orders/{orderId}/deliver.
func (s *Server) CompleteDelivery(ctx echo.Context, riderId openapi_types.UUID, orderId openapi_types.UUID) error {
	cmd, err := commands.NewCompleteDeliveryCommand(toKernelID(riderId), toKernelID(orderId))
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.CompleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.failed(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListMyOrders handles GET /api/v1/me/orders.
func (s *Server) ListMyOrders(ctx echo.Context) error {
	session, ok := sessionFrom(ctx)
	if !ok {
		return errorJSON(ctx, http.StatusUnauthorized, "missing session")
	}
	query, err := queries.NewListOrdersQuery("", session.Email)
	if err != nil {
		return badRequest(ctx, err)
	}
	return s.listOrders(ctx, query)
}

// RateMyOrder handles POST /api/v1/me/orders/{orderId}/rating.
func (s *Server) RateMyOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	session, ok := sessionFrom(ctx)
	if !ok {
		return errorJSON(ctx, http.StatusUnauthorized, "missing session")
	}

	var req RatingRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewSubmitRatingCommand(id, session.Email, toKernelID(orderId), req.Stars, req.Tags, req.Comment)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.SubmitRating.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrOrderIsNotDelivered) {
			return errorJSON(ctx, http.StatusConflict, err.Error())
		}
		return s.failed(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: id.Bytes()})
}

// ListMyFavorites handles GET /api/v1/me/favorites.
func (s *Server) ListMyFavorites(ctx echo.Context) error {
	session, ok := sessionFrom(ctx)
	if !ok {
		return errorJSON(ctx, http.StatusUnauthorized, "missing session")
	}
	query, err := queries.NewListFavoritesQuery(session.Email)
	if err != nil {
		return badRequest(ctx, err)
	}
	list, err := s.h.ListFavorites.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.failed(ctx, err)
	}

	response := make([]Favorite, len(list))
	for i, f := range list {
		response[i] = Favorite{
			RestaurantId: f.RestaurantID,
			Name:         f.Name,
			Cuisine:      f.Cuisine,
			Area:         f.Area,
			AddedAt:      f.AddedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddMyFavorite handles PUT /api/v1/me/favorites/{restaurantId}. Adding a
// restaurant twice is not an error.
func (s *Server) AddMyFavorite(ctx echo.Context, restaurantId string) error {
	session, ok := sessionFrom(ctx)
	if !ok {
		return errorJSON(ctx, http.StatusUnauthorized, "missing session")
	}
	cmd, err := commands.NewAddFavoriteCommand(session.Email, restaurantId)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.AddFavorite.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.failed(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveMyFavorite handles DELETE /api/v1/me/favorites/{restaurantId}.
func (s *Server) RemoveMyFavorite(ctx echo.Context, restaurantId string) error {
	session, ok := sessionFrom(ctx)
	if !ok {
		return errorJSON(ctx, http.StatusUnauthorized, "missing session")
	}
	cmd, err := commands.NewRemoveFavoriteCommand(session.Email, restaurantId)
	if err != nil {
		return badRequest(ctx, err)
	}
	if err = s.h.RemoveFavorite.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.failed(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
