package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists one method per operationId in openapi.yaml.
type ServerInterface interface {
	RegisterUser(ctx echo.Context) error
	LoginUser(ctx echo.Context) error

	ListRestaurants(ctx echo.Context) error
	GetRestaurantRating(ctx echo.Context, restaurantId string) error

	GetAdminStats(ctx echo.Context) error

	QuoteOrder(ctx echo.Context) error
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	PlaceOrder(ctx echo.Context) error
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error
	StreamOrderEvents(ctx echo.Context, orderId openapi_types.UUID) error
	ConfirmOrder(ctx echo.Context, orderId openapi_types.UUID) error
	CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error
	AssignRider(ctx echo.Context, orderId openapi_types.UUID) error

	ListRiders(ctx echo.Context, params ListRidersParams) error
	CreateRider(ctx echo.Context) error
	SetRiderOnline(ctx echo.Context, riderId openapi_types.UUID) error
	SetRiderOffline(ctx echo.Context, riderId openapi_types.UUID) error
	UpdateRiderLocation(ctx echo.Context, riderId openapi_types.UUID) error
	ListRiderRequests(ctx echo.Context, riderId openapi_types.UUID) error
	GetRiderStats(ctx echo.Context, riderId openapi_types.UUID, params GetRiderStatsParams) error
	AcceptOrder(ctx echo.Context, riderId openapi_types.UUID, orderId openapi_types.UUID) error
	DeclineOrder(ctx echo.Context, riderId openapi_types.UUID, orderId openapi_types.UUID) error
	StartDelivery(ctx echo.Context, riderId openapi_types.UUID, orderId openapi_types.UUID) error
	CompleteDelivery(ctx echo.Context, riderId openapi_types.UUID, orderId openapi_types.UUID) error

	ListMyOrders(ctx echo.Context) error
	RateMyOrder(ctx echo.Context, orderId openapi_types.UUID) error
	ListMyFavorites(ctx echo.Context) error
	AddMyFavorite(ctx echo.Context, restaurantId string) error
	RemoveMyFavorite(ctx echo.Context, restaurantId string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func (w *ServerInterfaceWrapper) RegisterUser(ctx echo.Context) error {
	return w.Handler.RegisterUser(ctx)
}

func (w *ServerInterfaceWrapper) LoginUser(ctx echo.Context) error {
	return w.Handler.LoginUser(ctx)
}

func (w *ServerInterfaceWrapper) ListRestaurants(ctx echo.Context) error {
	return w.Handler.ListRestaurants(ctx)
}

func bindPathRestaurantID(ctx echo.Context) (string, error) {
	var restaurantId string
	err := runtime.BindStyledParameterWithOptions("simple", "restaurantId", ctx.Param("restaurantId"), &restaurantId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter restaurantId: %s", err))
	}
	return restaurantId, nil
}

func (w *ServerInterfaceWrapper) GetRestaurantRating(ctx echo.Context) error {
	restaurantId, err := bindPathRestaurantID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetRestaurantRating(ctx, restaurantId)
}

func (w *ServerInterfaceWrapper) GetAdminStats(ctx echo.Context) error {
	return w.Handler.GetAdminStats(ctx)
}

func (w *ServerInterfaceWrapper) QuoteOrder(ctx echo.Context) error {
	return w.Handler.QuoteOrder(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) StreamOrderEvents(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.StreamOrderEvents(ctx, orderId)
}

func (w *ServerInterfaceWrapper) ConfirmOrder(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ConfirmOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) AssignRider(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.AssignRider(ctx, orderId)
}

func (w *ServerInterfaceWrapper) ListRiders(ctx echo.Context) error {
	var params ListRidersParams
	if err := runtime.BindQueryParameter("form", true, false, "available", ctx.QueryParams(), &params.Available); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter available: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "lat", ctx.QueryParams(), &params.Lat); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lat: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "lng", ctx.QueryParams(), &params.Lng); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lng: %s", err))
	}
	return w.Handler.ListRiders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateRider(ctx echo.Context) error {
	return w.Handler.CreateRider(ctx)
}

func (w *ServerInterfaceWrapper) SetRiderOnline(ctx echo.Context) error {
	riderId, err := bindPathUUID(ctx, "riderId")
	if err != nil {
		return err
	}
	return w.Handler.SetRiderOnline(ctx, riderId)
}

func (w *ServerInterfaceWrapper) SetRiderOffline(ctx echo.Context) error {
	riderId, err := bindPathUUID(ctx, "riderId")
	if err != nil {
		return err
	}
	return w.Handler.SetRiderOffline(ctx, riderId)
}

func (w *ServerInterfaceWrapper) UpdateRiderLocation(ctx echo.Context) error {
	riderId, err := bindPathUUID(ctx, "riderId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateRiderLocation(ctx, riderId)
}

func (w *ServerInterfaceWrapper) ListRiderRequests(ctx echo.Context) error {
	riderId, err := bindPathUUID(ctx, "riderId")
	if err != nil {
		return err
	}
	return w.Handler.ListRiderRequests(ctx, riderId)
}

func (w *ServerInterfaceWrapper) GetRiderStats(ctx echo.Context) error {
	riderId, err := bindPathUUID(ctx, "riderId")
	if err != nil {
		return err
	}
	var params GetRiderStatsParams
	if err := runtime.BindQueryParameter("form", true, false, "day", ctx.QueryParams(), &params.Day); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter day: %s", err))
	}
	return w.Handler.GetRiderStats(ctx, riderId, params)
}

func (w *ServerInterfaceWrapper) riderAndOrder(ctx echo.Context) (openapi_types.UUID, openapi_types.UUID, error) {
	riderId, err := bindPathUUID(ctx, "riderId")
	if err != nil {
		return riderId, openapi_types.UUID{}, err
	}
	orderId, err := bindPathUUID(ctx, "orderId")
	return riderId, orderId, err
}

func (w *ServerInterfaceWrapper) AcceptOrder(ctx echo.Context) error {
	riderId, orderId, err := w.riderAndOrder(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AcceptOrder(ctx, riderId, orderId)
}

func (w *ServerInterfaceWrapper) DeclineOrder(ctx echo.Context) error {
	riderId, orderId, err := w.riderAndOrder(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeclineOrder(ctx, riderId, orderId)
}

func (w *ServerInterfaceWrapper) StartDelivery(ctx echo.Context) error {
	riderId, orderId, err := w.riderAndOrder(ctx)
	if err != nil {
		return err
	}
	return w.Handler.StartDelivery(ctx, riderId, orderId)
}

func (w *ServerInterfaceWrapper) CompleteDelivery(ctx echo.Context) error {
	riderId, orderId, err := w.riderAndOrder(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CompleteDelivery(ctx, riderId, orderId)
}

func (w *ServerInterfaceWrapper) ListMyOrders(ctx echo.Context) error {
	return w.Handler.ListMyOrders(ctx)
}

func (w *ServerInterfaceWrapper) RateMyOrder(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.RateMyOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) ListMyFavorites(ctx echo.Context) error {
	return w.Handler.ListMyFavorites(ctx)
}

func (w *ServerInterfaceWrapper) AddMyFavorite(ctx echo.Context) error {
	restaurantId, err := bindPathRestaurantID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AddMyFavorite(ctx, restaurantId)
}

func (w *ServerInterfaceWrapper) RemoveMyFavorite(ctx echo.Context) error {
	restaurantId, err := bindPathRestaurantID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RemoveMyFavorite(ctx, restaurantId)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL mounts every operation under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/auth/register", w.RegisterUser)
	router.POST(baseURL+"/auth/login", w.LoginUser)

	router.GET(baseURL+"/restaurants", w.ListRestaurants)
	router.GET(baseURL+"/restaurants/:restaurantId/rating", w.GetRestaurantRating)

	router.GET(baseURL+"/admin/stats", w.GetAdminStats)

	router.POST(baseURL+"/orders/quote", w.QuoteOrder)
	router.GET(baseURL+"/orders", w.ListOrders)
	router.POST(baseURL+"/orders", w.PlaceOrder)
	router.GET(baseURL+"/orders/:orderId", w.GetOrder)
	router.GET(baseURL+"/orders/:orderId/events", w.StreamOrderEvents)
	router.POST(baseURL+"/orders/:orderId/confirm", w.ConfirmOrder)
	router.POST(baseURL+"/orders/:orderId/cancel", w.CancelOrder)
	router.POST(baseURL+"/orders/:orderId/assign", w.AssignRider)

	router.GET(baseURL+"/riders", w.ListRiders)
	router.POST(baseURL+"/riders", w.CreateRider)
	router.POST(baseURL+"/riders/:riderId/online", w.SetRiderOnline)
	router.POST(baseURL+"/riders/:riderId/offline", w.SetRiderOffline)
	router.PUT(baseURL+"/riders/:riderId/location", w.UpdateRiderLocation)
	router.GET(baseURL+"/riders/:riderId/requests", w.ListRiderRequests)
	router.GET(baseURL+"/riders/:riderId/stats", w.GetRiderStats)
	router.POST(baseURL+"/riders/:riderId/requests/:orderId/accept", w.AcceptOrder)
	router.POST(baseURL+"/riders/:riderId/requests/:orderId/decline", w.DeclineOrder)
	router.POST(baseURL+"/riders/:riderId/orders/:orderId/pickup", w.StartDelivery)
	router.POST(baseURL+"/riders/:riderId/orders/:orderId/deliver", w.CompleteDelivery)

	router.GET(baseURL+"/me/orders", w.ListMyOrders)
	router.POST(baseURL+"/me/orders/:orderId/rating", w.RateMyOrder)
	router.GET(baseURL+"/me/favorites", w.ListMyFavorites)
	router.PUT(baseURL+"/me/favorites/:restaurantId", w.AddMyFavorite)
	router.DELETE(baseURL+"/me/favorites/:restaurantId", w.RemoveMyFavorite)
}
