package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Request and response bodies of the API described in openapi.yaml.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Created struct {
	Id openapi_types.UUID `json:"id"`
}

type Location struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

type RegisterRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	Password        string `json:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type Restaurant struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	Cuisine     string   `json:"cuisine"`
	Area        string   `json:"area"`
	Location    Location `json:"location"`
	PriceForTwo int      `json:"priceForTwo"`
	Rating      float64  `json:"rating"`
	RatingCount int      `json:"ratingCount"`
}

type RestaurantRating struct {
	RestaurantId string  `json:"restaurantId"`
	Count        int     `json:"count"`
	Average      float64 `json:"average"`
}

type Favorite struct {
	RestaurantId string    `json:"restaurantId"`
	Name         string    `json:"name"`
	Cuisine      string    `json:"cuisine"`
	Area         string    `json:"area"`
	AddedAt      time.Time `json:"addedAt"`
}

type AdminStats struct {
	TotalOrders   int `json:"totalOrders"`
	PendingOrders int `json:"pendingOrders"`
	ActiveRiders  int `json:"activeRiders"`
	Revenue       int `json:"revenue"`
}

type RiderStats struct {
	RiderId         openapi_types.UUID `json:"riderId"`
	Day             string             `json:"day"`
	Deliveries      int                `json:"deliveries"`
	Earnings        int                `json:"earnings"`
	DistanceKm      float64            `json:"distanceKm"`
	PendingRequests int                `json:"pendingRequests"`
	TotalDeliveries int                `json:"totalDeliveries"`
}

type LineItem struct {
	Name      string `json:"name" validate:"required"`
	UnitPrice int    `json:"unitPrice" validate:"gt=0"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

type QuoteRequest struct {
	Items     []LineItem `json:"items" validate:"required,min=1,dive"`
	PromoCode string     `json:"promoCode"`
}

type Quote struct {
	Subtotal    int    `json:"subtotal"`
	DeliveryFee int    `json:"deliveryFee"`
	Discount    int    `json:"discount"`
	Total       int    `json:"total"`
	PromoCode   string `json:"promoCode,omitempty"`
}

type CustomerRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	AltPhone string `json:"altPhone"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type DeliveryRequest struct {
	Address      string     `json:"address" validate:"required"`
	City         string     `json:"city" validate:"required"`
	Area         string     `json:"area" validate:"required"`
	Instructions string     `json:"instructions"`
	Latitude     *float64   `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64   `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Type         string     `json:"type" validate:"omitempty,oneof=asap scheduled"`
	ScheduledAt  *time.Time `json:"scheduledAt"`
}

type PaymentRequest struct {
	Method           string `json:"method" validate:"required,oneof=cod esewa fonepay"`
	Proof            []byte `json:"proof"`
	ProofContentType string `json:"proofContentType"`
}

type PlaceOrderRequest struct {
	Customer     CustomerRequest `json:"customer"`
	Delivery     DeliveryRequest `json:"delivery"`
	RestaurantId string          `json:"restaurantId" validate:"required"`
	Items        []LineItem      `json:"items" validate:"required,min=1,dive"`
	PromoCode    string          `json:"promoCode"`
	Payment      PaymentRequest  `json:"payment"`
}

type Customer struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	AltPhone string `json:"altPhone,omitempty"`
	Email    string `json:"email,omitempty"`
}

type Delivery struct {
	Address      string     `json:"address"`
	City         string     `json:"city"`
	Area         string     `json:"area"`
	Instructions string     `json:"instructions,omitempty"`
	Location     *Location  `json:"location,omitempty"`
	Type         string     `json:"type"`
	ScheduledAt  *time.Time `json:"scheduledAt,omitempty"`
}

type OrderItem struct {
	Name      string `json:"name"`
	UnitPrice int    `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Total     int    `json:"total"`
}

type Payment struct {
	Method      string `json:"method"`
	Subtotal    int    `json:"subtotal"`
	DeliveryFee int    `json:"deliveryFee"`
	Discount    int    `json:"discount"`
	Total       int    `json:"total"`
	ProofKey    string `json:"proofKey,omitempty"`
}

type AssignedRider struct {
	Id       openapi_types.UUID `json:"id"`
	Name     string             `json:"name"`
	Phone    string             `json:"phone"`
	Vehicle  string             `json:"vehicle"`
	Rating   float64            `json:"rating"`
	Location *Location          `json:"location,omitempty"`
}

type Timeline struct {
	CreatedAt        time.Time  `json:"createdAt"`
	ConfirmedAt      *time.Time `json:"confirmedAt,omitempty"`
	PreparingAt      *time.Time `json:"preparingAt,omitempty"`
	OutForDeliveryAt *time.Time `json:"outForDeliveryAt,omitempty"`
	DeliveredAt      *time.Time `json:"deliveredAt,omitempty"`
	CancelledAt      *time.Time `json:"cancelledAt,omitempty"`
}

type Order struct {
	Id                openapi_types.UUID `json:"id"`
	Reference         string             `json:"reference"`
	Status            string             `json:"status"`
	RestaurantId      string             `json:"restaurantId"`
	Customer          Customer           `json:"customer"`
	Delivery          Delivery           `json:"delivery"`
	Items             []OrderItem        `json:"items"`
	Payment           Payment            `json:"payment"`
	Rider             *AssignedRider     `json:"rider"`
	Timeline          Timeline           `json:"timeline"`
	EstimatedDelivery time.Time          `json:"estimatedDelivery"`
	Version           int                `json:"version"`
}

type OrderSummary struct {
	Id            openapi_types.UUID `json:"id"`
	Reference     string             `json:"reference"`
	Status        string             `json:"status"`
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail,omitempty"`
	Area          string             `json:"area"`
	RestaurantId  string             `json:"restaurantId"`
	Total         int                `json:"total"`
	PaymentMethod string             `json:"paymentMethod"`
	RiderName     *string            `json:"riderName"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}

// ListRidersParams defines parameters for ListRiders.
type ListRidersParams struct {
	Available *bool    `form:"available,omitempty" json:"available,omitempty"`
	Lat       *float64 `form:"lat,omitempty" json:"lat,omitempty"`
	Lng       *float64 `form:"lng,omitempty" json:"lng,omitempty"`
}

// GetRiderStatsParams defines parameters for GetRiderStats.
type GetRiderStatsParams struct {
	Day *string `form:"day,omitempty" json:"day,omitempty"`
}

type AssignRiderRequest struct {
	RiderId *openapi_types.UUID `json:"riderId,omitempty"`
}

type CreateRiderRequest struct {
	Name      string  `json:"name" validate:"required"`
	Phone     string  `json:"phone" validate:"required"`
	Vehicle   string  `json:"vehicle" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Rating    float64 `json:"rating" validate:"gte=0,lte=5"`
}

type Rider struct {
	Id              openapi_types.UUID  `json:"id"`
	Name            string              `json:"name"`
	Phone           string              `json:"phone"`
	Vehicle         string              `json:"vehicle"`
	Status          string              `json:"status,omitempty"`
	Location        Location            `json:"location"`
	Rating          float64             `json:"rating"`
	TotalDeliveries *int                `json:"totalDeliveries,omitempty"`
	CurrentOrderId  *openapi_types.UUID `json:"currentOrderId,omitempty"`
	DistanceKm      *float64            `json:"distanceKm,omitempty"`
}

type DeliveryOffer struct {
	OrderId      openapi_types.UUID `json:"orderId"`
	Reference    string             `json:"reference"`
	RestaurantId string             `json:"restaurantId"`
	Address      string             `json:"address"`
	Area         string             `json:"area"`
	Destination  *Location          `json:"destination,omitempty"`
	ItemCount    int                `json:"itemCount"`
	Total        int                `json:"total"`
	DistanceKm   *float64           `json:"distanceKm"`
	OfferedAt    time.Time          `json:"offeredAt"`
	ExpiresAt    time.Time          `json:"expiresAt"`
}

type RatingRequest struct {
	Stars   int      `json:"stars" validate:"gte=1,lte=5"`
	Tags    []string `json:"tags"`
	Comment string   `json:"comment"`
}

// OrderStatusEvent is the payload of a "status" server-sent event.
type OrderStatusEvent struct {
	OrderId    openapi_types.UUID  `json:"orderId"`
	Reference  string              `json:"reference"`
	Status     string              `json:"status"`
	RiderId    *openapi_types.UUID `json:"riderId,omitempty"`
	Version    int                 `json:"version"`
	OccurredAt time.Time           `json:"occurredAt"`
}
