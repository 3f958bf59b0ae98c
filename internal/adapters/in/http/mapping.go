package http

import (
	"fooddelivery/internal/adapters/out/auth"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func toLocation(l kernel.Location) Location {
	return Location{Latitude: l.Latitude(), Longitude: l.Longitude()}
}

func toLocationPtr(l *kernel.Location) *Location {
	if l == nil {
		return nil
	}
	loc := toLocation(*l)
	return &loc
}

func toOrder(o queries.GetOrderQueryResponse) Order {
	items := make([]OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItem{Name: it.Name, UnitPrice: it.UnitPrice, Quantity: it.Quantity, Total: it.Total}
	}

	response := Order{
		Id:           o.ID.Bytes(),
		Reference:    o.Reference,
		Status:       o.Status,
		RestaurantId: o.RestaurantID,
		Customer: Customer{
			Name:     o.Customer.Name,
			Phone:    o.Customer.Phone,
			AltPhone: o.Customer.AltPhone,
			Email:    o.Customer.Email,
		},
		Delivery: Delivery{
			Address:      o.Destination.Address,
			City:         o.Destination.City,
			Area:         o.Destination.Area,
			Instructions: o.Destination.Instructions,
			Location:     toLocationPtr(o.Destination.Location),
			Type:         o.DeliveryType,
			ScheduledAt:  o.ScheduledAt,
		},
		Items: items,
		Payment: Payment{
			Method:      o.Payment.Method,
			Subtotal:    o.Payment.Subtotal,
			DeliveryFee: o.Payment.DeliveryFee,
			Discount:    o.Payment.Discount,
			Total:       o.Payment.Total,
			ProofKey:    o.Payment.ProofKey,
		},
		Timeline: Timeline{
			CreatedAt:        o.Timeline.CreatedAt,
			ConfirmedAt:      o.Timeline.ConfirmedAt,
			PreparingAt:      o.Timeline.PreparingAt,
			OutForDeliveryAt: o.Timeline.OutForDeliveryAt,
			DeliveredAt:      o.Timeline.DeliveredAt,
			CancelledAt:      o.Timeline.CancelledAt,
		},
		EstimatedDelivery: o.EstimatedDelivery,
		Version:           o.Version,
	}

	if o.Rider != nil {
		response.Rider = &AssignedRider{
			Id:       o.Rider.ID.Bytes(),
			Name:     o.Rider.Name,
			Phone:    o.Rider.Phone,
			Vehicle:  o.Rider.Vehicle,
			Rating:   o.Rider.Rating,
			Location: toLocationPtr(o.Rider.Location),
		}
	}
	return response
}

// sessionFrom reads the claims echo-jwt stored for a /me request.
func sessionFrom(ctx echo.Context) (*auth.SessionClaims, bool) {
	token, ok := ctx.Get("user").(*jwt.Token)
	if !ok || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(*auth.SessionClaims)
	return claims, ok
}
