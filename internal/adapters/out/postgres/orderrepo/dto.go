// Package orderrepo persists the order aggregate. Value objects are flattened
// into prefixed columns, line items are stored as a JSON document and the
// assigned rider snapshot lives in nullable rider_* columns.
package orderrepo

import (
	"sort"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is one row of the orders table.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Reference    string         `gorm:"type:varchar(32);not null;uniqueIndex"`
	Customer     CustomerDTO    `gorm:"embedded;embeddedPrefix:customer_"`
	Destination  DestinationDTO `gorm:"embedded;embeddedPrefix:destination_"`
	RestaurantID string         `gorm:"type:varchar(64);not null;index"`
	Items        []LineItemDTO  `gorm:"type:jsonb;serializer:json;not null"`
	Payment      PaymentDTO     `gorm:"embedded;embeddedPrefix:payment_"`
	ScheduleKind string         `gorm:"type:varchar(16);not null"`
	ScheduledAt  *time.Time
	Status       string         `gorm:"type:varchar(32);not null;index"`
	Rider        RiderDTO       `gorm:"embedded;embeddedPrefix:rider_"`
	Timeline     TimelineDTO    `gorm:"embedded"`
	EstimatedAt  time.Time      `gorm:"column:estimated_delivery;not null"`
	Version      int            `gorm:"not null;default:1"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type CustomerDTO struct {
	Name     string `gorm:"type:varchar(255);not null"`
	Phone    string `gorm:"type:varchar(32);not null"`
	AltPhone string `gorm:"type:varchar(32)"`
	Email    string `gorm:"type:varchar(255);index"`
}

type DestinationDTO struct {
	Address      string `gorm:"type:varchar(255);not null"`
	City         string `gorm:"type:varchar(128);not null"`
	Area         string `gorm:"type:varchar(128);not null"`
	Instructions string `gorm:"type:text"`
	Latitude     *float64
	Longitude    *float64
}

type LineItemDTO struct {
	Name      string `json:"name"`
	UnitPrice int    `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

type PaymentDTO struct {
	Method      string `gorm:"type:varchar(16);not null"`
	Subtotal    int    `gorm:"not null"`
	DeliveryFee int    `gorm:"not null"`
	Discount    int    `gorm:"not null"`
	Total       int    `gorm:"not null"`
	ProofKey    string `gorm:"type:varchar(512)"`
}

// RiderDTO is the assigned rider snapshot; all columns are NULL until a rider
// accepts the order.
type RiderDTO struct {
	ID        *uuid.UUID `gorm:"type:uuid;index"`
	Name      *string    `gorm:"type:varchar(255)"`
	Phone     *string    `gorm:"type:varchar(32)"`
	Vehicle   *string    `gorm:"type:varchar(128)"`
	Rating    *float64
	Latitude  *float64
	Longitude *float64
}

type TimelineDTO struct {
	CreatedAt        time.Time `gorm:"not null;index"`
	ConfirmedAt      *time.Time
	PreparingAt      *time.Time
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
}

func fromDomain(o *order.Order) OrderDTO {
	customer := o.Customer()
	destination := o.Destination()
	payment := o.Payment()
	timeline := o.Timeline()

	dto := OrderDTO{
		ID:        o.ID().Bytes(),
		Reference: o.Reference(),
		Customer: CustomerDTO{
			Name:     customer.Name(),
			Phone:    customer.Phone(),
			AltPhone: customer.AltPhone(),
			Email:    customer.Email(),
		},
		Destination: DestinationDTO{
			Address:      destination.Address(),
			City:         destination.City(),
			Area:         destination.Area(),
			Instructions: destination.Instructions(),
		},
		RestaurantID: o.RestaurantID(),
		Items:        itemsFromDomain(o.Items()),
		Payment: PaymentDTO{
			Method:      string(payment.Method()),
			Subtotal:    payment.Subtotal(),
			DeliveryFee: payment.DeliveryFee(),
			Discount:    payment.Discount(),
			Total:       payment.Total(),
			ProofKey:    payment.ProofKey(),
		},
		ScheduleKind: scheduleKind(o.Schedule()),
		ScheduledAt:  o.Schedule().At(),
		Status:       o.Status().String(),
		Timeline: TimelineDTO{
			CreatedAt:        timeline.CreatedAt,
			ConfirmedAt:      timeline.ConfirmedAt,
			PreparingAt:      timeline.PreparingAt,
			OutForDeliveryAt: timeline.OutForDeliveryAt,
			DeliveredAt:      timeline.DeliveredAt,
			CancelledAt:      timeline.CancelledAt,
		},
		EstimatedAt: o.EstimatedDelivery(),
		Version:     o.Version(),
	}

	if pin := destination.Location(); pin != nil {
		lat, lng := pin.Latitude(), pin.Longitude()
		dto.Destination.Latitude = &lat
		dto.Destination.Longitude = &lng
	}

	if r := o.Rider(); r != nil {
		id := r.ID().Bytes()
		name, phone, vehicle, rating := r.Name(), r.Phone(), r.Vehicle(), r.Rating()
		dto.Rider = RiderDTO{ID: &id, Name: &name, Phone: &phone, Vehicle: &vehicle, Rating: &rating}
		if loc := r.Location(); loc != nil {
			lat, lng := loc.Latitude(), loc.Longitude()
			dto.Rider.Latitude = &lat
			dto.Rider.Longitude = &lng
		}
	}

	return dto
}

func itemsFromDomain(items order.Items) []LineItemDTO {
	lines := items.Lines()
	out := make([]LineItemDTO, 0, len(lines))
	for name, line := range lines {
		out = append(out, LineItemDTO{Name: name, UnitPrice: line.UnitPrice, Quantity: line.Quantity})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.Customer.Name, dto.Customer.Phone, dto.Customer.AltPhone, dto.Customer.Email)
	if err != nil {
		return nil, err
	}

	pin, err := optionalLocation(dto.Destination.Latitude, dto.Destination.Longitude)
	if err != nil {
		return nil, err
	}
	destination, err := order.NewDestination(
		dto.Destination.Address, dto.Destination.City, dto.Destination.Area, dto.Destination.Instructions, pin,
	)
	if err != nil {
		return nil, err
	}

	lines := make(map[string]order.LineItem, len(dto.Items))
	for _, item := range dto.Items {
		lines[item.Name] = order.LineItem{UnitPrice: item.UnitPrice, Quantity: item.Quantity}
	}
	items, err := order.NewItems(lines)
	if err != nil {
		return nil, err
	}

	payment, err := order.RestorePayment(
		order.PaymentMethod(dto.Payment.Method),
		dto.Payment.Subtotal,
		dto.Payment.DeliveryFee,
		dto.Payment.Discount,
		dto.Payment.Total,
		dto.Payment.ProofKey,
	)
	if err != nil {
		return nil, err
	}

	schedule, err := order.RestoreSchedule(order.ScheduleKind(dto.ScheduleKind), utcPtr(dto.ScheduledAt))
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	rider, err := riderToDomain(dto.Rider)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:           id,
		Reference:    dto.Reference,
		Customer:     customer,
		Destination:  destination,
		RestaurantID: dto.RestaurantID,
		Items:        items,
		Payment:      payment,
		Schedule:     schedule,
		Status:       status,
		Rider:        rider,
		Timeline: order.Timeline{
			CreatedAt:        dto.Timeline.CreatedAt.UTC(),
			ConfirmedAt:      utcPtr(dto.Timeline.ConfirmedAt),
			PreparingAt:      utcPtr(dto.Timeline.PreparingAt),
			OutForDeliveryAt: utcPtr(dto.Timeline.OutForDeliveryAt),
			DeliveredAt:      utcPtr(dto.Timeline.DeliveredAt),
			CancelledAt:      utcPtr(dto.Timeline.CancelledAt),
		},
		EstimatedDelivery: dto.EstimatedAt.UTC(),
		Version:           dto.Version,
	})
}

func riderToDomain(dto RiderDTO) (*order.AssignedRider, error) {
	if dto.ID == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*dto.ID)[:])
	if err != nil {
		return nil, err
	}

	loc, err := optionalLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	r, err := order.NewAssignedRider(id, deref(dto.Name), deref(dto.Phone), deref(dto.Vehicle), derefFloat(dto.Rating), loc)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func optionalLocation(lat, lng *float64) (*kernel.Location, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}
	loc, err := kernel.NewLocation(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func scheduleKind(s order.Schedule) string {
	if s.Kind() == "" {
		return string(order.ASAP)
	}
	return string(s.Kind())
}
