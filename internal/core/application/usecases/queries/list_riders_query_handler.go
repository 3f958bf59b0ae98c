package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rider"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListRidersQueryHandler lists the whole fleet for the admin console.
type ListRidersQueryHandler struct {
	db *gorm.DB
}

// NewListRidersQueryHandler creates a handler for fleet listings.
// Requires a GORM database connection for query execution.
func NewListRidersQueryHandler(db *gorm.DB) ListRidersQueryHandler {
	return ListRidersQueryHandler{db: db}
}

// Handle returns riders sorted by name.
func (h ListRidersQueryHandler) Handle(ctx context.Context, query ListRidersQuery) ([]ListRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			vehicle_kind,
			vehicle_plate,
			status,
			location_latitude,
			location_longitude,
			rating,
			total_deliveries,
			current_order_id
		FROM riders
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	riders := make([]ListRidersQueryResponse, 0)
	for rows.Next() {
		var r ListRidersQueryResponse
		var id uuid.UUID
		var currentOrderID *uuid.UUID
		var kind, plate string
		var lat, lng float64

		err = rows.Scan(
			&id,
			&r.Name,
			&r.Phone,
			&kind,
			&plate,
			&r.Status,
			&lat,
			&lng,
			&r.Rating,
			&r.TotalDeliveries,
			&currentOrderID,
		)
		if err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		r.ID = riderID

		if currentOrderID != nil {
			orderID, orderErr := kernel.UUIDFromBytes(currentOrderID[:])
			if orderErr != nil {
				return nil, orderErr
			}
			r.CurrentOrderID = &orderID
		}

		location, locErr := kernel.NewLocation(lat, lng)
		if locErr != nil {
			return nil, locErr
		}
		r.Location = location
		vehicle, vehicleErr := rider.NewVehicle(kind, plate)
		if vehicleErr != nil {
			return nil, vehicleErr
		}
		r.Vehicle = vehicle.String()
		riders = append(riders, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
