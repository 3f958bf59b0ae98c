// Package riderrepo persists the rider aggregate.
package riderrepo

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO is one row of the riders table.
type RiderDTO struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name            string      `gorm:"type:varchar(255);not null"`
	Phone           string      `gorm:"type:varchar(32);not null"`
	Vehicle         VehicleDTO  `gorm:"embedded;embeddedPrefix:vehicle_"`
	Status          string      `gorm:"type:varchar(16);not null;index"`
	Location        LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Rating          float64     `gorm:"not null"`
	TotalDeliveries int         `gorm:"not null;default:0"`
	CurrentOrderID  *uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	Version         int         `gorm:"not null;default:1"`
}

func (RiderDTO) TableName() string {
	return "riders"
}

type VehicleDTO struct {
	Kind  string `gorm:"type:varchar(64);not null"`
	Plate string `gorm:"type:varchar(64)"`
}

type LocationDTO struct {
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
}

func fromDomain(r *rider.Rider) RiderDTO {
	var currentOrderID *uuid.UUID
	if id := r.CurrentOrderID(); id != nil {
		raw := id.Bytes()
		currentOrderID = &raw
	}

	return RiderDTO{
		ID:    r.ID().Bytes(),
		Name:  r.Name(),
		Phone: r.Phone(),
		Vehicle: VehicleDTO{
			Kind:  r.Vehicle().Kind(),
			Plate: r.Vehicle().Plate(),
		},
		Status: r.Status().String(),
		Location: LocationDTO{
			Latitude:  r.Location().Latitude(),
			Longitude: r.Location().Longitude(),
		},
		Rating:          r.Rating(),
		TotalDeliveries: r.TotalDeliveries(),
		CurrentOrderID:  currentOrderID,
		Version:         r.Version(),
	}
}

func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicle, err := rider.NewVehicle(dto.Vehicle.Kind, dto.Vehicle.Plate)
	if err != nil {
		return nil, err
	}

	status, err := rider.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	var currentOrderID *kernel.UUID
	if dto.CurrentOrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		currentOrderID = &oID
	}

	return rider.RestoreRider(rider.RestoreParams{
		ID:              id,
		Name:            dto.Name,
		Phone:           dto.Phone,
		Vehicle:         vehicle,
		Status:          status,
		Location:        loc,
		Rating:          dto.Rating,
		TotalDeliveries: dto.TotalDeliveries,
		CurrentOrderID:  currentOrderID,
		Version:         dto.Version,
	})
}
