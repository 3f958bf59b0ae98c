package kernel

import (
	"errors"
	"fmt"
	"math"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	// EarthRadiusKm is the mean earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("Location must be created via NewLocation")

// Location is a point on the earth surface in decimal degrees. It is used for
// restaurants, delivery addresses and rider positions.
type Location struct {
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation validates both coordinates and returns every violation joined.
func NewLocation(latitude, longitude float64) (Location, error) {
	var problems []error
	if math.IsNaN(latitude) || latitude < MinLatitude || latitude > MaxLatitude {
		problems = append(problems, errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude))
	}
	if math.IsNaN(longitude) || longitude < MinLongitude || longitude > MaxLongitude {
		problems = append(problems, errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude))
	}
	if len(problems) > 0 {
		return Location{}, errors.Join(problems...)
	}

	return Location{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// MustNewLocation panics on invalid coordinates. Only for literals known at
// compile time (seed data, tests).
func MustNewLocation(latitude, longitude float64) Location {
	loc, err := NewLocation(latitude, longitude)
	if err != nil {
		panic(err)
	}
	return loc
}

func (l Location) Latitude() float64 {
	return l.latitude
}

func (l Location) Longitude() float64 {
	return l.longitude
}

func (l Location) IsEqual(other Location) bool {
	return l.latitude == other.latitude && l.longitude == other.longitude
}

func (l Location) String() string {
	return fmt.Sprintf("(%.5f, %.5f)", l.latitude, l.longitude)
}

// DistanceTo returns the great-circle distance to other in kilometres.
// It is symmetric and zero for the same point.
func (l Location) DistanceTo(other Location) float64 {
	lat1 := degreesToRadians(l.latitude)
	lat2 := degreesToRadians(other.latitude)
	dLat := lat2 - lat1
	dLng := degreesToRadians(other.longitude - l.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
