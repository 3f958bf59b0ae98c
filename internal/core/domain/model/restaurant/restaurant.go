// Package restaurant describes the read-only restaurant catalog entries that
// orders and ratings refer to.
package restaurant

import (
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

type Restaurant struct {
	id          string
	name        string
	cuisine     string
	area        string
	location    kernel.Location
	priceForTwo int
}

func NewRestaurant(id, name, cuisine, area string, location kernel.Location, priceForTwo int) (Restaurant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Restaurant{}, errs.NewValueIsRequiredError("restaurant id")
	}
	if strings.TrimSpace(name) == "" {
		return Restaurant{}, errs.NewValueIsRequiredError("restaurant name")
	}
	if err := location.Validate(); err != nil {
		return Restaurant{}, err
	}
	return Restaurant{
		id:          id,
		name:        strings.TrimSpace(name),
		cuisine:     cuisine,
		area:        area,
		location:    location,
		priceForTwo: priceForTwo,
	}, nil
}

func (r Restaurant) ID() string { return r.id }
func (r Restaurant) Name() string { return r.name }
func (r Restaurant) Cuisine() string { return r.cuisine }
func (r Restaurant) Area() string { return r.area }
func (r Restaurant) Location() kernel.Location { return r.location }
func (r Restaurant) PriceForTwo() int { return r.priceForTwo }
