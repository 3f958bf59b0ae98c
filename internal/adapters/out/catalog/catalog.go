// Package catalog serves the read-only restaurant list from a YAML document.
// The default list is compiled into the binary; an operator may point the
// service at a different file.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed restaurants.yaml
var defaultRestaurants []byte

type restaurantDoc struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Cuisine     string  `yaml:"cuisine"`
	Area        string  `yaml:"area"`
	Latitude    float64 `yaml:"latitude"`
	Longitude   float64 `yaml:"longitude"`
	PriceForTwo int     `yaml:"priceForTwo"`
}

type catalogDoc struct {
	Restaurants []restaurantDoc `yaml:"restaurants"`
}

// Catalog implements ports.RestaurantCatalog. It is immutable after load.
type Catalog struct {
	ordered []restaurant.Restaurant
	byID    map[string]restaurant.Restaurant
}

// Default returns the compiled-in catalog.
func Default() (*Catalog, error) {
	return Parse(defaultRestaurants)
}

// Load reads the catalog from path; an empty path means Default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open restaurant catalog: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read restaurant catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse restaurant catalog: %w", err)
	}
	if len(doc.Restaurants) == 0 {
		return nil, errs.NewValueIsRequiredError("restaurants")
	}

	c := &Catalog{
		ordered: make([]restaurant.Restaurant, 0, len(doc.Restaurants)),
		byID:    make(map[string]restaurant.Restaurant, len(doc.Restaurants)),
	}

	var problems []error
	for i, d := range doc.Restaurants {
		loc, err := kernel.NewLocation(d.Latitude, d.Longitude)
		if err != nil {
			problems = append(problems, fmt.Errorf("restaurant #%d: %w", i+1, err))
			continue
		}
		r, err := restaurant.NewRestaurant(d.ID, d.Name, d.Cuisine, d.Area, loc, d.PriceForTwo)
		if err != nil {
			problems = append(problems, fmt.Errorf("restaurant #%d: %w", i+1, err))
			continue
		}
		if _, dup := c.byID[r.ID()]; dup {
			problems = append(problems, errs.NewObjectAlreadyExistsError("restaurant", r.ID()))
			continue
		}
		c.byID[r.ID()] = r
		c.ordered = append(c.ordered, r)
	}
	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}

	return c, nil
}

func (c *Catalog) Get(id string) (restaurant.Restaurant, error) {
	r, ok := c.byID[id]
	if !ok {
		return restaurant.Restaurant{}, errs.NewObjectNotFoundError("restaurant", id)
	}
	return r, nil
}

// List returns the restaurants in file order.
func (c *Catalog) List() []restaurant.Restaurant {
	out := make([]restaurant.Restaurant, len(c.ordered))
	copy(out, c.ordered)
	return out
}
