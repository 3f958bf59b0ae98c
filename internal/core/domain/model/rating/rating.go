// Package rating holds customer feedback left after a delivered order.
// Ratings are append-only: there is no update or delete.
package rating

import (
	"errors"
	"sort"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

const (
	MinStars = 1
	MaxStars = 5

	MaxCommentLength = 1000
)

var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating or RestoreRating")

type Rating struct {
	id           kernel.UUID
	userID       string
	restaurantID string
	orderID      kernel.UUID
	stars        int
	tags         []string
	comment      string
	createdAt    time.Time

	isConstructed bool
}

// NewRating builds a rating. userID is the customer's email. Tags are
// deduplicated case-insensitively and sorted.
func NewRating(
	id kernel.UUID,
	userID string,
	restaurantID string,
	orderID kernel.UUID,
	stars int,
	tags []string,
	comment string,
	createdAt time.Time,
) (*Rating, error) {
	userID = strings.ToLower(strings.TrimSpace(userID))
	restaurantID = strings.TrimSpace(restaurantID)
	comment = strings.TrimSpace(comment)

	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := orderID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if userID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("user"))
	}
	if restaurantID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("restaurant"))
	}
	if stars < MinStars || stars > MaxStars {
		problems = append(problems, errs.NewValueIsOutOfRangeError("stars", stars, MinStars, MaxStars))
	}
	if len(comment) > MaxCommentLength {
		problems = append(problems, errs.NewValueIsOutOfRangeError("comment length", len(comment), 0, MaxCommentLength))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Rating{
		id:            id,
		userID:        userID,
		restaurantID:  restaurantID,
		orderID:       orderID,
		stars:         stars,
		tags:          normalizeTags(tags),
		comment:       comment,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreRating is NewRating for rows read back from storage.
func RestoreRating(
	id kernel.UUID,
	userID, restaurantID string,
	orderID kernel.UUID,
	stars int,
	tags []string,
	comment string,
	createdAt time.Time,
) (*Rating, error) {
	return NewRating(id, userID, restaurantID, orderID, stars, tags, comment, createdAt)
}

func (r *Rating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRatingIsNotConstructed
	}
	return nil
}

func (r *Rating) ID() kernel.UUID { return r.id }
func (r *Rating) UserID() string { return r.userID }
func (r *Rating) RestaurantID() string { return r.restaurantID }
func (r *Rating) OrderID() kernel.UUID { return r.orderID }
func (r *Rating) Stars() int { return r.stars }
func (r *Rating) Comment() string { return r.comment }
func (r *Rating) CreatedAt() time.Time { return r.createdAt }

func (r *Rating) Tags() []string {
	return append([]string(nil), r.tags...)
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		key := strings.ToLower(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
