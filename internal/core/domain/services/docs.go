// Package services holds domain logic that spans more than one aggregate:
//   - OrderDispatcher attaches a rider to an order and ranks riders by distance
//   - Pricing turns a cart and promo code into a payment breakdown
//   - SummarizeRatings aggregates restaurant ratings for display
//   - RequestBoard keeps the per-rider list of pending delivery offers
package services
