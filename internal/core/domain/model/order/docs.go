// Package order contains the Order aggregate root and its value objects.
//
// An order is placed by a customer at checkout and then moves through a fixed
// lifecycle:
//
//	pending ──> confirmed ──> preparing ──> out_for_delivery ──> delivered
//	   │            │
//	   └────────────┴──> cancelled
//
// Confirmation and cancellation are admin actions; the move to preparing
// happens when a rider accepts the order (or an admin assigns one), and the
// rest is driven by the rider. Every transition is validated by Status and
// recorded as a StatusChanged event that persistence adapters publish after
// commit.
//
// The payment breakdown is fixed at construction and its total always equals
// subtotal + delivery fee - discount.
package order
