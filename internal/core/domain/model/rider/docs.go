// Package rider contains the Rider aggregate root.
//
// A rider is available until they take an order, busy while they hold it, and
// available again once it is delivered. The currently held order is tracked on
// the rider so that a second order can never be attached to a busy rider.
package rider
