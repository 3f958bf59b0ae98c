// Package kernel holds the value objects shared by every aggregate of the
// food delivery domain:
//   - UUID: identifiers of orders, riders, ratings and accounts
//   - Location: a WGS84 latitude/longitude pair with haversine distance
//
// Both are immutable and must be created through their constructors; the
// zero value fails Validate.
package kernel
