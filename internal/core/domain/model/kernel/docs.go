// Package kernel contains shared value objects used across the domain model.
//
// The kernel provides:
//   - UUID: validated unique identifiers for entities and aggregates
//   - Destination: a normalized shipping destination (city + pincode)
//
// All kernel types are immutable value objects constructed through factory
// functions. Zero values are invalid and fail Validate(), which protects the
// rest of the domain from partially initialized identifiers and addresses.
package kernel
