// Package order provides the finalized side of a delivery request.
//
// The package includes:
//   - Order: an immutable snapshot of a completed booking draft
//   - Status: the display status of an order (pending, in-transit, delivered)
//   - FormatRelativeAge and FormatFullDate: the history view's time presentation
//
// Key business rules:
//   - Orders can only be created from a draft that passes every booking step
//   - New orders start in Pending and are never changed by this service
//   - Status transitions belong to the dispatcher's systems, not to this one
package order
