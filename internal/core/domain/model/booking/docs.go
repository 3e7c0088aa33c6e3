// Package booking provides the in-progress side of a delivery request: the
// draft a customer fills in and the four-step wizard that gates it.
//
// The package includes:
//   - Draft: the mutable description of a delivery before it becomes an order
//   - DeliveryType: the canonical enumeration of delivery options
//   - Step and ValidateStep: the per-step blank checks
//   - Wizard: an immutable state machine over the four steps
//
// Key business rules:
//   - Steps run Addresses -> ItemDetails -> ContactInfo -> DeliveryType
//   - Advancing requires the current step to pass its blank checks
//   - Going back never clears entered values
//   - Only a draft that passes every step may be finalized
//
// Validation is a blank check after trimming. Phone numbers and addresses are
// not parsed.
package booking
