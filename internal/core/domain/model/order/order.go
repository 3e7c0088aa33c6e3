package order

import (
	"errors"
	"fmt"
	"time"

	"sendsafe/internal/core/domain/model/booking"
	"sendsafe/internal/core/domain/model/kernel"
	"sendsafe/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is a finalized delivery request: a frozen copy of the booking draft
// plus identity, creation time and status.
//
// Order follows these invariants:
//   - Must have a valid identifier
//   - The draft passed every booking step when the order was created
//   - Timestamp has millisecond precision, matching the persisted record
//   - Has no mutators; every accessor returns a copy
type Order struct {
	// id is the unique identifier for the order
	id kernel.ID

	// details is the frozen booking draft
	details booking.Draft

	// timestamp is the creation instant
	timestamp time.Time

	// status is the last known dispatcher status
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder finalizes a booking draft into a pending order.
//
// Parameters:
//   - id: unique identifier for the order
//   - details: the submitted draft; every booking step must pass
//   - createdAt: creation instant, truncated to milliseconds
//
// Returns:
//   - *Order in Pending status if all validations pass
//   - error joining the identifier and draft failures otherwise
//
// Example:
//
//	draft, err := wizard.Submit()
//	if err != nil {
//	    return err
//	}
//	o, err := order.NewOrder(kernel.NewID(), draft, time.Now())
func NewOrder(id kernel.ID, details booking.Draft, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
		o.setTimestamp(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read from storage.
//
// Stored history may predate the current validation rules, so the draft is
// not re-validated. The identifier, timestamp and status still are.
func RestoreOrder(id kernel.ID, details booking.Draft, createdAt time.Time, status Status) (*Order, error) {
	o := &Order{
		details:       details,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTimestamp(createdAt),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// Details returns a copy of the frozen draft.
func (o *Order) Details() booking.Draft {
	return o.details
}

// DeliveryType returns the chosen delivery option.
func (o *Order) DeliveryType() booking.DeliveryType {
	return o.details.DeliveryType
}

// Timestamp returns the creation instant.
func (o *Order) Timestamp() time.Time {
	return o.timestamp
}

// TimestampMillis returns the creation instant in milliseconds since the Unix epoch.
func (o *Order) TimestampMillis() int64 {
	return o.timestamp.UnixMilli()
}

// Status returns the order status.
func (o *Order) Status() Status {
	return o.status
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDetails(details booking.Draft) error {
	if err := booking.ValidateDraft(details); err != nil {
		return fmt.Errorf("order details: %w", err)
	}
	o.details = details
	return nil
}

func (o *Order) setTimestamp(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	o.timestamp = time.UnixMilli(createdAt.UnixMilli())
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
