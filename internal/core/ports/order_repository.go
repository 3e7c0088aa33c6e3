// Package ports defines the contracts between the booking core and its
// infrastructure, so storage media and hand-off channels can be swapped
// without touching the wizard or the formatter.
package ports

import (
	"context"

	"sendsafe/internal/core/domain/model/order"
)

// OrderRepository is the durable order history.
// It is append-only: orders are never updated or removed through it.
type OrderRepository interface {
	// ListOrders returns every stored order, most recent timestamp first.
	// Orders sharing a timestamp keep their storage order.
	ListOrders(ctx context.Context) ([]*order.Order, error)

	// AppendOrder stores a new order. Identifier uniqueness is the caller's
	// responsibility; the repository does not deduplicate.
	AppendOrder(ctx context.Context, o *order.Order) error
}
