package commands

import (
	"context"
	"errors"

	"sendsafe/internal/core/domain/model/order"
	"sendsafe/internal/core/ports"
)

// FlushPendingOrdersCommandHandler drains the pending queue into the order repository.
// Orders that fail again go back to the front of the queue in their original
// order, ahead of orders pushed while the flush ran.
type FlushPendingOrdersCommandHandler struct {
	repo    ports.OrderRepository
	pending *PendingOrders
}

// NewFlushPendingOrdersCommandHandler creates a handler for the flush command.
func NewFlushPendingOrdersCommandHandler(repo ports.OrderRepository, pending *PendingOrders) FlushPendingOrdersCommandHandler {
	return FlushPendingOrdersCommandHandler{
		repo:    repo,
		pending: pending,
	}
}

// Handle appends every queued order and returns how many were stored.
// The returned error joins the failures of the orders that were re-queued.
func (h *FlushPendingOrdersCommandHandler) Handle(ctx context.Context, cmd FlushPendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var (
		flushed  int
		failed   []*order.Order
		failures []error
	)
	for _, o := range h.pending.Drain() {
		if err := h.repo.AppendOrder(ctx, o); err != nil {
			failed = append(failed, o)
			failures = append(failures, err)
			continue
		}
		flushed++
	}
	h.pending.Requeue(failed...)

	return flushed, errors.Join(failures...)
}
