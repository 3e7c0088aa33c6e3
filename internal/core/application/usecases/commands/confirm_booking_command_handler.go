package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sendsafe/internal/core/domain/model/order"
	"sendsafe/internal/core/domain/services"
	"sendsafe/internal/core/ports"
)

// ErrHandOffFailed is returned when the hand-off channel could not open the link.
var ErrHandOffFailed = errors.New("could not open the messaging channel")

// ConfirmBookingResult is what the summary screen shows after confirmation.
type ConfirmBookingResult struct {
	Order *order.Order
	Link  string

	// Persisted is false when the order append failed and the order waits in
	// the pending queue.
	Persisted bool
}

// ConfirmBookingCommandHandler hands a finalized booking to the dispatcher
// and records it in the order history.
//
// The link is opened first. If that fails nothing is stored, so a manual retry
// by the user does not leave a duplicate order behind. Storing is best-effort:
// a failed append is logged and parked in the pending queue for the flush job.
//
// Example:
//
//	handler := NewConfirmBookingCommandHandler(formatter, channel, repo, pending, time.Now, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("booking confirmation failed: %w", err)
//	}
type ConfirmBookingCommandHandler struct {
	formatter services.SummaryFormatter
	channel   ports.HandOffChannel
	repo      ports.OrderRepository
	pending   *PendingOrders
	now       Clock
	logger    *slog.Logger
}

// NewConfirmBookingCommandHandler creates a handler for booking confirmations.
func NewConfirmBookingCommandHandler(
	formatter services.SummaryFormatter,
	channel ports.HandOffChannel,
	repo ports.OrderRepository,
	pending *PendingOrders,
	now Clock,
	logger *slog.Logger,
) ConfirmBookingCommandHandler {
	return ConfirmBookingCommandHandler{
		formatter: formatter,
		channel:   channel,
		repo:      repo,
		pending:   pending,
		now:       now,
		logger:    logger.With("component", "confirm_booking_handler"),
	}
}

// Handle opens the dispatcher link and appends the new order.
//
// Returns:
//   - the result with Persisted=true when both steps succeed
//   - the result with Persisted=false and a nil error when only the append failed
//   - an error wrapping ErrHandOffFailed when the link could not be opened
func (h *ConfirmBookingCommandHandler) Handle(ctx context.Context, cmd ConfirmBookingCommand) (ConfirmBookingResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmBookingResult{}, err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Draft(), h.now())
	if err != nil {
		return ConfirmBookingResult{}, err
	}

	link := h.formatter.Link(o.Details())
	if err = h.channel.Open(ctx, link); err != nil {
		return ConfirmBookingResult{}, fmt.Errorf("%w: %w", ErrHandOffFailed, err)
	}

	result := ConfirmBookingResult{Order: o, Link: link}

	if err = h.repo.AppendOrder(ctx, o); err != nil {
		h.logger.WarnContext(ctx, "Order append failed, queued for retry",
			"order_id", o.ID().String(), "error", err)
		h.pending.Push(o)
		return result, nil
	}

	result.Persisted = true
	h.logger.InfoContext(ctx, "Booking confirmed",
		"order_id", o.ID().String(), "delivery_type", o.DeliveryType().String())
	return result, nil
}
