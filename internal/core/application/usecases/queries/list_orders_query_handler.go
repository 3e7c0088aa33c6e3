package queries

import (
	"context"
	"log/slog"

	"sendsafe/internal/core/domain/services"
	"sendsafe/internal/core/ports"
)

// ListOrdersQueryHandler renders the order history.
//
// A failing repository is not an error for the reader: the handler logs it
// and returns an empty history, the same as a fresh install.
type ListOrdersQueryHandler struct {
	repo      ports.OrderRepository
	formatter services.SummaryFormatter
	logger    *slog.Logger
}

// NewListOrdersQueryHandler creates a handler for history queries.
func NewListOrdersQueryHandler(
	repo ports.OrderRepository,
	formatter services.SummaryFormatter,
	logger *slog.Logger,
) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		repo:      repo,
		formatter: formatter,
		logger:    logger.With("component", "list_orders_handler"),
	}
}

// Handle returns the history in repository order (newest first).
// Only a query built without its constructor yields an error.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repo.ListOrders(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "Order history unavailable, showing empty list", "error", err)
		return []OrderView{}, nil
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o, h.formatter, query.Now()))
	}
	return views, nil
}
