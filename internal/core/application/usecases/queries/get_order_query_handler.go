package queries

import (
	"context"
	"fmt"

	"sendsafe/internal/core/domain/services"
	"sendsafe/internal/core/ports"
	"sendsafe/internal/pkg/errs"
)

// GetOrderQueryHandler looks up one order in the history.
// Unlike the list, a storage failure here is reported to the caller.
type GetOrderQueryHandler struct {
	repo      ports.OrderRepository
	formatter services.SummaryFormatter
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(repo ports.OrderRepository, formatter services.SummaryFormatter) GetOrderQueryHandler {
	return GetOrderQueryHandler{repo: repo, formatter: formatter}
}

// Handle returns the most recent order carrying the requested id.
// Ids are not deduplicated on append, so the newest match wins.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	orders, err := h.repo.ListOrders(ctx)
	if err != nil {
		return OrderView{}, fmt.Errorf("list orders: %w", err)
	}

	for _, o := range orders {
		if o.ID().IsEqual(query.ID()) {
			return NewOrderView(o, h.formatter, query.Now()), nil
		}
	}

	return OrderView{}, errs.NewObjectNotFoundError("order", query.ID().String())
}
