package orderrepo

import (
	"context"
	"fmt"
	"log/slog"

	"sendsafe/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, logger *slog.Logger) *GormOrderRepository {
	return &GormOrderRepository{
		db:     db,
		logger: logger.With("component", "gorm_order_repository"),
	}
}

// AppendOrder inserts a new row for the order.
func (r *GormOrderRepository) AppendOrder(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("insert order %s: %w", dto.ID, err)
	}
	return nil
}

// ListOrders returns every order, newest first, ties in insertion order.
// Rows that cannot be restored are skipped with a warning.
func (r *GormOrderRepository) ListOrders(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("timestamp DESC").Order("seq ASC").Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			r.logger.WarnContext(ctx, "Skipping unreadable order row", "seq", dto.Seq, "id", dto.ID, "error", err)
			continue
		}
		orders = append(orders, o)
	}

	return orders, nil
}
