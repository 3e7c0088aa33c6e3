package orderrepo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"sendsafe/internal/adapters/out/kv"
	"sendsafe/internal/core/domain/model/order"
)

// StorageKey is the key the order collection lives under.
const StorageKey = "sendsafe_orders"

// JSONOrderRepository implements OrderRepository on top of a kv.Store.
//
// A missing, empty or unparsable collection reads as an empty history.
// Records that cannot be restored are skipped. Appends are a read-modify-write
// of the whole array; the mutex serializes them within one process only.
type JSONOrderRepository struct {
	store  kv.Store
	logger *slog.Logger
	mu     sync.Mutex
}

// NewJSONOrderRepository creates a repository over store.
func NewJSONOrderRepository(store kv.Store, logger *slog.Logger) *JSONOrderRepository {
	return &JSONOrderRepository{
		store:  store,
		logger: logger.With("component", "json_order_repository"),
	}
}

// ListOrders returns every order, newest first. Orders with equal
// timestamps keep their storage order.
func (r *JSONOrderRepository) ListOrders(ctx context.Context) ([]*order.Order, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(records))
	for i, rec := range records {
		o, convErr := toDomain(rec)
		if convErr != nil {
			r.logger.WarnContext(ctx, "Skipping unreadable order record", "index", i, "error", convErr)
			continue
		}
		orders = append(orders, o)
	}

	slices.SortStableFunc(orders, func(a, b *order.Order) int {
		return b.Timestamp().Compare(a.Timestamp())
	})
	return orders, nil
}

// AppendOrder adds o to the end of the stored collection.
func (r *JSONOrderRepository) AppendOrder(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}
	records = append(records, fromDomain(o))

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if err = r.store.Put(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	return nil
}

// load reads the raw collection. Store failures are returned; a collection
// that is absent or not a JSON array reads as empty.
func (r *JSONOrderRepository) load(ctx context.Context) ([]OrderRecord, error) {
	raw, found, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	if !found || len(bytes.TrimSpace(raw)) == 0 {
		return []OrderRecord{}, nil
	}

	var records []OrderRecord
	if err = json.Unmarshal(raw, &records); err != nil {
		r.logger.WarnContext(ctx, "Stored order collection is unparsable, treating as empty", "error", err)
		return []OrderRecord{}, nil
	}
	return records, nil
}
