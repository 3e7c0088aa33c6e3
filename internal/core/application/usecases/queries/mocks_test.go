package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"sendsafe/internal/core/domain/model/booking"
	"sendsafe/internal/core/domain/model/kernel"
	"sendsafe/internal/core/domain/model/order"
	"sendsafe/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) ListOrders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) AppendOrder(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

var now = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func formatter() services.SummaryFormatter {
	return services.NewSummaryFormatter(services.DefaultTariffs(), services.HandOffTarget{
		BaseURL:   "https://wa.me",
		Recipient: "2349154607762",
	})
}

func storedOrder(t *testing.T, id string, item string, createdAt time.Time, status order.Status) *order.Order {
	t.Helper()
	orderID, err := kernel.IDFromString(id)
	require.NoError(t, err)
	o, err := order.RestoreOrder(orderID, booking.Draft{
		PickupAddress:   "12 Allen Avenue, Ikeja",
		DropOffAddress:  "3 Admiralty Way, Lekki",
		ItemName:        item,
		ItemDescription: "boxed",
		SenderName:      "Ada Obi",
		SenderPhone:     "08031234567",
		ReceiverName:    "Tunde Bello",
		ReceiverPhone:   "08097654321",
		DeliveryType:    booking.Standard,
	}, createdAt, status)
	require.NoError(t, err)
	return o
}
