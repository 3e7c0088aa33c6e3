package commands_test

import (
	"context"
	"io"
	"log/slog"

	"sendsafe/internal/core/domain/model/booking"
	"sendsafe/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) ListOrders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) AppendOrder(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockHandOffChannel struct{ mock.Mock }

func (m *MockHandOffChannel) Open(ctx context.Context, link string) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func completeDraft() booking.Draft {
	return booking.Draft{
		PickupAddress:   "12 Allen Avenue, Ikeja",
		DropOffAddress:  "3 Admiralty Way, Lekki",
		ItemName:        "Laptop",
		ItemDescription: "14 inch, boxed",
		SenderName:      "Ada Obi",
		SenderPhone:     "08031234567",
		ReceiverName:    "Tunde Bello",
		ReceiverPhone:   "08097654321",
		DeliveryType:    booking.Instant,
	}
}
