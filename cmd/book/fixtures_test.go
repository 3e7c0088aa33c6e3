package main

import (
	"testing"

	"sendsafe/internal/core/domain/model/booking"
	"sendsafe/internal/core/domain/model/kernel"
)

func mustNewID(t *testing.T) kernel.ID {
	t.Helper()
	return kernel.NewID()
}

func completeDraft() booking.Draft {
	return booking.Draft{
		PickupAddress:   "12 Allen Avenue",
		DropOffAddress:  "3 Admiralty Way",
		ItemName:        "Laptop",
		ItemDescription: "14 inch",
		SenderName:      "Ada",
		SenderPhone:     "0803",
		ReceiverName:    "Tunde",
		ReceiverPhone:   "0809",
		DeliveryType:    booking.Standard,
	}
}
