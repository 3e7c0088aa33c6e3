package booking_test

import "sendsafe/internal/core/domain/model/booking"

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
