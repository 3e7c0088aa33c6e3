// Package orderrepo stores the order history as one JSON array under a single
// key of a kv.Store, the layout earlier clients kept in browser storage.
package orderrepo

import (
	"time"

	"sendsafe/internal/core/domain/model/booking"
	"sendsafe/internal/core/domain/model/kernel"
	"sendsafe/internal/core/domain/model/order"
)

// OrderRecord is one element of the persisted JSON array.
// Timestamp is in epoch milliseconds.
type OrderRecord struct {
	ID                  string `json:"id"`
	PickupAddress       string `json:"pickupAddress"`
	DropOffAddress      string `json:"dropOffAddress"`
	ItemName            string `json:"itemName"`
	ItemDescription     string `json:"itemDescription"`
	SenderName          string `json:"senderName"`
	SenderPhone         string `json:"senderPhone"`
	ReceiverName        string `json:"receiverName"`
	ReceiverPhone       string `json:"receiverPhone"`
	DeliveryType        string `json:"deliveryType"`
	SpecialInstructions string `json:"specialInstructions"`
	Timestamp           int64  `json:"timestamp"`
	Status              string `json:"status"`
}

func fromDomain(o *order.Order) OrderRecord {
	d := o.Details()
	return OrderRecord{
		ID:                  o.ID().String(),
		PickupAddress:       d.PickupAddress,
		DropOffAddress:      d.DropOffAddress,
		ItemName:            d.ItemName,
		ItemDescription:     d.ItemDescription,
		SenderName:          d.SenderName,
		SenderPhone:         d.SenderPhone,
		ReceiverName:        d.ReceiverName,
		ReceiverPhone:       d.ReceiverPhone,
		DeliveryType:        d.DeliveryType.String(),
		SpecialInstructions: d.SpecialInstructions,
		Timestamp:           o.TimestampMillis(),
		Status:              o.Status().String(),
	}
}

func toDomain(r OrderRecord) (*order.Order, error) {
	id, err := kernel.IDFromString(r.ID)
	if err != nil {
		return nil, err
	}

	deliveryType, err := booking.ParseDeliveryType(r.DeliveryType)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, booking.Draft{
		PickupAddress:       r.PickupAddress,
		DropOffAddress:      r.DropOffAddress,
		ItemName:            r.ItemName,
		ItemDescription:     r.ItemDescription,
		SenderName:          r.SenderName,
		SenderPhone:         r.SenderPhone,
		ReceiverName:        r.ReceiverName,
		ReceiverPhone:       r.ReceiverPhone,
		DeliveryType:        deliveryType,
		SpecialInstructions: r.SpecialInstructions,
	}, time.UnixMilli(r.Timestamp), status)
}
