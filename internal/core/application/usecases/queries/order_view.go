// Package queries contains the read operations behind the order history screens.
// Queries return flat read models that are ready to display: every label,
// price and date is already rendered.
package queries

import (
	"time"

	"sendsafe/internal/core/domain/model/order"
	"sendsafe/internal/core/domain/services"
)

// OrderView is one row of the order history, including the fields the detail
// screen shows.
//
// Example:
//
//	view := NewOrderView(o, formatter, now)
//	fmt.Printf("%s %s %s\n", view.ItemName, view.StatusLabel, view.RelativeAge)
//	// Laptop PENDING 5 minutes ago
type OrderView struct {
	ID                  string     `json:"id"`
	PickupAddress       string     `json:"pickupAddress"`
	DropOffAddress      string     `json:"dropOffAddress"`
	ItemName            string     `json:"itemName"`
	ItemDescription     string     `json:"itemDescription"`
	SenderName          string     `json:"senderName"`
	SenderPhone         string     `json:"senderPhone"`
	ReceiverName        string     `json:"receiverName"`
	ReceiverPhone       string     `json:"receiverPhone"`
	DeliveryType        string     `json:"deliveryType"`
	DeliveryTypeLabel   string     `json:"deliveryTypeLabel"`
	Price               string     `json:"price"`
	Duration            string     `json:"duration"`
	SpecialInstructions string     `json:"specialInstructions"`
	Timestamp           int64      `json:"timestamp"`
	RelativeAge         string     `json:"relativeAge"`
	FullDate            string     `json:"fullDate"`
	Status              string     `json:"status"`
	StatusLabel         string     `json:"statusLabel"`
	StatusTone          order.Tone `json:"statusTone"`
}

// NewOrderView renders an order for display at instant now.
// Dates are shown in now's location.
func NewOrderView(o *order.Order, formatter services.SummaryFormatter, now time.Time) OrderView {
	d := o.Details()
	tariff := formatter.Quote(d.DeliveryType)

	return OrderView{
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
		DeliveryTypeLabel:   d.DeliveryType.Label(),
		Price:               tariff.Price,
		Duration:            tariff.Duration,
		SpecialInstructions: d.SpecialInstructions,
		Timestamp:           o.TimestampMillis(),
		RelativeAge:         order.FormatRelativeAge(o.Timestamp(), now),
		FullDate:            order.FormatFullDate(o.Timestamp(), now.Location()),
		Status:              o.Status().String(),
		StatusLabel:         o.Status().Label(),
		StatusTone:          o.Status().Tone(),
	}
}
