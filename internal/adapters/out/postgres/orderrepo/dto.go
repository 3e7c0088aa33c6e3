// Package orderrepo provides the GORM order repository and the mapping
// between the order aggregate and the orders table.
package orderrepo

import (
	"time"

	"sendsafe/internal/core/domain/model/booking"
	"sendsafe/internal/core/domain/model/kernel"
	"sendsafe/internal/core/domain/model/order"
)

// OrderDTO is one row of the orders table. Seq records insertion order and
// breaks ties between equal timestamps. ID is not unique: the history keeps
// every append.
type OrderDTO struct {
	Seq                 uint64 `gorm:"primaryKey;autoIncrement"`
	ID                  string `gorm:"column:id;index;not null"`
	PickupAddress       string
	DropOffAddress      string
	ItemName            string
	ItemDescription     string
	SenderName          string
	SenderPhone         string
	ReceiverName        string
	ReceiverPhone       string
	DeliveryType        string
	SpecialInstructions string
	Timestamp           int64  `gorm:"index"`
	Status              string `gorm:"not null;default:pending"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	d := o.Details()
	return OrderDTO{
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

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	deliveryType, err := booking.ParseDeliveryType(dto.DeliveryType)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, booking.Draft{
		PickupAddress:       dto.PickupAddress,
		DropOffAddress:      dto.DropOffAddress,
		ItemName:            dto.ItemName,
		ItemDescription:     dto.ItemDescription,
		SenderName:          dto.SenderName,
		SenderPhone:         dto.SenderPhone,
		ReceiverName:        dto.ReceiverName,
		ReceiverPhone:       dto.ReceiverPhone,
		DeliveryType:        deliveryType,
		SpecialInstructions: dto.SpecialInstructions,
	}, time.UnixMilli(dto.Timestamp), status)
}
