package booking

import "strings"

// Field names one free-text attribute of a Draft. The values double as the
// wire names used by clients and by the persisted order record.
type Field string

const (
	FieldPickupAddress       Field = "pickupAddress"
	FieldDropOffAddress      Field = "dropOffAddress"
	FieldItemName            Field = "itemName"
	FieldItemDescription     Field = "itemDescription"
	FieldSenderName          Field = "senderName"
	FieldSenderPhone         Field = "senderPhone"
	FieldReceiverName        Field = "receiverName"
	FieldReceiverPhone       Field = "receiverPhone"
	FieldSpecialInstructions Field = "specialInstructions"

	// FieldDeliveryType is reported by validation only; it is set through
	// Wizard.SelectDeliveryType, not SetField.
	FieldDeliveryType Field = "deliveryType"
)

// TextFields lists the fields accepted by SetField in form order.
func TextFields() []Field {
	return []Field{
		FieldPickupAddress,
		FieldDropOffAddress,
		FieldItemName,
		FieldItemDescription,
		FieldSenderName,
		FieldSenderPhone,
		FieldReceiverName,
		FieldReceiverPhone,
		FieldSpecialInstructions,
	}
}

// ParseField maps a wire name to a text field.
func ParseField(name string) (Field, bool) {
	for _, f := range TextFields() {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// Draft is the in-progress description of a delivery request.
//
// Draft is a plain value: copying it copies every field, so a Draft handed to
// the summary stage or frozen into an Order cannot be changed through the
// wizard afterwards. The JSON form uses the Field names.
type Draft struct {
	PickupAddress       string       `json:"pickupAddress"`
	DropOffAddress      string       `json:"dropOffAddress"`
	ItemName            string       `json:"itemName"`
	ItemDescription     string       `json:"itemDescription"`
	SenderName          string       `json:"senderName"`
	SenderPhone         string       `json:"senderPhone"`
	ReceiverName        string       `json:"receiverName"`
	ReceiverPhone       string       `json:"receiverPhone"`
	DeliveryType        DeliveryType `json:"deliveryType"`
	SpecialInstructions string       `json:"specialInstructions"`
}

// Value returns the raw value of a text field, "" for unknown fields.
func (d Draft) Value(f Field) string {
	if p := d.textField(f); p != nil {
		return *p
	}
	if f == FieldDeliveryType {
		return d.DeliveryType.String()
	}
	return ""
}

// With returns a copy of the draft with one text field replaced.
// Unknown fields leave the copy unchanged.
func (d Draft) With(f Field, value string) Draft {
	if p := d.textField(f); p != nil {
		*p = value
	}
	return d
}

// MissingFields returns the required fields of step that are blank after
// trimming, in form order. It returns nil when the step passes.
func (d Draft) MissingFields(step Step) []Field {
	var missing []Field
	for _, f := range step.RequiredFields() {
		if f == FieldDeliveryType {
			if !d.DeliveryType.IsSelectable() {
				missing = append(missing, f)
			}
			continue
		}
		if isBlank(d.Value(f)) {
			missing = append(missing, f)
		}
	}
	return missing
}

// HasSpecialInstructions reports whether the optional instructions carry text.
func (d Draft) HasSpecialInstructions() bool {
	return !isBlank(d.SpecialInstructions)
}

// textField returns a pointer into the receiver copy for f.
func (d *Draft) textField(f Field) *string {
	switch f {
	case FieldPickupAddress:
		return &d.PickupAddress
	case FieldDropOffAddress:
		return &d.DropOffAddress
	case FieldItemName:
		return &d.ItemName
	case FieldItemDescription:
		return &d.ItemDescription
	case FieldSenderName:
		return &d.SenderName
	case FieldSenderPhone:
		return &d.SenderPhone
	case FieldReceiverName:
		return &d.ReceiverName
	case FieldReceiverPhone:
		return &d.ReceiverPhone
	case FieldSpecialInstructions:
		return &d.SpecialInstructions
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
