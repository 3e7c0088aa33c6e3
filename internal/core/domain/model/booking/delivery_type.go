package booking

import (
	"encoding/json"
	"fmt"
	"strings"

	"sendsafe/internal/pkg/errs"
)

// DeliveryType is the delivery option chosen on the last wizard step.
//
// The zero value DeliveryTypeUnset means no choice was made yet. Its wire form
// is the empty string, and it never passes step validation.
type DeliveryType int

const (
	// DeliveryTypeUnset is the value of a fresh draft.
	DeliveryTypeUnset DeliveryType = iota

	// Instant delivers within one to two hours.
	Instant

	// Standard delivers within a day.
	Standard
)

func getDeliveryTypeStrings() map[DeliveryType]string {
	return map[DeliveryType]string{
		DeliveryTypeUnset: "",
		Instant:           "Instant",
		Standard:          "Standard",
	}
}

func getDeliveryTypeLabels() map[DeliveryType]string {
	return map[DeliveryType]string{
		Instant:  "Instant Delivery",
		Standard: "Standard Delivery",
	}
}

// DeliveryTypes lists the selectable delivery types in display order.
func DeliveryTypes() []DeliveryType {
	return []DeliveryType{Instant, Standard}
}

// ParseDeliveryType maps a stored or submitted value to a DeliveryType.
//
// It accepts the canonical value ("Instant"), the display label
// ("Instant Delivery") and any letter case of both, so history written by
// earlier clients keeps loading. The empty string yields DeliveryTypeUnset.
func ParseDeliveryType(s string) (DeliveryType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DeliveryTypeUnset, nil
	}
	for _, t := range DeliveryTypes() {
		if strings.EqualFold(s, t.String()) || strings.EqualFold(s, t.Label()) {
			return t, nil
		}
	}
	return DeliveryTypeUnset, errs.NewValueIsInvalidErrorWithCause(
		"deliveryType",
		fmt.Errorf("%q is not a delivery type", s),
	)
}

// IsSelectable reports whether the value is one of the two real options.
func (t DeliveryType) IsSelectable() bool {
	return t == Instant || t == Standard
}

// Validate rejects DeliveryTypeUnset and out-of-range values.
func (t DeliveryType) Validate() error {
	if t == DeliveryTypeUnset {
		return errs.NewValueIsRequiredError(string(FieldDeliveryType))
	}
	if !t.IsSelectable() {
		return errs.NewValueIsInvalidErrorWithCause(
			string(FieldDeliveryType),
			fmt.Errorf("%d is not a delivery type", int(t)),
		)
	}
	return nil
}

// String returns the canonical wire value, "" for unset or unknown values.
func (t DeliveryType) String() string {
	return getDeliveryTypeStrings()[t]
}

// Label returns the customer-facing name, "Not selected" when unset.
func (t DeliveryType) Label() string {
	if label, ok := getDeliveryTypeLabels()[t]; ok {
		return label
	}
	return "Not selected"
}

func (t DeliveryType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *DeliveryType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDeliveryType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
