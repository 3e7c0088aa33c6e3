package booking

import (
	"errors"
	"fmt"
	"strings"

	"sendsafe/internal/pkg/errs"
)

// Step is one stage of the booking wizard, numbered from 1.
//
// Step order:
//
//	Addresses ──> ItemDetails ──> ContactInfo ──> DeliveryTypeChoice
//
// Each step is gated by the blank checks returned from RequiredFields.
type Step int

const (
	// Addresses collects pickup and drop-off addresses.
	Addresses Step = iota + 1

	// ItemDetails collects the item name, description and optional instructions.
	ItemDetails

	// ContactInfo collects sender and receiver names and phones.
	ContactInfo

	// DeliveryTypeChoice collects the delivery option.
	DeliveryTypeChoice
)

const (
	FirstStep = Addresses
	LastStep  = DeliveryTypeChoice
)

func getStepNames() map[Step]string {
	return map[Step]string{
		Addresses:          "Addresses",
		ItemDetails:        "Item Details",
		ContactInfo:        "Contact Info",
		DeliveryTypeChoice: "Delivery Type",
	}
}

func getStepRequiredFields() map[Step][]Field {
	return map[Step][]Field{
		Addresses:          {FieldPickupAddress, FieldDropOffAddress},
		ItemDetails:        {FieldItemName, FieldItemDescription},
		ContactInfo:        {FieldSenderName, FieldSenderPhone, FieldReceiverName, FieldReceiverPhone},
		DeliveryTypeChoice: {FieldDeliveryType},
	}
}

// Steps lists every step in order.
func Steps() []Step {
	return []Step{Addresses, ItemDetails, ContactInfo, DeliveryTypeChoice}
}

// Validate rejects numbers outside 1..4.
func (s Step) Validate() error {
	if s < FirstStep || s > LastStep {
		return errs.NewValueIsOutOfRangeError("step", int(s), int(FirstStep), int(LastStep))
	}
	return nil
}

// String returns the display name of the step.
func (s Step) String() string {
	if name, ok := getStepNames()[s]; ok {
		return name
	}
	return fmt.Sprintf("Step %d", int(s))
}

// RequiredFields returns the fields that must be filled to leave the step.
// specialInstructions is never required.
func (s Step) RequiredFields() []Field {
	return getStepRequiredFields()[s]
}

// ValidationError reports which required fields of a step are blank.
//
// It unwraps to one errs.ValueIsRequiredError per missing field, so callers
// can use errors.Is(err, errs.ErrValueIsRequired) or errors.As to inspect it.
type ValidationError struct {
	Step    Step
	Missing []Field
}

func (e *ValidationError) Error() string {
	if len(e.Missing) == 1 && e.Missing[0] == FieldDeliveryType {
		return fmt.Sprintf("%s: no delivery type selected", e.Step)
	}
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return fmt.Sprintf("%s: required fields are blank: %s", e.Step, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() []error {
	out := make([]error, len(e.Missing))
	for i, f := range e.Missing {
		out[i] = errs.NewValueIsRequiredError(string(f))
	}
	return out
}

// ValidateStep checks the blank rules of one step against a draft.
//
// Returns:
//   - nil if every required field of the step is filled
//   - *ValidationError listing the blank fields otherwise
//   - an out-of-range error if step is not 1..4
//
// Example:
//
//	d := booking.Draft{SenderName: "Ada", ReceiverName: "Tunde", ReceiverPhone: "0803"}
//	err := booking.ValidateStep(booking.ContactInfo, d)
//	// err.Error() == "Contact Info: required fields are blank: senderPhone"
func ValidateStep(step Step, d Draft) error {
	if err := step.Validate(); err != nil {
		return err
	}
	if missing := d.MissingFields(step); len(missing) > 0 {
		return &ValidationError{Step: step, Missing: missing}
	}
	return nil
}

// ValidateDraft runs every step and joins the failures.
// A draft that passes may be finalized into an order.
func ValidateDraft(d Draft) error {
	var failures []error
	for _, s := range Steps() {
		if err := ValidateStep(s, d); err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}
