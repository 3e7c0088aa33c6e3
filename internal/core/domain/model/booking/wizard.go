package booking

import (
	"errors"
	"fmt"
)

// ErrSubmitOutsideFinalStep is returned by Submit before the last step is reached.
var ErrSubmitOutsideFinalStep = errors.New("booking can only be submitted from the delivery type step")

// Wizard is the booking state machine: the current step plus the live draft.
//
// Wizard is an immutable value. Every operation returns a new Wizard and
// leaves the receiver untouched, so callers thread the value explicitly and
// two sessions never share a draft.
//
// Transitions:
//
//	         Advance (valid)     Advance (valid)     Advance (valid)
//	Addresses ─────────> ItemDetails ─────────> ContactInfo ─────────> DeliveryTypeChoice ──Submit──> Draft
//	          <─────────             <─────────             <─────────
//	            Retreat                Retreat                Retreat
//
// Example:
//
//	w := booking.NewWizard().
//	    SetField(booking.FieldPickupAddress, "12 Allen Ave, Ikeja").
//	    SetField(booking.FieldDropOffAddress, "3 Admiralty Way, Lekki")
//	w, err := w.Advance()
//	if err != nil {
//	    // show err to the user; w is still on Addresses
//	}
type Wizard struct {
	step  Step
	draft Draft
}

// NewWizard starts a booking on the first step with an empty draft.
func NewWizard() Wizard {
	return Wizard{step: FirstStep}
}

// RestoreWizard rebuilds a wizard carried by a stateless client.
// Returns an error if step is outside 1..4.
func RestoreWizard(step Step, draft Draft) (Wizard, error) {
	if err := step.Validate(); err != nil {
		return Wizard{}, err
	}
	return Wizard{step: step, draft: draft}, nil
}

// Step returns the current step. A zero-value Wizard reports the first step.
func (w Wizard) Step() Step {
	if w.step == 0 {
		return FirstStep
	}
	return w.step
}

// Draft returns a copy of the live draft.
func (w Wizard) Draft() Draft {
	return w.draft
}

// IsLastStep reports whether Submit is allowed.
func (w Wizard) IsLastStep() bool {
	return w.Step() == LastStep
}

// SetField replaces one text field. It always succeeds; unknown fields are ignored.
func (w Wizard) SetField(f Field, value string) Wizard {
	w.draft = w.draft.With(f, value)
	return w
}

// SelectDeliveryType sets the delivery option.
// Only Instant and Standard are accepted; other values return the unchanged wizard and an error.
func (w Wizard) SelectDeliveryType(t DeliveryType) (Wizard, error) {
	if !t.IsSelectable() {
		return w, fmt.Errorf("select delivery type: %w", t.Validate())
	}
	w.draft.DeliveryType = t
	return w, nil
}

// Advance validates the current step and moves forward, staying on the last step.
//
// Returns:
//   - the wizard on the next step and nil when the current step passes
//   - the unchanged wizard and a *ValidationError otherwise
func (w Wizard) Advance() (Wizard, error) {
	current := w.Step()
	if err := ValidateStep(current, w.draft); err != nil {
		return w, err
	}
	w.step = min(current+1, LastStep)
	return w, nil
}

// Retreat moves one step back, staying on the first step. Field values are kept.
func (w Wizard) Retreat() Wizard {
	w.step = max(w.Step()-1, FirstStep)
	return w
}

// Submit finalizes the draft for the summary stage.
//
// Submit is only valid on the last step and validates it like Advance. The
// wizard itself is not reset; the caller decides whether to start over.
//
// Returns:
//   - the finalized draft on success
//   - ErrSubmitOutsideFinalStep before the last step
//   - *ValidationError if no delivery type is selected
func (w Wizard) Submit() (Draft, error) {
	if !w.IsLastStep() {
		return Draft{}, ErrSubmitOutsideFinalStep
	}
	if err := ValidateStep(LastStep, w.draft); err != nil {
		return Draft{}, err
	}
	return w.draft, nil
}
