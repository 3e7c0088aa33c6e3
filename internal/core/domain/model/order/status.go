package order

import (
	"fmt"
	"strings"

	"sendsafe/internal/pkg/errs"
)

// Status is the dispatcher-reported state of an order.
//
//	pending ──> in-transit ──> delivered
//
// This service only ever writes Pending. The other values arrive from the
// dispatcher side and are displayed, never transitioned, here.
type Status string

const (
	// Pending is the status of every order this service creates.
	Pending Status = "pending"

	// InTransit means a rider has picked the parcel up.
	InTransit Status = "in-transit"

	// Delivered means the parcel reached the receiver.
	Delivered Status = "delivered"
)

// Tone is the visual category a status is rendered with.
type Tone string

const (
	ToneWarning Tone = "warning"
	ToneInfo    Tone = "info"
	ToneSuccess Tone = "success"
)

func getStatusTones() map[Status]Tone {
	return map[Status]Tone{
		Pending:   ToneWarning,
		InTransit: ToneInfo,
		Delivered: ToneSuccess,
	}
}

// ParseStatus maps a stored value to a Status. The empty string is read as
// Pending, the default of records that never carried a status.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if st == "" {
		return Pending, nil
	}
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

// Validate checks that the status is one of the three known values.
func (s Status) Validate() error {
	if _, ok := getStatusTones()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire value.
func (s Status) String() string {
	return string(s)
}

// Label returns the badge text: the wire value upper-cased with the hyphen
// replaced by a space, e.g. "IN TRANSIT".
func (s Status) Label() string {
	return strings.ToUpper(strings.Replace(string(s), "-", " ", 1))
}

// Tone returns the visual category of the status. Unknown values render like Pending.
func (s Status) Tone() Tone {
	if tone, ok := getStatusTones()[s]; ok {
		return tone
	}
	return ToneWarning
}
