package http

import (
	"sendsafe/internal/core/application/usecases/queries"
	"sendsafe/internal/core/domain/model/booking"
	"sendsafe/internal/core/domain/services"
)

// Error is the body of every non-validation failure.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// WizardState is the wizard position carried by the client between requests.
type WizardState struct {
	Step       booking.Step  `json:"step"`
	StepTitle  string        `json:"stepTitle,omitempty"`
	IsLastStep bool          `json:"isLastStep"`
	Draft      booking.Draft `json:"draft"`
}

// Tariff is one row of the tariff table.
type Tariff struct {
	DeliveryType string `json:"deliveryType"`
	Label        string `json:"label"`
	Price        string `json:"price"`
	Duration     string `json:"duration"`
}

// BookingSummary is the review screen plus the hand-off message and link.
type BookingSummary struct {
	services.Summary
	Message string `json:"message"`
	Link    string `json:"link"`
}

// ConfirmBookingRequest is the body of POST /api/v1/bookings.
type ConfirmBookingRequest struct {
	Draft booking.Draft `json:"draft"`
}

// BookingConfirmation is the body of a created booking.
type BookingConfirmation struct {
	Order     queries.OrderView `json:"order"`
	Link      string            `json:"link"`
	Persisted bool              `json:"persisted"`
}

// ValidationIssue lists the blank fields of one step.
type ValidationIssue struct {
	Step      booking.Step `json:"step"`
	StepTitle string       `json:"stepTitle"`
	Missing   []string     `json:"missing"`
	Message   string       `json:"message"`
}

// ValidationProblem is the 422 body.
type ValidationProblem struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Issues  []ValidationIssue `json:"issues"`
}

func toWizardState(w booking.Wizard) WizardState {
	return WizardState{
		Step:       w.Step(),
		StepTitle:  w.Step().String(),
		IsLastStep: w.IsLastStep(),
		Draft:      w.Draft(),
	}
}
