package services

import "sendsafe/internal/core/domain/model/booking"

// NotAvailable is shown in place of a price or duration when no delivery type is chosen.
const NotAvailable = "N/A"

// Tariff is the quoted price and delivery window of one delivery type.
type Tariff struct {
	Price    string `json:"price"`
	Duration string `json:"duration"`
}

// Tariffs is the single lookup table from delivery type to price and duration.
// Prices are configuration, not constants of the formatter.
type Tariffs struct {
	Instant  Tariff
	Standard Tariff
}

// DefaultTariffs returns the tariffs quoted on the summary screen.
func DefaultTariffs() Tariffs {
	return Tariffs{
		Instant:  Tariff{Price: "NGN 6,500", Duration: "1-2 hours"},
		Standard: Tariff{Price: "NGN 3,500", Duration: "24 hours"},
	}
}

// For returns the tariff of t, or N/A for both fields when t is unset or unknown.
func (ts Tariffs) For(t booking.DeliveryType) Tariff {
	switch t {
	case booking.Instant:
		return ts.Instant
	case booking.Standard:
		return ts.Standard
	default:
		return Tariff{Price: NotAvailable, Duration: NotAvailable}
	}
}
