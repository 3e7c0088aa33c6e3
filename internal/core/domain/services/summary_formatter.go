package services

import (
	"fmt"
	"net/url"
	"strings"

	"sendsafe/internal/core/domain/model/booking"
)

// noInstructions replaces blank special instructions in the message.
const noInstructions = "None"

// HandOffTarget addresses the dispatcher on the external messaging channel.
type HandOffTarget struct {
	// BaseURL is the channel's deep-link base, e.g. "https://wa.me".
	BaseURL string

	// Recipient is the dispatcher's identifier on the channel. A leading "+" is dropped.
	Recipient string
}

// Item is one labeled value on the summary screen.
type Item struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Group is a titled block of items on the summary screen.
type Group struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Summary is the review screen for one draft.
type Summary struct {
	DeliveryType string  `json:"deliveryType"`
	Tariff       Tariff  `json:"tariff"`
	Groups       []Group `json:"groups"`
}

// SummaryFormatter renders finalized drafts. It holds no mutable state: the
// same draft always produces the same summary, message and link.
//
// Formatting does not validate. Callers reject incomplete drafts with
// booking.ValidateDraft (or Wizard.Submit) first.
//
// Example:
//
//	f := services.NewSummaryFormatter(services.DefaultTariffs(), services.HandOffTarget{
//	    BaseURL:   "https://wa.me",
//	    Recipient: "+2349154607762",
//	})
//	draft, _ := wizard.Submit()
//	summary := f.Summarize(draft)
//	link := f.Link(draft) // https://wa.me/2349154607762?text=SendSafe%20Delivery...
type SummaryFormatter struct {
	tariffs Tariffs
	target  HandOffTarget
}

// NewSummaryFormatter creates a formatter over the given tariffs and hand-off target.
func NewSummaryFormatter(tariffs Tariffs, target HandOffTarget) SummaryFormatter {
	return SummaryFormatter{tariffs: tariffs, target: target}
}

// Quote returns the price and duration of a delivery type.
func (f SummaryFormatter) Quote(t booking.DeliveryType) Tariff {
	return f.tariffs.For(t)
}

// Summarize builds the display groups in screen order: delivery, item,
// addresses, contacts, and special instructions when present.
func (f SummaryFormatter) Summarize(d booking.Draft) Summary {
	tariff := f.Quote(d.DeliveryType)

	groups := []Group{
		{
			Title: "Delivery",
			Items: []Item{
				{Label: "Type", Value: d.DeliveryType.Label()},
				{Label: "Price", Value: tariff.Price},
				{Label: "Duration", Value: tariff.Duration},
			},
		},
		{
			Title: "Item Details",
			Items: []Item{
				{Label: "Item", Value: clean(d.ItemName)},
				{Label: "Description", Value: clean(d.ItemDescription)},
			},
		},
		{
			Title: "Addresses",
			Items: []Item{
				{Label: "Pickup", Value: clean(d.PickupAddress)},
				{Label: "Drop-off", Value: clean(d.DropOffAddress)},
			},
		},
		{
			Title: "Contact Information",
			Items: []Item{
				{Label: "Sender", Value: clean(d.SenderName)},
				{Label: "Sender Phone", Value: clean(d.SenderPhone)},
				{Label: "Receiver", Value: clean(d.ReceiverName)},
				{Label: "Receiver Phone", Value: clean(d.ReceiverPhone)},
			},
		},
	}

	if d.HasSpecialInstructions() {
		groups = append(groups, Group{
			Title: "Special Instructions",
			Items: []Item{{Label: "Instructions", Value: clean(d.SpecialInstructions)}},
		})
	}

	return Summary{
		DeliveryType: d.DeliveryType.Label(),
		Tariff:       tariff,
		Groups:       groups,
	}
}

// Message renders the plain-text booking request sent to the dispatcher.
func (f SummaryFormatter) Message(d booking.Draft) string {
	tariff := f.Quote(d.DeliveryType)

	instructions := noInstructions
	if d.HasSpecialInstructions() {
		instructions = clean(d.SpecialInstructions)
	}

	var b strings.Builder
	b.WriteString("SendSafe Delivery Booking Request\n\n")
	b.WriteString("Order Summary:\n")
	fmt.Fprintf(&b, "• Item: %s\n", clean(d.ItemName))
	fmt.Fprintf(&b, "• Description: %s\n", clean(d.ItemDescription))
	fmt.Fprintf(&b, "• Delivery Type: %s (%s)\n", d.DeliveryType.Label(), tariff.Price)
	fmt.Fprintf(&b, "• Duration: %s\n\n", tariff.Duration)
	b.WriteString("Addresses:\n")
	fmt.Fprintf(&b, "• Pickup: %s\n", clean(d.PickupAddress))
	fmt.Fprintf(&b, "• Drop-off: %s\n\n", clean(d.DropOffAddress))
	b.WriteString("Contact Information:\n")
	fmt.Fprintf(&b, "• Sender: %s (%s)\n", clean(d.SenderName), clean(d.SenderPhone))
	fmt.Fprintf(&b, "• Receiver: %s (%s)\n\n", clean(d.ReceiverName), clean(d.ReceiverPhone))
	fmt.Fprintf(&b, "Special Instructions: %s\n\n", instructions)
	b.WriteString("Please assist me with this delivery booking and provide real-time tracking updates. Thank you!")

	return b.String()
}

// componentUnescaper restores the marks encodeURIComponent leaves as-is and
// writes spaces as %20 instead of "+".
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeMessage percent-encodes text for a URI query component with the
// encodeURIComponent character set: letters, digits and -_.!~*'() stay literal.
func EncodeMessage(text string) string {
	return componentUnescaper.Replace(url.QueryEscape(text))
}

// Link returns the deep link that opens a chat with the dispatcher prefilled
// with Message(d): <base>/<recipient>?text=<encoded message>.
func (f SummaryFormatter) Link(d booking.Draft) string {
	base := strings.TrimRight(f.target.BaseURL, "/")
	recipient := strings.TrimPrefix(strings.TrimSpace(f.target.Recipient), "+")
	return base + "/" + url.PathEscape(recipient) + "?text=" + EncodeMessage(f.Message(d))
}

func clean(s string) string {
	return strings.TrimSpace(s)
}
