package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"sendsafe/internal/core/application/usecases/commands"
	"sendsafe/internal/core/application/usecases/queries"
	"sendsafe/internal/core/domain/model/booking"
	"sendsafe/internal/core/domain/model/kernel"
	"sendsafe/internal/core/domain/services"
)

// backCommand moves the wizard one step back from any prompt.
const backCommand = "back"

var errAborted = errors.New("booking aborted")

func fieldPrompts() map[booking.Field]string {
	return map[booking.Field]string{
		booking.FieldPickupAddress:       "Pickup address",
		booking.FieldDropOffAddress:      "Drop-off address",
		booking.FieldItemName:            "Item name",
		booking.FieldItemDescription:     "Item description",
		booking.FieldSenderName:          "Sender name",
		booking.FieldSenderPhone:         "Sender phone",
		booking.FieldReceiverName:        "Receiver name",
		booking.FieldReceiverPhone:       "Receiver phone",
		booking.FieldSpecialInstructions: "Special instructions (optional)",
	}
}

type bookingConfirmer interface {
	Handle(ctx context.Context, cmd commands.ConfirmBookingCommand) (commands.ConfirmBookingResult, error)
}

// session drives one booking on a line-oriented terminal.
type session struct {
	in        *bufio.Scanner
	out       io.Writer
	formatter services.SummaryFormatter
	confirmer bookingConfirmer
}

func newSession(in io.Reader, out io.Writer, formatter services.SummaryFormatter, confirmer bookingConfirmer) *session {
	return &session{
		in:        bufio.NewScanner(in),
		out:       out,
		formatter: formatter,
		confirmer: confirmer,
	}
}

// run walks the wizard, shows the summary and confirms on request.
func (s *session) run(ctx context.Context) error {
	w := booking.NewWizard()

	for {
		s.printf("\nStep %d of %d: %s\n", int(w.Step()), int(booking.LastStep), w.Step())

		next, back, err := s.fillStep(w)
		if err != nil {
			return err
		}
		if back {
			w = next.Retreat()
			continue
		}

		if next.IsLastStep() {
			draft, submitErr := next.Submit()
			if submitErr != nil {
				s.printf("%v\n", submitErr)
				w = next
				continue
			}
			return s.review(ctx, draft)
		}

		advanced, advanceErr := next.Advance()
		if advanceErr != nil {
			s.printf("%v\n", advanceErr)
		}
		w = advanced
	}
}

// fillStep prompts the fields of the current step. Blank answers keep the
// current value. back is true when the user typed the back command.
func (s *session) fillStep(w booking.Wizard) (booking.Wizard, bool, error) {
	prompts := fieldPrompts()

	if w.Step() == booking.DeliveryTypeChoice {
		return s.fillDeliveryStep(w)
	}

	for _, f := range w.Step().RequiredFields() {
		answer, err := s.ask(prompts[f], w.Draft().Value(f))
		if err != nil {
			return w, false, err
		}
		if answer == backCommand {
			return w, true, nil
		}
		if answer != "" {
			w = w.SetField(f, answer)
		}
	}
	return w, false, nil
}

func (s *session) fillDeliveryStep(w booking.Wizard) (booking.Wizard, bool, error) {
	types := booking.DeliveryTypes()
	for i, t := range types {
		quote := s.formatter.Quote(t)
		s.printf("  %d) %s - %s, %s\n", i+1, t.Label(), quote.Price, quote.Duration)
	}

	answer, err := s.ask("Delivery type", w.Draft().DeliveryType.Label())
	if err != nil {
		return w, false, err
	}
	if answer == backCommand {
		return w, true, nil
	}
	if answer != "" {
		t, parseErr := parseChoice(answer, types)
		if parseErr != nil {
			s.printf("%v\n", parseErr)
		} else if w, err = w.SelectDeliveryType(t); err != nil {
			return w, false, err
		}
	}

	answer, err = s.ask(fieldPrompts()[booking.FieldSpecialInstructions], w.Draft().SpecialInstructions)
	if err != nil {
		return w, false, err
	}
	if answer == backCommand {
		return w, true, nil
	}
	if answer != "" {
		w = w.SetField(booking.FieldSpecialInstructions, answer)
	}
	return w, false, nil
}

func (s *session) review(ctx context.Context, draft booking.Draft) error {
	summary := s.formatter.Summarize(draft)
	s.printf("\nOrder Summary\n")
	for _, g := range summary.Groups {
		s.printf("\n%s\n", g.Title)
		for _, item := range g.Items {
			s.printf("  %s: %s\n", item.Label, item.Value)
		}
	}

	answer, err := s.ask("Send to dispatcher? [y/N]", "")
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		return errAborted
	}

	cmd, err := commands.NewConfirmBookingCommand(kernel.NewID(), draft)
	if err != nil {
		return err
	}
	result, err := s.confirmer.Handle(ctx, cmd)
	if errors.Is(err, commands.ErrHandOffFailed) {
		s.printf("Could not open the chat. Send the request yourself:\n%s\n", s.formatter.Link(draft))
		return err
	}
	if err != nil {
		return err
	}

	s.printf("Order %s sent.\n", result.Order.ID())
	if !result.Persisted {
		s.printf("It will appear in your history once storage is reachable again.\n")
	}
	return nil
}

func (s *session) ask(prompt, current string) (string, error) {
	if current != "" {
		s.printf("%s [%s]: ", prompt, current)
	} else {
		s.printf("%s: ", prompt)
	}
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errAborted
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// parseChoice accepts a menu number or a delivery type name.
func parseChoice(answer string, types []booking.DeliveryType) (booking.DeliveryType, error) {
	for i, t := range types {
		if answer == fmt.Sprint(i+1) {
			return t, nil
		}
	}
	return booking.ParseDeliveryType(answer)
}

// printHistory writes the order history, newest first.
func printHistory(out io.Writer, views []queries.OrderView) {
	if len(views) == 0 {
		_, _ = fmt.Fprintln(out, "No orders yet.")
		return
	}
	for _, v := range views {
		_, _ = fmt.Fprintf(out, "%-10s %-20s %-18s %s\n", v.StatusLabel, v.ItemName, v.DeliveryTypeLabel, v.RelativeAge)
		_, _ = fmt.Fprintf(out, "           %s -> %s\n", v.PickupAddress, v.DropOffAddress)
	}
}
