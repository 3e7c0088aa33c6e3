package commands

import (
	"errors"
	"fmt"

	"sendsafe/internal/core/domain/model/booking"
	"sendsafe/internal/core/domain/model/kernel"
	"sendsafe/internal/pkg/guard"
)

var (
	ErrConfirmBookingCommandIsNotConstructed = errors.New(
		"ConfirmBookingCommand must be created via NewConfirmBookingCommand constructor",
	)
)

// ConfirmBookingCommand is the customer's confirmation on the summary screen:
// hand the draft to the dispatcher and remember it as an order.
//
// Example:
//
//	draft, err := wizard.Submit()
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewConfirmBookingCommand(kernel.NewID(), draft)
//	if err != nil {
//	    return fmt.Errorf("invalid booking: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrHandOffFailed) {
//	    // tell the user the chat could not be opened
//	}
//	fmt.Printf("Order %s sent via %s", result.Order.ID(), result.Link)
type ConfirmBookingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	draft   booking.Draft

	guard guard.ConstructorGuard
}

// NewConfirmBookingCommand creates a confirmation for a finalized draft.
// Validates the order identifier and every booking step of the draft.
func NewConfirmBookingCommand(orderID kernel.ID, draft booking.Draft) (ConfirmBookingCommand, error) {
	cmd := ConfirmBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDraft(draft),
	); err != nil {
		return ConfirmBookingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmBookingCommand) Validate() error {
	return c.guard.Validate(ErrConfirmBookingCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c ConfirmBookingCommand) OrderID() kernel.ID {
	return c.orderID
}

// Draft returns the finalized booking draft.
func (c ConfirmBookingCommand) Draft() booking.Draft {
	return c.draft
}

func (c *ConfirmBookingCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmBookingCommand) setDraft(draft booking.Draft) error {
	if err := booking.ValidateDraft(draft); err != nil {
		return fmt.Errorf("booking draft: %w", err)
	}
	c.draft = draft
	return nil
}
