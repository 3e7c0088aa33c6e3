package commands

import (
	"errors"

	"sendsafe/internal/pkg/guard"
)

// FlushPendingOrdersCommand retries every order append parked in the pending queue.
//
// Example:
//
//	cmd := NewFlushPendingOrdersCommand()
//	flushed, err := handler.Handle(ctx, cmd)
type FlushPendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrFlushPendingOrdersCommandIsNotConstructed = errors.New(
		"FlushPendingOrdersCommand must be created via NewFlushPendingOrdersCommand constructor",
	)
)

// NewFlushPendingOrdersCommand creates the parameterless flush command.
func NewFlushPendingOrdersCommand() FlushPendingOrdersCommand {
	return FlushPendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c FlushPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrFlushPendingOrdersCommandIsNotConstructed)
}
