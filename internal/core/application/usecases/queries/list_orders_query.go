package queries

import (
	"errors"
	"time"

	"sendsafe/internal/pkg/errs"
	"sendsafe/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves the order history, newest first, rendered
// relative to a reference instant.
//
// Example:
//
//	query, err := NewListOrdersQuery(time.Now())
//	if err != nil {
//	    return err
//	}
//	views, err := handler.Handle(ctx, query)
//	for _, v := range views {
//	    fmt.Printf("%s  %s  %s\n", v.ItemName, v.StatusLabel, v.RelativeAge)
//	}
type ListOrdersQuery struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a history query evaluated at now.
func NewListOrdersQuery(now time.Time) (ListOrdersQuery, error) {
	if now.IsZero() {
		return ListOrdersQuery{}, errs.NewValueIsRequiredError("now")
	}
	return ListOrdersQuery{now: now, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Now returns the instant ages are computed against.
func (q ListOrdersQuery) Now() time.Time {
	return q.now
}
