package queries

import (
	"errors"
	"time"

	"sendsafe/internal/core/domain/model/kernel"
	"sendsafe/internal/pkg/errs"
	"sendsafe/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order for the detail screen.
//
// Example:
//
//	id, _ := kernel.IDFromString(c.Param("orderId"))
//	query, err := NewGetOrderQuery(id, time.Now())
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return c.NoContent(http.StatusNotFound)
//	}
type GetOrderQuery struct {
	id  kernel.ID
	now time.Time

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a detail query for the order with the given id.
func NewGetOrderQuery(id kernel.ID, now time.Time) (GetOrderQuery, error) {
	var nowErr error
	if now.IsZero() {
		nowErr = errs.NewValueIsRequiredError("now")
	}
	if err := errors.Join(id.Validate(), nowErr); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{id: id, now: now, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// ID returns the requested order id.
func (q GetOrderQuery) ID() kernel.ID {
	return q.id
}

// Now returns the instant ages are computed against.
func (q GetOrderQuery) Now() time.Time {
	return q.now
}
