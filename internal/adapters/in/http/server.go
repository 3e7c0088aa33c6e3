// Package http exposes the booking wizard, booking confirmation and order
// history over a JSON API served with echo.
package http

import (
	"errors"
	"net/http"

	"sendsafe/internal/core/application/usecases/commands"
	"sendsafe/internal/core/application/usecases/queries"
	"sendsafe/internal/core/domain/model/booking"
	"sendsafe/internal/core/domain/model/kernel"
	"sendsafe/internal/core/domain/services"
	"sendsafe/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
//
// The wizard is stateless here: the client sends its step and draft with
// every call and receives the new state back.
type Server struct {
	formatter services.SummaryFormatter
	now       commands.Clock

	// Command handlers
	confirmBookingHandler commands.ConfirmBookingCommandHandler

	// Query handlers
	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	formatter services.SummaryFormatter,
	now commands.Clock,
	confirmBookingHandler commands.ConfirmBookingCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		formatter:             formatter,
		now:                   now,
		confirmBookingHandler: confirmBookingHandler,
		listOrdersHandler:     listOrdersHandler,
		getOrderHandler:       getOrderHandler,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetTariffs handles GET /api/v1/tariffs - the price and duration of every delivery type.
func (s *Server) GetTariffs(ctx echo.Context) error {
	types := booking.DeliveryTypes()
	response := make([]Tariff, len(types))
	for i, t := range types {
		quote := s.formatter.Quote(t)
		response[i] = Tariff{
			DeliveryType: t.String(),
			Label:        t.Label(),
			Price:        quote.Price,
			Duration:     quote.Duration,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// AdvanceWizard handles POST /api/v1/wizard/advance.
func (s *Server) AdvanceWizard(ctx echo.Context) error {
	w, err := bindWizard(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	next, err := w.Advance()
	if err != nil {
		return validationFailed(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toWizardState(next))
}

// RetreatWizard handles POST /api/v1/wizard/retreat. The draft comes back unchanged.
func (s *Server) RetreatWizard(ctx echo.Context) error {
	w, err := bindWizard(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toWizardState(w.Retreat()))
}

// SubmitWizard handles POST /api/v1/wizard/submit - finalizes the draft and
// returns the review screen with the hand-off message and link.
func (s *Server) SubmitWizard(ctx echo.Context) error {
	w, err := bindWizard(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	draft, err := w.Submit()
	if errors.Is(err, booking.ErrSubmitOutsideFinalStep) {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}
	if err != nil {
		return validationFailed(ctx, err)
	}

	// The client carried the earlier steps; they are re-checked here.
	if err = booking.ValidateDraft(draft); err != nil {
		return validationFailed(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BookingSummary{
		Summary: s.formatter.Summarize(draft),
		Message: s.formatter.Message(draft),
		Link:    s.formatter.Link(draft),
	})
}

// ConfirmBooking handles POST /api/v1/bookings - records the order and
// returns the link the client opens to reach the dispatcher.
func (s *Server) ConfirmBooking(ctx echo.Context) error {
	var request ConfirmBookingRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewConfirmBookingCommand(kernel.NewID(), request.Draft)
	if err != nil {
		return validationFailed(ctx, err)
	}

	result, err := s.confirmBookingHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrHandOffFailed) {
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: err.Error(),
		})
	}
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to confirm booking",
		})
	}

	return ctx.JSON(http.StatusCreated, BookingConfirmation{
		Order:     queries.NewOrderView(result.Order, s.formatter, s.now()),
		Link:      result.Link,
		Persisted: result.Persisted,
	})
}

// ListOrders handles GET /api/v1/orders - the order history, newest first.
func (s *Server) ListOrders(ctx echo.Context) error {
	query, err := queries.NewListOrdersQuery(s.now())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	views, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, views)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID string) error {
	id, err := kernel.IDFromString(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id, s.now())
	if err != nil {
		return badRequest(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, view)
}

// bindWizard decodes the client's wizard state.
func bindWizard(ctx echo.Context) (booking.Wizard, error) {
	var state WizardState
	if err := ctx.Bind(&state); err != nil {
		return booking.Wizard{}, err
	}
	return booking.RestoreWizard(state.Step, state.Draft)
}
