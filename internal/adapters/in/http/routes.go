package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of the booking API, one per operationId.
type ServerInterface interface {
	// GET /health
	GetHealth(ctx echo.Context) error
	// GET /api/v1/tariffs
	GetTariffs(ctx echo.Context) error
	// POST /api/v1/wizard/advance
	AdvanceWizard(ctx echo.Context) error
	// POST /api/v1/wizard/retreat
	RetreatWizard(ctx echo.Context) error
	// POST /api/v1/wizard/submit
	SubmitWizard(ctx echo.Context) error
	// POST /api/v1/bookings
	ConfirmBooking(ctx echo.Context) error
	// GET /api/v1/orders
	ListOrders(ctx echo.Context) error
	// GET /api/v1/orders/{orderId}
	GetOrder(ctx echo.Context, orderID string) error
}

// ServerInterfaceWrapper converts echo contexts to typed handler arguments.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetOrder binds the orderId path parameter.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var orderID string

	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid format for parameter orderId: " + err.Error(),
		})
	}

	return w.Handler.GetOrder(ctx, orderID)
}

// EchoRouter is the subset of echo used to register routes, satisfied by
// *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every API route to the router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET("/health", si.GetHealth)
	router.GET("/api/v1/tariffs", si.GetTariffs)
	router.POST("/api/v1/wizard/advance", si.AdvanceWizard)
	router.POST("/api/v1/wizard/retreat", si.RetreatWizard)
	router.POST("/api/v1/wizard/submit", si.SubmitWizard)
	router.POST("/api/v1/bookings", si.ConfirmBooking)
	router.GET("/api/v1/orders", si.ListOrders)
	router.GET("/api/v1/orders/:orderId", wrapper.GetOrder)
}
