package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "sendsafe/internal/adapters/in/http"
	"sendsafe/internal/adapters/out/handoff"
	"sendsafe/internal/adapters/out/kv"
	"sendsafe/internal/adapters/out/kv/orderrepo"
	"sendsafe/internal/core/application/usecases/commands"
	"sendsafe/internal/core/application/usecases/queries"
	"sendsafe/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

const completeDraftJSON = `{
	"pickupAddress": "12 Allen Avenue, Ikeja",
	"dropOffAddress": "3 Admiralty Way, Lekki",
	"itemName": "Laptop",
	"itemDescription": "14 inch, boxed",
	"senderName": "Ada Obi",
	"senderPhone": "08031234567",
	"receiverName": "Tunde Bello",
	"receiverPhone": "08097654321",
	"deliveryType": "Instant"
}`

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := func() time.Time { return now }

	formatter := services.NewSummaryFormatter(services.DefaultTariffs(), services.HandOffTarget{
		BaseURL:   "https://wa.me",
		Recipient: "+2349154607762",
	})
	repo := orderrepo.NewJSONOrderRepository(kv.NewMemoryStore(), logger)

	server := httpin.NewServer(
		formatter,
		clock,
		commands.NewConfirmBookingCommandHandler(
			formatter, handoff.NewClientHandOff(logger), repo, commands.NewPendingOrders(), clock, logger,
		),
		queries.NewListOrdersQueryHandler(repo, formatter, logger),
		queries.NewGetOrderQueryHandler(repo, formatter),
	)

	e := echo.New()
	httpin.RegisterHandlers(e, server)
	require.NoError(t, httpin.RegisterDocs(e))
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	rec := do(newTestEcho(t), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestGetTariffs(t *testing.T) {
	rec := do(newTestEcho(t), http.MethodGet, "/api/v1/tariffs", "")

	require.Equal(t, http.StatusOK, rec.Code)
	tariffs := decode[[]httpin.Tariff](t, rec)
	assert.Equal(t, []httpin.Tariff{
		{DeliveryType: "Instant", Label: "Instant Delivery", Price: "NGN 6,500", Duration: "1-2 hours"},
		{DeliveryType: "Standard", Label: "Standard Delivery", Price: "NGN 3,500", Duration: "24 hours"},
	}, tariffs)
}

func TestAdvanceWizard(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodPost, "/api/v1/wizard/advance",
		`{"step":1,"draft":{"pickupAddress":"12 Allen Avenue","dropOffAddress":"3 Admiralty Way"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	state := decode[httpin.WizardState](t, rec)
	assert.EqualValues(t, 2, state.Step)
	assert.Equal(t, "Item Details", state.StepTitle)
	assert.Equal(t, "12 Allen Avenue", state.Draft.PickupAddress)
}

func TestAdvanceWizard_BlankSenderPhone(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodPost, "/api/v1/wizard/advance",
		`{"step":3,"draft":{"senderName":"Ada","senderPhone":"   ","receiverName":"Tunde","receiverPhone":"0809"}}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	problem := decode[httpin.ValidationProblem](t, rec)
	require.Len(t, problem.Issues, 1)
	assert.EqualValues(t, 3, problem.Issues[0].Step)
	assert.Equal(t, []string{"senderPhone"}, problem.Issues[0].Missing)
}

func TestAdvanceWizard_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing step", `{"draft":{}}`},
		{"step out of range", `{"step":7}`},
		{"unknown delivery type", `{"step":4,"draft":{"deliveryType":"Express"}}`},
		{"malformed json", `{"step":`},
	}

	e := newTestEcho(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/api/v1/wizard/advance", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decode[httpin.Error](t, rec).Message)
		})
	}
}

func TestRetreatWizard_KeepsDraft(t *testing.T) {
	rec := do(newTestEcho(t), http.MethodPost, "/api/v1/wizard/retreat",
		`{"step":3,"draft":{"itemName":"Laptop"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	state := decode[httpin.WizardState](t, rec)
	assert.EqualValues(t, 2, state.Step)
	assert.Equal(t, "Laptop", state.Draft.ItemName)
}

func TestSubmitWizard(t *testing.T) {
	rec := do(newTestEcho(t), http.MethodPost, "/api/v1/wizard/submit",
		`{"step":4,"draft":`+completeDraftJSON+`}`)

	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[httpin.BookingSummary](t, rec)
	assert.Equal(t, "Instant Delivery", summary.DeliveryType)
	assert.Equal(t, "NGN 6,500", summary.Tariff.Price)
	assert.Contains(t, summary.Message, "Special Instructions: None")
	assert.True(t, strings.HasPrefix(summary.Link, "https://wa.me/2349154607762?text=SendSafe%20Delivery"))
}

func TestSubmitWizard_NotOnLastStep(t *testing.T) {
	rec := do(newTestEcho(t), http.MethodPost, "/api/v1/wizard/submit",
		`{"step":2,"draft":`+completeDraftJSON+`}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubmitWizard_RevalidatesEarlierSteps(t *testing.T) {
	rec := do(newTestEcho(t), http.MethodPost, "/api/v1/wizard/submit",
		`{"step":4,"draft":{"itemName":"Laptop","deliveryType":"Standard"}}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	problem := decode[httpin.ValidationProblem](t, rec)
	require.Len(t, problem.Issues, 3)
	assert.Equal(t, []string{"pickupAddress", "dropOffAddress"}, problem.Issues[0].Missing)
	assert.Equal(t, []string{"itemDescription"}, problem.Issues[1].Missing)
	assert.Equal(t, []string{"senderName", "senderPhone", "receiverName", "receiverPhone"}, problem.Issues[2].Missing)
}

func TestConfirmBookingThenHistory(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodPost, "/api/v1/bookings", `{"draft":`+completeDraftJSON+`}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	confirmation := decode[httpin.BookingConfirmation](t, rec)
	assert.True(t, confirmation.Persisted)
	assert.NotEmpty(t, confirmation.Order.ID)
	assert.Equal(t, "PENDING", confirmation.Order.StatusLabel)
	assert.Equal(t, "0 minutes ago", confirmation.Order.RelativeAge)
	assert.Contains(t, confirmation.Link, "?text=")

	rec = do(e, http.MethodGet, "/api/v1/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	views := decode[[]queries.OrderView](t, rec)
	require.Len(t, views, 1)
	assert.Equal(t, confirmation.Order.ID, views[0].ID)

	rec = do(e, http.MethodGet, "/api/v1/orders/"+confirmation.Order.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[queries.OrderView](t, rec)
	assert.Equal(t, "Laptop", view.ItemName)
	assert.Equal(t, "October 17, 2026 at 12:00 PM", view.FullDate)
}

func TestConfirmBooking_IncompleteDraft(t *testing.T) {
	rec := do(newTestEcho(t), http.MethodPost, "/api/v1/bookings", `{"draft":{"itemName":"Laptop"}}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListOrders_Empty(t *testing.T) {
	rec := do(newTestEcho(t), http.MethodGet, "/api/v1/orders", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetOrder_NotFound(t *testing.T) {
	rec := do(newTestEcho(t), http.MethodGet, "/api/v1/orders/does-not-exist", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOpenAPIDocument(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodGet, "/openapi.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := decode[map[string]any](t, rec)
	assert.Equal(t, "3.0.3", doc["openapi"])
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/v1/orders/{orderId}")

	rec = do(e, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "SendSafe booking API")
}

func TestGetSwagger(t *testing.T) {
	doc, err := httpin.GetSwagger()

	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/api/v1/bookings"))
}
