package order_test

import (
	"testing"

	"sendsafe/internal/core/domain/model/order"
	"sendsafe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Presentation(t *testing.T) {
	tests := []struct {
		status order.Status
		label  string
		tone   order.Tone
	}{
		{status: order.Pending, label: "PENDING", tone: order.ToneWarning},
		{status: order.InTransit, label: "IN TRANSIT", tone: order.ToneInfo},
		{status: order.Delivered, label: "DELIVERED", tone: order.ToneSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			require.NoError(t, tt.status.Validate())
			assert.Equal(t, tt.label, tt.status.Label())
			assert.Equal(t, tt.tone, tt.status.Tone())
		})
	}

	assert.Equal(t, order.ToneWarning, order.Status("unknown").Tone())
}

func TestParseStatus(t *testing.T) {
	got, err := order.ParseStatus("In-Transit")
	require.NoError(t, err)
	assert.Equal(t, order.InTransit, got)

	got, err = order.ParseStatus("")
	require.NoError(t, err)
	assert.Equal(t, order.Pending, got)

	_, err = order.ParseStatus("cancelled")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
