package kernel_test

import (
	"testing"

	"sendsafe/internal/core/domain/model/kernel"
	"sendsafe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id := kernel.NewID()

	require.NoError(t, id.Validate())
	assert.True(t, id.IsUUID())
	assert.False(t, id.IsEqual(kernel.NewID()))
}

func TestIDFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "uuid", input: "550e8400-e29b-41d4-a716-446655440000", want: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "legacy timestamp id", input: "1718000000000", want: "1718000000000"},
		{name: "trims whitespace", input: "  ord-7 ", want: "ord-7"},
		{name: "blank", input: "   ", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.IDFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.String())
		})
	}
}

func TestID_IsUUID(t *testing.T) {
	legacy, err := kernel.IDFromString("1718000000000")
	require.NoError(t, err)

	assert.False(t, legacy.IsUUID())
}

func TestID_ZeroValue(t *testing.T) {
	var id kernel.ID

	require.ErrorIs(t, id.Validate(), kernel.ErrIDIsNotConstructed)
	assert.True(t, id.IsEqual(kernel.ID{}))
}
