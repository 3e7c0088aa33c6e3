package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   int
		logged bool
	}{
		{name: "completed", err: nil, want: 0},
		{name: "aborted", err: fmt.Errorf("reading answer: %w", errAborted), want: 0},
		{name: "failed", err: errors.New("store unavailable"), want: 1, logged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			assert.Equal(t, tt.want, exitCode(logger, tt.err))
			if tt.logged {
				assert.Contains(t, buf.String(), "store unavailable")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
