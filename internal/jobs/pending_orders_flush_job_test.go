package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"sendsafe/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFlusher struct{ mock.Mock }

func (m *mockFlusher) Handle(ctx context.Context, cmd commands.FlushPendingOrdersCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestPendingOrdersFlushJob_Flush(t *testing.T) {
	var buf bytes.Buffer
	flusher := new(mockFlusher)
	flusher.On("Handle", mock.Anything, mock.Anything).Return(2, errors.New("still down")).Once()

	job := NewPendingOrdersFlushJob(flusher, "", newTestLogger(&buf))
	job.flush()

	flusher.AssertExpectations(t)
	assert.Contains(t, buf.String(), "Pending orders stored")
	assert.Contains(t, buf.String(), "count=2")
	assert.Contains(t, buf.String(), "still down")
}

func TestPendingOrdersFlushJob_FlushEmptyQueueIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	flusher := new(mockFlusher)
	flusher.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Once()

	job := NewPendingOrdersFlushJob(flusher, "", newTestLogger(&buf))
	job.flush()

	assert.Empty(t, buf.String())
}

func TestPendingOrdersFlushJob_InvalidSchedule(t *testing.T) {
	job := NewPendingOrdersFlushJob(new(mockFlusher), "every now and then", newTestLogger(new(bytes.Buffer)))

	require.Error(t, job.Start())
}

func TestJobManager_StartStop(t *testing.T) {
	manager := NewJobManager(new(mockFlusher), DefaultFlushSchedule, newTestLogger(new(bytes.Buffer)))

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
