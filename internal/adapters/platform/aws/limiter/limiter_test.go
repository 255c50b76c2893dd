package limiter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/cfn-stack-sync/internal/core/ports/mocks"
)

func TestNew_RateSelection(t *testing.T) {
	tests := []struct {
		name     string
		rps      int
		expected int
		warns    bool
	}{
		{name: "zero uses default", rps: 0, expected: DefaultRequestsPerSecond},
		{name: "configured value", rps: 12, expected: 12},
		{name: "lower bound", rps: MinRequestsPerSecond, expected: MinRequestsPerSecond},
		{name: "upper bound", rps: MaxRequestsPerSecond, expected: MaxRequestsPerSecond},
		{name: "negative falls back", rps: -3, expected: DefaultRequestsPerSecond, warns: true},
		{name: "too large falls back", rps: 500, expected: DefaultRequestsPerSecond, warns: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := mocks.NewLogger(t)
			logger.On("Debugf", mock.Anything, mock.Anything, mock.Anything).Return()
			if tt.warns {
				logger.On("Warnf", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
			}

			l := New(tt.rps, logger)
			assert.Equal(t, tt.expected, l.RequestsPerSecond())
		})
	}
}

func TestWait(t *testing.T) {
	l := New(10, nil)
	require.NoError(t, l.Wait(context.Background(), nil))
}

func TestWait_CanceledContext(t *testing.T) {
	l := New(MinRequestsPerSecond, nil)
	require.NoError(t, l.Wait(context.Background(), nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := l.Wait(ctx, nil)
	assert.Error(t, err)
}
