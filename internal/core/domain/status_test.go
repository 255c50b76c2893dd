package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
)

func TestStackStatus_TerminalExcludesInProgress(t *testing.T) {
	for _, s := range domain.AllStatuses() {
		if strings.Contains(string(s), "_IN_PROGRESS") {
			assert.False(t, s.IsTerminal(), "status %s must not be terminal", s)
		}
	}
}

func TestStackStatus_ReadyIsTerminalAndNotFailed(t *testing.T) {
	readyCount := 0
	for _, s := range domain.AllStatuses() {
		if !s.IsReady() {
			continue
		}
		readyCount++
		assert.True(t, s.IsTerminal(), "ready status %s must be terminal", s)
		assert.False(t, s.IsFailed(), "ready status %s must not be failed", s)
	}
	assert.Equal(t, 6, readyCount)
}

func TestStackStatus_Classification(t *testing.T) {
	tests := []struct {
		status   domain.StackStatus
		ready    bool
		terminal bool
		failed   bool
	}{
		{domain.StatusCreateComplete, true, true, false},
		{domain.StatusUpdateRollbackComplete, true, true, false},
		{domain.StatusCreateInProgress, false, false, false},
		{domain.StatusCreateFailed, false, true, true},
		{domain.StatusUpdateRollbackFailed, false, true, true},
		{domain.StatusDeleteComplete, false, true, false},
		{domain.StatusReviewInProgress, false, false, false},
		{domain.StatusUpdateCompleteCleanupInProgress, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.ready, tt.status.IsReady())
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
			assert.Equal(t, tt.failed, tt.status.IsFailed())
		})
	}
}

func TestParseStackStatus(t *testing.T) {
	s, ok := domain.ParseStackStatus("UPDATE_COMPLETE")
	assert.True(t, ok)
	assert.Equal(t, domain.StatusUpdateComplete, s)

	_, ok = domain.ParseStackStatus("SOMETHING_ELSE")
	assert.False(t, ok)
}
