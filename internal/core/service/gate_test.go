package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
	"github.com/olusolaa/cfn-stack-sync/internal/core/service"
	apperrors "github.com/olusolaa/cfn-stack-sync/internal/errors"
)

func TestStatusGate_IgnoreStatusBypassesSourceOnly(t *testing.T) {
	logger, _ := newTestLogger(t)
	gate := service.NewStatusGate(logger)
	ctx := context.Background()

	for _, status := range domain.AllStatuses() {
		desc := stack("app", status)

		assert.NoError(t, gate.CheckReady(ctx, desc, domain.RoleSource, true), "source %s", status)

		targetErr := gate.CheckReady(ctx, desc, domain.RoleTarget, true)
		if status.IsReady() {
			assert.NoError(t, targetErr, "target %s", status)
		} else {
			assert.True(t, apperrors.Is(targetErr, apperrors.CodeStatusRejected), "target %s", status)
		}
	}
}

func TestStatusGate_EnforcesReadySet(t *testing.T) {
	logger, _ := newTestLogger(t)
	gate := service.NewStatusGate(logger)
	ctx := context.Background()

	for _, status := range domain.AllStatuses() {
		for _, role := range []domain.StackRole{domain.RoleSource, domain.RoleTarget} {
			err := gate.CheckReady(ctx, stack("app", status), role, false)
			if status.IsReady() {
				assert.NoError(t, err, "%s %s", role, status)
				continue
			}
			require.Error(t, err, "%s %s", role, status)
			var rejected *service.StatusRejectedError
			require.ErrorAs(t, err, &rejected)
			assert.Equal(t, role, rejected.Role)
			assert.Equal(t, status, rejected.Status)
		}
	}
}

func TestStatusGate_Messages(t *testing.T) {
	logger, buf := newTestLogger(t)
	gate := service.NewStatusGate(logger)
	ctx := context.Background()

	err := gate.CheckReady(ctx, stack("src", domain.StatusCreateInProgress), domain.RoleSource, false)
	msg, suggestion, ok := apperrors.GetUserFacingMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Source stack src has unacceptable status CREATE_IN_PROGRESS", msg)
	assert.Contains(t, suggestion, "ignore-source-stack-status")

	require.NoError(t, gate.CheckReady(ctx, stack("src", domain.StatusDeleteFailed), domain.RoleSource, true))
	assert.Contains(t, buf.String(), "Ignored source stack status DELETE_FAILED")
}

func TestStatusGate_NilDescriptor(t *testing.T) {
	logger, _ := newTestLogger(t)
	err := service.NewStatusGate(logger).CheckReady(context.Background(), nil, domain.RoleTarget, false)
	assert.True(t, apperrors.Is(err, apperrors.CodeInternal))
}
