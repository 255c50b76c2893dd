package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
	"github.com/olusolaa/cfn-stack-sync/internal/core/ports/mocks"
	"github.com/olusolaa/cfn-stack-sync/internal/core/service"
	apperrors "github.com/olusolaa/cfn-stack-sync/internal/errors"
)

func syncInput(exists bool) service.SyncInput {
	return service.SyncInput{
		TargetStackName: "target",
		TemplateBody:    "Resources: {}",
		Parameters:      domain.NewParameterSet(domain.Parameter{Key: "Env", Value: "prod"}),
		RoleARN:         "arn:aws:iam::123456789012:role/cfn",
		TargetExists:    exists,
	}
}

func TestStackSynchronizer_CreatesMissingTarget(t *testing.T) {
	ctx := context.Background()
	provider := mocks.NewStackProvider(t)
	logger, _ := newTestLogger(t)

	var captured domain.ProvisionRequest
	provider.On("CreateStack", ctx, mock.AnythingOfType("domain.ProvisionRequest")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(domain.ProvisionRequest) }).
		Return("stack-id-1", nil).Once()

	op, id, err := service.NewStackSynchronizer(provider, logger).Synchronize(ctx, syncInput(false))
	require.NoError(t, err)

	assert.Equal(t, domain.OperationCreate, op)
	assert.Equal(t, "stack-id-1", id)
	assert.Equal(t, "target", captured.StackName)
	assert.Equal(t, "Resources: {}", captured.TemplateBody)
	assert.Equal(t, domain.OnFailureDelete, captured.OnFailure)
	assert.Equal(t, []domain.Capability{
		domain.CapabilityIAM, domain.CapabilityNamedIAM, domain.CapabilityAutoExpand,
	}, captured.Capabilities)
	assert.Equal(t, "arn:aws:iam::123456789012:role/cfn", captured.RoleARN)
	assert.Equal(t, map[string]string{"Env": "prod"}, captured.Parameters.Map())
	assert.NotEmpty(t, captured.ClientRequestToken)
	provider.AssertNotCalled(t, "UpdateStack", mock.Anything, mock.Anything)
}

func TestStackSynchronizer_UpdatesExistingTarget(t *testing.T) {
	ctx := context.Background()
	provider := mocks.NewStackProvider(t)
	logger, _ := newTestLogger(t)

	provider.On("UpdateStack", ctx, mock.MatchedBy(func(req domain.ProvisionRequest) bool {
		return req.StackName == "target" &&
			req.OnFailure == "" &&
			len(req.Capabilities) == 3 &&
			req.TemplateBody == "Resources: {}"
	})).Return("stack-id-2", nil).Once()

	op, id, err := service.NewStackSynchronizer(provider, logger).Synchronize(ctx, syncInput(true))
	require.NoError(t, err)
	assert.Equal(t, domain.OperationUpdate, op)
	assert.Equal(t, "stack-id-2", id)
	provider.AssertNotCalled(t, "CreateStack", mock.Anything, mock.Anything)
}

func TestStackSynchronizer_UniqueTokens(t *testing.T) {
	ctx := context.Background()
	provider := mocks.NewStackProvider(t)
	logger, _ := newTestLogger(t)

	tokens := map[string]struct{}{}
	provider.On("UpdateStack", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			tokens[args.Get(1).(domain.ProvisionRequest).ClientRequestToken] = struct{}{}
		}).
		Return("id", nil).Twice()

	s := service.NewStackSynchronizer(provider, logger)
	_, _, err := s.Synchronize(ctx, syncInput(true))
	require.NoError(t, err)
	_, _, err = s.Synchronize(ctx, syncInput(true))
	require.NoError(t, err)
	assert.Len(t, tokens, 2)
}

func TestStackSynchronizer_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("validation error becomes provisioning error", func(t *testing.T) {
		provider := mocks.NewStackProvider(t)
		logger, _ := newTestLogger(t)
		provider.On("CreateStack", ctx, mock.Anything).
			Return("", providerErr(apperrors.CodeProviderError, "Template format error: unsupported structure.")).Once()

		_, _, err := service.NewStackSynchronizer(provider, logger).Synchronize(ctx, syncInput(false))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeProvisioningError))
		msg, _, _ := apperrors.GetUserFacingMessage(err)
		assert.Equal(t, "Failed to create target stack target: Template format error: unsupported structure.", msg)
	})

	t.Run("permission denied keeps its code", func(t *testing.T) {
		provider := mocks.NewStackProvider(t)
		logger, _ := newTestLogger(t)
		provider.On("UpdateStack", ctx, mock.Anything).
			Return("", providerErr(apperrors.CodePermissionDenied, "AccessDenied")).Once()

		_, _, err := service.NewStackSynchronizer(provider, logger).Synchronize(ctx, syncInput(true))
		assert.True(t, apperrors.Is(err, apperrors.CodePermissionDenied))
	})
}
