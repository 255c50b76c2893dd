package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
	"github.com/olusolaa/cfn-stack-sync/internal/core/ports/mocks"
	"github.com/olusolaa/cfn-stack-sync/internal/core/service"
	apperrors "github.com/olusolaa/cfn-stack-sync/internal/errors"
)

func TestStackReader_ReadStack(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		provider := mocks.NewStackProvider(t)
		logger, _ := newTestLogger(t)
		want := stack("app", domain.StatusCreateComplete, domain.Parameter{Key: "Env", Value: "dev"})
		provider.On("DescribeStack", ctx, "app").Return(want, nil).Once()

		got, err := service.NewStackReader(provider, logger).ReadStack(ctx, "app")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found is absent", func(t *testing.T) {
		provider := mocks.NewStackProvider(t)
		logger, _ := newTestLogger(t)
		provider.On("DescribeStack", ctx, "missing").Return(nil, notFound("missing")).Once()

		got, err := service.NewStackReader(provider, logger).ReadStack(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		provider := mocks.NewStackProvider(t)
		logger, _ := newTestLogger(t)
		provider.On("DescribeStack", ctx, "app").Return(func(context.Context, string) (*domain.StackDescriptor, error) {
			return stack("app", domain.StatusUpdateComplete, domain.Parameter{Key: "A", Value: "1"}), nil
		}).Twice()

		reader := service.NewStackReader(provider, logger)
		first, err := reader.ReadStack(ctx, "app")
		require.NoError(t, err)
		second, err := reader.ReadStack(ctx, "app")
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.NotSame(t, first, second)
	})

	classification := []struct {
		name     string
		err      error
		wantCode apperrors.Code
		wantMsg  string
	}{
		{
			name:     "credentials",
			err:      providerErr(apperrors.CodeCredentialsInvalid, "SignatureDoesNotMatch"),
			wantCode: apperrors.CodeCredentialsInvalid,
			wantMsg:  "The given credentials are invalid",
		},
		{
			name:     "permissions",
			err:      providerErr(apperrors.CodePermissionDenied, "AccessDenied"),
			wantCode: apperrors.CodePermissionDenied,
			wantMsg:  "do not have adequate permissions to describe stacks",
		},
		{
			name:     "other",
			err:      providerErr(apperrors.CodeProviderError, "Rate exceeded"),
			wantCode: apperrors.CodeProviderError,
			wantMsg:  "Failed to retrieve stack app: Rate exceeded",
		},
	}
	for _, tt := range classification {
		t.Run(tt.name, func(t *testing.T) {
			provider := mocks.NewStackProvider(t)
			logger, _ := newTestLogger(t)
			provider.On("DescribeStack", ctx, "app").Return(nil, tt.err).Once()

			got, err := service.NewStackReader(provider, logger).ReadStack(ctx, "app")
			require.Error(t, err)
			assert.Nil(t, got)
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.True(t, appErr.IsUserFacing)
			assert.Contains(t, appErr.Message, tt.wantMsg)
		})
	}
}

func TestStackReader_ReadTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		provider := mocks.NewStackProvider(t)
		logger, _ := newTestLogger(t)
		provider.On("GetOriginalTemplate", ctx, "app").Return("Resources: {}", nil).Once()

		body, err := service.NewStackReader(provider, logger).ReadTemplate(ctx, "app")
		require.NoError(t, err)
		assert.Equal(t, "Resources: {}", body)
	})

	t.Run("permission denied", func(t *testing.T) {
		provider := mocks.NewStackProvider(t)
		logger, _ := newTestLogger(t)
		provider.On("GetOriginalTemplate", ctx, "app").Return("", providerErr(apperrors.CodePermissionDenied, "AccessDenied")).Once()

		_, err := service.NewStackReader(provider, logger).ReadTemplate(ctx, "app")
		assert.True(t, apperrors.Is(err, apperrors.CodePermissionDenied))
	})
}
