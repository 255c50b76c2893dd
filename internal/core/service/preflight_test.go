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

func TestVerifyIdentity(t *testing.T) {
	logger, buf := newTestLogger(t)
	identity := mocks.NewIdentityProvider(t)
	want := domain.CallerIdentity{Account: "123456789012", ARN: "arn:aws:iam::123456789012:user/ci"}
	identity.On("CallerIdentity", context.Background()).Return(want, nil).Once()

	got, err := service.VerifyIdentity(context.Background(), identity, logger)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Contains(t, buf.String(), "arn:aws:iam::123456789012:user/ci")
}

func TestVerifyIdentity_Errors(t *testing.T) {
	tests := []struct {
		name    string
		code    apperrors.Code
		want    apperrors.Code
		message string
	}{
		{name: "credentials", code: apperrors.CodeCredentialsInvalid, want: apperrors.CodeCredentialsInvalid, message: "The given credentials are invalid"},
		{name: "permissions", code: apperrors.CodePermissionDenied, want: apperrors.CodePermissionDenied, message: "adequate permissions to resolve the caller identity"},
		{name: "other", code: apperrors.CodeProviderError, want: apperrors.CodeProviderError, message: "Failed to resolve the caller identity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := newTestLogger(t)
			identity := mocks.NewIdentityProvider(t)
			identity.On("CallerIdentity", context.Background()).
				Return(domain.CallerIdentity{}, providerErr(tt.code, "sts said no")).Once()

			_, err := service.VerifyIdentity(context.Background(), identity, logger)

			assert.True(t, apperrors.Is(err, tt.want))
			msg, _, userFacing := apperrors.GetUserFacingMessage(err)
			assert.True(t, userFacing)
			assert.Contains(t, msg, tt.message)
		})
	}
}
