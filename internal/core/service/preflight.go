package service

import (
	"context"
	"fmt"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
	"github.com/olusolaa/cfn-stack-sync/internal/core/ports"
	apperrors "github.com/olusolaa/cfn-stack-sync/internal/errors"
)

// VerifyIdentity resolves the caller identity once so that missing or
// rejected credentials fail before the source stack is read.
func VerifyIdentity(ctx context.Context, identity ports.IdentityProvider, logger ports.Logger) (domain.CallerIdentity, error) {
	id, err := identity.CallerIdentity(ctx)
	if err != nil {
		if appErr, ok := classifyAccessError(err, "resolve the caller identity"); ok {
			return domain.CallerIdentity{}, appErr
		}
		return domain.CallerIdentity{}, apperrors.WrapUserFacing(err, apperrors.CodeProviderError,
			fmt.Sprintf("Failed to resolve the caller identity: %s", providerMessage(err)),
			"Check network access to AWS STS and the configured region.")
	}

	logger.Infof(ctx, "Running as %s in account %s", id.ARN, id.Account)
	return id, nil
}
