package service

import (
	"context"
	"fmt"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
	"github.com/olusolaa/cfn-stack-sync/internal/core/ports"
	apperrors "github.com/olusolaa/cfn-stack-sync/internal/errors"
)

// StackReader reads stacks through a StackProvider and classifies lookup
// failures.
type StackReader struct {
	provider ports.StackProvider
	logger   ports.Logger
}

func NewStackReader(provider ports.StackProvider, logger ports.Logger) *StackReader {
	return &StackReader{provider: provider, logger: logger}
}

// ReadStack issues one lookup for name. A stack that does not exist yields
// a nil descriptor and no error.
func (r *StackReader) ReadStack(ctx context.Context, name string) (*domain.StackDescriptor, error) {
	desc, err := r.provider.DescribeStack(ctx, name)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeStackNotFound) {
			r.logger.Debugf(ctx, "Stack %s does not exist", name)
			return nil, nil
		}
		return nil, r.classify(err, "describe stacks", name)
	}
	if desc == nil {
		return nil, nil
	}
	return desc, nil
}

// ReadTemplate fetches the original, unprocessed template body of name.
func (r *StackReader) ReadTemplate(ctx context.Context, name string) (string, error) {
	body, err := r.provider.GetOriginalTemplate(ctx, name)
	if err != nil {
		return "", r.classify(err, "read stack templates", name)
	}
	r.logger.Debugf(ctx, "Retrieved original template of stack %s (%d bytes)", name, len(body))
	return body, nil
}

func (r *StackReader) classify(err error, operation, name string) error {
	if accessErr, ok := classifyAccessError(err, operation); ok {
		return accessErr
	}
	return apperrors.WrapUserFacing(err, apperrors.CodeProviderError,
		fmt.Sprintf("Failed to retrieve stack %s: %s", name, providerMessage(err)), "")
}
