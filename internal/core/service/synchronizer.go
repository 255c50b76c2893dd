package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
	"github.com/olusolaa/cfn-stack-sync/internal/core/ports"
	apperrors "github.com/olusolaa/cfn-stack-sync/internal/errors"
)

// SyncInput is everything the synchronizer needs to provision the target.
type SyncInput struct {
	TargetStackName string
	TemplateBody    string
	Parameters      domain.ParameterSet
	RoleARN         string
	TargetExists    bool
}

// StackSynchronizer creates or updates the target stack.
type StackSynchronizer struct {
	provider ports.StackProvider
	logger   ports.Logger
	newToken func() string
}

func NewStackSynchronizer(provider ports.StackProvider, logger ports.Logger) *StackSynchronizer {
	return &StackSynchronizer{
		provider: provider,
		logger:   logger,
		newToken: uuid.NewString,
	}
}

// Synchronize issues a single create or update request. A new stack is
// created with OnFailure=DELETE so a failed first creation leaves nothing
// behind. Rejections are not retried.
func (s *StackSynchronizer) Synchronize(ctx context.Context, in SyncInput) (domain.Operation, string, error) {
	req := domain.ProvisionRequest{
		StackName:          in.TargetStackName,
		TemplateBody:       in.TemplateBody,
		Parameters:         in.Parameters,
		Capabilities:       domain.SyncCapabilities(),
		RoleARN:            in.RoleARN,
		ClientRequestToken: s.newToken(),
	}
	if in.RoleARN != "" {
		s.logger.Debugf(ctx, "Provisioning with service role %s", in.RoleARN)
	}

	if in.TargetExists {
		s.logger.Debugf(ctx, "Updating stack %s with %d parameters (token %s)", in.TargetStackName, in.Parameters.Len(), req.ClientRequestToken)
		stackID, err := s.provider.UpdateStack(ctx, req)
		if err != nil {
			return domain.OperationUpdate, "", s.classify(err, domain.OperationUpdate, in.TargetStackName)
		}
		s.logger.Infof(ctx, "Updated target stack %s", in.TargetStackName)
		return domain.OperationUpdate, stackID, nil
	}

	req.OnFailure = domain.OnFailureDelete
	s.logger.Debugf(ctx, "Creating stack %s with %d parameters (token %s)", in.TargetStackName, in.Parameters.Len(), req.ClientRequestToken)
	stackID, err := s.provider.CreateStack(ctx, req)
	if err != nil {
		return domain.OperationCreate, "", s.classify(err, domain.OperationCreate, in.TargetStackName)
	}
	s.logger.Infof(ctx, "Created target stack %s", in.TargetStackName)
	return domain.OperationCreate, stackID, nil
}

func (s *StackSynchronizer) classify(err error, op domain.Operation, name string) error {
	if accessErr, ok := classifyAccessError(err, fmt.Sprintf("%s stacks", op)); ok {
		return accessErr
	}
	return apperrors.WrapUserFacing(err, apperrors.CodeProvisioningError,
		fmt.Sprintf("Failed to %s target stack %s: %s", op, name, providerMessage(err)),
		"Check the source template and the merged parameters against the target account.")
}
