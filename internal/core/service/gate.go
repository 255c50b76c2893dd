package service

import (
	"context"
	"fmt"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
	"github.com/olusolaa/cfn-stack-sync/internal/core/ports"
	apperrors "github.com/olusolaa/cfn-stack-sync/internal/errors"
)

// StatusGate decides whether a stack is in a state it may be used in.
type StatusGate struct {
	logger ports.Logger
}

func NewStatusGate(logger ports.Logger) *StatusGate {
	return &StatusGate{logger: logger}
}

// CheckReady fails with STATUS_REJECTED unless desc is in a ready status.
// ignoreStatus only relaxes the check for the source role.
func (g *StatusGate) CheckReady(ctx context.Context, desc *domain.StackDescriptor, role domain.StackRole, ignoreStatus bool) error {
	if desc == nil {
		return apperrors.New(apperrors.CodeInternal, fmt.Sprintf("no %s stack to check", role))
	}

	if ignoreStatus && role == domain.RoleSource {
		g.logger.Infof(ctx, "Ignored %s stack status %s", role, desc.Status)
		return nil
	}

	if desc.Status.IsReady() {
		g.logger.Infof(ctx, "Accepted %s stack status %s", role, desc.Status)
		return nil
	}

	suggestion := fmt.Sprintf("Wait for stack %s to settle in a completed state and retry.", desc.Name)
	if role == domain.RoleSource {
		suggestion += " Set ignore-source-stack-status to bypass this check for the source stack."
	}
	return apperrors.WrapUserFacing(
		&StatusRejectedError{Role: role, Status: desc.Status},
		apperrors.CodeStatusRejected,
		fmt.Sprintf("%s stack %s has unacceptable status %s", roleTitle(role), desc.Name, desc.Status),
		suggestion,
	)
}

func roleTitle(role domain.StackRole) string {
	switch role {
	case domain.RoleSource:
		return "Source"
	case domain.RoleTarget:
		return "Target"
	}
	return string(role)
}
