package service

import (
	"errors"
	"fmt"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
	apperrors "github.com/olusolaa/cfn-stack-sync/internal/errors"
)

// StatusRejectedError is wrapped by STATUS_REJECTED errors.
type StatusRejectedError struct {
	Role   domain.StackRole
	Status domain.StackStatus
}

func (e *StatusRejectedError) Error() string {
	return fmt.Sprintf("%s stack status %s is not ready", e.Role, e.Status)
}

// ProvisioningFailedError is wrapped by PROVISIONING_FAILED errors.
type ProvisioningFailedError struct {
	StackName string
	Status    domain.StackStatus
}

func (e *ProvisioningFailedError) Error() string {
	return fmt.Sprintf("stack %s reached failed status %s", e.StackName, e.Status)
}

// providerMessage returns the innermost message in err's chain, which is
// the text the provider sent back.
func providerMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

// classifyAccessError reclassifies credential and permission failures into
// user-facing errors. ok is false for every other error.
func classifyAccessError(err error, operation string) (*apperrors.AppError, bool) {
	switch apperrors.GetCode(err) {
	case apperrors.CodeCredentialsInvalid:
		return apperrors.WrapUserFacing(err, apperrors.CodeCredentialsInvalid,
			"The given credentials are invalid",
			"Check the AWS access key, secret key and session token available to the process."), true
	case apperrors.CodePermissionDenied:
		return apperrors.WrapUserFacing(err, apperrors.CodePermissionDenied,
			fmt.Sprintf("The given credentials do not have adequate permissions to %s", operation),
			"Grant the calling identity the required CloudFormation permissions."), true
	}
	return nil, false
}
