package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"

	"github.com/olusolaa/cfn-stack-sync/internal/errors"
)

var credentialErrorCodes = map[string]struct{}{
	"SignatureDoesNotMatch":       {},
	"InvalidClientTokenId":        {},
	"IncompleteSignature":         {},
	"InvalidSignatureException":   {},
	"UnrecognizedClientException": {},
	"MissingAuthenticationToken":  {},
	"ExpiredToken":                {},
	"ExpiredTokenException":       {},
}

var permissionErrorCodes = map[string]struct{}{
	"AccessDenied":          {},
	"AccessDeniedException": {},
	"UnauthorizedOperation": {},
	"AuthorizationError":    {},
}

// HandleAWSError maps an error returned by an AWS API call to an application
// error code.
// service and operation name the failed call (e.g. "CloudFormation",
// "DescribeStacks"); target is the stack name or principal it was made for.
func HandleAWSError(ctx context.Context, service, operation, target string, err error) error {
	if err == nil {
		return errors.New(errors.CodeInternal, fmt.Sprintf("unexpected nil error in AWS error handler for %s %s", service, operation))
	}

	if ctx != nil && ctx.Err() != nil {
		return errors.Wrap(ctx.Err(), errors.CodeProviderError,
			fmt.Sprintf("context canceled during AWS %s %s call", service, operation))
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, errors.CodeProviderError,
			fmt.Sprintf("context canceled during AWS %s %s call", service, operation))
	}

	code, message := apiErrorDetails(err)

	if _, ok := credentialErrorCodes[code]; ok || isCredentialRetrievalError(err) {
		return errors.Wrap(err, errors.CodeCredentialsInvalid,
			fmt.Sprintf("AWS rejected the credentials for %s %s", service, operation))
	}

	if _, ok := permissionErrorCodes[code]; ok {
		return errors.Wrap(err, errors.CodePermissionDenied,
			fmt.Sprintf("AWS denied %s %s on %s", service, operation, target))
	}

	if isStackNotFound(code, message) {
		return errors.Wrap(err, errors.CodeStackNotFound,
			fmt.Sprintf("stack '%s' does not exist", target))
	}

	return errors.Wrap(err, errors.CodeProviderError,
		fmt.Sprintf("AWS %s %s failed for '%s'", service, operation, target))
}

// apiErrorDetails extracts the service error code and message. Errors that
// do not come from an AWS API response yield an empty code.
func apiErrorDetails(err error) (string, string) {
	var apiErr smithy.APIError
	if stderrs.As(err, &apiErr) && apiErr != nil {
		return apiErr.ErrorCode(), apiErr.ErrorMessage()
	}

	var coded interface{ ErrorCode() string }
	if stderrs.As(err, &coded) && coded != nil {
		return coded.ErrorCode(), err.Error()
	}

	return "", err.Error()
}

// CloudFormation reports a missing stack as a ValidationError whose message
// ends in "does not exist"; other validation errors share the code.
func isStackNotFound(code, message string) bool {
	return code == "ValidationError" && strings.Contains(message, "does not exist")
}

// The SDK fails before sending a request when no credential source resolves.
func isCredentialRetrievalError(err error) bool {
	return strings.Contains(err.Error(), "failed to retrieve credentials") ||
		strings.Contains(err.Error(), "no EC2 IMDS role found")
}

// DefaultErrorHandler implements the shared ErrorHandler interface.
type DefaultErrorHandler struct{}

// Handle calls the package-level HandleAWSError function.
func (d *DefaultErrorHandler) Handle(ctx context.Context, service, operation, target string, err error) error {
	return HandleAWSError(ctx, service, operation, target, err)
}
