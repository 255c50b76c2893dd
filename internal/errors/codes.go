package errors

type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL_ERROR"
	CodeConfigValidation Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError  Code = "CONFIG_READ_ERROR"
	CodeConfigParseError Code = "CONFIG_PARSE_ERROR"

	// Provider access
	CodeCredentialsInvalid Code = "CREDENTIALS_INVALID"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeProviderError      Code = "PROVIDER_ERROR"
	CodeStackNotFound      Code = "STACK_NOT_FOUND"

	// Synchronization pipeline
	CodeSourceNotFound     Code = "SOURCE_NOT_FOUND"
	CodeStatusRejected     Code = "STATUS_REJECTED"
	CodeInvalidOverrides   Code = "INVALID_OVERRIDES"
	CodeProvisioningError  Code = "PROVISIONING_ERROR"
	CodeProvisioningFailed Code = "PROVISIONING_FAILED"
	CodeStackDeleted       Code = "STACK_DELETED"
	CodePollTimeout        Code = "POLL_TIMEOUT"
	CodeOutputWriteError   Code = "OUTPUT_WRITE_ERROR"
)

func (c Code) String() string {
	return string(c)
}
