package domain

// StackDescriptor is a snapshot of a stack as read from the provider.
// A missing stack is represented by a nil *StackDescriptor.
type StackDescriptor struct {
	ID         string
	Name       string
	Status     StackStatus
	Parameters ParameterSet
}

// StackRole names the part a stack plays in a synchronization.
type StackRole string

const (
	RoleSource StackRole = "source"
	RoleTarget StackRole = "target"
)

func (r StackRole) String() string {
	return string(r)
}

type Capability string

const (
	CapabilityIAM        Capability = "CAPABILITY_IAM"
	CapabilityNamedIAM   Capability = "CAPABILITY_NAMED_IAM"
	CapabilityAutoExpand Capability = "CAPABILITY_AUTO_EXPAND"
)

// OnFailure is the provider-side policy applied when stack creation fails.
type OnFailure string

const OnFailureDelete OnFailure = "DELETE"

// Operation is the provisioning call issued against the target stack.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
)

// SyncCapabilities are acknowledged on every create and update, since
// synchronized templates may declare IAM resources or macros.
func SyncCapabilities() []Capability {
	return []Capability{CapabilityIAM, CapabilityNamedIAM, CapabilityAutoExpand}
}

// ProvisionRequest carries everything needed for a create or update call.
// OnFailure is only honoured on create.
type ProvisionRequest struct {
	StackName          string
	TemplateBody       string
	Parameters         ParameterSet
	Capabilities       []Capability
	OnFailure          OnFailure
	RoleARN            string
	ClientRequestToken string
}

// CallerIdentity is the principal the provider credentials resolve to.
type CallerIdentity struct {
	Account string
	ARN     string
	UserID  string
}
