package aws

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	cfntypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
	"github.com/olusolaa/cfn-stack-sync/internal/errors"
)

// mapStack converts a described stack to a domain descriptor. Parameters
// keep the order CloudFormation returned them in.
func mapStack(stack cfntypes.Stack) (*domain.StackDescriptor, error) {
	status, ok := domain.ParseStackStatus(string(stack.StackStatus))
	if !ok {
		return nil, errors.New(errors.CodeProviderError,
			fmt.Sprintf("stack '%s' reported unrecognized status '%s'", aws.ToString(stack.StackName), stack.StackStatus))
	}

	params := make([]domain.Parameter, 0, len(stack.Parameters))
	for _, p := range stack.Parameters {
		if p.ParameterKey == nil {
			continue
		}
		params = append(params, domain.Parameter{
			Key:   aws.ToString(p.ParameterKey),
			Value: aws.ToString(p.ParameterValue),
		})
	}

	return &domain.StackDescriptor{
		ID:         aws.ToString(stack.StackId),
		Name:       aws.ToString(stack.StackName),
		Status:     status,
		Parameters: domain.NewParameterSet(params...),
	}, nil
}

func toCFNParameters(set domain.ParameterSet) []cfntypes.Parameter {
	params := set.Parameters()
	if len(params) == 0 {
		return nil
	}
	out := make([]cfntypes.Parameter, 0, len(params))
	for _, p := range params {
		out = append(out, cfntypes.Parameter{
			ParameterKey:   aws.String(p.Key),
			ParameterValue: aws.String(p.Value),
		})
	}
	return out
}

func toCFNCapabilities(caps []domain.Capability) []cfntypes.Capability {
	if len(caps) == 0 {
		return nil
	}
	out := make([]cfntypes.Capability, 0, len(caps))
	for _, c := range caps {
		out = append(out, cfntypes.Capability(c))
	}
	return out
}

// optionalString returns nil for empty values so unset request fields are
// omitted from the API call.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}
