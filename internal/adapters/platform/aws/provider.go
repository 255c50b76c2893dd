package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	cfntypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	awserrors "github.com/olusolaa/cfn-stack-sync/internal/adapters/platform/aws/errors"
	"github.com/olusolaa/cfn-stack-sync/internal/adapters/platform/aws/limiter"
	"github.com/olusolaa/cfn-stack-sync/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
	"github.com/olusolaa/cfn-stack-sync/internal/core/ports"
	"github.com/olusolaa/cfn-stack-sync/internal/errors"
)

const (
	ProviderTypeAWS = "aws"

	serviceCloudFormation = "CloudFormation"
	serviceSTS            = "STS"
)

// ProviderConfig selects the AWS account, region and request rate.
type ProviderConfig struct {
	Region            string
	Profile           string
	RequestsPerSecond int
}

// Provider talks to CloudFormation and STS. It issues one request at a
// time and never retries.
type Provider struct {
	awsConfig    aws.Config
	hasConfig    bool
	cfnClient    shared.CloudFormationClientInterface
	stsClient    shared.STSClientInterface
	limiter      shared.RateLimiter
	errorHandler shared.ErrorHandler
	logger       ports.Logger
}

// ProviderOption defines a function signature for configuring the Provider.
type ProviderOption func(*Provider)

// WithAWSConfig skips loading the default AWS configuration.
func WithAWSConfig(cfg aws.Config) ProviderOption {
	return func(p *Provider) {
		p.awsConfig = cfg
		p.hasConfig = true
	}
}

// WithCloudFormationClient provides an option to set a custom CloudFormation client.
func WithCloudFormationClient(client shared.CloudFormationClientInterface) ProviderOption {
	return func(p *Provider) {
		if client != nil {
			p.cfnClient = client
		}
	}
}

// WithSTSClient provides an option to set a custom STS client.
func WithSTSClient(client shared.STSClientInterface) ProviderOption {
	return func(p *Provider) {
		if client != nil {
			p.stsClient = client
		}
	}
}

// WithRateLimiter provides an option to set a custom rate limiter.
func WithRateLimiter(l shared.RateLimiter) ProviderOption {
	return func(p *Provider) {
		if l != nil {
			p.limiter = l
		}
	}
}

// WithErrorHandler provides an option to set a custom error handler.
func WithErrorHandler(handler shared.ErrorHandler) ProviderOption {
	return func(p *Provider) {
		if handler != nil {
			p.errorHandler = handler
		}
	}
}

// NewProvider loads the default AWS configuration, narrowed by cfg, and
// builds the service clients. Options override any of the defaults.
func NewProvider(ctx context.Context, cfg ProviderConfig, logger ports.Logger, opts ...ProviderOption) (*Provider, error) {
	if logger == nil {
		return nil, errors.New(errors.CodeConfigValidation, "logger cannot be nil for AWS Provider")
	}

	p := &Provider{logger: logger}
	for _, opt := range opts {
		opt(p)
	}

	if p.cfnClient == nil || p.stsClient == nil {
		if !p.hasConfig {
			loaded, err := loadAWSConfig(ctx, cfg)
			if err != nil {
				return nil, err
			}
			p.awsConfig = loaded
		}
		if p.cfnClient == nil {
			p.cfnClient = cloudformation.NewFromConfig(p.awsConfig)
		}
		if p.stsClient == nil {
			p.stsClient = sts.NewFromConfig(p.awsConfig)
		}
	}
	if p.limiter == nil {
		p.limiter = limiter.New(cfg.RequestsPerSecond, logger)
	}
	if p.errorHandler == nil {
		p.errorHandler = &awserrors.DefaultErrorHandler{}
	}

	logger.Debugf(ctx, "AWS provider ready (region %q)", p.awsConfig.Region)
	return p, nil
}

func loadAWSConfig(ctx context.Context, cfg ProviderConfig) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	}
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, errors.WrapUserFacing(err, errors.CodeConfigValidation,
			"Failed to load AWS configuration",
			"Check the AWS region, profile and credential environment variables.")
	}
	return awsCfg, nil
}

func (p *Provider) Type() string {
	return ProviderTypeAWS
}

// DescribeStack returns STACK_NOT_FOUND for stacks that do not exist or
// have been deleted.
func (p *Provider) DescribeStack(ctx context.Context, name string) (*domain.StackDescriptor, error) {
	if err := p.limiter.Wait(ctx, p.logger); err != nil {
		return nil, err
	}

	out, err := p.cfnClient.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	})
	if err != nil {
		return nil, p.errorHandler.Handle(ctx, serviceCloudFormation, "DescribeStacks", name, err)
	}

	if out == nil || len(out.Stacks) == 0 || out.Stacks[0].StackStatus == cfntypes.StackStatusDeleteComplete {
		return nil, errors.New(errors.CodeStackNotFound, fmt.Sprintf("stack '%s' does not exist", name))
	}
	if len(out.Stacks) > 1 {
		p.logger.Warnf(ctx, "DescribeStacks returned %d stacks for %s, using the first", len(out.Stacks), name)
	}

	return mapStack(out.Stacks[0])
}

func (p *Provider) GetOriginalTemplate(ctx context.Context, name string) (string, error) {
	if err := p.limiter.Wait(ctx, p.logger); err != nil {
		return "", err
	}

	out, err := p.cfnClient.GetTemplate(ctx, &cloudformation.GetTemplateInput{
		StackName:     aws.String(name),
		TemplateStage: cfntypes.TemplateStageOriginal,
	})
	if err != nil {
		return "", p.errorHandler.Handle(ctx, serviceCloudFormation, "GetTemplate", name, err)
	}
	if out == nil || out.TemplateBody == nil {
		return "", errors.New(errors.CodeProviderError, fmt.Sprintf("stack '%s' returned an empty template", name))
	}
	return aws.ToString(out.TemplateBody), nil
}

func (p *Provider) CreateStack(ctx context.Context, req domain.ProvisionRequest) (string, error) {
	if err := p.limiter.Wait(ctx, p.logger); err != nil {
		return "", err
	}

	input := &cloudformation.CreateStackInput{
		StackName:          aws.String(req.StackName),
		TemplateBody:       aws.String(req.TemplateBody),
		Parameters:         toCFNParameters(req.Parameters),
		Capabilities:       toCFNCapabilities(req.Capabilities),
		RoleARN:            optionalString(req.RoleARN),
		ClientRequestToken: optionalString(req.ClientRequestToken),
	}
	if req.OnFailure != "" {
		input.OnFailure = cfntypes.OnFailure(req.OnFailure)
	}

	out, err := p.cfnClient.CreateStack(ctx, input)
	if err != nil {
		return "", p.errorHandler.Handle(ctx, serviceCloudFormation, "CreateStack", req.StackName, err)
	}
	if out == nil {
		return "", nil
	}
	return aws.ToString(out.StackId), nil
}

func (p *Provider) UpdateStack(ctx context.Context, req domain.ProvisionRequest) (string, error) {
	if err := p.limiter.Wait(ctx, p.logger); err != nil {
		return "", err
	}

	out, err := p.cfnClient.UpdateStack(ctx, &cloudformation.UpdateStackInput{
		StackName:           aws.String(req.StackName),
		TemplateBody:        aws.String(req.TemplateBody),
		UsePreviousTemplate: aws.Bool(false),
		Parameters:          toCFNParameters(req.Parameters),
		Capabilities:        toCFNCapabilities(req.Capabilities),
		RoleARN:             optionalString(req.RoleARN),
		ClientRequestToken:  optionalString(req.ClientRequestToken),
	})
	if err != nil {
		return "", p.errorHandler.Handle(ctx, serviceCloudFormation, "UpdateStack", req.StackName, err)
	}
	if out == nil {
		return "", nil
	}
	return aws.ToString(out.StackId), nil
}

func (p *Provider) CallerIdentity(ctx context.Context) (domain.CallerIdentity, error) {
	if err := p.limiter.Wait(ctx, p.logger); err != nil {
		return domain.CallerIdentity{}, err
	}

	out, err := p.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return domain.CallerIdentity{}, p.errorHandler.Handle(ctx, serviceSTS, "GetCallerIdentity", "caller", err)
	}
	if out == nil || out.Account == nil {
		return domain.CallerIdentity{}, errors.New(errors.CodeProviderError, "AWS caller identity response did not contain Account ID")
	}
	return domain.CallerIdentity{
		Account: aws.ToString(out.Account),
		ARN:     aws.ToString(out.Arn),
		UserID:  aws.ToString(out.UserId),
	}, nil
}

var (
	_ ports.StackProvider    = (*Provider)(nil)
	_ ports.IdentityProvider = (*Provider)(nil)
)
