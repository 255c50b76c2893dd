package ports

import (
	"context"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
)

//go:generate mockery --name StackProvider --output ./mocks --outpkg mocks --case underscore
//go:generate mockery --name IdentityProvider --output ./mocks --outpkg mocks --case underscore

// StackProvider is the stack management service. DescribeStack returns an
// error coded STACK_NOT_FOUND when the stack does not exist.
type StackProvider interface {
	Type() string
	DescribeStack(ctx context.Context, name string) (*domain.StackDescriptor, error)
	GetOriginalTemplate(ctx context.Context, name string) (string, error)
	CreateStack(ctx context.Context, req domain.ProvisionRequest) (string, error)
	UpdateStack(ctx context.Context, req domain.ProvisionRequest) (string, error)
}

type IdentityProvider interface {
	CallerIdentity(ctx context.Context) (domain.CallerIdentity, error)
}
