package ports

import (
	"context"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
)

//go:generate mockery --name Reporter --output ./mocks --outpkg mocks --case underscore
type Reporter interface {
	Report(ctx context.Context, result *domain.SyncResult) error
}
