package ports

import (
	"context"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
)

//go:generate mockery --name SyncEngine --output ./mocks --outpkg mocks --case underscore
type SyncEngine interface {
	Run(ctx context.Context, req domain.SyncRequest) (*domain.SyncResult, error)
}
