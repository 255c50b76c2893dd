package app

import (
	"context"

	"github.com/olusolaa/cfn-stack-sync/internal/actions"
	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
	"github.com/olusolaa/cfn-stack-sync/internal/core/ports"
	"github.com/olusolaa/cfn-stack-sync/internal/core/service"
)

// Application runs one synchronization and publishes its result.
type Application struct {
	Engine   ports.SyncEngine
	Reporter ports.Reporter
	// Identity is only set when the preflight check is enabled.
	Identity ports.IdentityProvider
	Runner   *actions.Runner
	Logger   ports.Logger
	Request  domain.SyncRequest
}

func NewApplication(engine ports.SyncEngine, reporter ports.Reporter, runner *actions.Runner, logger ports.Logger, req domain.SyncRequest) *Application {
	return &Application{
		Engine:   engine,
		Reporter: reporter,
		Runner:   runner,
		Logger:   logger,
		Request:  req,
	}
}

func (a *Application) Run(ctx context.Context) error {
	if a.Identity != nil {
		if _, err := service.VerifyIdentity(ctx, a.Identity, a.Logger); err != nil {
			a.Logger.Errorf(ctx, err, "Preflight identity check failed")
			return err
		}
	}

	a.Logger.Infof(ctx, "Starting stack synchronization...")

	result, err := a.Engine.Run(ctx, a.Request)
	if err != nil {
		a.Logger.Errorf(ctx, err, "Stack synchronization failed")
		return err
	}

	if err := a.Reporter.Report(ctx, result); err != nil {
		a.Logger.Errorf(ctx, err, "Failed to write synchronization report")
		return err
	}

	if a.Runner != nil {
		if err := a.Runner.SetOutputs(actions.ResultOutputs(result)); err != nil {
			a.Logger.Errorf(ctx, err, "Failed to publish step outputs")
			return err
		}
	}

	a.Logger.Infof(ctx, "Stack synchronization completed successfully")
	return nil
}
