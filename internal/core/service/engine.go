package service

import (
	"context"
	"fmt"
	"time"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
	"github.com/olusolaa/cfn-stack-sync/internal/core/ports"
	"github.com/olusolaa/cfn-stack-sync/internal/errors"
)

type EngineConfig struct {
	PollInterval time.Duration
	MaxWait      time.Duration
}

// SyncEngine runs one source-to-target synchronization. Every stage fails
// fast; nothing is written to the target until the source template and
// parameters have both been read.
type SyncEngine struct {
	provider     ports.StackProvider
	reader       *StackReader
	gate         *StatusGate
	synchronizer *StackSynchronizer
	poller       *CompletionPoller
	logger       ports.Logger
}

func NewSyncEngine(provider ports.StackProvider, logger ports.Logger, cfg EngineConfig, sleeper Sleeper) (*SyncEngine, error) {
	if provider == nil {
		return nil, errors.New(errors.CodeConfigValidation, "stack provider cannot be nil")
	}
	if logger == nil {
		return nil, errors.New(errors.CodeConfigValidation, "logger cannot be nil")
	}

	reader := NewStackReader(provider, logger.WithFields(map[string]any{"stage": "reader"}))
	return &SyncEngine{
		provider:     provider,
		reader:       reader,
		gate:         NewStatusGate(logger.WithFields(map[string]any{"stage": "gate"})),
		synchronizer: NewStackSynchronizer(provider, logger.WithFields(map[string]any{"stage": "synchronizer"})),
		poller: NewCompletionPoller(reader, sleeper,
			PollerConfig{Interval: cfg.PollInterval, MaxWait: cfg.MaxWait},
			logger.WithFields(map[string]any{"stage": "poller"})),
		logger: logger,
	}, nil
}

func (e *SyncEngine) Run(ctx context.Context, req domain.SyncRequest) (*domain.SyncResult, error) {
	e.logger.Infof(ctx, "Synchronizing stack %s onto %s using %s provider",
		req.SourceStackName, req.TargetStackName, e.provider.Type())

	source, err := e.reader.ReadStack(ctx, req.SourceStackName)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, errors.NewUserFacing(errors.CodeSourceNotFound,
			fmt.Sprintf("The given source stack %s does not exist", req.SourceStackName),
			"Check the source stack name and the AWS region.")
	}
	e.logger.Infof(ctx, "Retrieved source stack %s", source.ID)

	if err := e.gate.CheckReady(ctx, source, domain.RoleSource, req.IgnoreSourceStackStatus); err != nil {
		return nil, err
	}

	target, err := e.reader.ReadStack(ctx, req.TargetStackName)
	if err != nil {
		return nil, err
	}
	if target != nil {
		if err := e.gate.CheckReady(ctx, target, domain.RoleTarget, false); err != nil {
			return nil, err
		}
	} else {
		e.logger.Infof(ctx, "Determined target stack %s does not exist, creating...", req.TargetStackName)
	}

	template, err := e.reader.ReadTemplate(ctx, req.SourceStackName)
	if err != nil {
		return nil, err
	}

	parameters := domain.Merge(source.Parameters, req.Overrides)
	for _, key := range domain.MaskedKeys(source.Parameters, req.Overrides) {
		e.logger.Warnf(ctx, "Source parameter %s is masked (NoEcho) and not overridden; the masked value will be sent", key)
	}
	e.logger.Debugf(ctx, "Resolved %d parameters (%d from source, %d overrides)",
		parameters.Len(), source.Parameters.Len(), req.Overrides.Len())

	op, stackID, err := e.synchronizer.Synchronize(ctx, SyncInput{
		TargetStackName: req.TargetStackName,
		TemplateBody:    template,
		Parameters:      parameters,
		RoleARN:         req.RoleARN,
		TargetExists:    target != nil,
	})
	if err != nil {
		return nil, err
	}

	outcome, err := e.poller.Await(ctx, req.TargetStackName)
	if err != nil {
		return nil, err
	}

	final := outcome.Descriptor
	if final.ID != "" {
		stackID = final.ID
	}
	e.logger.Infof(ctx, "Target stack %s updated successfully in state %s", req.TargetStackName, final.Status)

	return &domain.SyncResult{
		SourceStackName: req.SourceStackName,
		TargetStackName: req.TargetStackName,
		StackID:         stackID,
		Operation:       op,
		Status:          final.Status,
		Parameters:      parameters,
		Polls:           outcome.Polls,
		Waited:          outcome.Waited,
	}, nil
}
