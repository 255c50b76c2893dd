package service

import (
	"context"
	"fmt"
	"time"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
	"github.com/olusolaa/cfn-stack-sync/internal/core/ports"
	apperrors "github.com/olusolaa/cfn-stack-sync/internal/errors"
)

const DefaultPollInterval = 15 * time.Second

// Sleeper suspends the caller for d or until ctx is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type SleeperFunc func(ctx context.Context, d time.Duration) error

func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// TimerSleeper waits on a real timer.
var TimerSleeper Sleeper = SleeperFunc(func(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
})

// PollState is the state of the completion poller.
type PollState int

const (
	PollPolling PollState = iota
	PollSucceeded
	PollFailed
	PollDeleted
)

func (s PollState) String() string {
	switch s {
	case PollPolling:
		return "polling"
	case PollSucceeded:
		return "succeeded"
	case PollFailed:
		return "failed"
	case PollDeleted:
		return "deleted"
	}
	return fmt.Sprintf("PollState(%d)", int(s))
}

// NextPollState classifies one observation of the target stack.
func NextPollState(desc *domain.StackDescriptor) PollState {
	switch {
	case desc == nil:
		return PollDeleted
	case !desc.Status.IsTerminal():
		return PollPolling
	case desc.Status.IsFailed():
		return PollFailed
	default:
		return PollSucceeded
	}
}

type PollerConfig struct {
	Interval time.Duration
	// MaxWait bounds the accumulated sleep. Zero waits indefinitely.
	MaxWait time.Duration
}

// PollOutcome is the last observation of a successful poll.
type PollOutcome struct {
	Descriptor *domain.StackDescriptor
	Polls      int
	Waited     time.Duration
}

// CompletionPoller waits for a stack to reach a terminal status.
type CompletionPoller struct {
	reader  *StackReader
	sleeper Sleeper
	config  PollerConfig
	logger  ports.Logger
}

func NewCompletionPoller(reader *StackReader, sleeper Sleeper, cfg PollerConfig, logger ports.Logger) *CompletionPoller {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultPollInterval
	}
	if sleeper == nil {
		sleeper = TimerSleeper
	}
	return &CompletionPoller{reader: reader, sleeper: sleeper, config: cfg, logger: logger}
}

// Await re-reads name until it reaches a terminal status or disappears.
// Exactly one read is outstanding at a time.
func (p *CompletionPoller) Await(ctx context.Context, name string) (PollOutcome, error) {
	var outcome PollOutcome

	desc, err := p.reader.ReadStack(ctx, name)
	if err != nil {
		return outcome, err
	}
	outcome.Polls = 1

	state := NextPollState(desc)
	for state == PollPolling {
		p.logger.Infof(ctx, "Target stack %s in state %s", name, desc.Status)

		if p.config.MaxWait > 0 && outcome.Waited >= p.config.MaxWait {
			return outcome, apperrors.NewUserFacing(apperrors.CodePollTimeout,
				fmt.Sprintf("Target stack %s did not reach a terminal state within %s (last state %s)", name, p.config.MaxWait, desc.Status),
				"Inspect the stack events in the CloudFormation console, or raise max-wait.")
		}

		if err := p.sleeper.Sleep(ctx, p.config.Interval); err != nil {
			return outcome, apperrors.Wrap(err, apperrors.CodeInternal, "polling interrupted")
		}
		outcome.Waited += p.config.Interval

		desc, err = p.reader.ReadStack(ctx, name)
		if err != nil {
			return outcome, err
		}
		outcome.Polls++
		state = NextPollState(desc)
	}

	p.logger.Debugf(ctx, "Polling of %s finished as %s after %d reads", name, state, outcome.Polls)

	switch state {
	case PollDeleted:
		return outcome, apperrors.NewUserFacing(apperrors.CodeStackDeleted,
			fmt.Sprintf("Target stack %s failed to create and was deleted", name),
			"Inspect the deleted stack's events in the CloudFormation console to find the failing resource.")
	case PollFailed:
		return outcome, apperrors.WrapUserFacing(
			&ProvisioningFailedError{StackName: name, Status: desc.Status},
			apperrors.CodeProvisioningFailed,
			fmt.Sprintf("Target stack %s failed to update in state %s", name, desc.Status),
			"Inspect the stack events in the CloudFormation console.")
	}

	if desc.Status.IsRollback() {
		p.logger.Warnf(ctx, "Target stack %s finished in rollback state %s", name, desc.Status)
	}
	outcome.Descriptor = desc
	return outcome, nil
}
