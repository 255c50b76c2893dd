package service_test

import (
	"bytes"
	"context"
	stderrs "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
	"github.com/olusolaa/cfn-stack-sync/internal/core/ports"
	apperrors "github.com/olusolaa/cfn-stack-sync/internal/errors"
	"github.com/olusolaa/cfn-stack-sync/internal/log"
)

func newTestLogger(t *testing.T) (ports.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger, err := log.NewLoggerWithWriter(log.Config{Level: log.LevelDebug, Format: log.FormatText}, &buf)
	require.NoError(t, err)
	return logger, &buf
}

// recordingSleeper returns immediately and remembers every requested wait.
type recordingSleeper struct {
	waits []time.Duration
	err   error
}

func (s *recordingSleeper) Sleep(_ context.Context, d time.Duration) error {
	s.waits = append(s.waits, d)
	return s.err
}

func stack(name string, status domain.StackStatus, params ...domain.Parameter) *domain.StackDescriptor {
	return &domain.StackDescriptor{
		ID:         "arn:aws:cloudformation:us-east-1:123456789012:stack/" + name + "/0001",
		Name:       name,
		Status:     status,
		Parameters: domain.NewParameterSet(params...),
	}
}

func notFound(name string) error {
	return apperrors.Wrap(stderrs.New("api error ValidationError: Stack with id "+name+" does not exist"),
		apperrors.CodeStackNotFound, "stack not found")
}

func providerErr(code apperrors.Code, msg string) error {
	return apperrors.Wrap(stderrs.New(msg), code, "provider call failed")
}
