package log

import (
	"bytes"
	"context"
	stderrs "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/olusolaa/cfn-stack-sync/internal/errors"
)

func TestNewLoggerWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLoggerWithWriter(Config{Level: LevelWarn, Format: FormatText}, &buf)
	require.NoError(t, err)

	ctx := context.Background()
	logger.Debugf(ctx, "debug %d", 1)
	logger.Infof(ctx, "info %d", 2)
	logger.Warnf(ctx, "warn %d", 3)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "warn 3")
}

func TestNewLoggerWithWriter_JSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLoggerWithWriter(Config{Level: LevelDebug, Format: FormatJSON}, &buf)
	require.NoError(t, err)

	logger.WithFields(map[string]any{"stack": "target"}).Infof(context.Background(), "polling")

	out := buf.String()
	assert.Contains(t, out, `"msg":"polling"`)
	assert.Contains(t, out, `"stack":"target"`)
}

func TestErrorf_AppErrorAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLoggerWithWriter(DefaultConfig(), &buf)
	require.NoError(t, err)

	appErr := apperrors.Wrap(stderrs.New("throttled"), apperrors.CodeProviderError, "describe failed")
	logger.Errorf(context.Background(), appErr, "read failed")

	out := buf.String()
	assert.Contains(t, out, "error_code=PROVIDER_ERROR")
	assert.Contains(t, out, "error_wrapped=throttled")
}

func TestErrorf_PlainError(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLoggerWithWriter(DefaultConfig(), &buf)
	require.NoError(t, err)

	logger.Errorf(nil, stderrs.New("boom"), "failed")

	assert.Contains(t, buf.String(), "error=boom")
}

func TestNewLoggerWithWriter_NilWriter(t *testing.T) {
	_, err := NewLoggerWithWriter(DefaultConfig(), nil)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeInternal))
}
