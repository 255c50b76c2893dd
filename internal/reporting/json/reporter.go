package json

import (
	"context"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
	"github.com/olusolaa/cfn-stack-sync/internal/core/ports"
)

const ReporterTypeJSON = "json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct {
	Compact bool `yaml:"compact" mapstructure:"compact"`
}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

func NewReporter(cfg Config, logger ports.Logger) (*Reporter, error) {
	return NewReporterWithWriter(cfg, os.Stdout, logger)
}

func NewReporterWithWriter(cfg Config, w io.Writer, logger ports.Logger) (*Reporter, error) {
	return &Reporter{
		config: cfg,
		writer: w,
		logger: logger,
	}, nil
}

type jsonReport struct {
	SourceStackName string          `json:"source_stack_name"`
	TargetStackName string          `json:"target_stack_name"`
	StackID         string          `json:"stack_id"`
	Operation       string          `json:"operation"`
	Status          string          `json:"status"`
	RolledBack      bool            `json:"rolled_back"`
	Polls           int             `json:"polls"`
	WaitedSeconds   float64         `json:"waited_seconds"`
	Parameters      []jsonParameter `json:"parameters"`
}

type jsonParameter struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Masked bool   `json:"masked,omitempty"`
}

func (r *Reporter) Report(ctx context.Context, result *domain.SyncResult) error {
	if ctx.Err() != nil {
		r.logger.Warnf(ctx, "JSON report generation cancelled.")
		return ctx.Err()
	}
	if result == nil {
		return fmt.Errorf("no synchronization result to report")
	}

	report := jsonReport{
		SourceStackName: result.SourceStackName,
		TargetStackName: result.TargetStackName,
		StackID:         result.StackID,
		Operation:       string(result.Operation),
		Status:          result.Status.String(),
		RolledBack:      result.RolledBack(),
		Polls:           result.Polls,
		WaitedSeconds:   result.Waited.Seconds(),
		Parameters:      make([]jsonParameter, 0, result.Parameters.Len()),
	}
	for _, p := range result.Parameters.Parameters() {
		report.Parameters = append(report.Parameters, jsonParameter{
			Key:    p.Key,
			Value:  p.Value,
			Masked: p.Value == domain.MaskedParameterValue,
		})
	}

	encoder := json.NewEncoder(r.writer)
	if !r.config.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(report); err != nil {
		r.logger.Errorf(ctx, err, "Failed to encode JSON report")
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}

	r.logger.Debugf(ctx, "JSON report successfully generated.")
	return nil
}
