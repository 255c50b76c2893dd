package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
	"github.com/olusolaa/cfn-stack-sync/internal/core/ports"
)

const ReporterTypeText = "text"

type Config struct {
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`
}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

func NewReporter(cfg Config, logger ports.Logger) (*Reporter, error) {
	return NewReporterWithWriter(cfg, os.Stdout, logger)
}

// NewReporterWithWriter writes the report to w. Colour is disabled unless
// w is a terminal.
func NewReporterWithWriter(cfg Config, w io.Writer, logger ports.Logger) (*Reporter, error) {
	if cfg.NoColor || !isTerminal(w) {
		color.NoColor = true
	}

	return &Reporter{
		config: cfg,
		writer: w,
		logger: logger,
	}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func (r *Reporter) Report(ctx context.Context, result *domain.SyncResult) error {
	if result == nil {
		fmt.Fprintln(r.writer, "No synchronization result to report.")
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(r.writer, 0, 8, 2, ' ', 0)
	defer tw.Flush()

	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	statusStr := green(result.Status)
	switch {
	case result.Status.IsFailed():
		statusStr = red(result.Status)
	case result.RolledBack():
		statusStr = yellow(result.Status)
	}

	fmt.Fprintln(tw, "Stack Synchronization Report")
	fmt.Fprintln(tw, "============================")
	fmt.Fprintf(tw, "Source:\t%s\n", result.SourceStackName)
	fmt.Fprintf(tw, "Target:\t%s\n", result.TargetStackName)
	fmt.Fprintf(tw, "Stack ID:\t%s\n", result.StackID)
	fmt.Fprintf(tw, "Operation:\t%s\n", cyan(result.Operation))
	fmt.Fprintf(tw, "Final Status:\t%s\n", statusStr)
	fmt.Fprintf(tw, "Status Checks:\t%d (waited %s)\n", result.Polls, result.Waited)

	params := result.Parameters.Parameters()
	fmt.Fprintln(tw, "\nParameters:")
	fmt.Fprintln(tw, "Key\tValue")
	fmt.Fprintln(tw, "---\t-----")
	if len(params) == 0 {
		fmt.Fprintln(tw, "(none)\t")
	}
	for _, p := range params {
		value := p.Value
		if value == domain.MaskedParameterValue {
			value = yellow(value)
		}
		fmt.Fprintf(tw, "%s\t%s\n", p.Key, value)
	}

	if r.logger != nil {
		r.logger.Debugf(ctx, "Text report written for %s", result.TargetStackName)
	}
	return nil
}
