// Package actions integrates with the GitHub Actions runner: it reads the
// runner environment, writes step outputs and emits workflow commands.
package actions

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v9"
	"github.com/google/uuid"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
	"github.com/olusolaa/cfn-stack-sync/internal/errors"
)

const (
	OutputStackID     = "stack-id"
	OutputStackStatus = "stack-status"
	OutputOperation   = "operation"
)

// Environment holds the runner variables the tool reacts to.
type Environment struct {
	Actions        bool   `env:"GITHUB_ACTIONS" envDefault:"false"`
	OutputFile     string `env:"GITHUB_OUTPUT"`
	ShowStackTrace bool   `env:"SHOW_STACK_TRACE" envDefault:"false"`
	RunnerDebug    bool   `env:"RUNNER_DEBUG" envDefault:"false"`
}

// LoadEnvironment reads the runner variables from the process environment.
func LoadEnvironment() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return Environment{}, errors.Wrap(err, errors.CodeConfigParseError, "failed to parse runner environment")
	}
	return e, nil
}

// LoadEnvironmentFrom reads the runner variables from vars instead of the
// process environment.
func LoadEnvironmentFrom(vars map[string]string) (Environment, error) {
	var e Environment
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Environment{}, errors.Wrap(err, errors.CodeConfigParseError, "failed to parse runner environment")
	}
	return e, nil
}

type Output struct {
	Name  string
	Value string
}

// ResultOutputs lists the step outputs published for a finished sync.
func ResultOutputs(result *domain.SyncResult) []Output {
	return []Output{
		{Name: OutputStackID, Value: result.StackID},
		{Name: OutputStackStatus, Value: result.Status.String()},
		{Name: OutputOperation, Value: string(result.Operation)},
	}
}

// Runner talks to the workflow through the output file and workflow
// commands on w.
type Runner struct {
	env    Environment
	writer io.Writer
}

func NewRunner(e Environment, w io.Writer) *Runner {
	if w == nil {
		w = os.Stdout
	}
	return &Runner{env: e, writer: w}
}

func (r *Runner) Environment() Environment {
	return r.env
}

// SetOutputs appends outputs to the GITHUB_OUTPUT file. It does nothing
// outside a runner.
func (r *Runner) SetOutputs(outputs []Output) error {
	if r.env.OutputFile == "" || len(outputs) == 0 {
		return nil
	}

	f, err := os.OpenFile(r.env.OutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.WrapUserFacing(err, errors.CodeOutputWriteError,
			fmt.Sprintf("Failed to open step output file %s", r.env.OutputFile),
			"Check that GITHUB_OUTPUT points to a writable file.")
	}
	defer f.Close()

	var b strings.Builder
	for _, o := range outputs {
		b.WriteString(formatOutput(o))
	}
	if _, err := io.WriteString(f, b.String()); err != nil {
		return errors.WrapUserFacing(err, errors.CodeOutputWriteError,
			fmt.Sprintf("Failed to write step outputs to %s", r.env.OutputFile),
			"Check that GITHUB_OUTPUT points to a writable file.")
	}
	return nil
}

// Multi-line values use the heredoc form with a random delimiter.
func formatOutput(o Output) string {
	if !strings.ContainsAny(o.Value, "\r\n") {
		return fmt.Sprintf("%s=%s\n", o.Name, o.Value)
	}
	delimiter := "ghadelimiter_" + uuid.NewString()
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", o.Name, delimiter, o.Value, delimiter)
}

// Error emits an error annotation when running inside GitHub Actions.
func (r *Runner) Error(message string) {
	if !r.env.Actions {
		return
	}
	fmt.Fprintf(r.writer, "::error::%s\n", escapeData(message))
}

func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}
