package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"

	"github.com/olusolaa/cfn-stack-sync/internal/actions"
	"github.com/olusolaa/cfn-stack-sync/internal/adapters/platform/aws"
	"github.com/olusolaa/cfn-stack-sync/internal/config"
	"github.com/olusolaa/cfn-stack-sync/internal/core/ports"
	"github.com/olusolaa/cfn-stack-sync/internal/core/service"
	"github.com/olusolaa/cfn-stack-sync/internal/errors"
	"github.com/olusolaa/cfn-stack-sync/internal/log"
	"github.com/olusolaa/cfn-stack-sync/internal/reporting/json"
	"github.com/olusolaa/cfn-stack-sync/internal/reporting/text"
)

// Provider is what the application needs from a stack platform.
type Provider interface {
	ports.StackProvider
	ports.IdentityProvider
}

type buildOptions struct {
	provider    Provider
	environment *actions.Environment
	sleeper     service.Sleeper
	stdout      io.Writer
	logOutput   io.Writer
}

// BuildOption customizes BuildApplicationFromViper, mainly for tests.
type BuildOption func(*buildOptions)

// WithProvider skips creating the AWS provider.
func WithProvider(p Provider) BuildOption {
	return func(o *buildOptions) { o.provider = p }
}

// WithEnvironment replaces the runner environment read from the process.
func WithEnvironment(e actions.Environment) BuildOption {
	return func(o *buildOptions) { o.environment = &e }
}

func WithSleeper(s service.Sleeper) BuildOption {
	return func(o *buildOptions) { o.sleeper = s }
}

// WithOutput sets where reports and workflow commands go (stdout) and
// where logs go.
func WithOutput(stdout, logs io.Writer) BuildOption {
	return func(o *buildOptions) {
		o.stdout = stdout
		o.logOutput = logs
	}
}

func BuildApplicationFromViper(ctx context.Context, v *viper.Viper, opts ...BuildOption) (*Application, error) {
	o := &buildOptions{stdout: os.Stdout, logOutput: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	env, err := runnerEnvironment(o)
	if err != nil {
		return nil, err
	}

	logCfg := cfg.LogConfig()
	if env.RunnerDebug {
		logCfg.Level = log.LevelDebug
	}
	logger, err := log.NewLoggerWithWriter(logCfg, o.logOutput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to initialize logger: %v\n", err)
		return nil, errors.Wrap(err, errors.CodeInternal, "logger initialization failed")
	}
	logger.Debugf(ctx, "Logger initialized (Level: %s, Format: %s)", logCfg.Level, logCfg.Format)
	if v.ConfigFileUsed() != "" {
		logger.Debugf(ctx, "Using configuration file: %s", v.ConfigFileUsed())
	} else {
		logger.Debugf(ctx, "No configuration file found, using defaults/env/flags.")
	}

	if err := cfg.Validate(ctx); err != nil {
		logger.Errorf(ctx, err, "Configuration validation failed")
		return nil, err
	}
	logger.Debugf(ctx, "Configuration validated successfully")

	req, err := cfg.SyncRequest()
	if err != nil {
		logger.Errorf(ctx, err, "Parameter overrides rejected")
		return nil, err
	}

	provider := o.provider
	if provider == nil {
		provLog := logger.WithFields(map[string]any{"provider": aws.ProviderTypeAWS})
		awsProvider, err := aws.NewProvider(ctx, aws.ProviderConfig{
			Region:            cfg.Platform.AWS.Region,
			Profile:           cfg.Platform.AWS.Profile,
			RequestsPerSecond: cfg.Platform.AWS.APIRequestsPerSecond,
		}, provLog)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeConfigValidation, "failed to initialize AWS provider")
		}
		provider = awsProvider
		provLog.Debugf(ctx, "Using AWS platform provider")
	}

	reporter, err := newReporter(ctx, cfg, o.stdout, logger)
	if err != nil {
		return nil, err
	}

	engine, err := service.NewSyncEngine(provider,
		logger.WithFields(map[string]any{"component": "engine"}),
		service.EngineConfig{PollInterval: cfg.Settings.PollInterval, MaxWait: cfg.Settings.MaxWait},
		o.sleeper)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize sync engine")
	}

	application := NewApplication(engine, reporter, actions.NewRunner(env, o.stdout), logger, req)
	if cfg.Settings.Preflight {
		application.Identity = provider
	}

	logger.Debugf(ctx, "Application bootstrap complete")
	return application, nil
}

func runnerEnvironment(o *buildOptions) (actions.Environment, error) {
	if o.environment != nil {
		return *o.environment, nil
	}
	return actions.LoadEnvironment()
}

func newReporter(ctx context.Context, cfg *config.Config, w io.Writer, logger ports.Logger) (ports.Reporter, error) {
	switch cfg.Settings.ReporterType {
	case text.ReporterTypeText:
		reportLog := logger.WithFields(map[string]any{"component": "reporter", "type": text.ReporterTypeText})
		textCfg := config.DefaultConfig().Settings.Reporter.Text
		if cfg.Settings.Reporter.Text != nil {
			textCfg = cfg.Settings.Reporter.Text
		}
		reporter, err := text.NewReporterWithWriter(*textCfg, w, reportLog)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize Text reporter")
		}
		reportLog.Debugf(ctx, "Using Text reporter (Color: %t)", !textCfg.NoColor)
		return reporter, nil
	case json.ReporterTypeJSON:
		reportLog := logger.WithFields(map[string]any{"component": "reporter", "type": json.ReporterTypeJSON})
		jsonCfg := config.DefaultConfig().Settings.Reporter.JSON
		if cfg.Settings.Reporter.JSON != nil {
			jsonCfg = cfg.Settings.Reporter.JSON
		}
		reporter, err := json.NewReporterWithWriter(*jsonCfg, w, reportLog)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize JSON reporter")
		}
		return reporter, nil
	default:
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("unsupported reporter type: %s", cfg.Settings.ReporterType), "Supported: text, json")
	}
}
