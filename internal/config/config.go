package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/olusolaa/cfn-stack-sync/internal/core/domain"
	"github.com/olusolaa/cfn-stack-sync/internal/errors"
	"github.com/olusolaa/cfn-stack-sync/internal/log"
	"github.com/olusolaa/cfn-stack-sync/internal/reporting/json"
	"github.com/olusolaa/cfn-stack-sync/internal/reporting/text"
)

type Config struct {
	Settings SettingsConfig `yaml:"settings" mapstructure:"settings"`
	Platform PlatformConfig `yaml:"platform" mapstructure:"platform"`
	Sync     SyncConfig     `yaml:"sync" mapstructure:"sync"`
}

type SettingsConfig struct {
	LogLevel     log.Level       `yaml:"log_level" mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFormat    log.Format      `yaml:"log_format" mapstructure:"log_format" validate:"omitempty,oneof=text json"`
	ReporterType string          `yaml:"reporter" mapstructure:"reporter" validate:"required,oneof=text json"`
	Reporter     ReporterConfigs `yaml:"reporter_config" mapstructure:"reporter_config"`
	PollInterval time.Duration   `yaml:"poll_interval" mapstructure:"poll_interval" validate:"gte=0"`
	// MaxWait of zero polls until the stack settles, however long it takes.
	MaxWait   time.Duration `yaml:"max_wait" mapstructure:"max_wait" validate:"gte=0"`
	Preflight bool          `yaml:"preflight" mapstructure:"preflight"`
}

type ReporterConfigs struct {
	Text *text.Config `yaml:"text,omitempty" mapstructure:"text"`
	JSON *json.Config `yaml:"json,omitempty" mapstructure:"json"`
}

type PlatformConfig struct {
	AWS *AWSPlatformConfig `yaml:"aws" mapstructure:"aws" validate:"required"`
}

type AWSPlatformConfig struct {
	// Region and Profile fall back to the SDK's default resolution chain.
	Region               string `yaml:"region" mapstructure:"region"`
	Profile              string `yaml:"profile" mapstructure:"profile"`
	APIRequestsPerSecond int    `yaml:"api_requests_per_second" mapstructure:"api_requests_per_second" validate:"min=1,max=100"`
}

type SyncConfig struct {
	SourceStackName         string `yaml:"source_stack_name" mapstructure:"source_stack_name" validate:"required"`
	TargetStackName         string `yaml:"target_stack_name" mapstructure:"target_stack_name" validate:"required,nefield=SourceStackName"`
	IgnoreSourceStackStatus bool   `yaml:"ignore_source_stack_status" mapstructure:"ignore_source_stack_status"`
	// ParameterOverrides holds a JSON object as text. Viper lower-cases map
	// keys, so a YAML mapping cannot carry case-sensitive parameter names.
	ParameterOverrides string `yaml:"parameter_overrides" mapstructure:"parameter_overrides" validate:"required"`
	RoleARN            string `yaml:"role_arn" mapstructure:"role_arn" validate:"omitempty,startswith=arn:"`
}

func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			LogLevel:     log.LevelInfo,
			LogFormat:    log.FormatText,
			ReporterType: text.ReporterTypeText,
			Reporter: ReporterConfigs{
				Text: &text.Config{NoColor: false},
				JSON: &json.Config{},
			},
			PollInterval: 15 * time.Second,
		},
		Platform: PlatformConfig{
			AWS: &AWSPlatformConfig{APIRequestsPerSecond: 5},
		},
	}
}

// SetDefaults registers the defaults with v so they rank below flags,
// environment variables and the config file.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("settings.log_level", string(d.Settings.LogLevel))
	v.SetDefault("settings.log_format", string(d.Settings.LogFormat))
	v.SetDefault("settings.reporter", d.Settings.ReporterType)
	v.SetDefault("settings.reporter_config.text.no_color", d.Settings.Reporter.Text.NoColor)
	v.SetDefault("settings.reporter_config.json.compact", d.Settings.Reporter.JSON.Compact)
	v.SetDefault("settings.poll_interval", d.Settings.PollInterval)
	v.SetDefault("settings.max_wait", d.Settings.MaxWait)
	v.SetDefault("settings.preflight", d.Settings.Preflight)
	v.SetDefault("platform.aws.api_requests_per_second", d.Platform.AWS.APIRequestsPerSecond)
	v.SetDefault("sync.ignore_source_stack_status", false)
}

// Load unmarshals v on top of DefaultConfig.
func Load(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)))
	if err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigParseError,
			"Failed to parse configuration",
			"Check the types of the values in your configuration file, flags and environment.")
	}
	return cfg, nil
}

// Validate checks the struct rules and reports every violation at once.
func (c *Config) Validate(ctx context.Context) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.StructCtx(ctx, c)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, errors.CodeConfigValidation, "configuration validation could not run")
	}

	var errorDetails strings.Builder
	errorDetails.WriteString("Configuration validation failed:")
	for _, fe := range validationErrors {
		errorDetails.WriteString(fmt.Sprintf("\n - Field '%s': Failed on '%s' validation (value: '%v')", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return errors.NewUserFacing(errors.CodeConfigValidation, errorDetails.String(),
		"Please check your configuration file, flags or action inputs.")
}

// SyncRequest builds the immutable request for one synchronization.
// Malformed overrides are rejected here, before any provider call.
func (c *Config) SyncRequest() (domain.SyncRequest, error) {
	overrides, err := domain.ParseOverrides(c.Sync.ParameterOverrides)
	if err != nil {
		return domain.SyncRequest{}, errors.WrapUserFacing(err, errors.CodeInvalidOverrides,
			fmt.Sprintf("The given parameter overrides are invalid: %v", err),
			`Pass a JSON object of string, number or boolean values, e.g. {"Environment":"staging"}.`)
	}

	return domain.SyncRequest{
		SourceStackName:         c.Sync.SourceStackName,
		TargetStackName:         c.Sync.TargetStackName,
		IgnoreSourceStackStatus: c.Sync.IgnoreSourceStackStatus,
		Overrides:               overrides,
		RoleARN:                 c.Sync.RoleARN,
	}, nil
}

// LogConfig returns the logger settings.
func (c *Config) LogConfig() log.Config {
	return log.Config{Level: c.Settings.LogLevel, Format: c.Settings.LogFormat}
}
