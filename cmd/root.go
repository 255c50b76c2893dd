package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olusolaa/cfn-stack-sync/internal/actions"
	"github.com/olusolaa/cfn-stack-sync/internal/app"
	"github.com/olusolaa/cfn-stack-sync/internal/config"
	apperrors "github.com/olusolaa/cfn-stack-sync/internal/errors"
)

const envPrefix = "STACKSYNC"

// actionInputs maps config keys to GitHub Actions inputs. The runner
// exposes each input as INPUT_<NAME> with the name upper-cased.
var actionInputs = map[string]string{
	"sync.source_stack_name":          "source-stack-name",
	"sync.ignore_source_stack_status": "ignore-source-stack-status",
	"sync.target_stack_name":          "target-stack-name",
	"sync.parameter_overrides":        "parameter-overrides",
	"sync.role_arn":                   "role-arn",
}

var flagKeys = map[string]string{
	"log-level":                  "settings.log_level",
	"log-format":                 "settings.log_format",
	"reporter":                   "settings.reporter",
	"no-color":                   "settings.reporter_config.text.no_color",
	"poll-interval":              "settings.poll_interval",
	"max-wait":                   "settings.max_wait",
	"preflight":                  "settings.preflight",
	"region":                     "platform.aws.region",
	"profile":                    "platform.aws.profile",
	"source-stack-name":          "sync.source_stack_name",
	"ignore-source-stack-status": "sync.ignore_source_stack_status",
	"target-stack-name":          "sync.target_stack_name",
	"parameter-overrides":        "sync.parameter_overrides",
	"role-arn":                   "sync.role_arn",
}

func newRootCommand(v *viper.Viper, stdout, stderr io.Writer) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "stack-sync",
		Short: "Synchronizes a CloudFormation stack onto another stack.",
		Long: `stack-sync copies the template and parameters of a source CloudFormation
stack onto a target stack, creating the target when it does not exist, and
waits until the target settles. Parameter overrides replace or extend the
source parameters.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeConfig(v, cfgFile, stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.BuildApplicationFromViper(cmd.Context(), v, app.WithOutput(stdout, stderr))
			if err != nil {
				reportFailure(stdout, stderr, err)
				return err
			}

			if err := application.Run(cmd.Context()); err != nil {
				reportFailure(stdout, stderr, err)
				return err
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default is .stack-sync.yaml in the working or home directory)")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("log-format", "", "Log format (text, json)")
	flags.String("reporter", "", "Report format (text, json)")
	flags.Bool("no-color", false, "Disable colored text output")
	flags.Duration("poll-interval", 0, "Interval between target status checks (default 15s)")
	flags.Duration("max-wait", 0, "Give up waiting for the target after this long (0 waits indefinitely)")
	flags.Bool("preflight", false, "Verify the AWS caller identity before reading stacks")
	flags.String("region", "", "AWS region (default from the AWS environment)")
	flags.String("profile", "", "AWS shared config profile")
	flags.String("source-stack-name", "", "Name or ID of the stack to copy from")
	flags.Bool("ignore-source-stack-status", false, "Sync even if the source stack is not in a ready state")
	flags.String("target-stack-name", "", "Name of the stack to create or update")
	flags.String("parameter-overrides", "", `JSON object of parameters replacing or extending the source parameters, e.g. '{"Env":"staging"}'`)
	flags.String("role-arn", "", "IAM role CloudFormation assumes to provision the target")

	for flag, key := range flagKeys {
		cobra.CheckErr(v.BindPFlag(key, flags.Lookup(flag)))
	}
	bindEnvironment(v)
	config.SetDefaults(v)

	return cmd
}

func bindEnvironment(v *viper.Viper) {
	replacer := strings.NewReplacer(".", "_")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	for key, input := range actionInputs {
		prefixed := envPrefix + "_" + strings.ToUpper(replacer.Replace(key))
		_ = v.BindEnv(key, prefixed, "INPUT_"+strings.ToUpper(input))
	}
}

func initializeConfig(v *viper.Viper, cfgFile string, stderr io.Writer) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".stack-sync")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return apperrors.WrapUserFacing(err, apperrors.CodeConfigReadError,
				"Failed to read the configuration file",
				"Check that the file exists and is valid YAML.")
		}
		return nil
	}
	fmt.Fprintln(stderr, "Using configuration file:", v.ConfigFileUsed())
	return nil
}

// reportFailure prints the single failure message, mirrors it as a
// workflow annotation and, on request, dumps the error chain.
func reportFailure(stdout, stderr io.Writer, err error) {
	message, suggestion, userFacing := apperrors.GetUserFacingMessage(err)
	if !userFacing {
		message = err.Error()
	}

	fmt.Fprintf(stderr, "ERROR: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(stderr, "Suggestion: %s\n", suggestion)
	}

	env, envErr := actions.LoadEnvironment()
	if envErr != nil {
		return
	}
	actions.NewRunner(env, stdout).Error(message)

	if env.ShowStackTrace {
		fmt.Fprintf(stderr, "\nError chain: %v\n", err)
		if trace := apperrors.GetStackTrace(err); trace != "" {
			fmt.Fprintf(stderr, "Stack trace:\n%s\n", trace)
		}
	}
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	cmd := newRootCommand(viper.New(), os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
