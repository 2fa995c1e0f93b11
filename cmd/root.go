// Package cmd provides the root command and CLI setup for raygun.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/raygun/internal/adapter"
	"gooze.dev/pkg/raygun/internal/controller"
	"gooze.dev/pkg/raygun/internal/domain"
	"gooze.dev/pkg/raygun/internal/domain/mutagens"
	m "gooze.dev/pkg/raygun/internal/model"
)

// Shared dependencies, built lazily by setupDependencies so tests can swap
// them before a command runs.
var (
	logger   *slog.Logger
	workflow domain.Workflow
)

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

var (
	operatorsFlag       []string
	commandFlag         string
	mutationTimeoutFlag int64
	verboseFlag         bool
	logFileFlag         string
)

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - ./cmd ./pkg    scan multiple directories`

const rootLongDescription = `Raygun is a mutation testing tool for Go. It applies small, deliberate
faults (mutants) to your source code and runs your test command against
each one. A mutant your tests catch is killed; one they miss survived.

` + pathPatternsHelp

const runLongDescription = `Run mutation testing for the given paths (default: current module).

The test command is taken from --command, the run.command config key, or
everything after "--":

  raygun run ./... -- go test ./...

` + pathPatternsHelp

const listLongDescription = `List source files and the number of applicable mutations.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd *cobra.Command

func init() {
	loadConfig()

	rootCmd = newRootCmd()
	rootCmd.AddCommand(
		newRunCmd(),
		newListCmd(),
		newOperatorsCmd(),
		newBaselineCmd(),
		newViewCmd(),
		newInitCmd(),
		newVersionCmd(),
	)
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)
	cmd.PersistentPreRunE = setupDependencies

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "raygun",
		Short:         "Go mutation testing tool",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(
		&reportsOutputDirFlag, outputFlagName, "o",
		viper.GetString(outputFlagName),
		"output directory for mutation testing reports",
	)
	bindFlagToConfig(flags.Lookup(outputFlagName), outputFlagName)

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files whose module-relative path matches a glob, e.g. \"**/*_gen.go\" (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.StringSliceVar(&operatorsFlag, operatorFlagName, viper.GetStringSlice(runOperatorsKey), "operator or operator family to apply, e.g. arithmetic or comparison_eq_ne (default: all)")
	bindFlagToConfig(flags.Lookup(operatorFlagName), runOperatorsKey)

	flags.StringVarP(&commandFlag, commandFlagName, "c", viper.GetString(runCommandKey), "shell command that runs the test suite, e.g. \"go test ./...\"")
	bindFlagToConfig(flags.Lookup(commandFlagName), runCommandKey)

	flags.Int64Var(&mutationTimeoutFlag, mutationTimeoutFlagName, viper.GetInt64(mutationTimeoutKey), "seconds a single test run may take before it is stopped (0 disables)")
	bindFlagToConfig(flags.Lookup(mutationTimeoutFlagName), mutationTimeoutKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func setupDependencies(cmd *cobra.Command, _ []string) error {
	if logger == nil {
		logger = configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
	}

	if workflow == nil {
		workflow = newWorkflow(cmd, logger)
	}

	return nil
}

func newWorkflow(cmd *cobra.Command, logger *slog.Logger) domain.Workflow {
	fsAdapter := adapter.NewLocalSourceFSAdapter()
	goFileAdapter := adapter.NewLocalGoFileAdapter()
	testAdapter := adapter.NewLocalTestRunnerAdapter(
		adapter.WithRunnerLogger(logger),
		adapter.WithRunnerEnv(viper.GetStringSlice(runEnvKey)...),
	)

	return domain.NewWorkflow(
		fsAdapter,
		goFileAdapter,
		adapter.NewYAMLReportStore(),
		controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout())),
		domain.NewOrchestrator(fsAdapter, testAdapter, logger),
		domain.NewMutationStreamer(fsAdapter, goFileAdapter, logger),
		mutagens.DefaultRegistry(),
		logger,
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func parseOperators(values []string) []m.OperatorKind {
	kinds := make([]m.OperatorKind, 0, len(values))
	for _, value := range values {
		if value == "" {
			continue
		}

		kinds = append(kinds, m.OperatorKind(value))
	}

	return kinds
}

func estimateArgs(args []string) domain.EstimateArgs {
	return domain.EstimateArgs{
		Paths:     parsePaths(args),
		Exclude:   viper.GetStringSlice(excludeConfigKey),
		Operators: parseOperators(viper.GetStringSlice(runOperatorsKey)),
	}
}
