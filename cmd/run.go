package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/raygun/internal/domain"
	m "gooze.dev/pkg/raygun/internal/model"
)

const shardFlagName = "shard"

var runParallelFlag int
var runShardFlag string
var runSkipBaselineFlag bool

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...] [-- test command...]",
		Short: "Run mutation testing",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, command := splitTestCommand(cmd, args)

			shardIndex, totalShards, err := parseShardFlag(runShardFlag)
			if err != nil {
				return err
			}

			return workflow.Test(cmd.Context(), domain.TestArgs{
				EstimateArgs: estimateArgs(paths),
				Command:      testCommand(command),
				Reports:      m.Path(viper.GetString(outputFlagName)),
				Threads:      viper.GetInt(runParallelConfigKey),
				ShardIndex:   shardIndex,
				ShardCount:   totalShards,
				SkipBaseline: viper.GetBool(runSkipBaselineKey),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of parallel workers for mutation testing")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
	cmd.Flags().StringVarP(&runShardFlag, shardFlagName, "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.Flags().BoolVar(&runSkipBaselineFlag, skipBaselineFlagName, viper.GetBool(runSkipBaselineKey), "do not check that the test command passes before mutating")
	bindFlagToConfig(cmd.Flags().Lookup(skipBaselineFlagName), runSkipBaselineKey)
}

// splitTestCommand separates path arguments from a test command given after
// "--". The command words are shell-quoted back into a single line.
func splitTestCommand(cmd *cobra.Command, args []string) ([]string, string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, ""
	}

	return args[:dash], shellescape.QuoteCommand(args[dash:])
}

// testCommand prefers a command given after "--" over --command and config.
func testCommand(fromArgs string) domain.TestCommand {
	command := strings.TrimSpace(fromArgs)
	if command == "" {
		command = strings.TrimSpace(viper.GetString(runCommandKey))
	}

	return domain.TestCommand{
		Command: command,
		Timeout: mutationTimeout(),
	}
}

// errInvalidShard rejects a --shard value that is not INDEX/TOTAL with
// 0 <= INDEX < TOTAL.
var errInvalidShard = errors.New("invalid --shard, want INDEX/TOTAL with 0 <= INDEX < TOTAL")

// parseShardFlag parses INDEX/TOTAL. An empty value runs every mutant.
func parseShardFlag(shard string) (int, int, error) {
	if shard == "" {
		return 0, 1, nil
	}

	rawIndex, rawTotal, found := strings.Cut(shard, "/")
	if !found {
		return 0, 0, fmt.Errorf("%w: %q", errInvalidShard, shard)
	}

	index, indexErr := strconv.Atoi(strings.TrimSpace(rawIndex))
	total, totalErr := strconv.Atoi(strings.TrimSpace(rawTotal))

	if indexErr != nil || totalErr != nil || total <= 0 || index < 0 || index >= total {
		return 0, 0, fmt.Errorf("%w: %q", errInvalidShard, shard)
	}

	return index, total, nil
}
