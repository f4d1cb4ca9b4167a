package commands

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"aocfetch/lib/fetcher"
	"aocfetch/lib/restyutil"
	"aocfetch/lib/scrapers/aoc"
	"aocfetch/lib/serviceutil"
	"aocfetch/lib/settings"
	"aocfetch/lib/telemetry"

	"github.com/spf13/cobra"
)

const httpDumpDir = ".aocfetch/http"

var (
	configPath *string
	verbose    *bool
	delay      *time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "aocfetch [day]",
	Short: "aocfetch downloads Advent of Code prompts and inputs into local files.",
	Long: `aocfetch downloads the puzzle prompt and your personal input of every day
of the year configured in Fetch.toml, or of a single day when one is given.
Files that are already on disk are not downloaded again.`,
	Args: func(cmd *cobra.Command, args []string) error {
		err := cobra.MaximumNArgs(1)(cmd, args)
		if err != nil {
			return usageError{err}
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(os.Stderr, *verbose)
		if !*verbose {
			return nil
		}
		slog.Debug("verbose logging enabled", "http_dumps", httpDumpDir)
		out, err := restyutil.NewFilesystemOutput(httpDumpDir)
		if err != nil {
			return err
		}
		aoc.SetRestyInstrumentOutput(out)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		params := fetchParams{
			ConfigPath: *configPath,
			Delay:      *delay,
			Out:        cmd.OutOrStdout(),
		}
		// an explicit --delay 0 turns the delay off
		if params.Delay == 0 {
			params.Delay = -1
		}
		if len(args) == 1 {
			day, err := fetcher.ParseDay(args[0])
			if err != nil {
				return usageError{err}
			}
			params.Days = []int{day}
		}
		return runFetch(cmd.Context(), params)
	},
}

func init() {
	configPath = rootCmd.Flags().String("config", settings.DefaultPath, "The settings file, created with defaults if missing.")
	delay = rootCmd.Flags().Duration("delay", aoc.DefaultDelay, "How long to wait before every request.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging and dump http messages to "+httpDumpDir+".")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
}

// usageError marks errors caused by how the command was invoked.
type usageError struct {
	err error
}

func (e usageError) Error() string {
	return e.err.Error()
}

func (e usageError) Unwrap() error {
	return e.err
}

func exitCode(err error) int {
	var usage usageError
	if errors.As(err, &usage) {
		return serviceutil.ExitUsage
	}
	return serviceutil.ExitDataErr
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		serviceutil.FatalWithCode(exitCode(err), "aocfetch failed", err)
	}
}
