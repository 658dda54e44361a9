package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/rohmanhakim/gitrev/internal/config"
	"github.com/rohmanhakim/gitrev/internal/metadata"
	"github.com/rohmanhakim/gitrev/internal/reporter"
	"github.com/spf13/cobra"
)

// Overrides for tests only; nothing in a normal run sets them.
var (
	workDir  string
	recorder *metadata.Recorder
	logger   *slog.Logger
)

// rootCmd reads no flags and no arguments. Anything passed on the
// command line, --help included, is ignored.
var rootCmd = &cobra.Command{
	Use:   "gitrev",
	Short: "Print the revision of the current git checkout.",
	Long: `gitrev prints r<count>.<hash> for the commit checked out in the current
working tree, where <count> is the number of commits reachable from HEAD
and <hash> is the abbreviated commit hash reported by git.

Outside a working tree, or when git cannot be run, gitrev prints nothing
and exits with a nonzero status.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := InitConfigWithError()
		if err != nil {
			return err
		}
		return Run(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

// Run prints the revision line for cfg's working directory to out.
// Nothing is written unless every query succeeded.
// Each run gets its own recorder tagged with a fresh run id.
func Run(ctx context.Context, cfg config.Config, out io.Writer) error {
	rec := recorder
	if rec == nil {
		rec = metadata.NewRecorder(uuid.NewString(), logger)
	}

	r := reporter.NewReporter(cfg, rec)
	rev, reportErr := r.Report(ctx)
	if reportErr != nil {
		return reportErr
	}

	_, err := fmt.Fprintln(out, rev.String())
	return err
}

// Execute runs the root command and exits with status 1 on any failure.
// This is called by main.main().
func Execute() {
	if err := ExecuteWithError(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// ExecuteWithError runs the root command and returns its error instead of exiting.
// args are accepted for symmetry with the command line and dropped: cobra
// always sees an empty argument list, so it never routes to its own
// completion or help commands.
func ExecuteWithError(_ []string) error {
	rootCmd.SetArgs([]string{})
	return rootCmd.Execute()
}

// InitConfigWithError builds the run configuration from defaults.
func InitConfigWithError() (config.Config, error) {
	configBuilder := config.WithDefault()

	if workDir != "" {
		configBuilder = configBuilder.WithWorkDir(workDir)
	}

	return configBuilder.Build()
}

func ResetForTest() {
	workDir = ""
	recorder = nil
	logger = nil
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
}

func SetWorkDirForTest(dir string) {
	workDir = dir
}

func SetRecorderForTest(r *metadata.Recorder) {
	recorder = r
}

func SetLoggerForTest(l *slog.Logger) {
	logger = l
}

func SetOutputForTest(stdout, stderr io.Writer) {
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
}
