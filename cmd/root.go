package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"standex/pkg/catalog"
	"standex/pkg/fetcher"
	"standex/pkg/logging"
	"standex/pkg/run"
	"standex/pkg/selector"
	"standex/pkg/version"
	"standex/pkg/writer"
)

// errRunFailed signals that every selected entry failed; Execute maps it to a
// non-zero exit without printing usage noise.
var errRunFailed = errors.New("no entry produced any output")

var opts struct {
	outputDir string
	baseURL   string
	timeout   time.Duration
	display   bool
	save      bool
	all       bool
	verbose   bool
}

// RootCmd runs the fetch pipeline. Keys given as arguments select entries
// non-interactively; without arguments an interactive prompt opens (when
// stdin is a terminal).
var RootCmd = &cobra.Command{
	Use:   "standex [keys...]",
	Short: "Fetch development standards into your project",
	Long: `standex downloads selected standards documents (coding, design, SEO,
accessibility, content, performance) from the shared standards repository and
writes them into a local folder or displays them in the terminal.

Run it without arguments for an interactive picker, or pass standard keys
directly, e.g.:

  standex coding seo -o docs/standards`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	RootCmd.Flags().StringVarP(&opts.outputDir, "output", "o", "standards", "output directory for saved standards")
	RootCmd.Flags().StringVar(&opts.baseURL, "base-url", fetcher.DefaultBaseURL, "root URL of the standards repository")
	RootCmd.Flags().DurationVar(&opts.timeout, "timeout", fetcher.DefaultTimeout, "per-request fetch timeout")
	RootCmd.Flags().BoolVar(&opts.display, "display", false, "display fetched standards in the terminal")
	RootCmd.Flags().BoolVar(&opts.save, "save", false, "save fetched standards to the output directory (default when --display is absent)")
	RootCmd.Flags().BoolVarP(&opts.all, "all", "a", false, "fetch every standard without prompting")
	RootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
}

func runRoot(cmd *cobra.Command, args []string) error {
	if err := logging.Setup(opts.verbose, "standex", version.Get().Version); err != nil {
		return err
	}
	logger := zap.L()

	entries := catalog.Entries()
	if err := catalog.Validate(entries); err != nil {
		// A malformed compiled-in table is a build defect, not a runtime
		// condition the user can fix.
		logger.Fatal("Catalog is malformed", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	runner := &run.Runner{
		Entries:   entries,
		Selector:  buildSelector(args),
		Fetcher:   fetcher.New(opts.baseURL, opts.timeout, logger),
		Writer:    writer.New(cmd.OutOrStdout(), logger),
		OutputDir: opts.outputDir,
		Out:       cmd.OutOrStdout(),
		Logger:    logger,
	}

	summary, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	if summary.ExitCode() != run.ExitOK {
		return errRunFailed
	}
	return nil
}

// buildSelector picks interactive or flag-driven selection. Keys on the
// command line, --all, or a non-terminal stdin all bypass the prompt.
func buildSelector(args []string) selector.Selector {
	interactive := len(args) == 0 && !opts.all && term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		return selector.NewTUI()
	}

	keys := args
	if opts.all {
		keys = catalog.Keys()
	}
	return selector.Static{
		Keys: keys,
		Out:  selector.Output{Mode: flagMode()},
	}
}

func flagMode() writer.Mode {
	switch {
	case opts.display && opts.save:
		return writer.ModeBoth
	case opts.display:
		return writer.ModeDisplay
	default:
		return writer.ModeSave
	}
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := RootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errRunFailed) {
			return run.ExitAllFailed
		}
		RootCmd.PrintErrln("Error:", err)
		return 1
	}
	return run.ExitOK
}
