package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/khanhnv2901/quickwins/internal/probe"
	"github.com/khanhnv2901/quickwins/internal/scanner"
	apperrors "github.com/khanhnv2901/quickwins/internal/shared/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var cfgFile string
var logger *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "quickwins <target_url>",
	Short: "Quick-win reconnaissance probe for a single web origin (authorized testing only)",
	Long: `Issue a fixed battery of unauthenticated GET requests against one target and
report low-hanging weaknesses:

- exposed .git metadata
- .env files leaking credentials
- reachable admin panels
- sensitive robots.txt entries
- missing security headers
- permissive CORS policy

Checks run in a fixed order and findings are listed in that order.`,
	Example:       "  quickwins https://example.com",
	Args:          targetArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initViper()
		applyConfigDefaults(cmd)

		if err := cliConfig.Validate(); err != nil {
			return err
		}

		if cliConfig.NoColor {
			color.NoColor = true
		}

		l, err := newLogger(cliConfig.Verbose)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = l.Sugar()
		logger.Debugw("runtime configuration",
			"timeout_secs", cliConfig.TimeoutSecs,
			"verify_tls", cliConfig.VerifyTLS,
			"parallel", cliConfig.Parallel,
			"format", cliConfig.Format)

		return nil
	},
	RunE: runScan,
}

// targetArgs enforces exactly one positional target.
func targetArgs(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 1:
		return nil
	case 0:
		return &UsageError{Reason: "missing target URL"}
	default:
		return &UsageError{Reason: fmt.Sprintf("expected one target URL, got %d arguments", len(args))}
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()

	probeCfg := cliConfig.ProbeConfig()
	probeCfg.Logger = logger
	client := probe.NewClient(probeCfg)

	opts := []scanner.Option{
		scanner.WithParallel(cliConfig.Parallel),
		scanner.WithLogger(logger),
	}
	if cliConfig.Format == formatText {
		opts = append(opts, scanner.WithObserver(newProgressPrinter(out)))
	}

	s, err := scanner.New(args[0], client, opts...)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidTarget) || errors.Is(err, apperrors.ErrEmptyTarget) {
			return &UsageError{Reason: err.Error()}
		}
		return err
	}

	if cliConfig.Format == formatJSON {
		return writeJSONReport(out, s.Scan(ctx))
	}

	printBanner(out, s.Target())
	printReport(out, s.Scan(ctx))
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// Execute runs the root command and exits 1 on any error.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.quickwins.yaml)")
	rootCmd.PersistentFlags().BoolVar(&cliConfig.Verbose, "verbose", false, "enable debug logging on stderr")

	flags.IntVar(&cliConfig.TimeoutSecs, "timeout", defaultTimeoutSeconds, "per-request timeout in seconds")
	flags.StringVar(&cliConfig.UserAgent, "user-agent", cliConfig.UserAgent, "User-Agent header sent with every probe")
	flags.BoolVar(&cliConfig.VerifyTLS, "verify-tls", false, "verify TLS certificates (off by default)")
	flags.BoolVar(&cliConfig.Parallel, "parallel", false, "run checks concurrently (output order is unchanged)")
	flags.StringVar(&cliConfig.Format, "format", formatText, "output format: text or json")
	flags.BoolVar(&cliConfig.NoColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
}
