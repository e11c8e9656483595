package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"archivecheck/internal/archive"
	"archivecheck/internal/checker"
	"archivecheck/internal/config"
	"archivecheck/internal/deps"
	"archivecheck/internal/logging"
	"archivecheck/internal/preflight"
	"archivecheck/internal/runlock"
	"archivecheck/internal/services/p7zip"
	"archivecheck/internal/verify"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var (
		recursive  bool
		jobs       int
		timeout    time.Duration
		toolPath   string
		output     string
		noProgress bool
		noLock     bool
	)

	cmd := &cobra.Command{
		Use:   "check DIR",
		Short: "Scan DIR and verify every archive found",
		Long: `Check walks DIR recursively, finds 7z and ZIP archives (including
multi-volume sets, which are verified once per set), and tests each one for
integrity. Self-contained archives are read with embedded decoders; sets and
containers the decoders cannot read go through the external 7-Zip tool.

The command exits 0 when every archive verifies and 1 otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("jobs") {
				if jobs < 1 {
					return fmt.Errorf("--jobs must be at least 1")
				}
				cfg.Verify.Jobs = jobs
			}
			toolTimeout := cfg.ToolTimeout()
			if cmd.Flags().Changed("timeout") {
				if timeout <= 0 {
					return fmt.Errorf("--timeout must be positive")
				}
				toolTimeout = timeout
			}
			if cmd.Flags().Changed("tool") {
				cfg.Verify.Tool = strings.TrimSpace(toolPath)
			}
			if output != outputTable && output != outputJSON {
				return fmt.Errorf("unsupported output format %q (expected %s or %s)", output, outputTable, outputJSON)
			}

			root, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve directory: %w", err)
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			plog := logging.NewComponentLogger(logger, "preflight")
			for _, result := range preflight.RunAll(cfg, root) {
				if result.Passed {
					continue
				}
				if result.Optional {
					plog.Warn("preflight check failed",
						logging.String("check", result.Name),
						logging.String("detail", result.Detail))
					continue
				}
				return fmt.Errorf("preflight %s: %s", strings.ToLower(result.Name), result.Detail)
			}

			if !noLock {
				lock, err := runlock.Acquire(root)
				if err != nil {
					return err
				}
				defer lock.Release()
			}

			var tester p7zip.Tester
			binary, err := deps.ResolveSevenZip(cfg.SevenZipBinary())
			switch {
			case err == nil:
				client, err := p7zip.New(binary, toolTimeout)
				if err != nil {
					return err
				}
				tester = client
			case strings.TrimSpace(cfg.SevenZipBinary()) != "":
				return err
			}

			verifier := verify.New(tester,
				verify.WithProbeLimit(cfg.Verify.ZipProbeLimit),
				verify.WithLogger(logger),
			)

			opts := []checker.Option{
				checker.WithJobs(cfg.Verify.Jobs),
				checker.WithExcludeDirs(cfg.Scan.ExcludeDirs),
				checker.WithLogger(logger),
			}
			var bar *progressbar.ProgressBar
			if !noProgress && isTerminalWriter(cmd.OutOrStdout()) {
				opts = append(opts, checker.WithProgress(func(completed, total int, _ archive.Result) {
					if bar == nil {
						bar = newProgressBar(total)
					}
					_ = bar.Set(completed)
				}))
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			summary, err := checker.New(verifier, opts...).Run(runCtx, root)
			if bar != nil {
				if err == nil {
					_ = bar.Finish()
				}
				fmt.Fprintln(os.Stderr)
			}
			if err != nil {
				return err
			}

			if output == outputJSON {
				if err := writeJSON(cmd, newReportView(summary)); err != nil {
					return err
				}
			} else {
				renderReport(cmd.OutOrStdout(), summary)
			}

			if !summary.Success() {
				return fmt.Errorf("%d of %d archives failed verification", summary.Failed, len(summary.Results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Recurse into subdirectories (always on; accepted for compatibility)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "Number of archives to verify concurrently")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "External tool timeout per archive (e.g. 30s, 5m)")
	cmd.Flags().StringVar(&toolPath, "tool", "", "7-Zip binary to use instead of probing PATH")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Report format: table or json")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")
	cmd.Flags().BoolVar(&noLock, "no-lock", false, "Skip the per-directory run lock")

	return cmd
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("verifying"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
	)
}
