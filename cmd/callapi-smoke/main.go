package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bft-labs/callapi/internal/cliconfig"
	"github.com/bft-labs/callapi/pkg/invoke"
	"github.com/bft-labs/callapi/pkg/log"
	"github.com/bft-labs/callapi/pkg/smoke"
)

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cfg := smoke.DefaultConfig()
	var verbose bool

	root := &cobra.Command{
		Use:   "callapi-smoke",
		Short: "Run callapi against a success endpoint and an error endpoint",
		Long: `Runs callapi twice, one call after the other: once against a URI expected
to answer 200 and once against a URI expected to answer with an error status.
Both reports are printed under a section header for visual inspection; the
outcome of the calls does not affect the exit code.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			logger := log.NewZerologAdapter(cliconfig.Logger(cmd.ErrOrStderr(), verbose))

			var launcher smoke.Launcher
			if cfg.InProcess {
				launcher = smoke.InProcessLauncher{
					Invoker: invoke.NewInvoker(invoke.WithLogger(logger)),
					Stdout:  cmd.OutOrStdout(),
				}
			} else {
				target, err := smoke.LocateTarget(cfg.Target)
				if err != nil {
					cmd.SilenceErrors = true
					if target == "" {
						fmt.Fprintln(cmd.ErrOrStderr(), err)
					} else {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s not found at %s\n", filepath.Base(target), target)
					}
					return err
				}
				logger.Debug("using target", log.String("path", target))
				launcher = smoke.ExecLauncher{
					Path:   target,
					Stdout: cmd.OutOrStdout(),
					Stderr: cmd.ErrOrStderr(),
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return smoke.NewRunner(cfg, launcher, cmd.OutOrStdout(), logger).Run(ctx)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.Flags().StringVar(&cfg.SuccessURI, "success-uri", cfg.SuccessURI, "URI expected to return 200")
	root.Flags().StringVar(&cfg.ErrorURI, "error-uri", cfg.ErrorURI, "URI expected to return a non-200 status")
	root.Flags().StringVar(&cfg.UserAgent, "user-agent", cfg.UserAgent, "User-Agent header for both calls")
	root.Flags().StringVar(&cfg.Traceparent, "traceparent", cfg.Traceparent, "traceparent header for both calls")
	root.Flags().StringVar(&cfg.Target, "target", cfg.Target, "path to the callapi binary (default: next to this executable)")
	root.Flags().BoolVar(&cfg.InProcess, "in-process", cfg.InProcess, "call the invoker directly instead of spawning callapi")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	return root
}

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
