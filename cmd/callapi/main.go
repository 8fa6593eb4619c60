package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/callapi/internal/cliconfig"
	"github.com/bft-labs/callapi/pkg/invoke"
	"github.com/bft-labs/callapi/pkg/log"
)

const longHelp = `Send one HTTP request with a JSON body and print what came back.

The report is always two lines on stdout: "StatusCode: <n>" and the response
body, with literal \uXXXX escapes decoded. HTTP error statuses are reported
like any other. When no HTTP response arrives at all (DNS failure, refused
connection, timeout) the status is 0 and the body is the error text. The exit
code is 0 whenever a report was printed.`

var exampleUsage = strings.TrimSpace(`
  callapi --uri https://httpbin.org/post --json-body '{"text":"hello"}'
  callapi --uri https://httpbin.org/anything --method PUT --json-body '{}' --new-trace --pretty
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return invoke.Version
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "callapi",
		Short:   "Call an HTTP API with a JSON body and custom headers",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			zl := cliconfig.Logger(cmd.ErrOrStderr(), cfg.Verbose)
			logger := log.NewZerologAdapter(zl)
			logger.Debug("configuration",
				log.String("method", cfg.Method),
				log.String("uri", cfg.URI),
				log.String("user_agent", cfg.UserAgent),
				log.Duration("timeout", cfg.Timeout),
				log.Bool("new_trace", cfg.NewTrace),
			)

			// Past this point nothing is a usage error; the report is the result.
			cmd.SilenceUsage = true

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			inv := invoke.NewInvoker(invoke.WithLogger(logger), invoke.WithTimeout(cfg.Timeout))
			out := inv.Do(ctx, cfg.Request())
			if err := invoke.Report(cmd.OutOrStdout(), out, invoke.ReportOptions{Pretty: cfg.Pretty}); err != nil {
				logger.Error("write report", log.Err(err))
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.callapi/config.toml)")
	root.Flags().StringVar(&cfg.URI, "uri", "", "target URI")
	root.Flags().StringVar(&cfg.JSONBody, "json-body", "", "raw JSON text sent as the UTF-8 request body")
	root.Flags().StringVar(&cfg.Method, "method", cfg.Method, "HTTP method: "+strings.Join(invoke.Methods, ", "))
	root.Flags().StringVar(&cfg.UserAgent, "user-agent", cfg.UserAgent, "User-Agent header")
	root.Flags().StringVar(&cfg.Traceparent, "traceparent", cfg.Traceparent, "traceparent header (sent as is)")
	root.Flags().BoolVar(&cfg.NewTrace, "new-trace", cfg.NewTrace, "send a freshly generated traceparent instead")
	root.Flags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HTTP timeout (0 waits indefinitely)")
	root.Flags().BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "pretty-print JSON response bodies")
	root.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "debug logging on stderr")
	_ = root.MarkFlagRequired("uri")
	_ = root.MarkFlagRequired("json-body")

	return root
}

func main() {
	root := newRootCommand(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
