package smoke

import (
	"context"
	"fmt"
	"io"

	"github.com/bft-labs/callapi/pkg/log"
)

const (
	successHeader = "--- Success case (200) ---"
	errorHeader   = "--- Error case (non-200) ---"
)

// Runner drives the success and error calls in order.
type Runner struct {
	cfg      Config
	launcher Launcher
	out      io.Writer
	logger   log.Logger
}

// NewRunner creates a Runner that prints section headers to out and hands
// each call to launcher. A nil logger discards log output.
func NewRunner(cfg Config, launcher Launcher, out io.Writer, logger log.Logger) *Runner {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Runner{
		cfg:      cfg,
		launcher: launcher,
		out:      out,
		logger:   logger,
	}
}

// Run performs both calls sequentially. A failed launch is logged and does
// not fail the run; only a failure to write the section headers is returned.
func (r *Runner) Run(ctx context.Context) error {
	if _, err := fmt.Fprintln(r.out, successHeader); err != nil {
		return err
	}
	r.launch(ctx, "success", r.cfg.SuccessURI)

	if _, err := fmt.Fprintf(r.out, "\n%s\n", errorHeader); err != nil {
		return err
	}
	r.launch(ctx, "error", r.cfg.ErrorURI)
	return nil
}

func (r *Runner) launch(ctx context.Context, name, uri string) {
	call := Call{
		URI:         uri,
		JSONBody:    Payload,
		UserAgent:   r.cfg.UserAgent,
		Traceparent: r.cfg.Traceparent,
	}
	r.logger.Debug("launching call", log.String("case", name), log.String("uri", uri))
	if err := r.launcher.Launch(ctx, call); err != nil {
		r.logger.Warn("call did not complete", log.String("case", name), log.Err(err))
	}
}
