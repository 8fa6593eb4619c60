package smoke

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/bft-labs/callapi/pkg/invoke"
)

// Call is one invocation of callapi.
type Call struct {
	URI         string
	JSONBody    string
	UserAgent   string
	Traceparent string
}

// Args renders c as callapi command-line arguments.
func (c Call) Args() []string {
	return []string{
		"--uri", c.URI,
		"--json-body", c.JSONBody,
		"--user-agent", c.UserAgent,
		"--traceparent", c.Traceparent,
	}
}

// Launcher runs a single Call to completion.
type Launcher interface {
	Launch(ctx context.Context, c Call) error
}

// ExecLauncher spawns the callapi binary at Path. The child writes straight
// to Stdout and Stderr.
type ExecLauncher struct {
	Path   string
	Stdout io.Writer
	Stderr io.Writer
}

// Launch runs the child and waits for it to exit.
func (l ExecLauncher) Launch(ctx context.Context, c Call) error {
	cmd := exec.CommandContext(ctx, l.Path, c.Args()...)
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", l.Path, err)
	}
	return nil
}

// InProcessLauncher performs the call with an Invoker in the current process.
type InProcessLauncher struct {
	Invoker *invoke.Invoker
	Stdout  io.Writer
}

// Launch sends the request and writes the report to Stdout.
func (l InProcessLauncher) Launch(ctx context.Context, c Call) error {
	req := invoke.NewRequest(c.URI, c.JSONBody)
	req.UserAgent = c.UserAgent
	req.Traceparent = c.Traceparent
	return invoke.Report(l.Stdout, l.Invoker.Do(ctx, req), invoke.ReportOptions{})
}
