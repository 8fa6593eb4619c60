package smoke

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/bft-labs/callapi/internal/domain"
)

func TestLocateTargetMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), TargetName())

	got, err := LocateTarget(path)
	if !errors.Is(err, domain.ErrTargetNotFound) {
		t.Fatalf("LocateTarget() error = %v, want ErrTargetNotFound", err)
	}
	if got != path {
		t.Errorf("LocateTarget() path = %q, want %q", got, path)
	}
	if err.Error() != "callapi: target not found at "+path {
		t.Errorf("error = %q, want the sentinel followed by the path", err)
	}
}

func TestLocateTargetDirectory(t *testing.T) {
	if _, err := LocateTarget(t.TempDir()); !errors.Is(err, domain.ErrTargetNotFound) {
		t.Errorf("LocateTarget(dir) error = %v, want ErrTargetNotFound", err)
	}
}

func TestLocateTargetExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "callapi")
	if err := os.WriteFile(path, []byte("bin"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := LocateTarget(path)
	if err != nil {
		t.Fatalf("LocateTarget() error: %v", err)
	}
	if got != path {
		t.Errorf("LocateTarget() = %q, want %q", got, path)
	}
}

func TestLocateTargetSibling(t *testing.T) {
	// The test binary has no callapi next to it.
	_, err := LocateTarget("")
	if !errors.Is(err, domain.ErrTargetNotFound) {
		t.Errorf("LocateTarget(\"\") error = %v, want ErrTargetNotFound", err)
	}
}

func TestExecLauncher(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the target")
	}
	script := filepath.Join(t.TempDir(), "callapi")
	body := "#!/bin/sh\necho \"StatusCode: 0\"\nprintf '%s\\n' \"$*\"\necho diag >&2\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	l := ExecLauncher{Path: script, Stdout: &stdout, Stderr: &stderr}
	err := l.Launch(context.Background(), Call{URI: "http://x", JSONBody: Payload, UserAgent: "ua", Traceparent: "tp"})
	if err != nil {
		t.Fatalf("Launch() error: %v", err)
	}

	want := "StatusCode: 0\n--uri http://x --json-body " + Payload + " --user-agent ua --traceparent tp\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
	if stderr.String() != "diag\n" {
		t.Errorf("stderr = %q, want diag", stderr.String())
	}
}

func TestExecLauncherChildFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the target")
	}
	script := filepath.Join(t.TempDir(), "callapi")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 3\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	l := ExecLauncher{Path: script, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	if err := l.Launch(context.Background(), Call{}); err == nil {
		t.Error("Launch() error = nil, want exit status error")
	}
}
