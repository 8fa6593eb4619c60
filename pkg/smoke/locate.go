package smoke

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bft-labs/callapi/internal/domain"
)

// TargetName is the file name of the callapi binary on this platform.
func TargetName() string {
	if runtime.GOOS == "windows" {
		return "callapi.exe"
	}
	return "callapi"
}

// LocateTarget returns the absolute path of the callapi binary: explicit if
// given, otherwise TargetName in the directory of the running executable.
// It fails with domain.ErrTargetNotFound when no regular file is there.
func LocateTarget(explicit string) (string, error) {
	path := explicit
	if path == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("resolve executable: %w", err)
		}
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		path = filepath.Join(filepath.Dir(exe), TargetName())
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return path, fmt.Errorf("%w at %s", domain.ErrTargetNotFound, path)
	}
	return path, nil
}
