package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig holds the defaults that may be kept in a TOML file. The target
// URI and body are per-call and always come from flags.
type FileConfig struct {
	Method      string `toml:"method"`
	UserAgent   string `toml:"user_agent"`
	Traceparent string `toml:"traceparent"`
	Timeout     string `toml:"timeout"`
	Pretty      *bool  `toml:"pretty"`
}

// LoadFileConfig reads and parses a TOML config file.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.callapi/config.toml, or "" without a home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".callapi", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file values into cfg, skipping flags in changed.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("method", fc.Method, &cfg.Method)
	s.setString("user-agent", fc.UserAgent, &cfg.UserAgent)
	s.setString("traceparent", fc.Traceparent, &cfg.Traceparent)
	if err := s.setDuration("timeout", fc.Timeout, &cfg.Timeout); err != nil {
		return err
	}
	s.setBool("pretty", fc.Pretty, &cfg.Pretty)

	return nil
}

// FileExists reports whether p exists.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
