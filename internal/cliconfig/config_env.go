package cliconfig

import "os"

// ApplyEnvConfig applies CALLAPI_* environment variables. They override file
// values but not flags the user set.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("method", os.Getenv("CALLAPI_METHOD"), &cfg.Method)
	s.setString("user-agent", os.Getenv("CALLAPI_USER_AGENT"), &cfg.UserAgent)
	s.setString("traceparent", os.Getenv("CALLAPI_TRACEPARENT"), &cfg.Traceparent)
	if err := s.setDuration("timeout", os.Getenv("CALLAPI_TIMEOUT"), &cfg.Timeout); err != nil {
		return err
	}
	if err := s.setBoolFromString("pretty", os.Getenv("CALLAPI_PRETTY"), &cfg.Pretty); err != nil {
		return err
	}
	return nil
}
