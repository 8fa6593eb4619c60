package cliconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bft-labs/callapi/pkg/invoke"
)

// Config holds CLI configuration for callapi.
type Config struct {
	URI      string
	JSONBody string

	Method      string
	UserAgent   string
	Traceparent string
	NewTrace    bool

	Timeout time.Duration
	Pretty  bool
	Verbose bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Method:      "POST",
		UserAgent:   invoke.DefaultUserAgent,
		Traceparent: invoke.DefaultTraceparent,
	}
}

// Validate checks required values and normalises the method.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.URI) == "" {
		return fmt.Errorf("uri is required")
	}
	m, err := invoke.NormalizeMethod(c.Method)
	if err != nil {
		return err
	}
	c.Method = m
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// Request builds the outbound request described by c.
func (c Config) Request() invoke.Request {
	tp := c.Traceparent
	if c.NewTrace {
		tp = invoke.NewTraceparent()
	}
	return invoke.Request{
		URI:         c.URI,
		Method:      c.Method,
		Body:        []byte(c.JSONBody),
		UserAgent:   c.UserAgent,
		Traceparent: tp,
	}
}

// configSetter applies values only for flags the user did not set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString accepts anything strconv.ParseBool does.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = b
	return nil
}
