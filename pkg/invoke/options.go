package invoke

import (
	"time"

	"github.com/bft-labs/callapi/pkg/log"
)

// Option configures an Invoker.
type Option func(*options)

type options struct {
	httpClient HTTPClient
	logger     log.Logger
	timeout    time.Duration
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithHTTPClient sets the client used to send requests. When set, the
// timeout option is ignored; configure the timeout on the client instead.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTimeout bounds the whole exchange. Zero, the default, means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}
