package invoke

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bft-labs/callapi/pkg/log"
	"github.com/bft-labs/callapi/pkg/textdecode"
)

// Invoker sends requests and converts every result into an Outcome.
type Invoker struct {
	client HTTPClient
	logger log.Logger
}

// NewInvoker creates an Invoker. Without WithHTTPClient it uses a plain
// *http.Client with the configured timeout.
func NewInvoker(opts ...Option) *Invoker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	client := o.httpClient
	if client == nil {
		client = &http.Client{Timeout: o.timeout}
	}
	return &Invoker{
		client: client,
		logger: o.logger,
	}
}

// Do performs req and never returns an error: failures below HTTP are
// reported as a TransportFailure.
func (i *Invoker) Do(ctx context.Context, req Request) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = TransportFailure{Err: fmt.Errorf("panic during request: %v", r)}
		}
	}()

	if err := req.Validate(); err != nil {
		return TransportFailure{Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URI, bytes.NewReader(req.Body))
	if err != nil {
		i.logger.Debug("build request failed", log.Err(err))
		return TransportFailure{Err: err}
	}
	httpReq.Header = req.header()

	i.logger.Debug("sending request",
		log.String("method", req.Method),
		log.String("uri", req.URI),
		log.Int("body_bytes", len(req.Body)),
	)

	start := time.Now()
	resp, err := i.client.Do(httpReq)
	if err != nil {
		i.logger.Warn("request failed", log.String("uri", req.URI), log.Err(err))
		return TransportFailure{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		// The status line already arrived, so the status is kept.
		i.logger.Warn("read response body failed", log.Int("status", resp.StatusCode), log.Err(err))
		return HTTPOutcome{
			Status: resp.StatusCode,
			Body:   fmt.Sprintf("read response body: %v", err),
		}
	}

	contentType := resp.Header.Get("Content-Type")
	i.logger.Debug("response received",
		log.Int("status", resp.StatusCode),
		log.String("content_type", contentType),
		log.Int("body_bytes", len(raw)),
		log.Duration("elapsed", time.Since(start)),
	)

	return HTTPOutcome{
		Status: resp.StatusCode,
		Body:   textdecode.Body(contentType, raw),
	}
}
