package invoke

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bft-labs/callapi/internal/domain"
)

const (
	// DefaultUserAgent is sent when a Request has no UserAgent.
	DefaultUserAgent = "pwsh-client/1.0"

	// DefaultTraceparent is an all-zero trace context with the sampled flag set.
	DefaultTraceparent = "00-00000000000000000000000000000000-0000000000000000-01"

	// ContentType is the fixed Content-Type of every outbound request.
	ContentType = "application/json; charset=utf-8"
)

// Methods lists the accepted HTTP methods.
var Methods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// Request describes one outbound call. Body is sent verbatim; it is not
// checked for being well-formed JSON.
type Request struct {
	URI         string
	Method      string
	Body        []byte
	UserAgent   string
	Traceparent string
}

// NewRequest builds a POST request carrying jsonBody encoded as UTF-8, with
// the default user agent and traceparent.
func NewRequest(uri, jsonBody string) Request {
	return Request{
		URI:         uri,
		Method:      http.MethodPost,
		Body:        []byte(jsonBody),
		UserAgent:   DefaultUserAgent,
		Traceparent: DefaultTraceparent,
	}
}

// Validate checks the URI is present and the method is supported, and
// normalises the method to upper case. An empty method becomes POST.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.URI) == "" {
		return domain.ErrMissingURI
	}
	m, err := NormalizeMethod(r.Method)
	if err != nil {
		return err
	}
	r.Method = m
	return nil
}

// NormalizeMethod upper-cases m and checks it against Methods.
func NormalizeMethod(m string) (string, error) {
	if m == "" {
		return http.MethodPost, nil
	}
	up := strings.ToUpper(strings.TrimSpace(m))
	for _, allowed := range Methods {
		if up == allowed {
			return up, nil
		}
	}
	return "", fmt.Errorf("%w: %q (choose from %s)", domain.ErrInvalidMethod, m, strings.Join(Methods, ", "))
}

// header returns the three headers sent with every request.
func (r Request) header() http.Header {
	ua := r.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	tp := r.Traceparent
	if tp == "" {
		tp = DefaultTraceparent
	}
	h := make(http.Header, 3)
	h.Set("Content-Type", ContentType)
	h.Set("User-Agent", ua)
	// traceparent is lower case on the wire; bypass canonicalisation.
	h["traceparent"] = []string{tp}
	return h
}
