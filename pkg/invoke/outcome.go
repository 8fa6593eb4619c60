package invoke

// Outcome is the result of a call: either an HTTPOutcome or a
// TransportFailure. Both report a status and a text body.
type Outcome interface {
	StatusCode() int
	Text() string
	isOutcome()
}

// HTTPOutcome is a completed HTTP exchange with any status, 4xx and 5xx included.
type HTTPOutcome struct {
	Status int
	Body   string
}

// StatusCode returns the HTTP status of the response.
func (o HTTPOutcome) StatusCode() int { return o.Status }

// Text returns the decoded response body.
func (o HTTPOutcome) Text() string { return o.Body }

func (HTTPOutcome) isOutcome() {}

// TransportFailure is a call that never produced a usable HTTP response.
// It reports status 0 and the error text as its body.
type TransportFailure struct {
	Err error
}

// StatusCode is always 0: no HTTP status was received.
func (TransportFailure) StatusCode() int { return 0 }

// Text returns the error description.
func (f TransportFailure) Text() string {
	if f.Err == nil {
		return "unknown transport failure"
	}
	return f.Err.Error()
}

func (TransportFailure) isOutcome() {}

// Error makes a TransportFailure usable as an error.
func (f TransportFailure) Error() string { return f.Text() }

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (f TransportFailure) Unwrap() error { return f.Err }
