package smoke

// Payload is the JSON body sent on both calls. The non-ASCII text is carried
// as a literal unicode escape.
const Payload = `{"text":"\u65e5\u672c"}`

// Config holds the smoke driver settings.
type Config struct {
	SuccessURI  string
	ErrorURI    string
	UserAgent   string
	Traceparent string

	// Target is the path of the callapi binary. Empty means the sibling of
	// the running executable.
	Target string

	// InProcess calls package invoke directly instead of spawning Target.
	InProcess bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		SuccessURI:  "https://httpbin.org/post",
		ErrorURI:    "https://httpbin.org/status/418",
		UserAgent:   "py-test/1.0",
		Traceparent: "00-11111111111111111111111111111111-2222222222222222-01",
	}
}
