package invoke

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/pretty"

	"github.com/bft-labs/callapi/pkg/textdecode"
)

// ReportOptions controls how Report renders the body.
type ReportOptions struct {
	// Pretty re-indents bodies that are valid JSON after escape decoding.
	Pretty bool
}

// Report writes "StatusCode: <n>" and the decoded body, one line each.
func Report(w io.Writer, o Outcome, opts ReportOptions) error {
	text := textdecode.UnicodeEscapes(o.Text())
	if opts.Pretty {
		text = prettyJSON(text)
	}
	if _, err := fmt.Fprintf(w, "StatusCode: %d\n", o.StatusCode()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func prettyJSON(text string) string {
	b := []byte(text)
	if !json.Valid(b) {
		return text
	}
	return string(bytes.TrimRight(pretty.Pretty(b), "\n"))
}
