package textdecode

import (
	"mime"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// Charset returns the lower-cased charset parameter of a Content-Type header
// value, or "" when there is none or the header cannot be parsed.
func Charset(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(params["charset"]))
}

// Encoding resolves a charset name: IANA registry names first, so that
// iso-8859-1 is Latin-1 rather than its WHATWG alias windows-1252, then WHATWG
// labels. Empty or unrecognised names fall back to UTF-8.
func Encoding(charset string) encoding.Encoding {
	if charset == "" {
		return unicode.UTF8
	}
	// ianaindex returns a nil encoding for registered names x/text cannot decode.
	if enc, err := ianaindex.IANA.Encoding(charset); err == nil && enc != nil {
		return enc
	}
	if enc, err := htmlindex.Get(charset); err == nil {
		return enc
	}
	return unicode.UTF8
}

// Body decodes raw using the charset declared in contentType. Invalid byte
// sequences are replaced with U+FFFD; Body never fails.
func Body(contentType string, raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	out, err := Encoding(Charset(contentType)).NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "\uFFFD")
	}
	return string(out)
}
