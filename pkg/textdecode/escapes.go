package textdecode

import (
	"regexp"
	"strconv"
	"unicode"
	"unicode/utf16"
)

var (
	// doubledEscape matches \\uXXXX: two backslashes, u, four hex digits,
	// optionally followed by a second doubled escape holding a low surrogate.
	doubledEscape = regexp.MustCompile(`\\\\u([0-9a-fA-F]{4})(?:\\\\u([dD][c-fC-F][0-9a-fA-F]{2}))?`)
	// singleEscape is the same with a single backslash.
	singleEscape = regexp.MustCompile(`\\u([0-9a-fA-F]{4})(?:\\u([dD][c-fC-F][0-9a-fA-F]{2}))?`)
)

// UnicodeEscapes replaces literal unicode escape sequences in s with the
// characters they name.
//
// The doubled form is resolved over the whole text first, then the single
// form over the result. The order matters: running the single pass first
// would leave a stray backslash in front of every doubled escape. Sequences
// with fewer than four hex digits are left as they are.
//
// A high surrogate escape directly followed by a low surrogate escape of the
// same form yields one character. Lone surrogates are not valid in a Go
// string and come out as U+FFFD.
func UnicodeEscapes(s string) string {
	if s == "" {
		return s
	}
	s = replaceEscapes(doubledEscape, s)
	return replaceEscapes(singleEscape, s)
}

func replaceEscapes(re *regexp.Regexp, s string) string {
	return re.ReplaceAllStringFunc(s, func(m string) string {
		sub := re.FindStringSubmatch(m)
		first := parseHex(sub[1])
		if sub[2] == "" {
			return string(first)
		}
		second := parseHex(sub[2])
		if utf16.IsSurrogate(first) {
			if r := utf16.DecodeRune(first, second); r != unicode.ReplacementChar {
				return string(r)
			}
		}
		return string(first) + string(second)
	})
}

// parseHex decodes four hex digits already validated by the pattern.
func parseHex(h string) rune {
	cp, _ := strconv.ParseUint(h, 16, 32)
	return rune(cp)
}
