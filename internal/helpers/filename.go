package helpers

import (
	"net/url"
	"strings"
	"unicode"
)

// CleanFilename strips every character that is not alphanumeric, space,
// underscore, or hyphen, then trims trailing whitespace. Applying it to
// its own output is a no-op.
func CleanFilename(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " \t\n\r")
}

// CleanURL derives a filename-safe string from a URL: host and path
// with all ASCII punctuation removed, joined by an underscore. Used as
// the fallback filename when a title sanitizes to nothing.
func CleanURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return strings.TrimRight(stripPunctuation(raw), "_")
	}
	host := stripPunctuation(u.Host)
	path := stripPunctuation(strings.Trim(u.Path, "/"))
	return strings.TrimRight(host+"_"+path, "_")
}

// stripPunctuation removes ASCII punctuation characters
func stripPunctuation(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 && (unicode.IsPunct(r) || unicode.IsSymbol(r)) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
