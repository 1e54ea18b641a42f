package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	urlPattern        = regexp.MustCompile(`http\S+|www\S+|https\S+`)
	mentionPattern    = regexp.MustCompile(`@\w+`)
	bareRTPattern     = regexp.MustCompile(`\bRT\b`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Light produces embedding-model-ready texts. The transform strips URLs,
// @handles and the bare RT marker, unescapes the HTML entities the
// dataset export left in place (&amp; and friends), collapses repeated
// whitespace and trims. No linguistic analysis.
func Light(texts []string) []string {
	out := make([]string, len(texts))
	for i, text := range texts {
		text = html.UnescapeString(text)
		text = urlPattern.ReplaceAllString(text, "")
		text = mentionPattern.ReplaceAllString(text, "")
		text = bareRTPattern.ReplaceAllString(text, "")
		text = whitespacePattern.ReplaceAllString(text, " ")
		out[i] = strings.TrimSpace(text)
	}
	return out
}
