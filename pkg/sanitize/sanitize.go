// Package sanitize cleans user generated text before it is stored.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

//nolint: gochecknoglobals
var (
	ugc    = newUGCPolicy()
	strict = bluemonday.StrictPolicy()
)

func newUGCPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return p
}

// HTML keeps the formatting subset of HTML safe for rich entry content.
func HTML(s string) string {
	return strings.TrimSpace(ugc.Sanitize(s))
}

// Text strips every tag, e.g. for titles and messages. The result stays
// entity-escaped so it is safe to embed in HTML as is; use Plain to recover
// the characters for non-HTML output such as emails.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// Plain decodes the entities of a value previously cleaned by Text.
func Plain(s string) string {
	return html.UnescapeString(s)
}
