// Package htmlsanitize cleans user-supplied rich text before storage and
// display. Assignment descriptions come from a rich text editor, so the
// allowed set covers basic formatting, lists, headings, code, links, and
// images; everything else (scripts, iframes, forms, event handlers) is
// stripped.
package htmlsanitize

import (
	"html"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.NewPolicy()

		p.AllowStandardURLs()

		// Block structure
		p.AllowElements("p", "br", "hr", "blockquote", "pre", "code")
		p.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")
		p.AllowLists()

		// Inline formatting
		p.AllowElements("strong", "b", "em", "i", "u", "s", "sub", "sup", "mark")

		// Links get rel="nofollow"
		p.AllowAttrs("href").OnElements("a")
		p.RequireNoFollowOnLinks(true)

		// Images by URL only (data: URIs are rejected by AllowStandardURLs)
		p.AllowAttrs("src", "alt").OnElements("img")

		policy = p
	})
	return policy
}

// Sanitize returns the input with disallowed HTML removed.
func Sanitize(input string) string {
	if input == "" {
		return ""
	}
	return getPolicy().Sanitize(input)
}

// SanitizeToHTML sanitizes and marks the result safe for template rendering.
func SanitizeToHTML(input string) template.HTML {
	return template.HTML(Sanitize(input))
}

// IsPlainText reports whether the input contains no HTML tags. A lone "<" or
// ">" (e.g. "5 < 10") still counts as plain text.
func IsPlainText(input string) bool {
	lt := strings.Index(input, "<")
	if lt == -1 {
		return true
	}
	return strings.Index(input[lt:], ">") == -1
}

// PlainTextToHTML escapes plain text and converts it to minimal HTML:
// the whole value wrapped in <p>, newlines as <br>.
func PlainTextToHTML(input string) string {
	if input == "" {
		return ""
	}
	escaped := html.EscapeString(input)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return "<p>" + escaped + "</p>"
}

// PrepareForDisplay renders stored description text for a template: plain
// text is escaped and paragraph-wrapped, HTML is sanitized.
func PrepareForDisplay(input string) template.HTML {
	if input == "" {
		return ""
	}
	if IsPlainText(input) {
		return template.HTML(PlainTextToHTML(input))
	}
	return SanitizeToHTML(input)
}
