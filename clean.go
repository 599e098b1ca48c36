package municode

import (
	"regexp"
	"strings"
)

// The content API emits section bodies as HTML fragments that have been
// JSON-escaped inconsistently, sometimes twice. CleanContent targets those
// specific idioms; it is not a general HTML sanitizer.
var (
	divOpenRE = regexp.MustCompile(`<div[^>]*>`)
	brRE      = regexp.MustCompile(`<br\s*/?>`)
	tagRE     = regexp.MustCompile(`<[^>]*>`)

	// Quoted single-letter tokens like \"P\" or \\"P\\" that survived
	// upstream escaping. The double-escaped form must be handled first.
	doubleEscapedLetterRE = regexp.MustCompile(`\\\\"([A-Z])\\\\"`)
	escapedLetterRE       = regexp.MustCompile(`\\"([A-Z])\\"`)

	spaceRunRE   = regexp.MustCompile(`[ \t]+`)
	newlineRunRE = regexp.MustCompile(`\n\s*\n+`)
)

// CleanContent normalizes a raw content fragment into plain text with
// preserved line breaks. It is pure, deterministic, and idempotent; empty
// or whitespace-only input yields an empty string.
//
// The steps run in a fixed order: block-level and line-break tags become
// newlines, remaining tags are stripped, escape artifacts are resolved,
// then whitespace is collapsed and lines are trimmed.
func CleanContent(raw string) string {
	if raw == "" {
		return ""
	}

	// Tags: <div> opens a new line, its closing tag disappears, <br>
	// variants break the line, everything else is stripped.
	content := divOpenRE.ReplaceAllString(raw, "\n")
	content = strings.ReplaceAll(content, "</div>", "")
	content = brRE.ReplaceAllString(content, "\n")
	content = tagRE.ReplaceAllString(content, "")

	content = strings.ReplaceAll(content, "&nbsp;", " ")

	// Escape artifacts. Quoted single letters keep their quotes; the
	// double-escaped form is resolved before the single-escaped one so
	// its inner backslashes are not consumed early. Multi-character
	// quoted tokens pass through and only lose the escaping below.
	content = doubleEscapedLetterRE.ReplaceAllString(content, `"${1}"`)
	content = escapedLetterRE.ReplaceAllString(content, `"${1}"`)
	content = strings.ReplaceAll(content, `\n`, "\n")
	content = strings.ReplaceAll(content, `\"`, `"`)

	// Whitespace: runs of spaces and tabs collapse to one space, runs of
	// blank lines to a single blank line, then every line is trimmed and
	// empty lines are dropped.
	content = spaceRunRE.ReplaceAllString(content, " ")
	content = newlineRunRE.ReplaceAllString(content, "\n\n")

	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
