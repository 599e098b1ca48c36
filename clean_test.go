package municode_test

import (
	"testing"

	"github.com/fwojciec/municode"
	"github.com/stretchr/testify/assert"
)

func TestCleanContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "whitespace-only input",
			raw:  "   \t  \n  ",
			want: "",
		},
		{
			name: "div and br become line breaks",
			raw:  "<div>A</div><br>B",
			want: "A\nB",
		},
		{
			name: "div with attributes",
			raw:  `<div class="section" id="s1">First</div><div>Second</div>`,
			want: "First\nSecond",
		},
		{
			name: "self-closing br variants",
			raw:  "A<br/>B<br />C<br>D",
			want: "A\nB\nC\nD",
		},
		{
			name: "remaining tags stripped",
			raw:  "<p><strong>Bold</strong> and <em>italic</em></p>",
			want: "Bold and italic",
		},
		{
			name: "non-breaking space entity",
			raw:  "Zoning&nbsp;&nbsp;District",
			want: "Zoning District",
		},
		{
			name: "escaped single-letter quoted token",
			raw:  `Value \"P\" here`,
			want: `Value "P" here`,
		},
		{
			name: "double-escaped single-letter quoted token",
			raw:  `Value \\"P\\" here`,
			want: `Value "P" here`,
		},
		{
			name: "multi-letter quoted token only loses escaping",
			raw:  `zoned \"PUD\" district`,
			want: `zoned "PUD" district`,
		},
		{
			name: "literal backslash-n becomes newline",
			raw:  `first\nsecond`,
			want: "first\nsecond",
		},
		{
			name: "spaces and tabs collapse",
			raw:  "A  \t  B",
			want: "A B",
		},
		{
			name: "blank lines dropped from final output",
			raw:  "A\n\n\n\nB",
			want: "A\nB",
		},
		{
			name: "lines trimmed",
			raw:  "  A  \n  B  ",
			want: "A\nB",
		},
		{
			name: "no tags still normalizes whitespace",
			raw:  "  25-2-32   Zoning\n\n\n  applies  ",
			want: "25-2-32 Zoning\napplies",
		},
		{
			name: "realistic section fragment",
			raw:  `<div class=\"incr1\">(A)&nbsp;A setback of 25 feet applies.<br/>See subsection \"B\".</div>`,
			want: `(A) A setback of 25 feet applies.` + "\n" + `See subsection "B".`,
		},
		{
			name: "unterminated tag passes through",
			raw:  "<div>broken<span",
			want: "broken<span",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, municode.CleanContent(tt.raw))
		})
	}
}

func TestCleanContent_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"<div>A</div><br>B",
		`Value \\"P\\" here`,
		`first\nsecond  third`,
		"plain text with no markup",
		"  A  \n\n\n  B  \t C  ",
		`<div class=\"x\">Text&nbsp;here<br/>More</div>`,
	}

	for _, raw := range inputs {
		once := municode.CleanContent(raw)
		assert.Equal(t, once, municode.CleanContent(once), "input %q", raw)
	}
}
