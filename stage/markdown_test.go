package stage

import (
	"testing"
)

// TestStripMarkdown tests syntax removal and code preservation. Cases whose
// output re-exposes verbatim code content as live syntax are flagged
// liveCode: inline code and fences keep their content byte-for-byte, so a
// second application may strip further; everything else must be a fixed
// point.
func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		liveCode bool
	}{
		{"bold", "**bold** text", "bold text", false},
		{"italic", "an _emphasis_ here", "an emphasis here", false},
		{"strikethrough", "~~gone~~ kept", "gone kept", false},
		{"heading", "# Title", "Title", false},
		{"deep heading", "### Sub ###", "Sub", false},
		{"blockquote", "> quoted line", "quoted line", false},
		{"nested blockquote", "> > deep", "deep", false},
		{"list bullets", "- one\n* two\n+ three", "one\ntwo\nthree", false},
		{"link keeps text", "[Go](https://go.dev)", "Go", false},
		{"image keeps alt", "![diagram](img.png)", "diagram", false},
		{"reference link", "[text][ref]", "text", false},
		{"inline code verbatim", "run `cmd --flag` now", "run cmd --flag now", false},
		{"inline code keeps stars", "a `*b*` c", "a *b* c", true},
		{"fence content verbatim", "```\n**not bold**\n```", "\n**not bold**\n", true},
		{"fence marker with info", "```go\nx := 1\n```\nafter", "\nx := 1\n\nafter", false},
		{"unclosed fence runs out", "```\ncode", "\ncode", false},
		{"thematic break dropped", "a\n---\nb", "a\n\nb", false},
		{"escape stays escaped", `\*lit\*`, `\*lit\*`, false},
		{"escape inside prose", `keep \_this\_ flat`, `keep \_this\_ flat`, false},
		{"multiplication survives", "2 * 3", "2 * 3", false},
		{"plain text", "no markdown here", "no markdown here", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripMarkdown.Apply(tt.input, eng)
			if got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if tt.liveCode {
				return
			}
			if again := StripMarkdown.Apply(got, eng); again != got {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}

// TestStripMarkdownNeedsApply tests the conservative delimiter predicate
func TestStripMarkdownNeedsApply(t *testing.T) {
	if StripMarkdown.NeedsApply("no markdown here", eng) {
		t.Error("NeedsApply true without delimiters")
	}
	// conservative: contains a delimiter but nothing changes
	s := "well-known"
	if !StripMarkdown.NeedsApply(s, eng) {
		t.Error("NeedsApply must be conservative on '-'")
	}
	if got := StripMarkdown.Apply(s, eng); got != s {
		t.Errorf("Apply(%q) changed to %q", s, got)
	}
}

// TestStripMarkdownEscapeFixedPoint tests that escape handling never feeds
// the delimiter scanner: repeated application over escape-heavy inputs is
// stable from the first output on.
func TestStripMarkdownEscapeFixedPoint(t *testing.T) {
	inputs := []string{
		`\*lit\*`,
		`\_under\_ and \~tilde\~`,
		`\# not a heading`,
		`\- not a bullet`,
		`\> not a quote`,
		`\[not a link\](x)`,
		`\\double backslash`,
		`trailing backslash \`,
		`**bold** then \*escaped\*`,
	}
	for _, in := range inputs {
		once := StripMarkdown.Apply(in, eng)
		twice := StripMarkdown.Apply(once, eng)
		if once != twice {
			t.Errorf("escape not a fixed point: %q -> %q -> %q", in, once, twice)
		}
	}
}
