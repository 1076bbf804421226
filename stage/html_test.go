package stage

import (
	"testing"
)

// TestStripHTML tests markup removal and the raw-content conventions
func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple paragraph", "<p>Hello</p>", "Hello"},
		{"nested tags", "<div><b>bold</b> text</div>", "bold text"},
		{"entities decode in text", "fish &amp; chips", "fish & chips"},
		{"numeric entity", "caf&#233;", "café"},
		{"code content raw", "<p>Hello <code>CAFÉ</code></p>", "Hello CAFÉ"},
		{"code keeps entities raw", "<code>a &amp;&amp; b</code>", "a &amp;&amp; b"},
		{"pre content raw", "<pre>  two  spaces  </pre>", "  two  spaces  "},
		{"script dropped", "<p>a</p><script>var x = 1;</script><p>b</p>", "ab"},
		{"style dropped", "<style>p{color:red}</style>text", "text"},
		{"attributes never emitted", `<a href="http://x" title="T">link</a>`, "link"},
		{"comment dropped", "a<!-- hidden -->b", "ab"},
		{"bare less-than is text", "1 < 2", "1 < 2"},
		{"unclosed tag consumes", "text <a", "text "},
		{"no markup no change", "plain text", "plain text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripHtml.Apply(tt.input, eng)
			if got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestStripHTMLNeedsApply tests the markup predicate
func TestStripHTMLNeedsApply(t *testing.T) {
	if StripHtml.NeedsApply("plain text", eng) {
		t.Error("NeedsApply true without markup characters")
	}
	if !StripHtml.NeedsApply("a < b", eng) {
		t.Error("NeedsApply must be conservative on '<'")
	}
	if !StripHtml.NeedsApply("a &amp; b", eng) {
		t.Error("NeedsApply must be conservative on '&'")
	}
}
