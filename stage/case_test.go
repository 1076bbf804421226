package stage

import (
	"testing"

	"github.com/coregx/normtext/lang"
)

// TestCaseFold tests locale-aware case folding
func TestCaseFold(t *testing.T) {
	tests := []struct {
		name  string
		tag   lang.Tag
		input string
		want  string
	}{
		{"ascii", lang.ENG, "Hello World", "hello world"},
		{"already folded", lang.ENG, "hello", "hello"},
		{"german eszett expands", lang.DEU, "Straße", "strasse"},
		{"capital eszett expands", lang.DEU, "STRAẞE", "strasse"},
		{"turkish dotless", lang.TUR, "KIZIL", "kızıl"},
		{"turkish dotted", lang.TUR, "İZMİR", "izmir"},
		{"dutch ij digraph", lang.NLD, "ĲSSEL", "ijssel"},
		{"long s", lang.ENG, "ſtreet", "street"},
		{"final sigma folds to sigma", lang.ELL, "ΟΔΟΣ", "οδο\u03C3"},
		{"ligature ffi", lang.ENG, "oﬃce", "office"},
		{"micro sign", lang.ENG, "5µm", "5μm"},
		{"kelvin sign", lang.ENG, "300K", "300k"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pol := lang.Lookup(tt.tag)
			got := CaseFold.Apply(tt.input, pol)
			if got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := CaseFold.Apply(got, pol); again != got {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}

// TestCaseFoldNeedsApply tests predicate accuracy on unchanged inputs
func TestCaseFoldNeedsApply(t *testing.T) {
	pol := lang.Lookup(lang.ENG)
	for _, s := range []string{"", "hello cafe", "123 !?", "ß"} {
		needs := CaseFold.NeedsApply(s, pol)
		changed := CaseFold.Apply(s, pol) != s
		if !needs && changed {
			t.Errorf("NeedsApply(%q) = false but Apply changed it", s)
		}
	}
	if CaseFold.NeedsApply("hello cafe", pol) {
		t.Error("NeedsApply true on folded ASCII")
	}
	if !CaseFold.NeedsApply("ß", pol) {
		t.Error("NeedsApply false on expanding fold")
	}
}

// TestLowerCase tests locale lowercasing and the sigma rule
func TestLowerCase(t *testing.T) {
	tests := []struct {
		name  string
		tag   lang.Tag
		input string
		want  string
	}{
		{"turkish river", lang.TUR, "KIZILIRMAK NEHRİ", "kızılırmak nehri"},
		{"ascii", lang.ENG, "MiXeD", "mixed"},
		{"greek word-final sigma", lang.ELL, "ΟΔΟΣ", "οδο\u03C2"},
		{"greek sigma mid-word", lang.ELL, "ΣΟΦΙΑ", "\u03C3οφια"},
		{"greek sigma before space", lang.ELL, "ΛΟΓΟΣ ΚΑΛΟΣ", "λογο\u03C2 καλο\u03C2"},
		{"non-greek sigma is plain", lang.ENG, "ΣΣ", "\u03C3\u03C3"},
		{"eszett untouched", lang.DEU, "ße", "ße"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pol := lang.Lookup(tt.tag)
			got := LowerCase.Apply(tt.input, pol)
			if got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := LowerCase.Apply(got, pol); again != got {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}
