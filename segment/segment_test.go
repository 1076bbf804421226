package segment

import (
	"testing"

	"github.com/coregx/normtext/lang"
)

// TestUnigramCJK tests ideograph pair boundaries
func TestUnigramCJK(t *testing.T) {
	tests := []struct {
		name    string
		r, next rune
		want    bool
	}{
		{"two ideographs", '北', '京', true},
		{"extension A pair", '㐀', '㐁', true},
		{"ideograph then ascii", '北', 'a', false},
		{"ascii pair", 'a', 'b', false},
		{"ideograph then space", '北', ' ', false},
		{"ideograph then combining", '北', 0x0301, false},
		{"kana pair not unigram", 'か', 'な', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sep, got := UnigramCJK(tt.r, tt.next)
			if got != tt.want {
				t.Errorf("UnigramCJK(%q, %q) = %v, want %v", tt.r, tt.next, got, tt.want)
			}
			if got && sep != ' ' {
				t.Errorf("UnigramCJK separator = %q, want space", sep)
			}
		})
	}
}

// TestVirama tests the Indic syllable boundary rule
func TestVirama(t *testing.T) {
	hin := Virama(lang.Lookup(lang.HIN))
	ben := Virama(lang.Lookup(lang.BEN))

	tests := []struct {
		name    string
		engine  Boundary
		r, next rune
		want    bool
	}{
		{"virama before consonant", hin, 0x094D, 'न', true},
		{"virama before ra conjunct", hin, 0x094D, 'र', false},
		{"virama before ya conjunct", hin, 0x094D, 'य', false},
		{"virama before va conjunct", hin, 0x094D, 'व', false},
		{"virama before ha conjunct", hin, 0x094D, 'ह', false},
		{"virama before vowel sign", hin, 0x094D, 0x093E, false},
		{"virama before space", hin, 0x094D, ' ', false},
		{"consonant pair without virama", hin, 'प', 'त', false},
		{"bengali virama before consonant", ben, 0x09CD, 'ন', true},
		{"bengali has no exceptions", ben, 0x09CD, 'র', true},
		{"wrong-script consonant", ben, 0x09CD, 'न', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sep, got := tt.engine(tt.r, tt.next)
			if got != tt.want {
				t.Errorf("boundary(%#x, %q) = %v, want %v", tt.r, tt.next, got, tt.want)
			}
			if got && sep != ZWSP {
				t.Errorf("separator = %#x, want ZWSP", sep)
			}
		})
	}
}

// TestScriptTransition tests Latin/spaceless-script boundaries
func TestScriptTransition(t *testing.T) {
	tests := []struct {
		name    string
		r, next rune
		want    bool
	}{
		{"latin to hiragana", 'a', 'ひ', true},
		{"katakana to latin", 'カ', 'b', true},
		{"latin to han", 'x', '漢', true},
		{"hangul to latin", '한', 'y', true},
		{"latin to thai", 'a', 'ก', true},
		{"hiragana to katakana", 'ひ', 'カ', false},
		{"han to hiragana", '漢', 'の', false},
		{"latin to latin", 'a', 'b', false},
		{"latin to digit", 'a', '1', false},
		{"space to han", ' ', '漢', false},
		{"han to space", '漢', ' ', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sep, got := ScriptTransition(tt.r, tt.next)
			if got != tt.want {
				t.Errorf("ScriptTransition(%q, %q) = %v, want %v", tt.r, tt.next, got, tt.want)
			}
			if got && sep != ' ' {
				t.Errorf("separator = %q, want space", sep)
			}
		})
	}
}

// TestFor tests per-policy engine selection
func TestFor(t *testing.T) {
	if For(lang.Lookup(lang.ENG)) != nil {
		t.Error("ENG must have no segmentation engine")
	}
	if For(lang.Lookup(lang.ZHO)) == nil {
		t.Error("ZHO must segment")
	}
	if For(lang.Lookup(lang.JPN)) == nil {
		t.Error("JPN must segment")
	}
	if For(lang.Lookup(lang.HIN)) == nil {
		t.Error("HIN must segment")
	}
}
