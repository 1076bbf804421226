package stage

import (
	"strings"
	"unicode"

	"github.com/coregx/normtext/lang"
	"github.com/coregx/normtext/prefilter"
)

// StripControlChars removes every character of Unicode general category Cc,
// including tabs and line breaks. Pipelines that need line structure should
// normalize whitespace instead of stripping controls.
var StripControlChars Stage = register(stripControlChars{})

// StripFormatControls removes the invisible format characters that leak into
// copied text: zero-width spaces and joiners, the BOM, bidirectional marks,
// embedding and isolate controls, invisible operators, the soft hyphen.
var StripFormatControls Stage = register(stripFormatControls{})

type stripControlChars struct{}

func (stripControlChars) Name() string { return "strip_control_chars" }

func (stripControlChars) NeedsApply(s string, _ *lang.Policy) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return unicode.Is(unicode.Cc, r)
	})
}

func (st stripControlChars) Apply(s string, pol *lang.Policy) string {
	return applyStreaming(st, s, pol)
}

func (stripControlChars) Transducer(src Source, _ *lang.Policy) Source {
	return newTransducer(src, func(r, next rune, hasNext bool, out []rune) []rune {
		if unicode.Is(unicode.Cc, r) {
			return out
		}
		return append(out, r)
	})
}

var formatControls = prefilter.NewRuneSet(
	0x00AD, // soft hyphen
	0x180E, // Mongolian vowel separator
	0x200B, 0x200C, 0x200D, // ZWSP, ZWNJ, ZWJ
	0x200E, 0x200F, // LRM, RLM
	0x202A, 0x202B, 0x202C, 0x202D, 0x202E, // embedding controls
	0x2060, 0x2061, 0x2062, 0x2063, 0x2064, // word joiner, invisible operators
	0x2066, 0x2067, 0x2068, 0x2069, // isolate controls
	0xFEFF, // BOM
)

type stripFormatControls struct{}

func (stripFormatControls) Name() string { return "strip_format_controls" }

func (stripFormatControls) NeedsApply(s string, _ *lang.Policy) bool {
	return formatControls.ContainsAny(s)
}

func (st stripFormatControls) Apply(s string, pol *lang.Policy) string {
	return applyStreaming(st, s, pol)
}

func (stripFormatControls) Transducer(src Source, _ *lang.Policy) Source {
	return newTransducer(src, func(r, next rune, hasNext bool, out []rune) []rune {
		if formatControls.Contains(r) {
			return out
		}
		return append(out, r)
	})
}
