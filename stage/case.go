package stage

import (
	"strings"
	"unicode"

	"github.com/coregx/normtext/lang"
)

// CaseFold maps text to its case-folded form for case-insensitive matching:
// Unicode full case folding overlaid with the language's fold table and
// locale case map. One-to-many folds (ß → "ss", ligatures) expand.
var CaseFold Stage = register(caseFold{})

// LowerCase lowercases text using Unicode simple mappings overlaid with the
// locale case map. For Greek the word-final sigma is selected by one rune of
// lookahead.
var LowerCase Stage = register(lowerCase{})

// foldExpansions carries the full case foldings that are not the simple
// lowercase mapping: one-to-many foldings and the handful of one-to-one
// foldings unicode.ToLower does not perform.
var foldExpansions = map[rune]string{
	'ß': "ss", 'ẞ': "ss",
	'İ': "i\u0307",
	'ſ': "s",
	'ŉ': "\u02BCn",
	'µ': "μ",
	'ς': "σ",
	'ϐ': "β", 'ϑ': "θ", 'ϕ': "φ", 'ϖ': "π", 'ϰ': "κ", 'ϱ': "ρ", 'ϴ': "θ",
	'ΐ': "\u03B9\u0308\u0301", 'ΰ': "\u03C5\u0308\u0301",
	'ẖ': "h\u0331", 'ẗ': "t\u0308", 'ẘ': "w\u030A", 'ẙ': "y\u030A", 'ẚ': "a\u02BE",
	'և': "եւ",
	'ﬀ': "ff", 'ﬁ': "fi", 'ﬂ': "fl", 'ﬃ': "ffi", 'ﬄ': "ffl", 'ﬅ': "st", 'ﬆ': "st",
	'ﬓ': "մն", 'ﬔ': "մե", 'ﬕ': "մի", 'ﬖ': "վն", 'ﬗ': "մխ",
}

// foldChanges reports whether case folding would change r under pol.
func foldChanges(r rune, pol *lang.Policy) bool {
	if _, ok := pol.Fold[r]; ok {
		return true
	}
	if _, ok := pol.CaseMap[r]; ok {
		return true
	}
	if _, ok := foldExpansions[r]; ok {
		return true
	}
	return unicode.ToLower(r) != r
}

func appendFolded(r rune, pol *lang.Policy, out []rune) []rune {
	if s, ok := pol.Fold[r]; ok {
		return append(out, []rune(s)...)
	}
	if m, ok := pol.CaseMap[r]; ok {
		return append(out, m)
	}
	if s, ok := foldExpansions[r]; ok {
		return append(out, []rune(s)...)
	}
	return append(out, unicode.ToLower(r))
}

type caseFold struct{}

func (caseFold) Name() string { return "casefold" }

func (caseFold) NeedsApply(s string, pol *lang.Policy) bool {
	return strings.ContainsFunc(s, func(r rune) bool { return foldChanges(r, pol) })
}

func (st caseFold) Apply(s string, pol *lang.Policy) string {
	return applyStreaming(st, s, pol)
}

func (caseFold) Transducer(src Source, pol *lang.Policy) Source {
	return newTransducer(src, func(r, next rune, hasNext bool, out []rune) []rune {
		return appendFolded(r, pol, out)
	})
}

type lowerCase struct{}

func (lowerCase) Name() string { return "lowercase" }

func (lowerCase) NeedsApply(s string, pol *lang.Policy) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		if _, ok := pol.CaseMap[r]; ok {
			return true
		}
		return unicode.ToLower(r) != r
	})
}

func (st lowerCase) Apply(s string, pol *lang.Policy) string {
	return applyStreaming(st, s, pol)
}

func (lowerCase) Transducer(src Source, pol *lang.Policy) Source {
	greek := pol.Tag == lang.ELL
	return newTransducer(src, func(r, next rune, hasNext bool, out []rune) []rune {
		if m, ok := pol.CaseMap[r]; ok {
			return append(out, m)
		}
		// Word-final capital sigma lowercases to ς, non-final to σ. The
		// word continues only if the next rune is a letter or a combining
		// mark.
		if greek && r == 'Σ' {
			if hasNext && (unicode.IsLetter(next) || unicode.IsMark(next)) {
				return append(out, 'σ')
			}
			return append(out, 'ς')
		}
		return append(out, unicode.ToLower(r))
	})
}
