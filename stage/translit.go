package stage

import (
	"github.com/coregx/normtext/lang"
)

// Transliterate rewrites codepoints per the language's historical ASCII
// convention (German ö → "oe", Icelandic þ → "th", Cyrillic romanization).
// Codepoints outside the table pass through. Building a pipeline with this
// stage for a language whose table is empty is a configuration error,
// detected by the pipeline builder.
var Transliterate Stage = register(transliterate{})

type transliterate struct{}

func (transliterate) Name() string { return "transliterate" }

func (transliterate) NeedsApply(s string, pol *lang.Policy) bool {
	return pol.TranslitKeys().ContainsAny(s)
}

func (st transliterate) Apply(s string, pol *lang.Policy) string {
	return applyStreaming(st, s, pol)
}

func (transliterate) Transducer(src Source, pol *lang.Policy) Source {
	return newTransducer(src, func(r, next rune, hasNext bool, out []rune) []rune {
		if repl, ok := pol.Transliterate[r]; ok {
			return append(out, []rune(repl)...)
		}
		return append(out, r)
	})
}
