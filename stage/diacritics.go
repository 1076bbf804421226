package stage

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/coregx/normtext/lang"
)

// RemoveDiacritics strips the language's spacing diacritics and, as the
// opt-in part of the policy, reduces precomposed letters to their base
// letter. Phonemic letters (Spanish ñ, Vietnamese quality vowels) are never
// in the tables, so they survive unconditionally. When the pipeline also
// transliterates, the builder hands this stage a policy view with every
// transliterated codepoint removed from the strip tables.
var RemoveDiacritics Stage = register(removeDiacritics{})

type removeDiacritics struct{}

func (removeDiacritics) Name() string { return "remove_diacritics" }

func (removeDiacritics) NeedsApply(s string, pol *lang.Policy) bool {
	return pol.StripKeys().ContainsAny(s)
}

// Apply uses the x/text transform chain; the fused path streams the same
// two lookups per rune.
func (st removeDiacritics) Apply(s string, pol *lang.Policy) string {
	if !st.NeedsApply(s, pol) {
		return s
	}
	t := transform.Chain(
		runes.Remove(runes.Predicate(pol.SpacingDiacritics.Contains)),
		runes.Map(func(r rune) rune {
			if base, ok := pol.PrecomposedToBase[r]; ok {
				return base
			}
			return r
		}),
	)
	out, _, err := transform.String(t, s)
	if err != nil || out == s {
		return s
	}
	return out
}

func (removeDiacritics) Transducer(src Source, pol *lang.Policy) Source {
	return newTransducer(src, func(r, next rune, hasNext bool, out []rune) []rune {
		if pol.SpacingDiacritics.Contains(r) {
			return out
		}
		if base, ok := pol.PrecomposedToBase[r]; ok {
			return append(out, base)
		}
		return append(out, r)
	})
}
