// Package lang holds the per-language normalization policies.
//
// A policy is an immutable record selecting the behavior of every stage for
// one language: locale case mappings, search-equivalence folds, historical
// ASCII transliteration conventions, which precomposed letters may be
// lossily reduced to their base letter, which combining marks are safe to
// strip, and how words are segmented. Policies are data, not code: every
// record is a package-level constant table assembled once at init and never
// mutated afterwards, so lookups are safe for unbounded concurrent readers.
//
// The tables encode written policy rules that the test suite audits:
//
//   - PrecomposedToBase never contains a letter the language treats as a
//     distinct phoneme (Spanish ñ, the háček consonants of Czech and Slovak,
//     the Vietnamese quality letters ă â ê ô ơ ư đ).
//   - SpacingDiacritics never contains a mark that participates in NFC
//     precomposition, and for Arabic never contains the shadda (U+0651).
//   - A codepoint covered by a language's transliteration table is owned by
//     it: diacritic stripping yields to transliteration for such codepoints.
package lang

import (
	"strings"
	"unicode"

	"github.com/coregx/normtext/prefilter"
)

// Tag identifies a supported language. The set is closed; unknown tags
// resolve to the ENG record, which carries Unicode defaults and no tables.
type Tag uint8

const (
	ENG Tag = iota
	TUR
	DEU
	NLD
	DAN
	NOR
	SWE
	ISL
	FRA
	SPA
	POR
	ITA
	CAT
	CES
	SLK
	POL
	HRV
	SRP
	LIT
	ELL
	RUS
	ARA
	HEB
	VIE
	ZHO
	JPN
	KOR
	THA
	LAO
	KHM
	MYA
	HIN
	BEN
	TAM
	numTags
)

var tagNames = [numTags]string{
	ENG: "eng", TUR: "tur", DEU: "deu", NLD: "nld", DAN: "dan", NOR: "nor",
	SWE: "swe", ISL: "isl", FRA: "fra", SPA: "spa", POR: "por", ITA: "ita",
	CAT: "cat", CES: "ces", SLK: "slk", POL: "pol", HRV: "hrv", SRP: "srp",
	LIT: "lit", ELL: "ell", RUS: "rus", ARA: "ara", HEB: "heb", VIE: "vie",
	ZHO: "zho", JPN: "jpn", KOR: "kor", THA: "tha", LAO: "lao", KHM: "khm",
	MYA: "mya", HIN: "hin", BEN: "ben", TAM: "tam",
}

// String returns the lowercase ISO-639-3 style tag name.
func (t Tag) String() string {
	if t < numTags {
		return tagNames[t]
	}
	return "eng"
}

// Parse resolves a tag name (case-insensitive). The second result reports
// whether the name was recognized; unrecognized names resolve to ENG.
func Parse(name string) (Tag, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range tagNames {
		if n == name {
			return Tag(t), true
		}
	}
	return ENG, false
}

// Tags returns every supported tag in declaration order.
func Tags() []Tag {
	out := make([]Tag, numTags)
	for i := range out {
		out[i] = Tag(i)
	}
	return out
}

// Policy is the immutable per-language record consulted by every stage.
// The zero tables mean "absent": the stage degrades to Unicode defaults or
// to a no-op, never to an error at normalization time.
type Policy struct {
	Tag Tag

	// CaseMap overrides Unicode simple lowercasing for locale-sensitive
	// codepoints (Turkish dotted/dotless I).
	CaseMap map[rune]rune

	// Fold maps a codepoint to its language-native search-equivalence
	// expansion (German ß → "ss", Dutch Ĳ → "ij"). Applied on top of
	// Unicode case folding by the CaseFold stage.
	Fold map[rune]string

	// Transliterate maps a codepoint to its historical ASCII convention
	// (ö → "oe", þ → "th", Cyrillic per ISO/R 9:1968-derived romanization).
	Transliterate map[rune]string

	// PrecomposedToBase maps a precomposed letter to its bare base letter.
	// Lossy and opt-in: only used when the pipeline includes the
	// RemoveDiacritics stage. Letters the language treats as phonemic are
	// never present.
	PrecomposedToBase map[rune]rune

	// SpacingDiacritics are the standalone combining marks the policy
	// deems safe to remove. None of them participates in NFC
	// precomposition.
	SpacingDiacritics *prefilter.RuneSet

	// NeedsSegmentation marks scripts written without word separators.
	NeedsSegmentation bool

	// UnigramCJK selects character-level segmentation of CJK ideographs
	// (Chinese). When false and NeedsSegmentation is true, segmentation is
	// driven by script transitions or, for Indic scripts, by the virama.
	UnigramCJK bool

	// RequiresPeekAhead marks languages with context-sensitive
	// multi-character rules (Greek word-final sigma, Dutch Ĳ).
	RequiresPeekAhead bool

	// Virama is the script's halant codepoint, or zero for non-Indic
	// languages. Consonants bounds the script's consonant letters and
	// ConjunctExceptions lists consonants that form conjuncts with the
	// preceding letter, suppressing the syllable boundary.
	Virama             rune
	Consonants         *unicode.RangeTable
	ConjunctExceptions *prefilter.RuneSet

	// Derived sets, computed once when the record is registered.
	translitKeys  *prefilter.RuneSet
	precompKeys   *prefilter.RuneSet
	stripKeys     *prefilter.RuneSet
	foldKeys      *prefilter.RuneSet
	derivedNoXlit *Policy
}

// TranslitKeys returns the domain of the transliteration table.
func (p *Policy) TranslitKeys() *prefilter.RuneSet { return p.translitKeys }

// PrecomposedKeys returns the domain of the precomposed-to-base table.
func (p *Policy) PrecomposedKeys() *prefilter.RuneSet { return p.precompKeys }

// StripKeys returns the union of SpacingDiacritics and the
// precomposed-to-base domain: everything the RemoveDiacritics stage may
// touch for this language.
func (p *Policy) StripKeys() *prefilter.RuneSet { return p.stripKeys }

// FoldKeys returns the domain of the language fold table.
func (p *Policy) FoldKeys() *prefilter.RuneSet { return p.foldKeys }

// WithoutTransliterated returns a policy view whose diacritic-stripping
// tables exclude every codepoint covered by the transliteration table. The
// pipeline builder installs this view when both Transliterate and
// RemoveDiacritics are present, so transliteration always wins on overlap.
func (p *Policy) WithoutTransliterated() *Policy {
	if p.derivedNoXlit != nil {
		return p.derivedNoXlit
	}
	return p
}

func finalize(p *Policy) *Policy {
	p.translitKeys = prefilter.FromKeys(p.Transliterate)
	p.precompKeys = prefilter.FromKeys(p.PrecomposedToBase)
	p.stripKeys = prefilter.Union(p.SpacingDiacritics, p.precompKeys)
	p.foldKeys = prefilter.FromKeys(p.Fold)

	if !p.translitKeys.Empty() && !p.stripKeys.Empty() {
		d := *p
		d.PrecomposedToBase = make(map[rune]rune, len(p.PrecomposedToBase))
		for k, v := range p.PrecomposedToBase {
			if !p.translitKeys.Contains(k) {
				d.PrecomposedToBase[k] = v
			}
		}
		if p.SpacingDiacritics != nil {
			d.SpacingDiacritics = p.SpacingDiacritics.Without(p.translitKeys)
		}
		d.translitKeys = p.translitKeys
		d.precompKeys = prefilter.FromKeys(d.PrecomposedToBase)
		d.stripKeys = prefilter.Union(d.SpacingDiacritics, d.precompKeys)
		d.foldKeys = p.foldKeys
		d.derivedNoXlit = &d
		p.derivedNoXlit = &d
	}
	return p
}

// Lookup returns the policy record for t. Unknown tags fall back to the ENG
// record. The returned policy is shared and must not be mutated.
func Lookup(t Tag) *Policy {
	if p, ok := policies[t]; ok {
		return p
	}
	return policies[ENG]
}
