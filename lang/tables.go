package lang

import (
	"unicode"

	"github.com/coregx/normtext/prefilter"
)

// The policy tables. One record per supported language; languages without
// tables (ENG among them) have a zero record: Unicode defaults, no tables.
//
// Table authorship rules:
//
//   - Transliteration follows the pre-computer ASCII convention of the
//     language itself (German ö → "oe", Icelandic þ → "th"), not a generic
//     accent-stripping scheme.
//   - PrecomposedToBase carries vowel-diacritic letters; consonant letters
//     with diacritics stay out unless the written policy below says
//     otherwise, and phonemically distinct letters stay out always.
//   - SpacingDiacritics must be NFC-inert: a mark that canonically composes
//     with a preceding base letter (Arabic maddah/hamza marks, for example)
//     may not appear here, or stripping would disagree with NFC order.

// Devanagari, Bengali and Tamil consonant ranges, for the virama rule.
var (
	devanagariConsonants = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x0915, Hi: 0x0939, Stride: 1}, // क..ह
		{Lo: 0x0958, Hi: 0x095F, Stride: 1}, // nukta forms
	}}
	bengaliConsonants = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x0995, Hi: 0x09A8, Stride: 1},
		{Lo: 0x09AA, Hi: 0x09B0, Stride: 1},
		{Lo: 0x09B2, Hi: 0x09B2, Stride: 1},
		{Lo: 0x09B6, Hi: 0x09B9, Stride: 1},
		{Lo: 0x09DC, Hi: 0x09DD, Stride: 1},
		{Lo: 0x09DF, Hi: 0x09DF, Stride: 1},
	}}
	tamilConsonants = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x0B95, Hi: 0x0B95, Stride: 1},
		{Lo: 0x0B99, Hi: 0x0B9A, Stride: 1},
		{Lo: 0x0B9C, Hi: 0x0B9C, Stride: 1},
		{Lo: 0x0B9E, Hi: 0x0B9F, Stride: 1},
		{Lo: 0x0BA3, Hi: 0x0BA4, Stride: 1},
		{Lo: 0x0BA8, Hi: 0x0BAA, Stride: 1},
		{Lo: 0x0BAE, Hi: 0x0BB9, Stride: 1},
	}}
)

var policies map[Tag]*Policy

func init() {
	records := []*Policy{
		{Tag: ENG},

		// Turkish: dotted and dotless I are distinct letters; the case map
		// overrides Unicode. ğ ş ç ö ü ı are phonemic, so there is no
		// precomposed-to-base table at all.
		{
			Tag:     TUR,
			CaseMap: map[rune]rune{'I': 'ı', 'İ': 'i'},
			Fold:    map[rune]string{'I': "ı", 'İ': "i"},
		},

		// German: umlauts expand per the crossword convention, ß folds to
		// ss. Umlauts are owned by the transliteration table, so no
		// precomposed entries exist for them.
		{
			Tag:  DEU,
			Fold: map[rune]string{'ß': "ss", 'ẞ': "ss"},
			Transliterate: map[rune]string{
				'ä': "ae", 'ö': "oe", 'ü': "ue",
				'Ä': "Ae", 'Ö': "Oe", 'Ü': "Ue",
				'ß': "ss", 'ẞ': "Ss",
			},
		},

		// Dutch: the precomposed Ĳ digraph folds to "ij". Peek-ahead is
		// flagged for the digraph rules even though only the precomposed
		// form is mapped here.
		{
			Tag:               NLD,
			CaseMap:           map[rune]rune{'Ĳ': 'ĳ'},
			Fold:              map[rune]string{'Ĳ': "ij", 'ĳ': "ij"},
			RequiresPeekAhead: true,
		},

		{
			Tag: DAN,
			Transliterate: map[rune]string{
				'æ': "ae", 'ø': "oe", 'å': "aa",
				'Æ': "Ae", 'Ø': "Oe", 'Å': "Aa",
			},
		},
		{
			Tag: NOR,
			Transliterate: map[rune]string{
				'æ': "ae", 'ø': "oe", 'å': "aa",
				'Æ': "Ae", 'Ø': "Oe", 'Å': "Aa",
			},
		},
		{
			Tag: SWE,
			Transliterate: map[rune]string{
				'å': "aa", 'ä': "ae", 'ö': "oe",
				'Å': "Aa", 'Ä': "Ae", 'Ö': "Oe",
			},
		},

		// Icelandic: þ and ð have no base letter; they romanize.
		{
			Tag: ISL,
			Transliterate: map[rune]string{
				'þ': "th", 'ð': "d", 'æ': "ae", 'ö': "oe",
				'Þ': "Th", 'Ð': "D", 'Æ': "Ae", 'Ö': "Oe",
			},
			PrecomposedToBase: map[rune]rune{
				'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u', 'ý': 'y',
				'Á': 'A', 'É': 'E', 'Í': 'I', 'Ó': 'O', 'Ú': 'U', 'Ý': 'Y',
			},
		},

		// French: accents are orthographic, not phonemic; ligatures œ æ
		// expand instead of decomposing.
		{
			Tag: FRA,
			Transliterate: map[rune]string{
				'œ': "oe", 'æ': "ae", 'Œ': "Oe", 'Æ': "Ae",
			},
			PrecomposedToBase: map[rune]rune{
				'à': 'a', 'â': 'a', 'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
				'î': 'i', 'ï': 'i', 'ô': 'o', 'ù': 'u', 'û': 'u', 'ü': 'u',
				'ÿ': 'y', 'ç': 'c',
				'À': 'A', 'Â': 'A', 'É': 'E', 'È': 'E', 'Ê': 'E', 'Ë': 'E',
				'Î': 'I', 'Ï': 'I', 'Ô': 'O', 'Ù': 'U', 'Û': 'U', 'Ü': 'U',
				'Ÿ': 'Y', 'Ç': 'C',
			},
		},

		// Spanish: ñ is a letter of the alphabet, never stripped.
		{
			Tag: SPA,
			PrecomposedToBase: map[rune]rune{
				'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u', 'ü': 'u',
				'Á': 'A', 'É': 'E', 'Í': 'I', 'Ó': 'O', 'Ú': 'U', 'Ü': 'U',
			},
		},

		{
			Tag: POR,
			PrecomposedToBase: map[rune]rune{
				'á': 'a', 'â': 'a', 'ã': 'a', 'à': 'a', 'é': 'e', 'ê': 'e',
				'í': 'i', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ú': 'u', 'ü': 'u',
				'ç': 'c',
				'Á': 'A', 'Â': 'A', 'Ã': 'A', 'À': 'A', 'É': 'E', 'Ê': 'E',
				'Í': 'I', 'Ó': 'O', 'Ô': 'O', 'Õ': 'O', 'Ú': 'U', 'Ü': 'U',
				'Ç': 'C',
			},
		},
		{
			Tag: ITA,
			PrecomposedToBase: map[rune]rune{
				'à': 'a', 'è': 'e', 'é': 'e', 'ì': 'i', 'î': 'i',
				'ò': 'o', 'ó': 'o', 'ù': 'u',
				'À': 'A', 'È': 'E', 'É': 'E', 'Ì': 'I', 'Î': 'I',
				'Ò': 'O', 'Ó': 'O', 'Ù': 'U',
			},
		},
		{
			Tag: CAT,
			PrecomposedToBase: map[rune]rune{
				'à': 'a', 'è': 'e', 'é': 'e', 'í': 'i', 'ï': 'i',
				'ò': 'o', 'ó': 'o', 'ú': 'u', 'ü': 'u', 'ç': 'c',
				'À': 'A', 'È': 'E', 'É': 'E', 'Í': 'I', 'Ï': 'I',
				'Ò': 'O', 'Ó': 'O', 'Ú': 'U', 'Ü': 'U', 'Ç': 'C',
			},
		},

		// Czech and Slovak: acute and ring vowels fold; the háček
		// consonants (č ď ň ř š ť ž, Slovak ľ) are separate alphabet
		// letters and stay.
		{
			Tag: CES,
			PrecomposedToBase: map[rune]rune{
				'á': 'a', 'é': 'e', 'ě': 'e', 'í': 'i', 'ó': 'o',
				'ú': 'u', 'ů': 'u', 'ý': 'y',
				'Á': 'A', 'É': 'E', 'Ě': 'E', 'Í': 'I', 'Ó': 'O',
				'Ú': 'U', 'Ů': 'U', 'Ý': 'Y',
			},
		},
		{
			Tag: SLK,
			PrecomposedToBase: map[rune]rune{
				'á': 'a', 'ä': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ô': 'o',
				'ú': 'u', 'ý': 'y',
				'Á': 'A', 'Ä': 'A', 'É': 'E', 'Í': 'I', 'Ó': 'O', 'Ô': 'O',
				'Ú': 'U', 'Ý': 'Y',
			},
		},

		// Polish: the nasal vowels and ó fold; acute consonants and ł are
		// phonemic and stay.
		{
			Tag: POL,
			PrecomposedToBase: map[rune]rune{
				'ą': 'a', 'ę': 'e', 'ó': 'o',
				'Ą': 'A', 'Ę': 'E', 'Ó': 'O',
			},
		},

		// Croatian and Serbian (Latin): the ASCII convention writes plain
		// letters, with đ expanding to dj. Handled entirely by
		// transliteration, so there is nothing for diacritic stripping.
		{
			Tag: HRV,
			Transliterate: map[rune]string{
				'č': "c", 'ć': "c", 'š': "s", 'ž': "z", 'đ': "dj",
				'Č': "C", 'Ć': "C", 'Š': "S", 'Ž': "Z", 'Đ': "Dj",
			},
		},
		{
			Tag: SRP,
			Transliterate: map[rune]string{
				'č': "c", 'ć': "c", 'š': "s", 'ž': "z", 'đ': "dj",
				'Č': "C", 'Ć': "C", 'Š': "S", 'Ž': "Z", 'Đ': "Dj",
			},
		},

		// Lithuanian: vowel diacritics fold; č š ž stay.
		{
			Tag: LIT,
			PrecomposedToBase: map[rune]rune{
				'ą': 'a', 'ę': 'e', 'ė': 'e', 'į': 'i', 'ų': 'u', 'ū': 'u',
				'Ą': 'A', 'Ę': 'E', 'Ė': 'E', 'Į': 'I', 'Ų': 'U', 'Ū': 'U',
			},
		},

		// Greek: tonos vowels reduce to plain vowels; the word-final sigma
		// rule needs one rune of lookahead.
		{
			Tag: ELL,
			PrecomposedToBase: map[rune]rune{
				'ά': 'α', 'έ': 'ε', 'ή': 'η', 'ί': 'ι', 'ό': 'ο',
				'ύ': 'υ', 'ώ': 'ω', 'ϊ': 'ι', 'ϋ': 'υ', 'ΐ': 'ι', 'ΰ': 'υ',
				'Ά': 'Α', 'Έ': 'Ε', 'Ή': 'Η', 'Ί': 'Ι', 'Ό': 'Ο',
				'Ύ': 'Υ', 'Ώ': 'Ω', 'Ϊ': 'Ι', 'Ϋ': 'Υ',
			},
			RequiresPeekAhead: true,
		},

		// Russian: ISO/R 9:1968-derived romanization with the anglicized
		// digraphs. Hard and soft signs vanish.
		{
			Tag: RUS,
			Transliterate: map[rune]string{
				'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e",
				'ё': "yo", 'ж': "zh", 'з': "z", 'и': "i", 'й': "j",
				'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o", 'п': "p",
				'р': "r", 'с': "s", 'т': "t", 'у': "u", 'ф': "f",
				'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
				'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
				'А': "A", 'Б': "B", 'В': "V", 'Г': "G", 'Д': "D", 'Е': "E",
				'Ё': "Yo", 'Ж': "Zh", 'З': "Z", 'И': "I", 'Й': "J",
				'К': "K", 'Л': "L", 'М': "M", 'Н': "N", 'О': "O", 'П': "P",
				'Р': "R", 'С': "S", 'Т': "T", 'У': "U", 'Ф': "F",
				'Х': "Kh", 'Ц': "Ts", 'Ч': "Ch", 'Ш': "Sh", 'Щ': "Shch",
				'Ъ': "", 'Ы': "Y", 'Ь': "", 'Э': "E", 'Ю': "Yu", 'Я': "Ya",
			},
		},

		// Arabic: the optional vowel points and sukun strip; the shadda
		// (U+0651) is consonant gemination and stays; the maddah and hamza
		// marks (U+0653..U+0655) compose under NFC and stay.
		{
			Tag: ARA,
			SpacingDiacritics: prefilter.NewRuneSet(
				0x064B, 0x064C, 0x064D, 0x064E, 0x064F, 0x0650, // tanwin + short vowels
				0x0652, // sukun
				0x0670, // superscript alef
			),
		},

		// Hebrew: cantillation and niqqud strip.
		{
			Tag: HEB,
			SpacingDiacritics: newRuneSetRange(0x0591, 0x05BD,
				0x05BF, 0x05C1, 0x05C2, 0x05C7),
		},

		// Vietnamese: tone marks strip down to the quality letter, never
		// past it. ă â ê ô ơ ư đ are distinct letters and are preserved as
		// the stripping targets themselves.
		{Tag: VIE, PrecomposedToBase: vietnameseToneToBase},

		{Tag: ZHO, NeedsSegmentation: true, UnigramCJK: true},
		{Tag: JPN, NeedsSegmentation: true},
		{Tag: KOR, NeedsSegmentation: true},

		// Thai and Lao: tone marks are NFC-inert and strip; scripts are
		// spaceless, segmented at script transitions.
		{
			Tag:               THA,
			NeedsSegmentation: true,
			SpacingDiacritics: prefilter.NewRuneSet(0x0E48, 0x0E49, 0x0E4A, 0x0E4B, 0x0E4C),
		},
		{
			Tag:               LAO,
			NeedsSegmentation: true,
			SpacingDiacritics: prefilter.NewRuneSet(0x0EC8, 0x0EC9, 0x0ECA, 0x0ECB, 0x0ECC),
		},
		{Tag: KHM, NeedsSegmentation: true},
		{Tag: MYA, NeedsSegmentation: true},

		// Indic virama segmentation. Hindi suppresses the boundary before
		// the conjunct-forming consonants र य व ह.
		{
			Tag:                HIN,
			NeedsSegmentation:  true,
			RequiresPeekAhead:  true,
			Virama:             0x094D,
			Consonants:         devanagariConsonants,
			ConjunctExceptions: prefilter.NewRuneSet('र', 'य', 'व', 'ह'),
		},
		{
			Tag:               BEN,
			NeedsSegmentation: true,
			RequiresPeekAhead: true,
			Virama:            0x09CD,
			Consonants:        bengaliConsonants,
		},
		{
			Tag:               TAM,
			NeedsSegmentation: true,
			RequiresPeekAhead: true,
			Virama:            0x0BCD,
			Consonants:        tamilConsonants,
		},
	}

	policies = make(map[Tag]*Policy, len(records))
	for _, p := range records {
		policies[p.Tag] = finalize(p)
	}
}

// newRuneSetRange builds a set from an inclusive range plus extra members.
func newRuneSetRange(lo, hi rune, extra ...rune) *prefilter.RuneSet {
	runes := make([]rune, 0, int(hi-lo)+1+len(extra))
	for r := lo; r <= hi; r++ {
		runes = append(runes, r)
	}
	runes = append(runes, extra...)
	return prefilter.NewRuneSet(runes...)
}

// vietnameseToneToBase maps every tone-marked Vietnamese vowel to its
// quality letter: the grave/acute/hook/tilde/dot tones are removed, the
// breve, circumflex and horn stay. Grouped by base letter, lowercase then
// uppercase.
var vietnameseToneToBase = map[rune]rune{
	// a
	'à': 'a', 'á': 'a', 'ả': 'a', 'ã': 'a', 'ạ': 'a',
	'ằ': 'ă', 'ắ': 'ă', 'ẳ': 'ă', 'ẵ': 'ă', 'ặ': 'ă',
	'ầ': 'â', 'ấ': 'â', 'ẩ': 'â', 'ẫ': 'â', 'ậ': 'â',
	// e
	'è': 'e', 'é': 'e', 'ẻ': 'e', 'ẽ': 'e', 'ẹ': 'e',
	'ề': 'ê', 'ế': 'ê', 'ể': 'ê', 'ễ': 'ê', 'ệ': 'ê',
	// i
	'ì': 'i', 'í': 'i', 'ỉ': 'i', 'ĩ': 'i', 'ị': 'i',
	// o
	'ò': 'o', 'ó': 'o', 'ỏ': 'o', 'õ': 'o', 'ọ': 'o',
	'ồ': 'ô', 'ố': 'ô', 'ổ': 'ô', 'ỗ': 'ô', 'ộ': 'ô',
	'ờ': 'ơ', 'ớ': 'ơ', 'ở': 'ơ', 'ỡ': 'ơ', 'ợ': 'ơ',
	// u
	'ù': 'u', 'ú': 'u', 'ủ': 'u', 'ũ': 'u', 'ụ': 'u',
	'ừ': 'ư', 'ứ': 'ư', 'ử': 'ư', 'ữ': 'ư', 'ự': 'ư',
	// y
	'ỳ': 'y', 'ý': 'y', 'ỷ': 'y', 'ỹ': 'y', 'ỵ': 'y',
	// A
	'À': 'A', 'Á': 'A', 'Ả': 'A', 'Ã': 'A', 'Ạ': 'A',
	'Ằ': 'Ă', 'Ắ': 'Ă', 'Ẳ': 'Ă', 'Ẵ': 'Ă', 'Ặ': 'Ă',
	'Ầ': 'Â', 'Ấ': 'Â', 'Ẩ': 'Â', 'Ẫ': 'Â', 'Ậ': 'Â',
	// E
	'È': 'E', 'É': 'E', 'Ẻ': 'E', 'Ẽ': 'E', 'Ẹ': 'E',
	'Ề': 'Ê', 'Ế': 'Ê', 'Ể': 'Ê', 'Ễ': 'Ê', 'Ệ': 'Ê',
	// I
	'Ì': 'I', 'Í': 'I', 'Ỉ': 'I', 'Ĩ': 'I', 'Ị': 'I',
	// O
	'Ò': 'O', 'Ó': 'O', 'Ỏ': 'O', 'Õ': 'O', 'Ọ': 'O',
	'Ồ': 'Ô', 'Ố': 'Ô', 'Ổ': 'Ô', 'Ỗ': 'Ô', 'Ộ': 'Ô',
	'Ờ': 'Ơ', 'Ớ': 'Ơ', 'Ở': 'Ơ', 'Ỡ': 'Ơ', 'Ợ': 'Ơ',
	// U
	'Ù': 'U', 'Ú': 'U', 'Ủ': 'U', 'Ũ': 'U', 'Ụ': 'U',
	'Ừ': 'Ư', 'Ứ': 'Ư', 'Ử': 'Ư', 'Ữ': 'Ư', 'Ự': 'Ư',
	// Y
	'Ỳ': 'Y', 'Ý': 'Y', 'Ỷ': 'Y', 'Ỹ': 'Y', 'Ỵ': 'Y',
}
