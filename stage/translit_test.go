package stage

import (
	"testing"

	"github.com/coregx/normtext/lang"
)

// TestTransliterate tests the historical ASCII conventions
func TestTransliterate(t *testing.T) {
	tests := []struct {
		name  string
		tag   lang.Tag
		input string
		want  string
	}{
		{"german umlauts", lang.DEU, "Grüße aus München", "Gruesse aus Muenchen"},
		{"german uppercase", lang.DEU, "ÄRGER", "AeRGER"},
		{"danish", lang.DAN, "København, Ærø", "Koebenhavn, Aeroe"},
		{"swedish", lang.SWE, "Växjö", "Vaexjoe"},
		{"icelandic thorn and eth", lang.ISL, "Þórður", "Thórdur"},
		{"french ligature", lang.FRA, "cœur", "coeur"},
		{"croatian dj", lang.HRV, "Đakovo", "Djakovo"},
		{"russian", lang.RUS, "Москва", "Moskva"},
		{"russian digraphs", lang.RUS, "Хрущёв", "Khrushchyov"},
		{"russian soft sign vanishes", lang.RUS, "область", "oblast"},
		{"outside table passes", lang.DEU, "naïve", "naïve"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pol := lang.Lookup(tt.tag)
			got := Transliterate.Apply(tt.input, pol)
			if got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := Transliterate.Apply(got, pol); again != got {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}

// TestRemoveDiacritics tests policy-guarded stripping
func TestRemoveDiacritics(t *testing.T) {
	tests := []struct {
		name  string
		tag   lang.Tag
		input string
		want  string
	}{
		{"french accents", lang.FRA, "café crème", "cafe creme"},
		{"french cedilla", lang.FRA, "français", "francais"},
		{"spanish accents strip", lang.SPA, "canción", "cancion"},
		{"spanish enye survives", lang.SPA, "mañana", "mañana"},
		{"spanish enye uppercase survives", lang.SPA, "AÑO", "AÑO"},
		{"czech hacek survives", lang.CES, "čeština", "čeština"},
		{"czech acute strips", lang.CES, "árie", "arie"},
		{"vietnamese tones strip to quality", lang.VIE, "Việt Nam", "Viêt Nam"},
		{"vietnamese quality survives", lang.VIE, "Hà Nội", "Ha Nôi"},
		{"greek tonos", lang.ELL, "καφές", "καφες"},
		{"arabic vowels strip", lang.ARA, "كَتَبَ", "كتب"},
		{"arabic shadda survives", lang.ARA, "شدّة", "شدّة"},
		{"hebrew niqqud", lang.HEB, "שָׁלוֹם", "שלום"},
		{"english is empty policy", lang.ENG, "café", "café"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pol := lang.Lookup(tt.tag)
			got := RemoveDiacritics.Apply(tt.input, pol)
			if got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := RemoveDiacritics.Apply(got, pol); again != got {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}

// TestRemoveDiacriticsFusedMatchesApply cross-checks the transform-based
// batch path against the streaming transducer.
func TestRemoveDiacriticsFusedMatchesApply(t *testing.T) {
	inputs := []string{
		"café crème brûlée", "mañana", "Việt Nam", "كَتَبَ", "שָׁלוֹם", "plain",
	}
	for _, tag := range []lang.Tag{lang.FRA, lang.SPA, lang.VIE, lang.ARA, lang.HEB} {
		pol := lang.Lookup(tag)
		for _, in := range inputs {
			batch := RemoveDiacritics.Apply(in, pol)
			streamed := Collect(RemoveDiacritics.(Streaming).Transducer(NewSource(in), pol), len(in))
			if batch != streamed {
				t.Errorf("%v/%q: batch %q != streamed %q", tag, in, batch, streamed)
			}
		}
	}
}
