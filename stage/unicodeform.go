package stage

import (
	"golang.org/x/text/unicode/norm"

	"github.com/coregx/normtext/lang"
)

// The Unicode normalization form stages. Canonical and compatibility
// (de)composition need the full composition tables and reorder combining
// sequences, so they run as batch stages on the sequential path; they do not
// implement Streaming.
var (
	NFC  Stage = register(unicodeForm{form: norm.NFC, name: "nfc"})
	NFD  Stage = register(unicodeForm{form: norm.NFD, name: "nfd"})
	NFKC Stage = register(unicodeForm{form: norm.NFKC, name: "nfkc"})
	NFKD Stage = register(unicodeForm{form: norm.NFKD, name: "nfkd"})
)

type unicodeForm struct {
	form norm.Form
	name string
}

func (st unicodeForm) Name() string { return st.name }

func (st unicodeForm) NeedsApply(s string, _ *lang.Policy) bool {
	return !st.form.IsNormalString(s)
}

func (st unicodeForm) Apply(s string, _ *lang.Policy) string {
	if st.form.IsNormalString(s) {
		return s
	}
	return st.form.String(s)
}
