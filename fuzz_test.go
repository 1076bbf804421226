package normtext

import (
	"testing"
	"unicode/utf8"

	"github.com/coregx/normtext/lang"
	"github.com/coregx/normtext/stage"
)

// FuzzNormalize drives random inputs through a pipeline that exercises the
// fused path, the sequential path, and the batch stages together. Valid
// UTF-8 must never panic and must produce identical output on both paths;
// invalid UTF-8 must be rejected, never mangled.
func FuzzNormalize(f *testing.F) {
	seeds := []string{
		"",
		"hello world",
		"Grüße aus München",
		"KIZILIRMAK NEHRİ",
		"北京大学",
		"पत्नी और विद्वत्",
		"“smart” – quotes…",
		"<p>Hello <code>CAFÉ</code></p>",
		"**bold** `code`",
		"ｆｕｌｌｗｉｄｔｈ ｶﾀｶﾅ",
		"\u200B\uFEFF\u200E",
		"  spaced\t\tout  ",
		"\xff\xfe broken",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	pipelines := []*Pipeline{
		MustNew(lang.DEU, stage.NFC, stage.CaseFold, stage.Transliterate, stage.NormalizeWhitespaceFull),
		MustNew(lang.TUR, stage.LowerCase, stage.NormalizePunctuation),
		MustNew(lang.ZHO, stage.UnifyWidth, stage.SegmentWords),
		MustNew(lang.HIN, stage.SegmentWords, stage.StripFormatControls),
		MustNew(lang.ENG, stage.StripHtml, stage.StripMarkdown, stage.CaseFold),
	}

	f.Fuzz(func(t *testing.T, input string) {
		for _, p := range pipelines {
			out, err := p.Normalize(input)
			if !utf8.ValidString(input) {
				if err == nil {
					t.Errorf("%v: invalid UTF-8 accepted", p.Stages())
				}
				continue
			}
			if err != nil {
				t.Fatalf("%v: unexpected error: %v", p.Stages(), err)
			}
			if !utf8.ValidString(out) {
				t.Errorf("%v: produced invalid UTF-8 from %q", p.Stages(), input)
			}
			seq, err := p.NormalizeNoFusion(input)
			if err != nil {
				t.Fatalf("%v: sequential path error: %v", p.Stages(), err)
			}
			if out != seq {
				t.Errorf("%v: fused %q != sequential %q for %q", p.Stages(), out, seq, input)
			}
		}
	})
}
