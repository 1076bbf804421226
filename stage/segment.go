package stage

import (
	"github.com/coregx/normtext/lang"
	"github.com/coregx/normtext/segment"
)

// SegmentWords inserts word boundaries for spaceless scripts, driven by the
// language's segmentation engine: unigram spacing for Chinese ideographs,
// spaces at Latin/script transitions for Japanese, Korean and the Southeast
// Asian scripts, and zero-width spaces at Indic syllable boundaries. For
// languages without segmentation the stage is a no-op.
var SegmentWords Stage = register(segmentWords{})

type segmentWords struct{}

func (segmentWords) Name() string { return "segment_words" }

// NeedsApply walks adjacent rune pairs with the language's boundary engine;
// it is exact, which keeps unsegmented buffers zero-copy.
func (segmentWords) NeedsApply(s string, pol *lang.Policy) bool {
	engine := segment.For(pol)
	if engine == nil {
		return false
	}
	var prev rune
	hasPrev := false
	for _, r := range s {
		if hasPrev {
			if _, insert := engine(prev, r); insert {
				return true
			}
		}
		prev, hasPrev = r, true
	}
	return false
}

func (st segmentWords) Apply(s string, pol *lang.Policy) string {
	return applyStreaming(st, s, pol)
}

func (segmentWords) Transducer(src Source, pol *lang.Policy) Source {
	engine := segment.For(pol)
	return newTransducer(src, func(r, next rune, hasNext bool, out []rune) []rune {
		out = append(out, r)
		if engine != nil && hasNext {
			if sep, insert := engine(r, next); insert {
				out = append(out, sep)
			}
		}
		return out
	})
}
