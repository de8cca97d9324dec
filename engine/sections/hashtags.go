package sections

import (
	"github.com/npillmayer/draftml/core/units"
	"github.com/npillmayer/draftml/document"
)

// Span is a half-open range [Offset, Offset+Length) of text units.
type Span struct {
	Offset int
	Length int
}

// End returns Offset+Length.
func (s Span) End() int {
	return s.Offset + s.Length
}

// Hashtags finds hashtags in a block's text, given as units.
// If cfg is nil, hashtag detection is off and no spans are returned.
//
// A hashtag starts either at the beginning of the remaining text, if it starts
// with the trigger, or right after an occurrence of separator+trigger.
// It extends to the next separator or to the end of the text. Hashtags
// consisting of the trigger only are ignored. The returned spans include the
// trigger.
//
// splitter is used to split trigger and separator into units.
func Hashtags(text []string, cfg *document.HashtagConfig, splitter units.Splitter) []Span {
	if cfg == nil || len(text) == 0 {
		return nil
	}
	trigger := splitter.Split(cfg.TriggerOrDefault())
	separator := splitter.Split(cfg.SeparatorOrDefault())
	lead := append(append([]string{}, separator...), trigger...)
	var spans []Span
	pos := 0 // start of the remaining text
	for pos < len(text) {
		var start int
		if units.HasPrefix(text[pos:], trigger) {
			start = pos
		} else {
			i := units.Index(text, pos, lead)
			if i < 0 {
				break
			}
			start = i + len(separator)
		}
		body := start + len(trigger)
		end := units.Index(text, body, separator)
		if end < 0 {
			end = len(text)
		}
		if end > body {
			spans = append(spans, Span{Offset: start, Length: end - start})
		}
		pos = body
	}
	tracer().Debugf("found %d hashtags", len(spans))
	return spans
}
