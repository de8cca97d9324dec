package styleruns

import (
	"fmt"
	"strings"

	"github.com/npillmayer/draftml/document"
	"github.com/npillmayer/draftml/engine/markup"
)

// Applied lists all inline styles in the order their tags are applied to a
// run's text: BOLD wraps the text first, i.e. it ends up innermost.
var Applied = []document.InlineStyle{
	document.Bold,
	document.Italic,
	document.Underline,
	document.Strikethrough,
	document.Code,
	document.Superscript,
	document.Subscript,
}

// Basic are the five basic inline styles.
var Basic = Applied[:5]

// Presence holds, for every inline style, a flag per text unit telling if
// the style is active at that unit.
type Presence struct {
	n     int
	flags map[document.InlineStyle][]bool
}

// NewPresence flattens the style ranges of a block into presence flags.
// n is the number of units of the block's text. Ranges are clipped to
// [0, n); ranges of unknown styles are ignored.
func NewPresence(block *document.Block, n int) *Presence {
	p := &Presence{
		n:     n,
		flags: make(map[document.InlineStyle][]bool, len(Applied)),
	}
	for _, style := range Applied {
		p.flags[style] = make([]bool, n)
	}
	for _, r := range block.InlineStyleRanges {
		flags, ok := p.flags[r.Style]
		if !ok {
			tracer().Debugf("ignoring unknown inline style %q", r.Style)
			continue
		}
		from, to := r.Offset, r.Offset+r.Length
		if from < 0 {
			from = 0
		}
		if to > n {
			to = n
		}
		for i := from; i < to; i++ {
			flags[i] = true
		}
	}
	return p
}

// Len returns the number of text units covered.
func (p *Presence) Len() int {
	return p.n
}

// Has reports if style is active at unit i.
func (p *Presence) Has(style document.InlineStyle, i int) bool {
	flags, ok := p.flags[style]
	if !ok || i < 0 || i >= p.n {
		return false
	}
	return flags[i]
}

// StylesAt returns the styles active at unit i, in application order.
func (p *Presence) StylesAt(i int) []document.InlineStyle {
	var styles []document.InlineStyle
	for _, style := range Applied {
		if p.Has(style, i) {
			styles = append(styles, style)
		}
	}
	return styles
}

// sameAsPrevious is true if all tracked styles have the same presence at unit
// i as at unit i-1.
func (p *Presence) sameAsPrevious(tracked []document.InlineStyle, i int) bool {
	if i <= 0 || i >= p.n {
		return false
	}
	for _, style := range tracked {
		if p.Has(style, i) != p.Has(style, i-1) {
			return false
		}
	}
	return true
}

// Run is a maximal span [Start, End) of text with constant tracked styles.
// Styles are the styles active at Start, in application order.
type Run struct {
	Start  int
	End    int
	Styles []document.InlineStyle
	Text   []string
}

func (r Run) String() string {
	return fmt.Sprintf("[%d,%d)%v %q", r.Start, r.End, r.Styles, strings.Join(r.Text, ""))
}

// Markup escapes the run's text and wraps it in the tags of its styles.
func (r Run) Markup() string {
	content := markup.EscapeUnits(r.Text)
	for _, style := range r.Styles {
		content = markup.WrapInline(style, content)
	}
	return content
}

// Segment splits the span [start, end) of text into runs. A new run starts
// wherever one of the tracked styles changes. With no tracked styles, the
// whole span is a single run. An empty span yields no runs.
func Segment(p *Presence, text []string, tracked []document.InlineStyle, start, end int) []Run {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	var runs []Run
	for i := start; i < end; i++ {
		if i != start && p.sameAsPrevious(tracked, i) {
			r := &runs[len(runs)-1]
			r.Text = text[r.Start : i+1]
			r.End = i + 1
			continue
		}
		runs = append(runs, Run{
			Start:  i,
			End:    i + 1,
			Styles: p.StylesAt(i),
			Text:   text[i : i+1],
		})
	}
	return runs
}

// Markup renders the span [start, end) of text with nested inline style tags.
//
// The span is first taken as a whole, then split into runs of equal style.
// Runs track superscript and subscript in addition to the five Basic styles,
// so a sup or sub tag never extends beyond the units carrying that style.
// Each run's text is escaped exactly once.
func Markup(p *Presence, text []string, start, end int) string {
	var b strings.Builder
	for _, outer := range Segment(p, text, nil, start, end) {
		for _, run := range Segment(p, text, Applied, outer.Start, outer.End) {
			b.WriteString(run.Markup())
		}
	}
	return b.String()
}
