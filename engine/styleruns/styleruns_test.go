package styleruns

import (
	"testing"

	"github.com/npillmayer/draftml/core/units"
	"github.com/npillmayer/draftml/document"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func styled(text string, ranges ...document.StyleRange) (*document.Block, []string, *Presence) {
	b := &document.Block{Text: text, InlineStyleRanges: ranges}
	u := units.CodePoints.Split(text)
	return b, u, NewPresence(b, len(u))
}

func TestPresence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "draftml.engine")
	defer teardown()
	//
	_, _, p := styled("abcdef",
		document.StyleRange{Offset: 1, Length: 2, Style: document.Bold},
		document.StyleRange{Offset: 2, Length: 2, Style: document.Bold},
		document.StyleRange{Offset: 4, Length: 9, Style: document.Italic},
		document.StyleRange{Offset: 0, Length: 1, Style: "COLOR-RED"},
	)
	assert.Equal(t, 6, p.Len())
	assert.False(t, p.Has(document.Bold, 0))
	assert.True(t, p.Has(document.Bold, 3), "overlapping ranges of one style form a union")
	assert.False(t, p.Has(document.Bold, 4))
	assert.True(t, p.Has(document.Italic, 5), "ranges are clipped to the text")
	assert.False(t, p.Has(document.Italic, 6))
	assert.Empty(t, p.StylesAt(0), "unknown styles are ignored")
}

func TestSegmentWithoutTracking(t *testing.T) {
	_, u, p := styled("Hello",
		document.StyleRange{Offset: 1, Length: 2, Style: document.Bold})
	runs := Segment(p, u, nil, 0, 5)
	require.Len(t, runs, 1)
	assert.Equal(t, 0, runs[0].Start)
	assert.Equal(t, 5, runs[0].End)
	assert.Equal(t, u, runs[0].Text)
	assert.Empty(t, Segment(p, u, nil, 2, 2))
}

func TestSegmentRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "draftml.engine")
	defer teardown()
	//
	_, u, p := styled("a bold move",
		document.StyleRange{Offset: 2, Length: 6, Style: document.Bold},
		document.StyleRange{Offset: 5, Length: 6, Style: document.Italic},
	)
	runs := Segment(p, u, Basic, 0, len(u))
	require.Len(t, runs, 4)
	want := []struct {
		start, end int
		styles     []document.InlineStyle
	}{
		{0, 2, nil},
		{2, 5, []document.InlineStyle{document.Bold}},
		{5, 8, []document.InlineStyle{document.Bold, document.Italic}},
		{8, 11, []document.InlineStyle{document.Italic}},
	}
	for i, w := range want {
		assert.Equal(t, w.start, runs[i].Start, "run #%d", i)
		assert.Equal(t, w.end, runs[i].End, "run #%d", i)
		assert.Equal(t, w.styles, runs[i].Styles, "run #%d", i)
	}
	// runs partition the span and neighbours differ
	for i := 1; i < len(runs); i++ {
		assert.Equal(t, runs[i-1].End, runs[i].Start)
		assert.NotEqual(t, runs[i-1].Styles, runs[i].Styles)
	}
	// sub-span
	runs = Segment(p, u, Basic, 3, 7)
	require.Len(t, runs, 2)
	assert.Equal(t, "ol", joined(runs[0]))
	assert.Equal(t, "d ", joined(runs[1]))
}

func joined(r Run) string {
	s := ""
	for _, x := range r.Text {
		s += x
	}
	return s
}

func TestMarkup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "draftml.engine")
	defer teardown()
	//
	_, u, p := styled("Hi", document.StyleRange{Offset: 0, Length: 2, Style: document.Bold})
	assert.Equal(t, "<strong>Hi</strong>", Markup(p, u, 0, 2))
	//
	_, u, p = styled("a bold move",
		document.StyleRange{Offset: 2, Length: 6, Style: document.Bold},
		document.StyleRange{Offset: 5, Length: 6, Style: document.Italic},
	)
	assert.Equal(t, "a <strong>bol</strong><em><strong>d m</strong></em><em>ove</em>",
		Markup(p, u, 0, len(u)))
	assert.Equal(t, "<strong>ol</strong><em><strong>d</strong></em>", Markup(p, u, 3, 6))
}

func TestMarkupOrderAndEscaping(t *testing.T) {
	_, u, p := styled("x<y",
		document.StyleRange{Offset: 0, Length: 3, Style: document.Code},
		document.StyleRange{Offset: 0, Length: 3, Style: document.Underline},
		document.StyleRange{Offset: 0, Length: 3, Style: document.Bold},
		document.StyleRange{Offset: 0, Length: 3, Style: document.Strikethrough},
		document.StyleRange{Offset: 0, Length: 3, Style: document.Italic},
	)
	assert.Equal(t, "<code><del><ins><em><strong>x&lt;y</strong></em></ins></del></code>",
		Markup(p, u, 0, 3))
}

func TestMarkupSuperAndSubscript(t *testing.T) {
	_, u, p := styled("H2O x2",
		document.StyleRange{Offset: 1, Length: 1, Style: document.Subscript},
		document.StyleRange{Offset: 5, Length: 1, Style: document.Superscript},
		document.StyleRange{Offset: 4, Length: 2, Style: document.Bold},
	)
	assert.Equal(t, "H<sub>2</sub>O <strong>x</strong><sup><strong>2</strong></sup>",
		Markup(p, u, 0, len(u)))
}

func TestMarkupNewlines(t *testing.T) {
	_, u, p := styled("a\nb", document.StyleRange{Offset: 0, Length: 3, Style: document.Italic})
	assert.Equal(t, "<em>a<br>b</em>", Markup(p, u, 0, 3))
}
