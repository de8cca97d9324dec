package units

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSplitCodePoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "draftml.engine")
	defer teardown()
	//
	u := CodePoints.Split("a😀\u00e9")
	assert.Equal(t, []string{"a", "😀", "\u00e9"}, u)
	assert.Nil(t, CodePoints.Split(""))
	assert.Equal(t, 4, CodePoints.Len("e\u0301xy"))
}

func TestSplitGraphemes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "draftml.engine")
	defer teardown()
	//
	text := "Cafe\u0301!"
	u := Graphemes.Split(text)
	assert.Equal(t, 5, len(u), "combining accent must join its base letter")
	assert.Equal(t, text, strings.Join(u, ""))
	assert.Equal(t, "e\u0301", u[3])
}

func TestIndex(t *testing.T) {
	u := CodePoints.Split("ab #cd #e")
	assert.Equal(t, 2, Index(u, 0, []string{" ", "#"}))
	assert.Equal(t, 6, Index(u, 3, []string{" ", "#"}))
	assert.Equal(t, -1, Index(u, 7, []string{" ", "#"}))
	assert.Equal(t, 4, Index(u, 4, nil))
	assert.True(t, HasPrefix(u, []string{"a", "b"}))
	assert.False(t, HasPrefix(u[:1], []string{"a", "b"}))
}
