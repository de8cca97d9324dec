package html

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestHeaderIDsAreUnique(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "draftml.html")
	defer teardown()
	//
	ids := newHeaderIDs()
	got := []string{
		ids.create("Intro"),
		ids.create("Intro"),
		ids.create("Intro-1"),
		ids.create("Intro"),
		ids.create("  "),
		ids.create("!!"),
	}
	assert.Equal(t, []string{"intro", "intro-1", "intro-1-1", "intro-2", "section", "section-1"}, got)
}
