package html

import (
	"strconv"

	"github.com/shurcooL/sanitized_anchor_name"
)

// headerIDs hands out header ids which are unique within one conversion.
type headerIDs struct {
	issued map[string]bool
	suffix map[string]int // last numeric suffix used per base id
}

func newHeaderIDs() *headerIDs {
	return &headerIDs{
		issued: make(map[string]bool),
		suffix: make(map[string]int),
	}
}

// create derives an id from a header's text. Repeated ids get a numeric
// suffix: "intro", "intro-1", "intro-2", …
func (ids *headerIDs) create(text string) string {
	base := sanitized_anchor_name.Create(text)
	if base == "" {
		base = "section"
	}
	id := base
	for ids.issued[id] {
		ids.suffix[base]++
		id = base + "-" + strconv.Itoa(ids.suffix[base])
	}
	ids.issued[id] = true
	return id
}
