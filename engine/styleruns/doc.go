/*
Package styleruns splits spans of text into runs of equal inline style.

For every inline style, a block's style ranges are flattened into a presence
flag per text unit. A span of text is then scanned left to right, starting a
new run wherever the flags of the tracked styles change. Each run renders as
its escaped text, wrapped in one tag per active style, in a fixed order.

    text:    "a bold move"
    BOLD:       [----)
    ITALIC:        [----)
    runs:     [)[-)[-)[-)

Style ranges of the same style may overlap; the union of them is taken.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styleruns

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'draftml.engine'.
func tracer() tracing.Trace {
	return tracing.Select("draftml.engine")
}
