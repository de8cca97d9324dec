/*
Package units splits text into the units which address positions in a block.

Offsets and lengths of style ranges, entity ranges and hashtags all count
units of a block's text. Editors differ in what they count: most count
Unicode code points, some count user-perceived characters (extended
grapheme clusters). A Splitter selects one of these.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package units

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'draftml.engine'.
func tracer() tracing.Trace {
	return tracing.Select("draftml.engine")
}
