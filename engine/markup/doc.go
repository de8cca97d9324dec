/*
Package markup holds the small building blocks of HTML output: character
escaping, the tables mapping block types and inline styles to tags, and the
assembly of CSS style attributes from block data.

The tag tables are immutable. All functions are pure.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'draftml.engine'.
func tracer() tracing.Trace {
	return tracing.Select("draftml.engine")
}
