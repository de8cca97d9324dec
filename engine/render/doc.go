/*
Package render creates the inner markup of blocks.

The text of a block is partitioned into sections (package sections), each
section is rendered with nested inline style tags (package styleruns), and
entity and hashtag sections are wrapped in their markup. Leading spaces of the
first section and trailing spaces of the last section are turned into
non-breaking spaces, as HTML would otherwise collapse them.

Blocks consisting of an entity only (atomic blocks) render as the entity's
markup, without any text.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'draftml.engine'.
func tracer() tracing.Trace {
	return tracing.Select("draftml.engine")
}
