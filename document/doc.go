/*
Package document defines the data model of rich-text documents.

A document is an ordered sequence of blocks. Each block carries plain text
and position-addressed annotations: inline style ranges (bold, italic, …)
and entity ranges, which refer to rich objects (links, images, …) held in
the document's entity map. This is the "raw" content format of block-based
web editors, which store content as annotated text rather than as a markup
tree.

Package document knows how to decode such documents from JSON. It does not
validate them; documents are trusted input.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package document

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'draftml.document'.
func tracer() tracing.Trace {
	return tracing.Select("draftml.document")
}
