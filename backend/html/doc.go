/*
Package html converts rich-text documents to HTML.

Convert walks the blocks of a document once. Consecutive list items and
consecutive code lines are collected and rendered as nested containers
(package container); every other block is rendered on its own, wrapped in the
tag for its type. Each block is followed by a newline. The result is an HTML
fragment, without any document-level wrapper:

    doc, err := document.Decode(r)
    …
    fragment := html.Convert(doc,
        html.WithHashtags(&document.HashtagConfig{}),
        html.WithDirectional(true))

Conversion never fails. Unknown block types produce no markup (their content
is dropped), malformed ranges degrade gracefully. Conversion has no side
effects, so documents may be converted concurrently.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'draftml.html'.
func tracer() tracing.Trace {
	return tracing.Select("draftml.html")
}
