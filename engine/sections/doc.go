/*
Package sections partitions the text of a block into sections.

A section is a slice of a block's text which is either plain, covered by an
entity, or covered by a hashtag. Entity ranges come with the block; hashtag
ranges are detected in the text. Both are merged into an ordered sequence of
disjoint sections which covers the whole text, without gaps:

    text:      "see #go and the docs"
    entities:                   [--)  (a LINK on "docs")
    hashtags:       [-)
    sections:   [--)[-)[-------)[--)

Overlapping ranges are not expected in well-formed input. If they occur,
a range starting inside an earlier one is dropped, keeping the partition
intact.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sections

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'draftml.engine'.
func tracer() tracing.Trace {
	return tracing.Select("draftml.engine")
}
