/*
Package container groups flat runs of list items or code lines into nested
containers.

Editors store lists as a flat sequence of blocks, each with a depth. Package
container recovers the nesting: a block deeper than its predecessor opens a
nested container, which collects all following deeper blocks until a block at
the predecessor's depth (or shallower) appears.

    depth  block          markup
    0      one            <ul><li>one</li>
    1      one.a              <ul><li>one.a</li></ul>
    0      two                <li>two</li></ul>

A change of the block type (ordered vs. unordered list items) closes the
current container and opens a new one.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package container

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'draftml.engine'.
func tracer() tracing.Trace {
	return tracing.Select("draftml.engine")
}
