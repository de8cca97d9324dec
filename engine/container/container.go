package container

import (
	"strings"

	"github.com/npillmayer/draftml/document"
	"github.com/npillmayer/draftml/engine/markup"
)

// LeafFunc renders a single block as a leaf of a container, including the
// leaf's tag and a trailing newline.
type LeafFunc func(block *document.Block) string

// TagFunc returns the container tag for a block type.
type TagFunc func(t document.BlockType) string

// BlockTag is the default TagFunc, using the block tag table.
func BlockTag(t document.BlockType) string {
	tag, _ := markup.BlockTag(t)
	return tag
}

// Group renders a flat sequence of blocks of one family (list items or code
// lines) as nested containers. Every container tag is followed by a newline.
//
// A type change closes the current container and opens a new one for the new
// type, whatever the depth of the block. Otherwise a block deeper than the
// previously rendered block is held back; consecutive held-back blocks are
// rendered as one nested container (recursively) as soon as a block at the
// same or a smaller depth, or a block of a different type, appears, or at the
// end of the sequence.
//
// An empty sequence renders as "".
func Group(blocks []*document.Block, tag TagFunc, leaf LeafFunc) string {
	if len(blocks) == 0 {
		return ""
	}
	var parts []string
	var nested []*document.Block
	flush := func() {
		if len(nested) > 0 {
			tracer().Debugf("nesting %d blocks at depth %d", len(nested), nested[0].Depth)
			parts = append(parts, Group(nested, tag, leaf))
			nested = nil
		}
	}
	var prev *document.Block
	for _, block := range blocks {
		switch {
		case prev == nil:
			parts = append(parts, openTag(tag(block.Type)))
		case block.Type != prev.Type:
			flush()
			parts = append(parts, closeTag(tag(prev.Type)), openTag(tag(block.Type)))
		case block.Depth > prev.Depth:
			nested = append(nested, block)
			continue
		default:
			flush()
		}
		parts = append(parts, leaf(block))
		prev = block
	}
	flush()
	parts = append(parts, closeTag(tag(prev.Type)))
	return strings.Join(parts, "")
}

func openTag(tag string) string {
	return "<" + tag + ">\n"
}

func closeTag(tag string) string {
	return markup.CloseTag(tag) + "\n"
}
