package render

import (
	"fmt"
	"strings"

	"github.com/npillmayer/draftml/document"
)

// EntityTransform is a client hook for rendering entities. It receives the
// entity and the already rendered text covered by the entity ("" for atomic
// blocks). A non-empty result replaces the built-in markup for the entity.
type EntityTransform func(entity *document.Entity, text string) string

// DefaultLinkTarget is used for links without a target.
const DefaultLinkTarget = "_self"

// EntityMarkup renders the entity with key k around text.
//
// The entity transform, if set, is consulted first. Otherwise links render as
// anchors, images as figures, and any other entity leaves text unchanged.
// Keys not present in the entity map leave text unchanged as well.
func (r *Renderer) EntityMarkup(k document.EntityKey, text string) string {
	entity := r.entities.Lookup(k)
	if entity == nil {
		tracer().Errorf("entity %q referenced but not in entity map", k)
		return text
	}
	if r.transform != nil {
		if html := r.transform(entity, text); html != "" {
			return html
		}
	}
	switch entity.Type {
	case document.Link:
		return linkMarkup(entity, text)
	case document.Image:
		return imageMarkup(entity)
	}
	return text
}

func linkMarkup(entity *document.Entity, text string) string {
	target := entity.Attr("target")
	if target == "" {
		target = DefaultLinkTarget
	}
	return fmt.Sprintf("<a href='%s' target='%s'>%s</a>", entity.Attr("url"), target, text)
}

func imageMarkup(entity *document.Entity) string {
	var b strings.Builder
	b.WriteString("<figure>")
	fmt.Fprintf(&b, "<img src='%s'", entity.Attr("src"))
	if alt := entity.Attr("alt"); alt != "" {
		fmt.Fprintf(&b, ` alt="%s"`, alt)
	}
	fmt.Fprintf(&b, " width='%s' height='%s' />", entity.Attr("width"), entity.Attr("height"))
	if caption := entity.Attr("caption"); caption != "" {
		b.WriteString("<figcaption>")
		b.WriteString(caption)
		b.WriteString("</figcaption>")
	}
	b.WriteString("</figure>")
	return b.String()
}

// IsAtomic is true for blocks which render as a single entity: blocks with at
// least one entity range and either no visible text or block type "atomic".
func IsAtomic(block *document.Block) bool {
	return len(block.EntityRanges) > 0 &&
		(block.IsEmptyText() || block.Type == document.Atomic)
}

// AtomicMarkup renders an atomic block as the markup of its first entity.
// The block's text is not rendered.
func (r *Renderer) AtomicMarkup(block *document.Block) string {
	if len(block.EntityRanges) == 0 {
		return ""
	}
	return r.EntityMarkup(block.EntityRanges[0].Key, "")
}
