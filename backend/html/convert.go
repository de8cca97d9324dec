package html

import (
	"io"
	"strings"

	"github.com/npillmayer/draftml/document"
	"github.com/npillmayer/draftml/engine/container"
	"github.com/npillmayer/draftml/engine/markup"
	"github.com/npillmayer/draftml/engine/render"
)

// Convert renders a document as an HTML fragment.
//
// A nil document or a document without blocks yields "".
func Convert(doc *document.Document, opts ...Option) string {
	if doc == nil || len(doc.Blocks) == 0 {
		return ""
	}
	c := newConverter(doc, applyOptions(opts...))
	return c.convert(doc.Blocks)
}

// ConvertJSON decodes a raw-content JSON document from r and renders it as
// an HTML fragment. Decoding errors are returned as is.
func ConvertJSON(r io.Reader, opts ...Option) (string, error) {
	doc, err := document.Decode(r)
	if err != nil {
		return "", err
	}
	return Convert(doc, opts...), nil
}

// converter holds the state of a single conversion.
type converter struct {
	opts      *Options
	renderer  *render.Renderer
	headerIDs *headerIDs
}

func newConverter(doc *document.Document, opts *Options) *converter {
	return &converter{
		opts: opts,
		renderer: render.New(render.Config{
			Entities:     doc.EntityMap,
			Hashtags:     opts.Hashtags,
			Transform:    opts.Transform,
			Units:        opts.Units,
			HashtagClass: opts.HashtagClass,
		}),
		headerIDs: newHeaderIDs(),
	}
}

type family int

const (
	single family = iota
	lists
	codeLines
)

func familyOf(t document.BlockType) family {
	switch {
	case t.IsList():
		return lists
	case t.IsCode():
		return codeLines
	}
	return single
}

func (c *converter) convert(blocks []*document.Block) string {
	var parts []string
	var run []*document.Block // consecutive blocks of a container family
	for i, block := range blocks {
		if block == nil {
			tracer().Errorf("skipping null block #%d", i)
			continue
		}
		fam := familyOf(block.Type)
		if fam == single {
			parts = append(parts, c.block(block))
			continue
		}
		run = append(run, block)
		if i+1 == len(blocks) || blocks[i+1] == nil || familyOf(blocks[i+1].Type) != fam {
			tracer().Debugf("grouping %d blocks of type %s", len(run), run[0].Type)
			parts = append(parts, container.Group(run, container.BlockTag, c.leaf))
			run = nil
		}
	}
	return strings.Join(parts, "")
}

// block renders a block which is not part of a list or code family.
func (c *converter) block(block *document.Block) string {
	if render.IsAtomic(block) {
		return c.renderer.AtomicMarkup(block) + "\n"
	}
	tag, ok := markup.BlockTag(block.Type)
	if !ok {
		tracer().Infof("no markup for block type %q, dropping block %q", block.Type, block.Key)
		return "\n"
	}
	var attrs []string
	if c.opts.HeaderIDs && block.Type.IsHeader() {
		attrs = append(attrs, `id="`+c.headerIDs.create(block.Text)+`"`)
	}
	attrs = append(attrs, markup.Attributes(markup.StyleAttribute(block.Data), c.opts.Directional)...)
	return markup.OpenTag(tag, attrs) + c.renderer.InnerMarkup(block) + markup.CloseTag(tag) + "\n"
}

// leaf renders a list item or code line as a leaf of its container.
func (c *converter) leaf(block *document.Block) string {
	tag := markup.LeafTag(block.Type)
	attrs := markup.Attributes(markup.StyleAttribute(block.Data), c.opts.Directional)
	return markup.OpenTag(tag, attrs) + c.renderer.InnerMarkup(block) + markup.CloseTag(tag) + "\n"
}
