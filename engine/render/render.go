package render

import (
	"fmt"
	"strings"

	"github.com/npillmayer/draftml/core/units"
	"github.com/npillmayer/draftml/document"
	"github.com/npillmayer/draftml/engine/markup"
	"github.com/npillmayer/draftml/engine/sections"
	"github.com/npillmayer/draftml/engine/styleruns"
)

// DefaultHashtagClass is the CSS class of hashtag anchors.
const DefaultHashtagClass = "wysiwyg-hashtag"

// Renderer renders the inner markup of blocks of one document.
// It holds no mutable state and may be shared between goroutines.
type Renderer struct {
	entities     document.EntityMap
	hashtags     *document.HashtagConfig
	transform    EntityTransform
	splitter     units.Splitter
	hashtagClass string
}

// Config collects the parameters of a Renderer.
type Config struct {
	Entities     document.EntityMap
	Hashtags     *document.HashtagConfig // nil switches hashtag detection off
	Transform    EntityTransform         // may be nil
	Units        units.Splitter
	HashtagClass string // defaults to DefaultHashtagClass
}

// New creates a Renderer.
func New(conf Config) *Renderer {
	class := conf.HashtagClass
	if class == "" {
		class = DefaultHashtagClass
	}
	return &Renderer{
		entities:     conf.Entities,
		hashtags:     conf.Hashtags,
		transform:    conf.Transform,
		splitter:     conf.Units,
		hashtagClass: class,
	}
}

// Units returns the splitter used to address block text.
func (r *Renderer) Units() units.Splitter {
	return r.splitter
}

// InnerMarkup renders the text of a block, including inline styles, entities
// and hashtags, but without the block's own tag.
func (r *Renderer) InnerMarkup(block *document.Block) string {
	text := r.splitter.Split(block.Text)
	presence := styleruns.NewPresence(block, len(text))
	secs := sections.Partition(block, text, r.hashtags, r.splitter)
	parts := make([]string, len(secs))
	for i, sec := range secs {
		s := r.sectionMarkup(presence, text, sec)
		if i == 0 {
			s = ReplaceLeadingSpaces(s)
		}
		if i == len(secs)-1 {
			s = ReplaceTrailingSpaces(s)
		}
		parts[i] = s
	}
	return strings.Join(parts, "")
}

func (r *Renderer) sectionMarkup(p *styleruns.Presence, text []string, sec sections.Section) string {
	switch sec.Kind {
	case sections.Entity:
		inner := styleruns.Markup(p, text, sec.Start, sec.End)
		if sec.EntityKey == "" {
			return inner
		}
		return r.EntityMarkup(sec.EntityKey, inner)
	case sections.Hashtag:
		return r.hashtagMarkup(p, text, sec)
	}
	return styleruns.Markup(p, text, sec.Start, sec.End)
}

// hashtagMarkup renders a hashtag as an anchor. The trigger is not part of
// the anchor; the tag's plain text is the link target.
func (r *Renderer) hashtagMarkup(p *styleruns.Presence, text []string, sec sections.Section) string {
	body := sec.Start + r.splitter.Len(r.hashtags.TriggerOrDefault())
	if body > sec.End {
		body = sec.End
	}
	href := markup.EscapeUnits(text[body:sec.End])
	content := styleruns.Markup(p, text, body, sec.End)
	return fmt.Sprintf("<a href='%s' class='%s'>%s</a>", href, r.hashtagClass, content)
}

const nbsp = "&nbsp;"

// ReplaceLeadingSpaces replaces every leading space character of s by &nbsp;.
func ReplaceLeadingSpaces(s string) string {
	trimmed := strings.TrimLeft(s, " ")
	n := len(s) - len(trimmed)
	if n == 0 {
		return s
	}
	return strings.Repeat(nbsp, n) + trimmed
}

// ReplaceTrailingSpaces replaces every trailing space character of s by &nbsp;.
func ReplaceTrailingSpaces(s string) string {
	trimmed := strings.TrimRight(s, " ")
	n := len(s) - len(trimmed)
	if n == 0 {
		return s
	}
	return trimmed + strings.Repeat(nbsp, n)
}
