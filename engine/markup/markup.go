package markup

import (
	"strings"

	"github.com/npillmayer/draftml/document"
	"golang.org/x/net/html/atom"
)

var textEscaper = strings.NewReplacer(
	"\n", "<br>",
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape replaces newlines by <br> and escapes &, < and >.
// Quotes are left alone; text never appears inside attribute values.
func Escape(text string) string {
	return textEscaper.Replace(text)
}

// EscapeUnits escapes the concatenation of a sequence of text units.
func EscapeUnits(units []string) string {
	return Escape(strings.Join(units, ""))
}

var inlineTags = map[document.InlineStyle]atom.Atom{
	document.Bold:          atom.Strong,
	document.Italic:        atom.Em,
	document.Underline:     atom.Ins,
	document.Strikethrough: atom.Del,
	document.Code:          atom.Code,
	document.Superscript:   atom.Sup,
	document.Subscript:     atom.Sub,
}

// InlineTag returns the tag for an inline style, or false for unknown styles.
func InlineTag(style document.InlineStyle) (string, bool) {
	a, ok := inlineTags[style]
	if !ok {
		return "", false
	}
	return a.String(), true
}

// WrapInline wraps content in the tag for style. Content of unknown styles
// is returned unchanged.
func WrapInline(style document.InlineStyle, content string) string {
	tag, ok := InlineTag(style)
	if !ok {
		return content
	}
	return "<" + tag + ">" + content + "</" + tag + ">"
}

var blockTags = map[document.BlockType]atom.Atom{
	document.Unstyled:          atom.P,
	document.HeaderOne:         atom.H1,
	document.HeaderTwo:         atom.H2,
	document.HeaderThree:       atom.H3,
	document.HeaderFour:        atom.H4,
	document.HeaderFive:        atom.H5,
	document.HeaderSix:         atom.H6,
	document.UnorderedListItem: atom.Ul,
	document.OrderedListItem:   atom.Ol,
	document.Blockquote:        atom.Blockquote,
	document.CodeBlock:         atom.Pre,
}

// BlockTag returns the tag for a block type. For list items this is the tag
// of the list container. Unknown block types return false.
func BlockTag(t document.BlockType) (string, bool) {
	a, ok := blockTags[t]
	if !ok {
		return "", false
	}
	return a.String(), true
}

// LeafTag returns the tag wrapping a single block of a list or code family:
// li for list items, pre for code lines. Other block types get their
// ordinary block tag.
func LeafTag(t document.BlockType) string {
	if t.IsList() {
		return atom.Li.String()
	}
	tag, _ := BlockTag(t)
	return tag
}

// Attributes returns the attributes of a block-level tag: an optional style
// attribute and an optional directionality attribute, asking browsers to
// detect the text direction of the content.
func Attributes(style string, directional bool) []string {
	var attrs []string
	if style != "" {
		attrs = append(attrs, `style="`+style+`"`)
	}
	if directional {
		attrs = append(attrs, `dir = "auto"`)
	}
	return attrs
}

// OpenTag creates an opening tag with the given attributes.
func OpenTag(tag string, attrs []string) string {
	if len(attrs) == 0 {
		return "<" + tag + ">"
	}
	return "<" + tag + " " + strings.Join(attrs, " ") + ">"
}

// CloseTag creates a closing tag.
func CloseTag(tag string) string {
	return "</" + tag + ">"
}
