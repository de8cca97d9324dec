package document

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/draftml/core"
)

// BlockType is the type of a block, e.g. "unstyled" or "header-one".
type BlockType string

// Block types known to the HTML backend.
const (
	Unstyled          BlockType = "unstyled"
	HeaderOne         BlockType = "header-one"
	HeaderTwo         BlockType = "header-two"
	HeaderThree       BlockType = "header-three"
	HeaderFour        BlockType = "header-four"
	HeaderFive        BlockType = "header-five"
	HeaderSix         BlockType = "header-six"
	UnorderedListItem BlockType = "unordered-list-item"
	OrderedListItem   BlockType = "ordered-list-item"
	Blockquote        BlockType = "blockquote"
	CodeBlock         BlockType = "code-block"
	Atomic            BlockType = "atomic"
)

// IsList is true for list item blocks, ordered and unordered.
func (t BlockType) IsList() bool {
	return t == UnorderedListItem || t == OrderedListItem
}

// IsCode is true for code-block lines.
func (t BlockType) IsCode() bool {
	return t == CodeBlock
}

// IsHeader is true for the six header block types.
func (t BlockType) IsHeader() bool {
	switch t {
	case HeaderOne, HeaderTwo, HeaderThree, HeaderFour, HeaderFive, HeaderSix:
		return true
	}
	return false
}

// InlineStyle is the name of a formatting attribute applied to a range of text.
type InlineStyle string

// Inline styles.
const (
	Bold          InlineStyle = "BOLD"
	Italic        InlineStyle = "ITALIC"
	Underline     InlineStyle = "UNDERLINE"
	Strikethrough InlineStyle = "STRIKETHROUGH"
	Code          InlineStyle = "CODE"
	Superscript   InlineStyle = "SUPERSCRIPT"
	Subscript     InlineStyle = "SUBSCRIPT"
)

// StyleRange marks the half-open range [Offset, Offset+Length) of a block's
// text with an inline style.
type StyleRange struct {
	Offset int         `json:"offset"`
	Length int         `json:"length"`
	Style  InlineStyle `json:"style"`
}

// EntityKey references an entity in an EntityMap.
//
// Raw editor content uses numbers for keys in entity ranges and strings for
// keys of the entity map. EntityKey accepts both.
type EntityKey string

// UnmarshalJSON is part of interface json.Unmarshaler.
func (k *EntityKey) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*k = EntityKey(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*k = EntityKey(n.String())
	return nil
}

// EntityRange attaches the entity with key Key to the half-open range
// [Offset, Offset+Length) of a block's text.
type EntityRange struct {
	Offset int       `json:"offset"`
	Length int       `json:"length"`
	Key    EntityKey `json:"key"`
}

// EntityType is the type of an entity, e.g. "LINK".
type EntityType string

// Entity types with built-in markup.
const (
	Link  EntityType = "LINK"
	Image EntityType = "IMAGE"
)

// Entity is a rich object attached to text ranges.
type Entity struct {
	Type       EntityType             `json:"type"`
	Mutability string                 `json:"mutability,omitempty"`
	Data       map[string]interface{} `json:"data"`
}

// Attr returns a data field of an entity as a string. Missing or null fields
// yield "". Numbers are formatted without exponent.
func (e *Entity) Attr(name string) string {
	if e == nil || e.Data == nil {
		return ""
	}
	switch v := e.Data[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		tracer().Debugf("entity attribute %q has non-scalar type %T", name, v)
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// EntityMap maps entity keys to entities. It is read-only during conversion.
type EntityMap map[EntityKey]*Entity

// Lookup returns the entity for key k, or nil.
func (m EntityMap) Lookup(k EntityKey) *Entity {
	if m == nil {
		return nil
	}
	return m[k]
}

// Block is one structural unit of a document.
type Block struct {
	Key               string        `json:"key,omitempty"`
	Type              BlockType     `json:"type"`
	Text              string        `json:"text"`
	Depth             int           `json:"depth"`
	InlineStyleRanges []StyleRange  `json:"inlineStyleRanges"`
	EntityRanges      []EntityRange `json:"entityRanges"`
	Data              *BlockData    `json:"data,omitempty"`
}

// IsEmptyText is true if the block's text is empty or consists of white space only.
func (b *Block) IsEmptyText() bool {
	return strings.TrimSpace(b.Text) == ""
}

// Document is a sequence of blocks together with the entities they reference.
type Document struct {
	Blocks    []*Block  `json:"blocks"`
	EntityMap EntityMap `json:"entityMap"`
}

// HashtagConfig configures detection of hashtags in block text.
// A zero value for Trigger or Separator selects the default.
type HashtagConfig struct {
	Trigger   string `json:"trigger,omitempty"`
	Separator string `json:"separator,omitempty"`
}

// Default hashtag trigger and separator.
const (
	DefaultTrigger   = "#"
	DefaultSeparator = " "
)

// TriggerOrDefault returns the configured trigger or "#".
func (c *HashtagConfig) TriggerOrDefault() string {
	if c == nil || c.Trigger == "" {
		return DefaultTrigger
	}
	return c.Trigger
}

// SeparatorOrDefault returns the configured separator or " ".
func (c *HashtagConfig) SeparatorOrDefault() string {
	if c == nil || c.Separator == "" {
		return DefaultSeparator
	}
	return c.Separator
}

// Decode reads a raw-content JSON document from r.
// Errors carry code core.EINVALID.
func Decode(r io.Reader) (*Document, error) {
	doc := &Document{}
	dec := json.NewDecoder(r)
	if err := dec.Decode(doc); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot decode document")
	}
	tracer().Debugf("decoded document with %d blocks and %d entities",
		len(doc.Blocks), len(doc.EntityMap))
	for i, b := range doc.Blocks {
		if b == nil {
			return nil, core.Error(core.EINVALID, "block #%d is null", i)
		}
	}
	return doc, nil
}
