package sections

import (
	"fmt"
	"sort"

	"github.com/npillmayer/draftml/core/units"
	"github.com/npillmayer/draftml/document"
)

// Kind classifies a section.
type Kind int

// Kinds of sections.
const (
	Plain Kind = iota
	Entity
	Hashtag
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Entity:
		return "entity"
	case Hashtag:
		return "hashtag"
	}
	return "unknown"
}

// Section is a slice [Start, End) of a block's text units.
// EntityKey is set for sections of kind Entity only.
type Section struct {
	Start     int
	End       int
	Kind      Kind
	EntityKey document.EntityKey
}

// Len returns the number of units covered by the section.
func (s Section) Len() int {
	return s.End - s.Start
}

func (s Section) String() string {
	if s.Kind == Entity {
		return fmt.Sprintf("[%d,%d) %s(%s)", s.Start, s.End, s.Kind, s.EntityKey)
	}
	return fmt.Sprintf("[%d,%d) %s", s.Start, s.End, s.Kind)
}

type annotation struct {
	Span
	kind Kind
	key  document.EntityKey
}

// Partition computes the sections of a block. text are the block's text units,
// cfg configures hashtag detection (nil switches it off).
//
// The sections are ordered and cover [0, len(text)) without gaps and without
// overlaps. Entity ranges win against hashtags starting at the same offset.
// Empty text yields no sections.
func Partition(block *document.Block, text []string, cfg *document.HashtagConfig,
	splitter units.Splitter) []Section {
	//
	n := len(text)
	annotations := make([]annotation, 0, len(block.EntityRanges))
	for _, r := range block.EntityRanges {
		annotations = append(annotations, annotation{
			Span: Span{Offset: r.Offset, Length: r.Length},
			kind: Entity,
			key:  r.Key,
		})
	}
	for _, h := range Hashtags(text, cfg, splitter) {
		annotations = append(annotations, annotation{Span: h, kind: Hashtag})
	}
	sort.SliceStable(annotations, func(i, j int) bool {
		return annotations[i].Offset < annotations[j].Offset
	})
	var sections []Section
	last := 0
	for _, a := range annotations {
		if a.Offset < last || a.Offset > n || a.Length < 0 {
			tracer().Errorf("dropping %s range %d+%d of block %q", a.kind, a.Offset, a.Length, block.Key)
			continue
		}
		end := a.End()
		if end > n {
			tracer().Errorf("clamping %s range %d+%d of block %q to text length %d",
				a.kind, a.Offset, a.Length, block.Key, n)
			end = n
		}
		if a.Offset > last {
			sections = append(sections, Section{Start: last, End: a.Offset, Kind: Plain})
		}
		sections = append(sections, Section{Start: a.Offset, End: end, Kind: a.kind, EntityKey: a.key})
		last = end
	}
	if last < n {
		sections = append(sections, Section{Start: last, End: n, Kind: Plain})
	}
	tracer().Debugf("block %q has sections %v", block.Key, sections)
	return sections
}
