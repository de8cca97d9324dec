package document

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// BlockData holds per-block data, usually CSS properties like text-align.
// It remembers the order in which properties were set (or appeared in the
// JSON source), so that style attributes render deterministically.
//
// A nil *BlockData is a valid, empty BlockData.
type BlockData struct {
	props *linkedhashmap.Map
}

// NewBlockData creates an empty BlockData.
func NewBlockData() *BlockData {
	return &BlockData{props: linkedhashmap.New()}
}

// Set sets property prop to value. Setting an existing property keeps its
// position. Returns d for chaining.
func (d *BlockData) Set(prop string, value interface{}) *BlockData {
	if d.props == nil {
		d.props = linkedhashmap.New()
	}
	d.props.Put(prop, value)
	return d
}

// Get returns the value of property prop.
func (d *BlockData) Get(prop string) (interface{}, bool) {
	if d == nil || d.props == nil {
		return nil, false
	}
	return d.props.Get(prop)
}

// Len returns the number of properties.
func (d *BlockData) Len() int {
	if d == nil || d.props == nil {
		return 0
	}
	return d.props.Size()
}

// Each calls f for every property, in insertion order.
func (d *BlockData) Each(f func(prop string, value interface{})) {
	if d == nil || d.props == nil {
		return
	}
	d.props.Each(func(key interface{}, value interface{}) {
		f(key.(string), value)
	})
}

// UnmarshalJSON is part of interface json.Unmarshaler.
// Properties keep the order of the JSON source.
func (d *BlockData) UnmarshalJSON(b []byte) error {
	d.props = linkedhashmap.New()
	if string(b) == "null" {
		return nil
	}
	return d.props.FromJSON(b)
}

// MarshalJSON is part of interface json.Marshaler.
func (d *BlockData) MarshalJSON() ([]byte, error) {
	if d == nil || d.props == nil {
		return []byte("{}"), nil
	}
	return d.props.ToJSON()
}
