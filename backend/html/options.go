package html

import (
	"github.com/npillmayer/draftml/core/units"
	"github.com/npillmayer/draftml/document"
	"github.com/npillmayer/draftml/engine/render"
)

// Options holds the parameters of a conversion.
type Options struct {
	Hashtags     *document.HashtagConfig
	Directional  bool
	Transform    render.EntityTransform
	Units        units.Splitter
	HeaderIDs    bool
	HashtagClass string
}

// Option is a function that configures Options.
type Option func(*Options)

// WithHashtags switches on hashtag detection. A nil configuration switches it
// off; an empty configuration uses trigger "#" and separator " ".
func WithHashtags(cfg *document.HashtagConfig) Option {
	return func(opts *Options) {
		opts.Hashtags = cfg
	}
}

// WithDirectional adds dir="auto" to every block-level and leaf tag.
func WithDirectional(enable bool) Option {
	return func(opts *Options) {
		opts.Directional = enable
	}
}

// WithEntityTransform installs a hook for rendering entities. It takes
// precedence over the built-in markup for links and images whenever it
// returns a non-empty string.
func WithEntityTransform(transform render.EntityTransform) Option {
	return func(opts *Options) {
		opts.Transform = transform
	}
}

// WithUnits selects the unit in which range offsets and lengths are counted.
// The default is units.CodePoints.
func WithUnits(splitter units.Splitter) Option {
	return func(opts *Options) {
		opts.Units = splitter
	}
}

// WithHeaderIDs adds id attributes, derived from the header text, to header
// blocks. IDs are unique within one conversion.
func WithHeaderIDs(enable bool) Option {
	return func(opts *Options) {
		opts.HeaderIDs = enable
	}
}

// WithHashtagClass sets the CSS class of hashtag anchors.
func WithHashtagClass(class string) Option {
	return func(opts *Options) {
		opts.HashtagClass = class
	}
}

func defaultOptions() *Options {
	return &Options{
		Units:        units.CodePoints,
		HashtagClass: render.DefaultHashtagClass,
	}
}

func applyOptions(opts ...Option) *Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
