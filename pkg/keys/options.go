package keys

import "strings"

const (
	DefaultRoot         = "form"
	DefaultSeparator    = "."
	DefaultChildrenKey  = "children"
	DefaultPrototypeKey = "prototype"
)

// Options shapes generated keys. Blank values take the defaults; set
// OmitRoot to drop the leading segment.
type Options struct {
	Root         string `yaml:"root" json:"root"`
	OmitRoot     bool   `yaml:"omitRoot" json:"omitRoot"`
	Separator    string `yaml:"separator" json:"separator"`
	ChildrenKey  string `yaml:"childrenKey" json:"childrenKey"`
	PrototypeKey string `yaml:"prototypeKey" json:"prototypeKey"`
}

// DefaultOptions returns the conventional key layout.
func DefaultOptions() Options {
	return Options{
		Root:         DefaultRoot,
		Separator:    DefaultSeparator,
		ChildrenKey:  DefaultChildrenKey,
		PrototypeKey: DefaultPrototypeKey,
	}
}

// Normalize trims every option and fills blank ones with the defaults.
func (o Options) Normalize() Options {
	o.Root = strings.TrimSpace(o.Root)
	o.Separator = strings.TrimSpace(o.Separator)
	o.ChildrenKey = strings.TrimSpace(o.ChildrenKey)
	o.PrototypeKey = strings.TrimSpace(o.PrototypeKey)
	if o.Root == "" {
		o.Root = DefaultRoot
	}
	if o.Separator == "" {
		o.Separator = DefaultSeparator
	}
	if o.ChildrenKey == "" {
		o.ChildrenKey = DefaultChildrenKey
	}
	if o.PrototypeKey == "" {
		o.PrototypeKey = DefaultPrototypeKey
	}
	return o
}
