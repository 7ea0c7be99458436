package keys

import (
	"strings"

	"github.com/goliatone/go-formtree/pkg/model"
	"github.com/goliatone/go-formtree/pkg/tree"
)

// Suffixes name the translatable attribute a key points at.
const (
	SuffixLabel       = "label"
	SuffixHelp        = "help"
	SuffixPlaceholder = "placeholder"
	SuffixDescription = "description"
)

// hintKeys maps a suffix to the UI hint that pins an explicit key.
var hintKeys = map[string]string{
	SuffixLabel:       "labelKey",
	SuffixHelp:        "helpTextKey",
	SuffixPlaceholder: "placeholderKey",
	SuffixDescription: "descriptionKey",
}

// HintFor returns the UI hint name holding an explicit key for suffix.
func HintFor(suffix string) string {
	if hint, ok := hintKeys[suffix]; ok {
		return hint
	}
	return suffix + "Key"
}

// KeyEntry is a generated (or pinned) translation key for one attribute of
// one field.
type KeyEntry struct {
	Key      string `json:"key" yaml:"key"`
	Path     string `json:"path" yaml:"path"`
	Suffix   string `json:"suffix" yaml:"suffix"`
	Fallback string `json:"fallback,omitempty" yaml:"fallback,omitempty"`
	Explicit bool   `json:"explicit,omitempty" yaml:"explicit,omitempty"`
}

// Builder renders trees into translation keys.
type Builder struct {
	opts Options
}

// NewBuilder returns a Builder using the normalised options.
func NewBuilder(opts Options) *Builder {
	return &Builder{opts: opts.Normalize()}
}

// Options returns the normalised options in use.
func (b *Builder) Options() Options {
	return b.opts
}

// Key joins the root, every node of seq and suffix. A node that has children
// is followed by the children segment when another node comes after it,
// except for collections and any node followed by a prototype: those lead
// straight into the prototype. Prototype nodes contribute the prototype
// segment instead of their name. Traversal ends at the first absent slot, as
// Valid does, so a node before a nil slot counts as the last one. An empty
// sequence yields "".
//
// Key drives seq through its cursor; callers sharing a tree across goroutines
// must hand each one its own Clone.
func (b *Builder) Key(seq tree.Sequence, suffix string) string {
	if seq == nil || seq.Len() == 0 {
		return ""
	}

	segments := make([]string, 0, seq.Len()*2+2)
	if !b.opts.OmitRoot {
		segments = append(segments, b.opts.Root)
	}

	for seq.Rewind(); seq.Valid(); seq.Next() {
		node := seq.Current()
		if node.IsPrototype() {
			segments = append(segments, b.opts.PrototypeKey)
		} else {
			segments = append(segments, node.Name)
		}
		next := seq.At(seq.Key() + 1)
		if next != nil && node.HasChildren && !node.IsCollection() && !next.IsPrototype() {
			segments = append(segments, b.opts.ChildrenKey)
		}
	}

	if suffix = strings.TrimSpace(suffix); suffix != "" {
		segments = append(segments, suffix)
	}
	return strings.Join(segments, b.opts.Separator)
}

// Keys returns one KeyEntry per tree entry and suffix, in entry order. When
// no suffix is given only labels are produced. Fields pinning a key through
// their UI hints (labelKey, helpTextKey, ...) keep that key.
func (b *Builder) Keys(entries []Entry, suffixes ...string) []KeyEntry {
	if len(suffixes) == 0 {
		suffixes = []string{SuffixLabel}
	}

	out := make([]KeyEntry, 0, len(entries)*len(suffixes))
	for _, entry := range entries {
		for _, suffix := range suffixes {
			out = append(out, b.entryFor(entry, suffix))
		}
	}
	return out
}

// FormKeys builds the trees of form and returns their keys.
func (b *Builder) FormKeys(form model.FormModel, suffixes ...string) ([]KeyEntry, error) {
	entries, err := BuildTrees(form)
	if err != nil {
		return nil, err
	}
	return b.Keys(entries, suffixes...), nil
}

// FieldKey resolves the field at path and returns its key for suffix.
func (b *Builder) FieldKey(form model.FormModel, path, suffix string) (KeyEntry, error) {
	t, field, err := ResolveTree(form, path)
	if err != nil {
		return KeyEntry{}, err
	}
	return b.entryFor(Entry{Path: strings.TrimSpace(path), Tree: t, Field: field}, suffix), nil
}

func (b *Builder) entryFor(entry Entry, suffix string) KeyEntry {
	out := KeyEntry{
		Path:     entry.Path,
		Suffix:   suffix,
		Fallback: Fallback(entry.Field, suffix),
	}
	if pinned := strings.TrimSpace(entry.Field.UIHints[HintFor(suffix)]); pinned != "" {
		out.Key = pinned
		out.Explicit = true
		return out
	}
	out.Key = b.Key(entry.Tree, suffix)
	return out
}

// Fallback returns the untranslated text of field for suffix.
func Fallback(field model.Field, suffix string) string {
	switch suffix {
	case SuffixLabel:
		return strings.TrimSpace(field.Label)
	case SuffixDescription:
		return strings.TrimSpace(field.Description)
	case SuffixPlaceholder:
		return strings.TrimSpace(field.Placeholder)
	case SuffixHelp:
		return strings.TrimSpace(field.UIHints["helpText"])
	default:
		return ""
	}
}
