package keys

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-formtree/pkg/model"
	"github.com/goliatone/go-formtree/pkg/tree"
)

// ItemsSuffix marks the prototype segment of a field path ("tags[]").
const ItemsSuffix = model.ItemsSuffix

var (
	// ErrMissingOperationID is returned for forms without an operation id.
	ErrMissingOperationID = errors.New("keys: form operation id is required")
	// ErrFieldNotFound is returned when a field path does not resolve.
	ErrFieldNotFound = errors.New("keys: field not found")
)

// Entry pairs a field with the tree describing its position in the form.
// The form itself is reported as the entry with an empty Path.
type Entry struct {
	Path  string
	Tree  *tree.Tree
	Field model.Field
}

// BuildTrees returns one entry per form, field and collection prototype in
// depth-first order. Each tree is assembled from the field upward: the field
// node is seeded first and every ancestor, then the form node, is added with
// AddParent.
func BuildTrees(form model.FormModel) ([]Entry, error) {
	if strings.TrimSpace(form.OperationID) == "" {
		return nil, ErrMissingOperationID
	}

	root := formNode(form)
	entries := []Entry{{Path: "", Tree: tree.New(root), Field: formField(form)}}

	var (
		walk    func(fields []model.Field, prefix string, ancestors []*tree.Node) error
		descend func(field model.Field, path string, chain []*tree.Node) error
	)
	walk = func(fields []model.Field, prefix string, ancestors []*tree.Node) error {
		for _, field := range fields {
			if strings.TrimSpace(field.Name) == "" {
				return fmt.Errorf("keys: field without name under %q", prefix)
			}
			path := joinPath(prefix, field.Name)
			node := fieldNode(field, path)
			entries = append(entries, Entry{Path: path, Tree: ascend(root, ancestors, node), Field: field})
			if err := descend(field, path, append(slices.Clone(ancestors), node)); err != nil {
				return err
			}
		}
		return nil
	}
	// descend follows Items one prototype at a time, so a collection of
	// collections yields a prototype under a prototype.
	descend = func(field model.Field, path string, chain []*tree.Node) error {
		if field.Items == nil {
			return walk(field.Nested, path, chain)
		}
		itemPath := path + ItemsSuffix
		proto := prototypeNode(*field.Items, itemPath)
		entries = append(entries, Entry{Path: itemPath, Tree: ascend(root, chain, proto), Field: *field.Items})
		return descend(*field.Items, itemPath, append(slices.Clone(chain), proto))
	}

	if err := walk(form.Fields, "", nil); err != nil {
		return nil, err
	}
	return entries, nil
}

// ResolveTree builds the tree for a single field path top-down, appending a
// node per path segment with AddChild. Every "[]" on a segment steps into
// one more collection prototype. An empty path resolves to the form node
// alone.
func ResolveTree(form model.FormModel, path string) (*tree.Tree, model.Field, error) {
	if strings.TrimSpace(form.OperationID) == "" {
		return nil, model.Field{}, ErrMissingOperationID
	}

	t := tree.New(formNode(form))
	current := formField(form)
	path = strings.TrimSpace(path)
	if path == "" {
		return t, current, nil
	}

	fields := form.Fields
	prefix := ""
	for _, segment := range strings.Split(path, ".") {
		name, depth := model.CutItems(segment)
		field, ok := findField(fields, name)
		if !ok {
			return nil, model.Field{}, fmt.Errorf("%w: %q", ErrFieldNotFound, path)
		}
		prefix = joinPath(prefix, name)
		t.AddChild(fieldNode(field, prefix))
		current = field

		for ; depth > 0; depth-- {
			if current.Items == nil {
				return nil, model.Field{}, fmt.Errorf("%w: %q is not a collection", ErrFieldNotFound, prefix)
			}
			prefix += ItemsSuffix
			t.AddChild(prototypeNode(*current.Items, prefix))
			current = *current.Items
		}
		fields = current.Nested
	}
	return t, current, nil
}

func ascend(root *tree.Node, ancestors []*tree.Node, leaf *tree.Node) *tree.Tree {
	t := tree.New(leaf)
	for i := len(ancestors) - 1; i >= 0; i-- {
		t.AddParent(ancestors[i])
	}
	t.AddParent(root)
	return t
}

// formField presents the form as the pseudo field owning every top-level field.
func formField(form model.FormModel) model.Field {
	return model.Field{
		Name:        form.OperationID,
		Type:        model.FieldTypeObject,
		Label:       form.Summary,
		Description: form.Description,
		Nested:      form.Fields,
		UIHints:     form.UIHints,
	}
}

func formNode(form model.FormModel) *tree.Node {
	return &tree.Node{
		Name:        form.OperationID,
		Label:       form.Summary,
		Kind:        tree.NodeKindForm,
		HasChildren: len(form.Fields) > 0,
	}
}

func fieldNode(field model.Field, path string) *tree.Node {
	kind := tree.NodeKindField
	if field.IsCollection() {
		kind = tree.NodeKindCollection
	}
	return &tree.Node{
		Name:        field.Name,
		Label:       field.Label,
		Path:        path,
		Kind:        kind,
		HasChildren: field.HasChildren(),
	}
}

func prototypeNode(item model.Field, path string) *tree.Node {
	return &tree.Node{
		Name:        item.Name,
		Label:       item.Label,
		Path:        path,
		Kind:        tree.NodeKindPrototype,
		HasChildren: item.HasChildren(),
	}
}

func findField(fields []model.Field, name string) (model.Field, bool) {
	for _, field := range fields {
		if field.Name == name {
			return field, true
		}
	}
	return model.Field{}, false
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
