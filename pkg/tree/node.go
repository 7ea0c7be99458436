package tree

// NodeKind classifies what a node contributes to a translation key.
type NodeKind string

const (
	NodeKindForm       NodeKind = "form"
	NodeKindField      NodeKind = "field"
	NodeKindCollection NodeKind = "collection"
	NodeKindPrototype  NodeKind = "prototype"
)

// Node is a single element of a Tree. The sequence operations never inspect
// its fields; they exist for the builders and key generators that consume it.
type Node struct {
	Name        string   `json:"name"`
	Label       string   `json:"label,omitempty"`
	Path        string   `json:"path,omitempty"`
	Kind        NodeKind `json:"kind"`
	HasChildren bool     `json:"hasChildren,omitempty"`
}

// IsPrototype reports whether the node stands in for every item of a
// collection.
func (n *Node) IsPrototype() bool {
	return n != nil && n.Kind == NodeKindPrototype
}

// IsCollection reports whether the node is a repeated field.
func (n *Node) IsCollection() bool {
	return n != nil && n.Kind == NodeKindCollection
}
