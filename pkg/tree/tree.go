package tree

import (
	"iter"
	"strings"
)

// Counter exposes the number of nodes in a sequence.
type Counter interface {
	Len() int
}

// Iterator is a restartable, cursor based traversal. Callers Rewind, then loop
// while Valid, reading Current/Key and calling Next.
//
//	for t.Rewind(); t.Valid(); t.Next() {
//		node := t.Current()
//	}
type Iterator interface {
	Rewind()
	Valid() bool
	Current() *Node
	Key() int
	Next()
}

// Indexer provides read-only positional access. There is intentionally no
// writable counterpart: nodes enter a tree through AddParent/AddChild only.
type Indexer interface {
	At(index int) *Node
	Has(index int) bool
}

// Sequence combines every read capability of a Tree.
type Sequence interface {
	Counter
	Iterator
	Indexer
}

var _ Sequence = (*Tree)(nil)

// Tree is an ordered list of nodes with two insertion points.
//
// A Tree is meant to be built by a single owner and then read. Concurrent
// readers are safe only while nobody inserts; callers that mix insertion and
// reads across goroutines must synchronise externally. The cursor used by the
// Iterator methods is shared state, so each goroutine should traverse through
// All or its own Clone.
type Tree struct {
	nodes    []*Node
	position int
}

// New returns a tree seeded with nodes. The slice is used as is (passing
// s... shares its backing array) and its contents are not validated.
func New(nodes ...*Node) *Tree {
	return &Tree{nodes: nodes}
}

// AddParent inserts node at index 0, shifting every existing node up by one,
// and returns the new length. The cursor is left untouched.
func (t *Tree) AddParent(node *Node) int {
	t.nodes = append(t.nodes, nil)
	copy(t.nodes[1:], t.nodes)
	t.nodes[0] = node
	return len(t.nodes)
}

// AddChild appends node after the current last index and returns the new
// length.
func (t *Tree) AddChild(node *Node) int {
	t.nodes = append(t.nodes, node)
	return len(t.nodes)
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// At returns the node stored at index, or nil when index is out of range.
func (t *Tree) At(index int) *Node {
	if !t.Has(index) {
		return nil
	}
	return t.nodes[index]
}

// Has reports whether index addresses a node.
func (t *Tree) Has(index int) bool {
	if t == nil || index < 0 || index >= len(t.nodes) {
		return false
	}
	return t.nodes[index] != nil
}

// Rewind moves the cursor back to the first node.
func (t *Tree) Rewind() {
	t.position = 0
}

// Valid reports whether the cursor points at a node. Once it returns false
// it keeps doing so until Rewind.
func (t *Tree) Valid() bool {
	return t.Has(t.position)
}

// Current returns the node under the cursor, nil when !Valid().
func (t *Tree) Current() *Node {
	return t.At(t.position)
}

// Key returns the cursor position.
func (t *Tree) Key() int {
	return t.position
}

// Next advances the cursor. It does not clamp at Len.
func (t *Tree) Next() {
	t.position++
}

// All yields index/node pairs in order without touching the cursor.
func (t *Tree) All() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		if t == nil {
			return
		}
		for i, node := range t.nodes {
			if node == nil {
				return
			}
			if !yield(i, node) {
				return
			}
		}
	}
}

// Nodes returns a copy of the node slots.
func (t *Tree) Nodes() []*Node {
	if t == nil || len(t.nodes) == 0 {
		return nil
	}
	out := make([]*Node, len(t.nodes))
	copy(out, t.nodes)
	return out
}

// Clone returns a tree with its own slot slice referencing the same nodes.
// The clone starts with a rewound cursor.
func (t *Tree) Clone() *Tree {
	return &Tree{nodes: t.Nodes()}
}

// Leaf returns the innermost node, nil for an empty tree.
func (t *Tree) Leaf() *Node {
	return t.At(t.Len() - 1)
}

// Path joins node names with sep.
func (t *Tree) Path(sep string) string {
	names := make([]string, 0, t.Len())
	for _, node := range t.All() {
		names = append(names, node.Name)
	}
	return strings.Join(names, sep)
}

func (t *Tree) String() string {
	return t.Path(".")
}
