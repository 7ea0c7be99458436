// Package tree models the ancestry of a single form field as a flat, ordered
// sequence of nodes. Index 0 is the outermost parent (usually the form itself)
// and the last index is the field being described. Despite the name no
// parent/child edges are stored; ordering is the only structure.
//
// A Tree grows through two insertion points only: AddParent prepends and
// AddChild appends. There is no positional write and no removal. Read access is
// split across three narrow capabilities (Counter, Iterator, Indexer) so key
// builders and renderers can depend on the smallest surface they need.
package tree
