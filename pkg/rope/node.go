package rope

import "io"

// NodeKind tags a node's variant for diagnostics (Stats, cmd/ropebench).
// The algebra dispatches through the node interface; its one use of Kind
// is isLeafNode's test for Concatenation, which Rope.Reverse relies on.
type NodeKind int

const (
	KindFlat NodeKind = iota
	KindSubstring
	KindConcat
	KindReverse
)

func (k NodeKind) String() string {
	switch k {
	case KindFlat:
		return "Flat"
	case KindSubstring:
		return "Substring"
	case KindConcat:
		return "Concatenation"
	case KindReverse:
		return "Reverse"
	default:
		return "Unknown"
	}
}

// node is the shared contract every rope tree variant implements: Flat,
// Substring, Concatenation, Reverse. All four are immutable once
// constructed; composite operations build new nodes and share untouched
// subtrees with their inputs.
type node interface {
	Kind() NodeKind
	Len() int
	Depth() int
	ByteAt(i int) byte
	Slice(a, b int, pol *policy) node
	Reverse() node
	WriteTo(w io.Writer, off, n int) (int64, error)
	Hash() uint64
}

// isLeafNode reports whether n is an atomic unit for traversal and
// balancing purposes. Per the balancer's contract, Flats, Substrings, and
// Reverses are all leaves; only Concatenation is an internal node.
func isLeafNode(n node) bool {
	return n.Kind() != KindConcat
}

var emptyFlat = &flatNode{data: ""}

func isEmptyNode(n node) bool {
	return n == nil || n.Len() == 0
}

func depthOf(n node) int {
	if n == nil {
		return 0
	}
	return n.Depth()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
