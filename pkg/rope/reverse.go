package rope

import "io"

// reverseNode is a lazy overlay: it presents its inner node back to front
// without touching a single byte. depth is inner.depth+1, so a reversed
// rope still satisfies the same balance predicate as an unreversed one of
// the same shape.
type reverseNode struct {
	inner node
	hashCache
}

func newReverse(inner node) *reverseNode {
	return &reverseNode{inner: inner}
}

func (r *reverseNode) Kind() NodeKind { return KindReverse }
func (r *reverseNode) Len() int       { return r.inner.Len() }
func (r *reverseNode) Depth() int     { return r.inner.Depth() + 1 }

func (r *reverseNode) ByteAt(i int) byte {
	return r.inner.ByteAt(r.inner.Len() - 1 - i)
}

// Slice resolves the requested window against the mirrored index space of
// inner, then wraps the result in its own overlay so the window is itself
// presented reversed. A window that resolves to a Reverse is unwrapped
// instead, so overlays never nest.
func (r *reverseNode) Slice(a, b int, pol *policy) node {
	n := r.inner.Len()
	innerSlice := r.inner.Slice(n-b, n-a, pol)
	if rn, ok := innerSlice.(*reverseNode); ok {
		return rn.inner
	}
	return newReverse(innerSlice)
}

// Reverse unwraps a double reversal back to the original node, per
// invariant 5: a Reverse never wraps a Reverse.
func (r *reverseNode) Reverse() node { return r.inner }

func (r *reverseNode) WriteTo(w io.Writer, off, n int) (int64, error) {
	if n == 0 {
		return 0, nil
	}
	flipped := pushReverse(r.inner.Slice(r.inner.Len()-off-n, r.inner.Len()-off, defaultPolicy()))
	return flipped.WriteTo(w, 0, n)
}

func (r *reverseNode) Hash() uint64 {
	return r.get(func() uint64 {
		return pushReverse(r.inner).Hash()
	})
}

// pushReverse distributes a reversal down into a bounded node eagerly, the
// way spec.md's per-type reverse() methods are written: Flat and Substring
// materialize a byte-reversed copy, Concatenation swaps and recurses into
// both children, and Reverse unwraps. Rope.Reverse() does not call it — it
// wraps the root in a reverseNode in O(1) — but a Reverse overlay does:
// WriteTo applies it to the window being written, and Hash applies it to
// the whole inner node, materializing every leaf under it. ByteAt does not
// use it.
func pushReverse(n node) node {
	switch v := n.(type) {
	case *flatNode:
		return v.reverseMaterialize()
	case *substringNode:
		return v.reverseMaterialize()
	case *concatNode:
		return joinNodes(pushReverse(v.right), pushReverse(v.left), defaultPolicy())
	case *reverseNode:
		return v.inner
	default:
		return n.Reverse()
	}
}
