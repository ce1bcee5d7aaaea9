package rope

import "io"

// concatNode is the internal binary node denoting the juxtaposition of its
// children. The algebra never constructs one with an empty child — empty
// operands are elided by joinNodes — so left and right are always
// non-empty here.
type concatNode struct {
	left, right node
	length      int
	depth       int
	hashCache
}

func newConcat(left, right node) *concatNode {
	return &concatNode{
		left:   left,
		right:  right,
		length: left.Len() + right.Len(),
		depth:  maxInt(depthOf(left), depthOf(right)) + 1,
	}
}

func (c *concatNode) Kind() NodeKind { return KindConcat }
func (c *concatNode) Len() int       { return c.length }
func (c *concatNode) Depth() int     { return c.depth }

func (c *concatNode) ByteAt(i int) byte {
	leftLen := c.left.Len()
	if i < leftLen {
		return c.left.ByteAt(i)
	}
	return c.right.ByteAt(i - leftLen)
}

// Slice prunes whole children when the window lies entirely within one
// side; otherwise it recurses into both and rejoins through the ordinary
// concatenation algebra, so the result still carries every balancing
// invariant.
func (c *concatNode) Slice(a, b int, pol *policy) node {
	if a == 0 && b == c.length {
		return c
	}
	leftLen := c.left.Len()

	if b <= leftLen {
		return c.left.Slice(a, b, pol)
	}
	if a >= leftLen {
		return c.right.Slice(a-leftLen, b-leftLen, pol)
	}

	leftPart := c.left.Slice(a, leftLen, pol)
	rightPart := c.right.Slice(0, b-leftLen, pol)
	return joinNodes(leftPart, rightPart, pol)
}

// Reverse performs the structural swap spec.md describes: no character
// copy happens here, only pointer rearrangement and recursion. The
// recursion bottoms out at Flat/Substring materialization, which is cheap
// because leaves stay small under coalescing. The sub-linear reversal the
// package promises comes from the top-level Rope.Reverse() instead
// wrapping the whole tree in a Reverse overlay (see reverse.go); that
// overlay resolves windows through pushReverse, which handles
// Concatenations itself rather than calling this method.
func (c *concatNode) Reverse() node {
	return joinNodes(c.right.Reverse(), c.left.Reverse(), defaultPolicy())
}

func (c *concatNode) WriteTo(w io.Writer, off, n int) (int64, error) {
	if n == 0 {
		return 0, nil
	}
	leftLen := c.left.Len()
	var total int64

	if off < leftLen {
		leftN := minInt(n, leftLen-off)
		written, err := c.left.WriteTo(w, off, leftN)
		total += written
		if err != nil {
			return total, err
		}
		off += leftN
		n -= leftN
	}
	if n > 0 {
		written, err := c.right.WriteTo(w, off-leftLen, n)
		total += written
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (c *concatNode) Hash() uint64 {
	return c.get(func() uint64 {
		return combineHash(c.left.Hash(), c.right.Hash(), c.right.Len())
	})
}
