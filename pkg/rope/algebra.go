package rope

// joinNodes is the construction path for Concatenation nodes. Every
// operation — append, insert, delete, repeat, the pruning branches of
// Slice — funnels through it so the coalescing and rebalancing invariants
// hold everywhere, not just at the public Concat entry point. The one
// exception is buildBalanced, which the rebalance here calls and which
// joins its halves directly.
func joinNodes(left, right node, pol *policy) node {
	if isEmptyNode(left) {
		return right
	}
	if isEmptyNode(right) {
		return left
	}

	if lf, ok := left.(*flatNode); ok {
		if rf, ok := right.(*flatNode); ok && lf.Len()+rf.Len() <= pol.CoalesceThreshold {
			return newFlat(lf.data + rf.data)
		}
	}

	// Right-spine compaction: if left is itself a Concatenation whose
	// right child is a short Flat and right is a short Flat, merge those
	// two leaves and graft the result back onto left's left child instead
	// of growing the spine by one node per join. This is what keeps
	// repeated small appends from adding a Concatenation per call.
	if rf, ok := right.(*flatNode); ok {
		if lc, ok := left.(*concatNode); ok {
			if lrf, ok := lc.right.(*flatNode); ok && lrf.Len()+rf.Len() <= pol.CoalesceThreshold {
				merged := newFlat(lrf.data + rf.data)
				return joinNodes(lc.left, merged, pol)
			}
		}
	}

	c := newConcat(left, right)
	if c.depth > pol.DepthThreshold || !balanced(c.depth, c.length) {
		return rebalance(c, pol)
	}
	return c
}

// concatenate is the public two-operand join. It is identical to
// joinNodes but named for the operation spec.md calls "concatenate" at
// the Rope level, where both operands are always whole ropes rather than
// intermediate slices.
func concatenate(left, right node, pol *policy) node {
	return joinNodes(left, right, pol)
}

// insertAt splits n at index and rejoins around mid, per the standard
// rope insertion algebra: subSequence(0,index) + mid + subSequence(index,len).
func insertAt(n node, index int, mid node, pol *policy) node {
	length := n.Len()
	if index <= 0 {
		return joinNodes(mid, n, pol)
	}
	if index >= length {
		return joinNodes(n, mid, pol)
	}
	left := n.Slice(0, index, pol)
	right := n.Slice(index, length, pol)
	return joinNodes(joinNodes(left, mid, pol), right, pol)
}

// deleteRange removes [a,b) from n by keeping the two surrounding slices
// and rejoining them; deleting a boundary-touching range degenerates to a
// single Slice call.
func deleteRange(n node, a, b int, pol *policy) node {
	length := n.Len()
	if a <= 0 && b >= length {
		return emptyFlat
	}
	if a <= 0 {
		return n.Slice(b, length, pol)
	}
	if b >= length {
		return n.Slice(0, a, pol)
	}
	left := n.Slice(0, a, pol)
	right := n.Slice(b, length, pol)
	return joinNodes(left, right, pol)
}

// repeatNode builds n repeated count times by binary exponentiation, so
// the result's depth grows logarithmically in count rather than linearly
// in it.
func repeatNode(n node, count int, pol *policy) node {
	if count <= 0 || isEmptyNode(n) {
		return emptyFlat
	}

	var result node = emptyFlat
	base := n
	for count > 0 {
		if count&1 == 1 {
			result = joinNodes(result, base, pol)
		}
		count >>= 1
		if count > 0 {
			base = joinNodes(base, base, pol)
		}
	}
	return result
}
