package rope

// rebalance collects n's leaves left-to-right and rebuilds a balanced tree
// from them. It is triggered from joinNodes when a new Concatenation's
// depth exceeds the policy's DepthThreshold or the Fibonacci balance
// predicate (fib(depth+2) <= length) does not hold for it.
func rebalance(n node, pol *policy) node {
	leaves := collectLeaves(n)
	return buildBalanced(leaves, pol)
}

// collectLeaves walks the tree with an explicit stack rather than
// recursion, so a long, unbalanced right spine cannot blow the Go stack.
// Flat, Substring and Reverse nodes are all leaves here, matching
// isLeafNode's contract.
func collectLeaves(n node) []node {
	var leaves []node
	var stack []node
	stack = append(stack, n)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if c, ok := top.(*concatNode); ok {
			stack = append(stack, c.right, c.left)
			continue
		}
		if !isEmptyNode(top) {
			leaves = append(leaves, top)
		}
	}
	return leaves
}

// buildBalanced reconstructs a tree from leaves by recursive bisection,
// which yields depth proportional to log2(len(leaves)) regardless of how
// skewed the original tree was. The halves are joined with newConcat
// directly rather than through joinNodes, so rebuilding never re-triggers
// a rebalance and leaves are not coalesced.
func buildBalanced(leaves []node, pol *policy) node {
	if len(leaves) == 0 {
		return emptyFlat
	}
	if len(leaves) == 1 {
		return leaves[0]
	}
	mid := len(leaves) / 2
	left := buildBalanced(leaves[:mid], pol)
	right := buildBalanced(leaves[mid:], pol)
	return newConcat(left, right)
}
