package rope

// policy carries the three tunables the rope algebra consults when
// constructing and rebalancing trees. The numbers themselves are policy,
// not correctness: any value within a factor of two of the defaults below
// preserves every invariant, only performance shifts.
type policy struct {
	// CoalesceThreshold bounds leaf coalescing: two adjacent Flats (or a
	// Flat subSequence window) at or below this combined size are merged
	// into a single Flat instead of forming a Substring/Concatenation.
	CoalesceThreshold int

	// DepthThreshold is the root depth above which a Concatenation
	// triggers a rebalance regardless of the Fibonacci predicate.
	DepthThreshold int

	// BalanceConstant is the constant C in the diagnostic bound
	// depth <= C * log2(length + 2); used by Stats and tests, not by the
	// construction algebra itself (the Fibonacci predicate already keeps
	// actual depth far tighter than this).
	BalanceConstant int
}

var stdPolicy = policy{
	CoalesceThreshold: 16,
	DepthThreshold:    32,
	BalanceConstant:   64,
}

func defaultPolicy() *policy {
	p := stdPolicy
	return &p
}
