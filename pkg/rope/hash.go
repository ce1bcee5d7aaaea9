package rope

import (
	"hash/fnv"
	"sync"
)

// hashCache memoizes a node's content hash. Nodes are immutable after
// construction but shared across goroutines, so the cache must itself be
// safe for concurrent first-use; sync.Once gives that without a mutex per
// read.
type hashCache struct {
	once sync.Once
	val  uint64
}

func (h *hashCache) get(compute func() uint64) uint64 {
	h.once.Do(func() { h.val = compute() })
	return h.val
}

// polyHashBytes computes the standard base-31 polynomial hash over a
// sequence of code units, per the rope's equality/hashing contract.
func polyHashBytes(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h
}

// pow31 computes 31^n with wraparound, matching the wraparound semantics
// polyHashBytes already relies on.
func pow31(n int) uint64 {
	var result uint64 = 1
	var base uint64 = 31
	for n > 0 {
		if n&1 == 1 {
			result *= base
		}
		base *= base
		n >>= 1
	}
	return result
}

// combineHash folds a right-hand hash of known length onto a left-hand
// hash, yielding the same value polyHashBytes would compute over the
// concatenation of the two underlying sequences.
func combineHash(leftHash uint64, rightHash uint64, rightLen int) uint64 {
	return leftHash*pow31(rightLen) + rightHash
}

// Checksum returns an FNV-1a digest of the rope's content. It is a cheap
// auxiliary fingerprint distinct from Hash/Equals — useful as a fast
// pre-check before a full comparison, or for tagging a snapshot in logs —
// and is never consulted by the equality or balancing algebra.
func (r *Rope) Checksum() uint32 {
	if r == nil || r.Len() == 0 {
		return 0
	}
	h := fnv.New32a()
	it, _ := r.Iterator()
	for it.HasNext() {
		b, _ := it.Next()
		h.Write([]byte{b})
	}
	return h.Sum32()
}
