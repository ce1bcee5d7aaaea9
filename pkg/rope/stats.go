package rope

import "math"

// TreeStats summarizes the shape of a Rope's tree, useful for deciding
// whether a long-lived rope needs an explicit rebalance and for the
// diagnostics cmd/ropebench prints.
type TreeStats struct {
	Length       int
	Depth        int
	LeafCount    int
	FlatCount    int
	SubstrCount  int
	ReverseCount int
	ConcatCount  int
	MinLeafLen   int
	MaxLeafLen   int
	WellBalanced bool
}

// Stats walks r's tree once and returns its TreeStats.
func (r *Rope) Stats() TreeStats {
	s := TreeStats{Length: r.Len(), MinLeafLen: -1}
	walkStats(r.root, &s)
	s.WellBalanced = float64(s.Depth) <= float64(r.pol.BalanceConstant)*log2(float64(s.Length+2))
	return s
}

func walkStats(n node, s *TreeStats) {
	if isEmptyNode(n) {
		return
	}
	switch v := n.(type) {
	case *concatNode:
		s.ConcatCount++
		walkStats(v.left, s)
		walkStats(v.right, s)
	case *reverseNode:
		s.ReverseCount++
		s.LeafCount++
		recordLeaf(s, v.Len())
	case *substringNode:
		s.SubstrCount++
		s.LeafCount++
		recordLeaf(s, v.Len())
	case *flatNode:
		s.FlatCount++
		s.LeafCount++
		recordLeaf(s, v.Len())
	}
	if d := n.Depth(); d > s.Depth {
		s.Depth = d
	}
}

func recordLeaf(s *TreeStats, length int) {
	if s.MinLeafLen < 0 || length < s.MinLeafLen {
		s.MinLeafLen = length
	}
	if length > s.MaxLeafLen {
		s.MaxLeafLen = length
	}
}

func log2(x float64) float64 {
	return math.Log(x) / math.Log(2)
}
