package rope

import "fmt"

// reverseFrame is a pending subtree on a ReverseIterator's stack together
// with the direction it must eventually be read in: rev true means back to
// front, rev false means front to back. A plain forward Iterator only ever
// needs one direction, but a ReverseIterator walking a tree that contains
// its own Reverse overlays has to track a direction per frame, flipping it
// every time descent crosses one.
type reverseFrame struct {
	n   node
	rev bool
}

// ReverseIterator walks a Rope's code units back to front with the same
// O(1) amortized step cost as Iterator. It keeps its own explicit stack of
// pending subtrees rather than wrapping the whole root in a single Reverse
// overlay, so a deep Concatenation is descended once, not re-dispatched
// from the root on every call.
type ReverseIterator struct {
	root   node
	stack  []reverseFrame
	cur    node
	curRev bool
	idx    int
	pos    int
	total  int
}

func newReverseIterator(root node, startFromEnd int) *ReverseIterator {
	it := &ReverseIterator{root: root, total: root.Len()}
	it.seek(startFromEnd)
	return it
}

// seek descends from root wanting its content read back to front. Mirrored
// from Iterator.seek, which pushes the right subtree whenever it descends
// left, this orders each Concatenation's children by the current read
// direction (right first when reading backward, left first when reading
// forward) and pushes the second child whenever it descends into the
// first. A Reverse overlay flips the direction in place rather than
// branching.
func (it *ReverseIterator) seek(target int) {
	it.stack = it.stack[:0]
	it.pos = target
	n := it.root
	rev := true

	for {
		if isEmptyNode(n) {
			it.cur = emptyFlat
			it.curRev = false
			it.idx = 0
			return
		}
		if rn, ok := n.(*reverseNode); ok {
			n = rn.inner
			rev = !rev
			continue
		}
		c, ok := n.(*concatNode)
		if !ok {
			it.cur = n
			it.curRev = rev
			it.idx = target
			return
		}
		first, second := c.left, c.right
		if rev {
			first, second = c.right, c.left
		}
		firstLen := first.Len()
		if target < firstLen {
			it.stack = append(it.stack, reverseFrame{second, rev})
			n = first
			continue
		}
		target -= firstLen
		n = second
	}
}

// HasNext reports whether Next would succeed.
func (it *ReverseIterator) HasNext() bool { return it.pos < it.total }

// Next returns the code unit at the iterator's current position, counting
// back from the end of the rope, and advances by one.
func (it *ReverseIterator) Next() (byte, error) {
	if !it.HasNext() {
		return 0, errExhausted("ReverseIterator.Next")
	}
	for it.idx >= it.cur.Len() {
		it.advanceLeaf()
	}
	var b byte
	if it.curRev {
		b = it.cur.ByteAt(it.cur.Len() - 1 - it.idx)
	} else {
		b = it.cur.ByteAt(it.idx)
	}
	it.idx++
	it.pos++
	return b, nil
}

// advanceLeaf pops the next pending subtree and descends into its near
// leaf under that frame's direction, pushing any subtrees it passes along
// the way and flipping direction across any Reverse overlay it crosses.
func (it *ReverseIterator) advanceLeaf() {
	for len(it.stack) > 0 {
		frame := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		n, rev := frame.n, frame.rev
		for {
			if isEmptyNode(n) {
				break
			}
			if rn, ok := n.(*reverseNode); ok {
				n = rn.inner
				rev = !rev
				continue
			}
			c, ok := n.(*concatNode)
			if !ok {
				break
			}
			first, second := c.left, c.right
			if rev {
				first, second = c.right, c.left
			}
			it.stack = append(it.stack, reverseFrame{second, rev})
			n = first
		}
		if !isEmptyNode(n) {
			it.cur = n
			it.curRev = rev
			it.idx = 0
			return
		}
	}
	it.cur = emptyFlat
	it.curRev = false
	it.idx = 0
}

// Skip advances the iterator by n positions without materializing the
// skipped code units.
func (it *ReverseIterator) Skip(n int) error {
	if n < 0 {
		return errInvalidArgument("ReverseIterator.Skip", "negative count")
	}
	target := it.pos + n
	if target > it.total {
		return errOutOfRange("ReverseIterator.Skip", fmt.Sprintf("index %d out of range [0,%d)", target, it.total))
	}
	it.seek(target)
	return nil
}

// CanMoveBackwards reports whether this iterator supports MoveBackwards.
func (it *ReverseIterator) CanMoveBackwards() bool { return true }

// MoveBackwards moves the iterator n positions back along its own
// back-to-front order (toward the end of the rope), so the next Next()
// re-reads a code unit already produced; reading stays back to front.
func (it *ReverseIterator) MoveBackwards(n int) error {
	if n < 0 {
		return errInvalidArgument("ReverseIterator.MoveBackwards", "negative count")
	}
	target := it.pos - n
	if target < 0 {
		return errOutOfRange("ReverseIterator.MoveBackwards", fmt.Sprintf("index %d out of range [0,%d)", target, it.total))
	}
	it.seek(target)
	return nil
}

// Pos reports how many code units from the end of the rope this iterator
// currently sits at.
func (it *ReverseIterator) Pos() int { return it.pos }
