package rope

import "fmt"

// Iterator walks a Rope's code units in order with O(1) amortized Next,
// using an explicit stack of pending right subtrees rather than recursion.
// An Iterator is a snapshot: it is unaffected by anything done to the
// Rope it was created from, since ropes never mutate in place.
type Iterator struct {
	root  node   // whole tree, retained so Skip/MoveBackwards can reseek
	stack []node // pending right subtrees, innermost last
	cur   node   // current leaf
	idx   int    // next index to read within cur
	pos   int    // absolute position into the whole rope
	total int
}

func newIterator(root node, start int) *Iterator {
	it := &Iterator{root: root, total: root.Len()}
	it.seek(root, start)
	return it
}

// seek descends from root, pushing every right subtree skipped along the
// way, until it lands on the leaf containing index start.
func (it *Iterator) seek(root node, start int) {
	it.stack = it.stack[:0]
	it.pos = start
	n := root

	for {
		if isEmptyNode(n) {
			it.cur = emptyFlat
			it.idx = 0
			return
		}
		c, ok := n.(*concatNode)
		if !ok {
			it.cur = n
			it.idx = start
			return
		}
		leftLen := c.left.Len()
		if start < leftLen {
			it.stack = append(it.stack, c.right)
			n = c.left
			continue
		}
		start -= leftLen
		n = c.right
	}
}

// HasNext reports whether Next would succeed.
func (it *Iterator) HasNext() bool {
	return it.pos < it.total
}

// Next returns the code unit at the iterator's current position and
// advances by one. Calling it once HasNext is false returns an Exhausted
// error.
func (it *Iterator) Next() (byte, error) {
	if !it.HasNext() {
		return 0, errExhausted("Iterator.Next")
	}
	for it.idx >= it.cur.Len() {
		it.advanceLeaf()
	}
	b := it.cur.ByteAt(it.idx)
	it.idx++
	it.pos++
	return b, nil
}

// advanceLeaf pops the next pending right subtree and descends into its
// leftmost leaf, pushing any right subtrees it passes along the way.
func (it *Iterator) advanceLeaf() {
	for len(it.stack) > 0 {
		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		for {
			c, ok := n.(*concatNode)
			if !ok {
				break
			}
			it.stack = append(it.stack, c.right)
			n = c.left
		}
		if !isEmptyNode(n) {
			it.cur = n
			it.idx = 0
			return
		}
	}
	it.cur = emptyFlat
	it.idx = 0
}

// Skip advances the iterator by n positions without materializing the
// skipped code units, used by the search routines to jump past a
// mismatch.
func (it *Iterator) Skip(n int) error {
	if n < 0 {
		return errInvalidArgument("Iterator.Skip", "negative count")
	}
	target := it.pos + n
	if target > it.total {
		return errOutOfRange("Iterator.Skip", fmt.Sprintf("index %d out of range [0,%d)", target, it.total))
	}
	it.reseekFromRoot(target)
	return nil
}

// CanMoveBackwards reports whether this iterator supports MoveBackwards.
// Every Iterator produced by this package does, so it always returns true.
func (it *Iterator) CanMoveBackwards() bool { return true }

// MoveBackwards moves the iterator n positions back, so the next Next()
// reads the code unit at Pos()-n and reading continues forward from there;
// used by regex engines that need to retry a match starting earlier.
func (it *Iterator) MoveBackwards(n int) error {
	if n < 0 {
		return errInvalidArgument("Iterator.MoveBackwards", "negative count")
	}
	target := it.pos - n
	if target < 0 {
		return errOutOfRange("Iterator.MoveBackwards", fmt.Sprintf("index %d out of range [0,%d)", target, it.total))
	}
	it.reseekFromRoot(target)
	return nil
}

// Pos reports the iterator's current absolute position.
func (it *Iterator) Pos() int { return it.pos }

func (it *Iterator) reseekFromRoot(target int) {
	it.seek(it.root, target)
}
