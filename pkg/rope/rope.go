// Package rope implements a persistent, immutable rope: a tree of
// sequence fragments supporting concatenation, slicing, insertion,
// deletion and reversal in sub-linear time without ever mutating or
// copying an existing rope's content.
//
// A Rope is built from four node variants — Flat, Substring, Concatenation
// and Reverse — kept in Fibonacci balance (Boehm, Atkinson & Plass 1995)
// so that every operation stays within the bounds the package promises
// regardless of how it was assembled.
package rope

import (
	"fmt"
	"io"
	"strings"
)

// Rope is an immutable sequence of fixed-width code units. Every
// operation returns a new Rope (or an error) and never modifies the
// receiver; this makes a Rope safe to share across goroutines without
// synchronization.
type Rope struct {
	root node
	pol  *policy
}

// Empty is the zero-length Rope, shared by every caller that asks for one.
var Empty = &Rope{root: emptyFlat, pol: defaultPolicy()}

// New builds a Rope over s. Since Go strings are already immutable, no
// copy is made; this is the "externally supplied, immutable" constructor.
func New(s string) *Rope {
	if s == "" {
		return Empty
	}
	return &Rope{root: newFlat(s), pol: defaultPolicy()}
}

// NewBytes builds a Rope from b, copying it first. Unlike a string, a
// []byte is mutable in the caller's hands, so this is the "owned buffer,
// by copy" constructor.
func NewBytes(b []byte) *Rope {
	if len(b) == 0 {
		return Empty
	}
	return New(string(b))
}

// NewWithPolicy is like New but lets the caller override the rope's
// balancing tunables instead of the package defaults.
func NewWithPolicy(s string, pol Policy) *Rope {
	p := pol.toInternal()
	if s == "" {
		return &Rope{root: emptyFlat, pol: p}
	}
	return &Rope{root: newFlat(s), pol: p}
}

func wrap(n node, pol *policy) *Rope {
	if isEmptyNode(n) {
		return &Rope{root: emptyFlat, pol: pol}
	}
	return &Rope{root: n, pol: pol}
}

// Len returns the number of code units in r.
func (r *Rope) Len() int { return r.root.Len() }

// At returns the code unit at index i.
func (r *Rope) At(i int) (byte, error) {
	if i < 0 || i >= r.Len() {
		return 0, errOutOfRange("Rope.At", fmt.Sprintf("index %d out of range [0,%d)", i, r.Len()))
	}
	return r.root.ByteAt(i), nil
}

// Slice returns the subsequence [a, b) of r.
func (r *Rope) Slice(a, b int) (*Rope, error) {
	n := r.Len()
	if a < 0 || b > n || a > b {
		return nil, errOutOfRange("Rope.Slice", fmt.Sprintf("index %d out of range [0,%d)", a, n))
	}
	return wrap(r.root.Slice(a, b, r.pol), r.pol), nil
}

// Concat returns a new Rope holding r followed by other, sharing both
// operands' trees rather than copying their content.
func (r *Rope) Concat(other *Rope) *Rope {
	if other == nil {
		return r
	}
	return wrap(concatenate(r.root, other.root, r.pol), r.pol)
}

// Plus is an alias for Concat matching the infix-style naming the spec
// uses for the algebra.
func (r *Rope) Plus(other *Rope) *Rope { return r.Concat(other) }

// Append returns r with s appended.
func (r *Rope) Append(s string) *Rope {
	if s == "" {
		return r
	}
	return r.Concat(New(s))
}

// Insert returns r with other inserted at index.
func (r *Rope) Insert(index int, other *Rope) (*Rope, error) {
	n := r.Len()
	if index < 0 || index > n {
		return nil, errOutOfRange("Rope.Insert", fmt.Sprintf("index %d out of range [0,%d)", index, n))
	}
	if other == nil || other.Len() == 0 {
		return r, nil
	}
	return wrap(insertAt(r.root, index, other.root, r.pol), r.pol), nil
}

// InsertString is a convenience wrapper over Insert for a plain string.
func (r *Rope) InsertString(index int, s string) (*Rope, error) {
	return r.Insert(index, New(s))
}

// Delete returns r with [a, b) removed.
func (r *Rope) Delete(a, b int) (*Rope, error) {
	n := r.Len()
	if a < 0 || b > n || a > b {
		return nil, errOutOfRange("Rope.Delete", fmt.Sprintf("index %d out of range [0,%d)", a, n))
	}
	return wrap(deleteRange(r.root, a, b, r.pol), r.pol), nil
}

// Reverse returns r with its code units in reverse order, in O(1) time: it
// wraps the root in a lazy Reverse overlay rather than copying any
// content, except that a rope that is a single leaf no longer than the
// policy's CoalesceThreshold is copied reversed into a new Flat.
// Reversing an already-reversed Rope unwraps back to the original tree,
// per the package's no-double-wrap invariant.
func (r *Rope) Reverse() *Rope {
	if rn, ok := r.root.(*reverseNode); ok {
		return wrap(rn.inner, r.pol)
	}
	if isLeafNode(r.root) && r.root.Len() <= r.pol.CoalesceThreshold {
		return wrap(r.root.Reverse(), r.pol)
	}
	return wrap(newReverse(r.root), r.pol)
}

// Repeat returns r concatenated with itself count times.
func (r *Rope) Repeat(count int) (*Rope, error) {
	if count < 0 {
		return nil, errInvalidArgument("Rope.Repeat", "negative count")
	}
	return wrap(repeatNode(r.root, count, r.pol), r.pol), nil
}

// Times is an alias for Repeat matching the spec's infix naming.
func (r *Rope) Times(count int) (*Rope, error) { return r.Repeat(count) }

// Iterator returns a forward Iterator positioned at the start of r.
func (r *Rope) Iterator() (*Iterator, error) {
	return r.IteratorAt(0)
}

// IteratorAt returns a forward Iterator positioned at index start.
func (r *Rope) IteratorAt(start int) (*Iterator, error) {
	if start < 0 || start > r.Len() {
		return nil, errOutOfRange("Rope.IteratorAt", fmt.Sprintf("index %d out of range [0,%d)", start, r.Len()))
	}
	return newIterator(r.root, start), nil
}

// ReverseIterator returns an iterator walking r from its last code unit
// to its first.
func (r *Rope) ReverseIterator() (*ReverseIterator, error) {
	return r.ReverseIteratorAt(0)
}

// ReverseIteratorAt returns a reverse iterator whose first Next() yields
// the code unit start positions before the end of r (so start == 0 begins
// at the last code unit, matching ReverseIterator).
func (r *Rope) ReverseIteratorAt(start int) (*ReverseIterator, error) {
	if start < 0 || start > r.Len() {
		return nil, errOutOfRange("Rope.ReverseIteratorAt", fmt.Sprintf("index %d out of range [0,%d)", start, r.Len()))
	}
	return newReverseIterator(r.root, start), nil
}

// WriteTo writes the entire contents of r to w, satisfying io.WriterTo.
func (r *Rope) WriteTo(w io.Writer) (int64, error) {
	n, err := r.root.WriteTo(w, 0, r.Len())
	if err != nil {
		return n, errIOFailure("Rope.WriteTo", err)
	}
	return n, nil
}

// WriteRange writes the subsequence [a, b) of r to w without
// materializing an intermediate Rope or string.
func (r *Rope) WriteRange(w io.Writer, a, b int) (int64, error) {
	n := r.Len()
	if a < 0 || a > b {
		return 0, errOutOfRange("Rope.WriteRange", fmt.Sprintf("index %d out of range [0,%d)", a, n))
	}
	if b > n {
		return 0, errInvalidArgument("Rope.WriteRange", fmt.Sprintf("end %d exceeds length %d", b, n))
	}
	written, err := r.root.WriteTo(w, a, b-a)
	if err != nil {
		return written, errIOFailure("Rope.WriteRange", err)
	}
	return written, nil
}

// String materializes the full contents of r as a string. Unlike the
// rope's own operations, this is always O(n) and copies.
func (r *Rope) String() string {
	var b strings.Builder
	b.Grow(r.Len())
	_, _ = r.root.WriteTo(&b, 0, r.Len())
	return b.String()
}

// Hash returns r's content hash. Two ropes with equal content always
// return equal Hash values regardless of tree shape.
func (r *Rope) Hash() uint64 { return r.root.Hash() }

// Equals reports whether r and other hold identical content.
func (r *Rope) Equals(other *Rope) bool {
	if other == nil {
		return r.Len() == 0
	}
	if r.Len() != other.Len() {
		return false
	}
	if r.root == other.root {
		return true
	}
	if r.Hash() != other.Hash() {
		return false
	}
	return r.Compare(other) == 0
}

// Compare returns -1, 0 or 1 as r is less than, equal to, or greater than
// other, using lexicographic byte order.
func (r *Rope) Compare(other *Rope) int {
	itA, _ := r.Iterator()
	itB, _ := other.Iterator()
	for itA.HasNext() && itB.HasNext() {
		a, _ := itA.Next()
		b, _ := itB.Next()
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	switch {
	case r.Len() < other.Len():
		return -1
	case r.Len() > other.Len():
		return 1
	default:
		return 0
	}
}
