package rope

// Builder accumulates pending writes and folds them into a single
// balanced Rope on Build, rather than concatenating one rope at a time.
// This mirrors strings.Builder's role for plain strings: cheap repeated
// appends followed by one finalization step.
//
// The zero value is not usable; construct one with NewBuilder.
type Builder struct {
	pending []node
	pol     *policy
}

// NewBuilder returns an empty Builder using the package's default policy.
func NewBuilder() *Builder {
	return &Builder{pol: defaultPolicy()}
}

// NewBuilderWithPolicy is like NewBuilder but lets the caller override the
// balancing tunables used when Build folds the pending writes together.
func NewBuilderWithPolicy(pol Policy) *Builder {
	return &Builder{pol: pol.toInternal()}
}

// WriteString appends s to the builder.
func (b *Builder) WriteString(s string) {
	if s == "" {
		return
	}
	b.pending = append(b.pending, newFlat(s))
}

// WriteRope appends other's content to the builder, sharing its tree
// rather than copying it.
func (b *Builder) WriteRope(other *Rope) {
	if other == nil || other.Len() == 0 {
		return
	}
	b.pending = append(b.pending, other.root)
}

// WriteByte appends a single code unit.
func (b *Builder) WriteByte(c byte) error {
	b.pending = append(b.pending, newFlat(string([]byte{c})))
	return nil
}

// Len returns the total length accumulated so far.
func (b *Builder) Len() int {
	total := 0
	for _, n := range b.pending {
		total += n.Len()
	}
	return total
}

// Build folds every pending write into a single balanced Rope via
// recursive bisection, the same reconstruction buildBalanced uses for
// rebalancing, so the result starts out well balanced regardless of how
// many pieces were written.
func (b *Builder) Build() *Rope {
	if len(b.pending) == 0 {
		return &Rope{root: emptyFlat, pol: b.pol}
	}
	root := buildBalanced(b.pending, b.pol)
	return wrap(root, b.pol)
}
