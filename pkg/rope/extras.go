package rope

// Lines splits r on '\n'. Every returned line keeps its '\n' terminator;
// text after the last '\n' is returned as a final line without one, and a
// trailing '\n' does not add an empty line. It is built entirely on the
// forward Iterator rather than a second traversal primitive.
func Lines(r *Rope) ([]string, error) {
	it, err := r.Iterator()
	if err != nil {
		return nil, err
	}
	var lines []string
	var cur []byte
	for it.HasNext() {
		b, err := it.Next()
		if err != nil {
			return nil, err
		}
		cur = append(cur, b)
		if b == '\n' {
			lines = append(lines, string(cur))
			cur = cur[:0]
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines, nil
}

// ForEach calls fn with each code unit of r in order.
func ForEach(r *Rope, fn func(byte)) error {
	it, err := r.Iterator()
	if err != nil {
		return err
	}
	for it.HasNext() {
		b, err := it.Next()
		if err != nil {
			return err
		}
		fn(b)
	}
	return nil
}

// Count returns the number of code units in r for which pred returns true.
func Count(r *Rope, pred func(byte) bool) (int, error) {
	n := 0
	err := ForEach(r, func(b byte) {
		if pred(b) {
			n++
		}
	})
	return n, err
}

// Map returns a new Rope with fn applied to every code unit of r.
func Map(r *Rope, fn func(byte) byte) (*Rope, error) {
	buf := make([]byte, 0, r.Len())
	err := ForEach(r, func(b byte) { buf = append(buf, fn(b)) })
	if err != nil {
		return nil, err
	}
	return NewBytes(buf), nil
}

// Filter returns a new Rope holding only the code units of r for which
// pred returns true, in their original order.
func Filter(r *Rope, pred func(byte) bool) (*Rope, error) {
	buf := make([]byte, 0, r.Len())
	err := ForEach(r, func(b byte) {
		if pred(b) {
			buf = append(buf, b)
		}
	})
	if err != nil {
		return nil, err
	}
	return NewBytes(buf), nil
}

// Contains reports whether sub occurs anywhere in r.
func Contains(r *Rope, sub string) (bool, error) {
	idx, err := IndexString(r, sub, 0)
	if err != nil {
		return false, err
	}
	return idx >= 0, nil
}
