package rope

import "fmt"

// IndexByte returns the index of the first occurrence of b at or after
// start, or -1 if none exists.
func IndexByte(r *Rope, b byte, start int) (int, error) {
	if start < 0 || start > r.Len() {
		return -1, errOutOfRange("IndexByte", fmt.Sprintf("index %d out of range [0,%d)", start, r.Len()))
	}
	it, err := r.IteratorAt(start)
	if err != nil {
		return -1, err
	}
	for it.HasNext() {
		pos := it.Pos()
		c, err := it.Next()
		if err != nil {
			return -1, err
		}
		if c == b {
			return pos, nil
		}
	}
	return -1, nil
}

// IndexString returns the index of the first occurrence of pat at or
// after start, or -1 if none exists. It runs a Boyer-Moore-Horspool scan
// driven entirely through an Iterator's Skip and MoveBackwards, so no
// subsequence of the rope is ever materialized just to search it.
//
// Horspool's rule keys the shift off the text character aligned with the
// last position of the current window, never off wherever inside the
// window the mismatch happened to occur; using the mismatch character
// instead can skip past the true match.
func IndexString(r *Rope, pat string, start int) (int, error) {
	m := len(pat)
	if m == 0 {
		return start, nil
	}
	n := r.Len()
	if start < 0 || start > n {
		return -1, errOutOfRange("IndexString", fmt.Sprintf("index %d out of range [0,%d)", start, n))
	}
	if n-start < m {
		return -1, nil
	}

	badChar := buildBadCharTable(pat)

	it, err := r.IteratorAt(start)
	if err != nil {
		return -1, err
	}

	window := start
	for window+m <= n {
		matched := true
		var lastChar byte
		for j := m - 1; j >= 0; j-- {
			target := window + j
			if err := seekIterator(it, target); err != nil {
				return -1, err
			}
			c, err := it.Next()
			if err != nil {
				return -1, err
			}
			if j == m-1 {
				lastChar = c
			}
			if c != pat[j] {
				matched = false
				break
			}
		}
		if matched {
			return window, nil
		}
		shift, ok := badChar[lastChar]
		if !ok {
			shift = m
		}
		window += shift
	}
	return -1, nil
}

// seekIterator repositions it so that its next Next() reads index target,
// using Skip when moving forward and MoveBackwards when moving back, to
// exercise both capabilities the way a regex adapter doing backtracking
// search would.
func seekIterator(it *Iterator, target int) error {
	delta := target - it.Pos()
	if delta >= 0 {
		return it.Skip(delta)
	}
	return it.MoveBackwards(-delta)
}

// buildBadCharTable maps each byte appearing in pat[:m-1] to its distance
// from the end of pat, the shift to apply when that byte is the one
// aligned with the window's last position but doesn't match pat[m-1]. A
// byte absent from the table (including pat[m-1] itself, when it has no
// earlier occurrence) shifts the full window width.
func buildBadCharTable(pat string) map[byte]int {
	table := make(map[byte]int, len(pat))
	m := len(pat)
	for i := 0; i < m-1; i++ {
		table[pat[i]] = m - 1 - i
	}
	return table
}

// HasPrefix reports whether r begins with pat.
func HasPrefix(r *Rope, pat string) (bool, error) {
	if len(pat) > r.Len() {
		return false, nil
	}
	it, err := r.Iterator()
	if err != nil {
		return false, err
	}
	for i := 0; i < len(pat); i++ {
		c, err := it.Next()
		if err != nil {
			return false, err
		}
		if c != pat[i] {
			return false, nil
		}
	}
	return true, nil
}

// HasSuffix reports whether r ends with pat.
func HasSuffix(r *Rope, pat string) (bool, error) {
	m := len(pat)
	n := r.Len()
	if m > n {
		return false, nil
	}
	it, err := r.IteratorAt(n - m)
	if err != nil {
		return false, err
	}
	for i := 0; i < m; i++ {
		c, err := it.Next()
		if err != nil {
			return false, err
		}
		if c != pat[i] {
			return false, nil
		}
	}
	return true, nil
}
