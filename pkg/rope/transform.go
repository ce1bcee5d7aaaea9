package rope

import "strings"

// isTrimSpace reports whether b is one of the code units TrimStart, TrimEnd
// and Trim strip by default: everything at or below 0x20, matching the
// classic C whitespace/control boundary rather than Unicode's notion of
// whitespace, since a Rope is a sequence of bytes, not runes.
func isTrimSpace(b byte) bool { return b <= 0x20 }

// TrimStart returns r with leading code units c <= 0x20 removed.
func TrimStart(r *Rope) (*Rope, error) {
	return TrimStartFunc(r, isTrimSpace)
}

// TrimEnd returns r with trailing code units c <= 0x20 removed.
func TrimEnd(r *Rope) (*Rope, error) {
	return TrimEndFunc(r, isTrimSpace)
}

// Trim returns r with both leading and trailing code units c <= 0x20
// removed.
func Trim(r *Rope) (*Rope, error) {
	return TrimFunc(r, isTrimSpace)
}

// TrimStartCutset returns r with leading bytes contained in cutset removed.
func TrimStartCutset(r *Rope, cutset string) (*Rope, error) {
	return TrimStartFunc(r, func(b byte) bool { return strings.ContainsRune(cutset, rune(b)) })
}

// TrimEndCutset returns r with trailing bytes contained in cutset removed.
func TrimEndCutset(r *Rope, cutset string) (*Rope, error) {
	return TrimEndFunc(r, func(b byte) bool { return strings.ContainsRune(cutset, rune(b)) })
}

// TrimCutset returns r with both leading and trailing bytes contained in
// cutset removed.
func TrimCutset(r *Rope, cutset string) (*Rope, error) {
	return TrimFunc(r, func(b byte) bool { return strings.ContainsRune(cutset, rune(b)) })
}

// TrimStartFunc returns r with every leading code unit for which pred
// returns true removed.
func TrimStartFunc(r *Rope, pred func(byte) bool) (*Rope, error) {
	n := r.Len()
	i := 0
	it, err := r.Iterator()
	if err != nil {
		return nil, err
	}
	for i < n {
		c, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !pred(c) {
			break
		}
		i++
	}
	return r.Slice(i, n)
}

// TrimEndFunc returns r with every trailing code unit for which pred
// returns true removed.
func TrimEndFunc(r *Rope, pred func(byte) bool) (*Rope, error) {
	n := r.Len()
	j := n
	for j > 0 {
		b, err := r.At(j - 1)
		if err != nil {
			return nil, err
		}
		if !pred(b) {
			break
		}
		j--
	}
	return r.Slice(0, j)
}

// TrimFunc returns r with both leading and trailing code units for which
// pred returns true removed.
func TrimFunc(r *Rope, pred func(byte) bool) (*Rope, error) {
	started, err := TrimStartFunc(r, pred)
	if err != nil {
		return nil, err
	}
	return TrimEndFunc(started, pred)
}

// PadStart returns a rope of at least width code units, left-padded with
// pad repeated as needed. If r is already that long, it is returned
// unchanged.
func PadStart(r *Rope, width int, pad byte) (*Rope, error) {
	n := r.Len()
	if n >= width {
		return r, nil
	}
	padding := New(strings.Repeat(string(pad), width-n))
	return padding.Concat(r), nil
}

// PadEnd returns a rope of at least width code units, right-padded with
// pad repeated as needed. If r is already that long, it is returned
// unchanged.
func PadEnd(r *Rope, width int, pad byte) (*Rope, error) {
	n := r.Len()
	if n >= width {
		return r, nil
	}
	padding := New(strings.Repeat(string(pad), width-n))
	return r.Concat(padding), nil
}
