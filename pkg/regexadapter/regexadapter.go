// Package regexadapter connects github.com/dlclark/regexp2 to a
// *rope.Rope. Source gives character-at-a-time random access through the
// rope's bidirectional Iterator; FindString and MatchString materialize
// the whole rope into a string before matching.
package regexadapter

import (
	"github.com/dlclark/regexp2"

	"github.com/coreseekdev/gorope/pkg/rope"
)

// Source adapts a *rope.Rope to the character-at-a-time access regexp2's
// runner needs, backed by a single forward Iterator that every CharAt
// repositions via Skip or MoveBackwards; each such move re-descends the
// tree from the root.
type Source struct {
	r  *rope.Rope
	it *rope.Iterator
}

// NewSource wraps r for repeated regex matching.
func NewSource(r *rope.Rope) (*Source, error) {
	it, err := r.Iterator()
	if err != nil {
		return nil, err
	}
	return &Source{r: r, it: it}, nil
}

// CharAt returns the code unit at position i as a rune, seeking the
// underlying iterator there first.
func (s *Source) CharAt(i int) (rune, error) {
	if err := s.seek(i); err != nil {
		return 0, err
	}
	b, err := s.it.Next()
	if err != nil {
		return 0, err
	}
	return rune(b), nil
}

// Length returns the number of code units available for matching.
func (s *Source) Length() int { return s.r.Len() }

// Slice materializes the substring [a, b) as a string, used by regexp2
// when it needs to hand back a matched group's text.
func (s *Source) Slice(a, b int) (string, error) {
	sub, err := s.r.Slice(a, b)
	if err != nil {
		return "", err
	}
	return sub.String(), nil
}

func (s *Source) seek(target int) error {
	delta := target - s.it.Pos()
	if delta >= 0 {
		return s.it.Skip(delta)
	}
	return s.it.MoveBackwards(-delta)
}

// FindString returns the first match of re against r's content, or ""
// with ok=false if there is no match. It materializes r once up front
// because regexp2 itself only accepts a string or []rune; Source exists
// for callers that drive regexp2's lower-level Runner directly, which
// this helper does not.
func FindString(re *regexp2.Regexp, r *rope.Rope) (string, bool, error) {
	m, err := re.FindStringMatch(r.String())
	if err != nil {
		return "", false, err
	}
	if m == nil {
		return "", false, nil
	}
	return m.String(), true, nil
}

// MatchString reports whether re matches anywhere in r.
func MatchString(re *regexp2.Regexp, r *rope.Rope) (bool, error) {
	return re.MatchString(r.String())
}
