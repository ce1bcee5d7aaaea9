package rope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsOnFlat(t *testing.T) {
	r := New("hello")
	s := r.Stats()
	assert.Equal(t, 1, s.FlatCount)
	assert.Equal(t, 0, s.ConcatCount)
	assert.Equal(t, 5, s.Length)
}

func TestStatsOnConcat(t *testing.T) {
	r := New("hello, wide").Concat(New(" world"))
	s := r.Stats()
	assert.Equal(t, 1, s.ConcatCount)
	assert.Equal(t, 2, s.FlatCount)
	assert.Equal(t, 17, s.Length)
}

func TestStatsOnReverse(t *testing.T) {
	long := New(strings.Repeat("x", stdPolicy.CoalesceThreshold+1))
	r := long.Reverse()
	s := r.Stats()
	assert.Equal(t, 1, s.ReverseCount)
}

func TestStatsOnEmpty(t *testing.T) {
	s := Empty.Stats()
	assert.Equal(t, 0, s.LeafCount)
	assert.Equal(t, 0, s.Length)
}
