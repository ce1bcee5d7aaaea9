package rope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorWalksInOrder(t *testing.T) {
	r := New("abc").Concat(New("def")).Concat(New("ghi"))
	it, err := r.Iterator()
	require.NoError(t, err)

	var out []byte
	for it.HasNext() {
		b, err := it.Next()
		require.NoError(t, err)
		out = append(out, b)
	}
	assert.Equal(t, "abcdefghi", string(out))
}

func TestIteratorAt(t *testing.T) {
	r := New("0123456789")
	it, err := r.IteratorAt(5)
	require.NoError(t, err)
	b, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, byte('5'), b)
}

func TestIteratorExhausted(t *testing.T) {
	r := New("a")
	it, err := r.Iterator()
	require.NoError(t, err)
	_, err = it.Next()
	require.NoError(t, err)
	assert.False(t, it.HasNext())
	_, err = it.Next()
	assert.True(t, IsExhausted(err))
}

func TestIteratorSkip(t *testing.T) {
	r := New("0123456789")
	it, err := r.Iterator()
	require.NoError(t, err)
	require.NoError(t, it.Skip(5))
	b, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, byte('5'), b)
}

func TestIteratorMoveBackwards(t *testing.T) {
	r := New("0123456789")
	it, err := r.IteratorAt(8)
	require.NoError(t, err)
	require.NoError(t, it.MoveBackwards(5))
	b, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, byte('3'), b)
}

func TestIteratorSkipOutOfRange(t *testing.T) {
	r := New("abc")
	it, err := r.Iterator()
	require.NoError(t, err)
	assert.True(t, IsOutOfRange(it.Skip(10)))
}

func TestReverseIteratorWalksBackToFront(t *testing.T) {
	r := New("abcdef")
	it, err := r.ReverseIterator()
	require.NoError(t, err)

	var out []byte
	for it.HasNext() {
		b, err := it.Next()
		require.NoError(t, err)
		out = append(out, b)
	}
	assert.Equal(t, "fedcba", string(out))
}

// TestReverseIteratorAcrossManyConcatenations exercises the mirrored
// explicit-stack descent over a deep Concatenation spine, the same shape
// that used to force every Next() back through ByteAt from the root.
func TestReverseIteratorAcrossManyConcatenations(t *testing.T) {
	r := Empty
	for i := 0; i < 500; i++ {
		r = r.Append(string(rune('a' + i%26)))
	}
	want := []byte(r.String())
	for i, j := 0, len(want)-1; i < j; i, j = i+1, j-1 {
		want[i], want[j] = want[j], want[i]
	}

	it, err := r.ReverseIterator()
	require.NoError(t, err)
	var out []byte
	for it.HasNext() {
		b, err := it.Next()
		require.NoError(t, err)
		out = append(out, b)
	}
	assert.Equal(t, string(want), string(out))
}

// TestReverseIteratorOverAlreadyReversedRope checks that a ReverseIterator
// built on a Rope whose root is itself a Reverse overlay still reads in
// the right direction: reverse-of-reverse is forward.
func TestReverseIteratorOverAlreadyReversedRope(t *testing.T) {
	r := New(strings.Repeat("word ", 50))
	reversed := r.Reverse()

	it, err := reversed.ReverseIterator()
	require.NoError(t, err)
	var out []byte
	for it.HasNext() {
		b, err := it.Next()
		require.NoError(t, err)
		out = append(out, b)
	}
	assert.Equal(t, r.String(), string(out))
}

func TestIteratorOverEmptyRope(t *testing.T) {
	it, err := Empty.Iterator()
	require.NoError(t, err)
	assert.False(t, it.HasNext())
}

func TestIteratorAcrossManyConcatenations(t *testing.T) {
	r := Empty
	for i := 0; i < 500; i++ {
		r = r.Append("x")
	}
	it, err := r.Iterator()
	require.NoError(t, err)
	count := 0
	for it.HasNext() {
		b, err := it.Next()
		require.NoError(t, err)
		assert.Equal(t, byte('x'), b)
		count++
	}
	assert.Equal(t, 500, count)
}
