package rope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndLen(t *testing.T) {
	r := New("hello world")
	assert.Equal(t, 11, r.Len())
	assert.Equal(t, "hello world", r.String())
}

func TestEmptyRope(t *testing.T) {
	assert.Equal(t, 0, Empty.Len())
	assert.Equal(t, "", Empty.String())
	assert.Equal(t, 0, New("").Len())
}

func TestNewBytesCopies(t *testing.T) {
	b := []byte("mutate me")
	r := NewBytes(b)
	b[0] = 'X'
	assert.Equal(t, "mutate me", r.String())
}

func TestAt(t *testing.T) {
	r := New("abcdef")
	c, err := r.At(0)
	require.NoError(t, err)
	assert.Equal(t, byte('a'), c)

	c, err = r.At(5)
	require.NoError(t, err)
	assert.Equal(t, byte('f'), c)

	_, err = r.At(6)
	assert.True(t, IsOutOfRange(err))

	_, err = r.At(-1)
	assert.True(t, IsOutOfRange(err))
}

func TestSlice(t *testing.T) {
	r := New("hello world")
	sub, err := r.Slice(6, 11)
	require.NoError(t, err)
	assert.Equal(t, "world", sub.String())

	whole, err := r.Slice(0, 11)
	require.NoError(t, err)
	assert.Equal(t, r.String(), whole.String())

	empty, err := r.Slice(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	_, err = r.Slice(0, 12)
	assert.True(t, IsOutOfRange(err))
}

func TestConcat(t *testing.T) {
	a := New("hello, ")
	b := New("world")
	c := a.Concat(b)
	assert.Equal(t, "hello, world", c.String())
	assert.Equal(t, a.Len()+b.Len(), c.Len())

	// operands are untouched
	assert.Equal(t, "hello, ", a.String())
	assert.Equal(t, "world", b.String())
}

func TestConcatWithEmpty(t *testing.T) {
	a := New("content")
	assert.Equal(t, "content", a.Concat(Empty).String())
	assert.Equal(t, "content", Empty.Concat(a).String())
}

func TestAppend(t *testing.T) {
	r := New("foo").Append("bar").Append("baz")
	assert.Equal(t, "foobarbaz", r.String())
}

func TestInsert(t *testing.T) {
	r := New("hello world")
	out, err := r.InsertString(5, ",")
	require.NoError(t, err)
	assert.Equal(t, "hello, world", out.String())

	out, err = r.InsertString(0, ">>")
	require.NoError(t, err)
	assert.Equal(t, ">>hello world", out.String())

	out, err = r.InsertString(r.Len(), "!")
	require.NoError(t, err)
	assert.Equal(t, "hello world!", out.String())

	_, err = r.InsertString(-1, "x")
	assert.True(t, IsOutOfRange(err))
}

func TestDelete(t *testing.T) {
	r := New("hello, world")
	out, err := r.Delete(5, 7)
	require.NoError(t, err)
	assert.Equal(t, "helloworld", out.String())

	out, err = r.Delete(0, r.Len())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())

	_, err = r.Delete(4, 2)
	assert.True(t, IsOutOfRange(err))
}

func TestReverse(t *testing.T) {
	r := New("hello")
	rev := r.Reverse()
	assert.Equal(t, "olleh", rev.String())
	assert.Equal(t, "hello", r.String(), "reversing must not mutate the original")

	doubleRev := rev.Reverse()
	assert.Equal(t, "hello", doubleRev.String())
}

func TestReverseOfConcatenation(t *testing.T) {
	a := New("abc")
	b := New("def")
	c := a.Concat(b)
	assert.Equal(t, "fedcba", c.Reverse().String())
}

func TestReverseThenSlice(t *testing.T) {
	r := New("abcdefgh").Reverse()
	sub, err := r.Slice(2, 5)
	require.NoError(t, err)
	assert.Equal(t, "fed", sub.String())
}

func TestRepeat(t *testing.T) {
	r := New("ab")
	out, err := r.Repeat(3)
	require.NoError(t, err)
	assert.Equal(t, "ababab", out.String())

	out, err = r.Repeat(0)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())

	_, err = r.Repeat(-1)
	assert.True(t, IsInvalidArgument(err))
}

func TestRepeatLarge(t *testing.T) {
	r := New("x")
	out, err := r.Repeat(1000)
	require.NoError(t, err)
	assert.Equal(t, 1000, out.Len())
	assert.Equal(t, strings.Repeat("x", 1000), out.String())
}

func TestEqualsAndCompare(t *testing.T) {
	a := New("hello").Concat(New(" world"))
	b := New("hello world")
	assert.True(t, a.Equals(b))
	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, a.Hash(), b.Hash())

	c := New("hello worlz")
	assert.False(t, a.Equals(c))
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, 1, c.Compare(a))
}

func TestWriteToAndWriteRange(t *testing.T) {
	r := New("hello world")
	var sb strings.Builder
	n, err := r.WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(t, int64(11), n)
	assert.Equal(t, "hello world", sb.String())

	sb.Reset()
	n, err = r.WriteRange(&sb, 6, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.Equal(t, "world", sb.String())
}

func TestLargeBuildStaysBalanced(t *testing.T) {
	r := Empty
	for i := 0; i < 5000; i++ {
		r = r.Append("x")
	}
	assert.Equal(t, 5000, r.Len())
	stats := r.Stats()
	assert.True(t, stats.WellBalanced, "depth %d should satisfy the balance bound for length %d", stats.Depth, stats.Length)
}

func TestPersistencePriorVersionsSurviveEdits(t *testing.T) {
	v1 := New("version one")
	v2, err := v1.InsertString(7, "TWO-")
	require.NoError(t, err)
	v3, err := v2.Delete(0, 8)
	require.NoError(t, err)

	assert.Equal(t, "version one", v1.String())
	assert.Equal(t, "versionTWO- one", v2.String())
	assert.Equal(t, "WO- one", v3.String())
}
