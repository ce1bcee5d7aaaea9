package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimStart(t *testing.T) {
	r := New("   hello")
	out, err := TrimStart(r)
	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())
}

func TestTrimEnd(t *testing.T) {
	r := New("hello   ")
	out, err := TrimEnd(r)
	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())
}

func TestTrimBoth(t *testing.T) {
	r := New("  hello  ")
	out, err := Trim(r)
	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())
}

func TestTrimNothingToTrim(t *testing.T) {
	r := New("hello")
	out, err := Trim(r)
	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())
}

func TestTrimDefaultCutsetIsControlAndWhitespace(t *testing.T) {
	r := New("\t\n  hello\r\n")
	out, err := Trim(r)
	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())
}

func TestTrimStartCutset(t *testing.T) {
	r := New("xxhello")
	out, err := TrimStartCutset(r, "x")
	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())
}

func TestTrimEndCutset(t *testing.T) {
	r := New("helloxx")
	out, err := TrimEndCutset(r, "x")
	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())
}

func TestTrimCutsetBoth(t *testing.T) {
	r := New("--hello--")
	out, err := TrimCutset(r, "-")
	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())
}

func TestPadStart(t *testing.T) {
	r := New("7")
	out, err := PadStart(r, 4, '0')
	require.NoError(t, err)
	assert.Equal(t, "0007", out.String())
}

func TestPadEnd(t *testing.T) {
	r := New("ab")
	out, err := PadEnd(r, 5, '-')
	require.NoError(t, err)
	assert.Equal(t, "ab---", out.String())
}

func TestPadNoOpWhenLongEnough(t *testing.T) {
	r := New("already long enough")
	out, err := PadStart(r, 3, ' ')
	require.NoError(t, err)
	assert.Equal(t, r.String(), out.String())
}
