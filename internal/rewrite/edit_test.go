package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEdits_NoEdits(t *testing.T) {
	src := []byte("package p\n")

	out, err := ApplyEdits(src, nil)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestApplyEdits_Insert(t *testing.T) {
	src := []byte("var x = 5")

	out, err := ApplyEdits(src, []Edit{Insert(5, " int")})
	require.NoError(t, err)
	assert.Equal(t, "var x int = 5", string(out))
}

func TestApplyEdits_Replace(t *testing.T) {
	src := []byte("for i := start;")

	out, err := ApplyEdits(src, []Edit{Replace(9, 14, "int64(start)")})
	require.NoError(t, err)
	assert.Equal(t, "for i := int64(start);", string(out))
}

func TestApplyEdits_OutOfOrder(t *testing.T) {
	src := []byte("abcdef")

	edits := []Edit{
		Replace(4, 5, "E"),
		Replace(1, 2, "B"),
	}

	out, err := ApplyEdits(src, edits)
	require.NoError(t, err)
	assert.Equal(t, "aBcdEf", string(out))
}

func TestApplyEdits_Overlap(t *testing.T) {
	src := []byte("abcdef")

	edits := []Edit{
		Replace(1, 4, "X"),
		Replace(3, 5, "Y"),
	}

	_, err := ApplyEdits(src, edits)
	assert.Error(t, err)
}

func TestApplyEdits_OutOfRange(t *testing.T) {
	src := []byte("abc")

	_, err := ApplyEdits(src, []Edit{Replace(2, 9, "X")})
	assert.Error(t, err)

	_, err = ApplyEdits(src, []Edit{Replace(-1, 2, "X")})
	assert.Error(t, err)
}

func TestApplyEdits_InsertionsKeepOrder(t *testing.T) {
	src := []byte("ab")

	edits := []Edit{
		Insert(1, "x"),
		Insert(1, "y"),
	}

	out, err := ApplyEdits(src, edits)
	require.NoError(t, err)
	assert.Equal(t, "axyb", string(out))
}
