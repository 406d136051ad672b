package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneSlice(t *testing.T) {
	src := []byte("abc")
	clone := CloneSlice(src, 0)
	assert.Equal(t, src, clone)

	clone[0] = 'x'
	assert.Equal(t, byte('a'), src[0], "clone must not share memory with src")

	bigger := CloneSlice(src, 5)
	assert.Equal(t, []byte{'a', 'b', 'c', 0, 0}, bigger)
}

func TestClampLen(t *testing.T) {
	assert.Equal(t, 0, ClampLen(-1, 4))
	assert.Equal(t, 3, ClampLen(3, 4))
	assert.Equal(t, 4, ClampLen(9, 4))
}
