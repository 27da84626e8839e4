package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunksSplitsEvenly(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6}

	chunks := Chunks(data, 2)
	assert.Len(t, chunks, 3)
	for _, c := range chunks {
		assert.Len(t, c, 2)
	}
}

func TestChunksKeepsRemainder(t *testing.T) {
	data := make([]byte, 10)

	chunks := Chunks(data, 4)
	assert.Len(t, chunks, 3)
	assert.Len(t, chunks[2], 2)
}

func TestChunksReassemble(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	var joined []byte
	for _, c := range Chunks(data, 7) {
		joined = append(joined, c...)
	}
	assert.True(t, bytes.Equal(data, joined))
}

func TestChunksEdgeCases(t *testing.T) {
	assert.Nil(t, Chunks(nil, 8))
	assert.Nil(t, Chunks([]byte{}, 8))

	whole := Chunks([]byte{1, 2, 3}, 0)
	assert.Len(t, whole, 1)
	assert.Len(t, whole[0], 3)

	bigger := Chunks([]byte{1, 2, 3}, 100)
	assert.Len(t, bigger, 1)
}
