package engraver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleCommandsEncodeToSingleOpcode(t *testing.T) {
	commands := []Command{Pause, Reset, Home, Center, Preview, Up, Down, Left, Right, Erase}

	seen := map[byte]bool{}
	for _, c := range commands {
		encoded := c.Encode()
		require.Len(t, encoded, 1)
		assert.False(t, seen[encoded[0]], "duplicate opcode %#02x", encoded[0])
		seen[encoded[0]] = true
	}
}

func TestStartEmbedsBurnTime(t *testing.T) {
	a := Start{BurnTime: 128}.Encode()
	b := Start{BurnTime: 200}.Encode()

	require.Len(t, a, 2)
	require.Len(t, b, 2)

	// Only the burn time payload byte may differ.
	assert.Equal(t, byte(128), a[0])
	assert.Equal(t, byte(200), b[0])
	assert.Equal(t, a[1], b[1])
}

func TestEncodeIsDeterministic(t *testing.T) {
	assert.Equal(t, Erase.Encode(), Erase.Encode())
	assert.Equal(t, Start{BurnTime: 0x60}.Encode(), Start{BurnTime: 0x60}.Encode())
}
