package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New()
	assert.Equal(t, uint16(ProgramStart), m.PC)
	assert.Equal(t, uint8(0), m.SP)
	assert.Equal(t, uint16(0), m.I)
	assert.Equal(t, Font[0], m.Memory[FontBase])
}

func TestLoadMemory(t *testing.T) {
	m := New()
	program := []byte{0x00, 0xE0, 0x12, 0x00}
	require.NoError(t, m.LoadMemory(program))
	assert.Equal(t, program, m.Memory[ProgramStart:ProgramStart+len(program)])
}

func TestLoadMemoryTooLarge(t *testing.T) {
	m := New()
	program := make([]byte, MemSize)
	err := m.LoadMemory(program)
	require.Error(t, err)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestClone(t *testing.T) {
	m := New()
	m.V[0] = 7
	clone := m.Clone()
	clone.V[0] = 9

	assert.Equal(t, byte(7), m.V[0])
	assert.Equal(t, byte(9), clone.V[0])
}

func TestCallStack(t *testing.T) {
	m := New()
	m.Stack[0] = 0x300
	m.Stack[1] = 0x310
	m.SP = 2
	assert.Equal(t, []uint16{0x300, 0x310}, m.CallStack())
}

func TestRegisterString(t *testing.T) {
	assert.Equal(t, "V0", V0.String())
	assert.Equal(t, "VF", VF.String())
	assert.Equal(t, "VA", RegisterFromNibble(Nibble(0xA)).String())
}
