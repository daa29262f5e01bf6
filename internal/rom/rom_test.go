package rom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ch8")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadReadsFile(t *testing.T) {
	data := []byte{0x12, 0x00, 0x00, 0xE0}
	path := writeFile(t, data)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestLoadRejectsOversizedRom(t *testing.T) {
	path := writeFile(t, make([]byte, maxSize+1))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ch8"))
	require.Error(t, err)
}
