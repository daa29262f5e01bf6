// Package rom implements the sole file-I/O entry point for CHIP-8 program
// images: a raw binary file, big-endian within each 16-bit instruction, no
// header, that must fit in the 3584 bytes of memory after ProgramStart.
package rom

import (
	"fmt"
	"os"

	"github.com/chip8deck/chip8deck/internal/chip8"
)

// maxSize mirrors chip8's program-area size without importing it as a
// public constant rename; kept here so the size-limit error message can be
// worded at the file-I/O layer per spec.md §6.
const maxSize = chip8.MemSize - chip8.ProgramStart

// Load reads the program image at path and validates its size. It does not
// touch a Machine — callers pass the returned bytes to Machine.LoadMemory.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rom %q: %w", path, err)
	}
	if len(data) > maxSize {
		return nil, fmt.Errorf("rom %q is %d bytes, which exceeds the %d byte limit", path, len(data), maxSize)
	}
	return data, nil
}
