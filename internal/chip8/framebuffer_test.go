package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawSetsPixelsNoCollision(t *testing.T) {
	var fb Framebuffer
	collision := fb.Draw(0, 0, []byte{0x80}) // single lit pixel, top-left
	assert.False(t, collision)
	assert.True(t, fb[0][0])
	assert.False(t, fb[0][1])
}

func TestDrawXorInvolution(t *testing.T) {
	var fb Framebuffer
	sprite := []byte{0xFF, 0x81, 0xFF}

	fb.Draw(0, 0, sprite)
	collision := fb.Draw(0, 0, sprite) // drawing the same sprite again erases it

	assert.True(t, collision)
	var cleared Framebuffer
	assert.Equal(t, cleared, fb)
}

func TestDrawOriginWraps(t *testing.T) {
	var fb Framebuffer
	fb.Draw(ScreenCols+2, ScreenRows+1, []byte{0x80})
	assert.True(t, fb[1][2])
}

func TestDrawClipsAtEdges(t *testing.T) {
	var fb Framebuffer
	// an 8-wide sprite starting one column from the right edge must clip,
	// not wrap, the overflowing columns.
	collision := fb.Draw(ScreenCols-1, 0, []byte{0xFF})
	assert.False(t, collision)
	assert.True(t, fb[0][ScreenCols-1])
	assert.False(t, fb[0][0])
}

func TestClear(t *testing.T) {
	var fb Framebuffer
	fb.Draw(0, 0, []byte{0xFF})
	fb.Clear()
	var want Framebuffer
	assert.Equal(t, want, fb)
}

func TestFramebufferString(t *testing.T) {
	var fb Framebuffer
	fb.Draw(0, 0, []byte{0x80})
	s := fb.String()
	assert.Contains(t, s, "█")
	assert.Contains(t, s, ".")
}
