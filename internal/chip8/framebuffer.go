package chip8

import "strings"

const (
	// ScreenRows is the framebuffer height, in pixels.
	ScreenRows = 32
	// ScreenCols is the framebuffer width, in pixels.
	ScreenCols = 64
)

// Framebuffer is the 64x32 monochrome CHIP-8 display. Every (row, col) with
// 0 <= row < ScreenRows, 0 <= col < ScreenCols always has a defined bit.
type Framebuffer [ScreenRows][ScreenCols]bool

// Clear zeroes the entire grid.
func (fb *Framebuffer) Clear() {
	*fb = Framebuffer{}
}

// Draw XOR-blits an n-byte sprite (each byte one 8-pixel row, MSB leftmost)
// read from sprite into the framebuffer. The sprite's origin (vx, vy) wraps
// modulo the screen dimensions; rows and columns that fall past the right
// or bottom edge from that origin are clipped, not wrapped. It reports
// whether any previously-set pixel was turned off (a collision).
func (fb *Framebuffer) Draw(vx, vy byte, sprite []byte) (collision bool) {
	r0 := int(vy) % ScreenRows
	c0 := int(vx) % ScreenCols

	for i, row := range sprite {
		r := r0 + i
		if r >= ScreenRows {
			break
		}
		for j := 0; j < 8; j++ {
			c := c0 + j
			if c >= ScreenCols {
				break
			}
			bit := row&(0x80>>uint(j)) != 0
			old := fb[r][c]
			next := old != bit
			fb[r][c] = next
			if old && !next {
				collision = true
			}
		}
	}
	return collision
}

// String renders the framebuffer as ScreenRows lines, '█' for a set pixel
// and '.' for a clear one.
func (fb *Framebuffer) String() string {
	var b strings.Builder
	for r := 0; r < ScreenRows; r++ {
		for c := 0; c < ScreenCols; c++ {
			if fb[r][c] {
				b.WriteRune('█')
			} else {
				b.WriteRune('.')
			}
		}
		if r != ScreenRows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
