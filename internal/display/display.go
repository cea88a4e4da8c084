// Package display implements the CHIP-8 monochrome frame buffer.
package display

// Display dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// FrameBuffer is a 64x32 grid of pixels with its origin at the top left.
type FrameBuffer struct {
	pixels [Height][Width]bool
}

// New returns a cleared frame buffer.
func New() *FrameBuffer {
	return &FrameBuffer{}
}

// Clear turns all pixels off.
func (f *FrameBuffer) Clear() {
	f.pixels = [Height][Width]bool{}
}

// DrawByte XORs the 8 bits of value, most significant bit first, into row y
// starting at column x. Pixels that would fall at or beyond the right edge
// are clipped. It returns whether any pixel was switched from on to off.
func (f *FrameBuffer) DrawByte(x, y int, value byte) bool {
	row := &f.pixels[y%Height]
	collided := false

	for i := 0; i < 8; i++ {
		column := x + i
		if column >= Width {
			break
		}
		if !Bit(value, i) {
			continue
		}
		if row[column] {
			collided = true
		}
		row[column] = !row[column]
	}

	return collided
}

// Pixel returns whether the pixel at the given coordinates is on.
func (f *FrameBuffer) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return f.pixels[y][x]
}

// Export returns the pixels flattened in row-major order.
func (f *FrameBuffer) Export() []bool {
	out := make([]bool, 0, Width*Height)
	for y := range f.pixels {
		out = append(out, f.pixels[y][:]...)
	}
	return out
}

// Bit returns whether the bit at position p of b is set, counting from the
// most significant bit.
func Bit(b byte, p int) bool {
	return b&(0x80>>uint(p)) != 0
}
