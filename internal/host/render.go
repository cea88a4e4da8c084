package host

import (
	"strings"

	"github.com/retroenv/retrochip8/internal/display"
)

// Render converts a row-major frame buffer into text. Every character
// covers two pixel rows using half block glyphs.
func Render(pixels []bool) string {
	var sb strings.Builder
	sb.Grow((display.Width*3 + 1) * display.Height / 2)

	for y := 0; y < display.Height; y += 2 {
		for x := 0; x < display.Width; x++ {
			top := pixel(pixels, x, y)
			bottom := pixel(pixels, x, y+1)

			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func pixel(pixels []bool, x, y int) bool {
	i := y*display.Width + x
	return i < len(pixels) && pixels[i]
}
