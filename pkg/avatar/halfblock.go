package avatar

import (
	"fmt"
	"image"
	"strings"
)

// Halfblocks renders img with one upper half block per cell: the top
// pixel is the foreground and the bottom pixel the background. Fully
// transparent pixels leave the terminal background showing.
func Halfblocks(img *image.NRGBA) string {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(b.Dx() * (b.Dy()/2 + 1) * 40)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteString("\x1b[0m\n")
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.NRGBAAt(x, y)
			var bot = top
			bot.A = 0
			if y+1 < b.Max.Y {
				bot = img.NRGBAAt(x, y+1)
			}
			switch {
			case top.A == 0 && bot.A == 0:
				sb.WriteString("\x1b[0m ")
			case top.A == 0:
				fmt.Fprintf(&sb, "\x1b[49;38;2;%d;%d;%dm▄", bot.R, bot.G, bot.B)
			case bot.A == 0:
				fmt.Fprintf(&sb, "\x1b[49;38;2;%d;%d;%dm▀", top.R, top.G, top.B)
			default:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%d;48;2;%d;%d;%dm▀",
					top.R, top.G, top.B, bot.R, bot.G, bot.B)
			}
		}
	}
	sb.WriteString("\x1b[0m")
	return sb.String()
}
