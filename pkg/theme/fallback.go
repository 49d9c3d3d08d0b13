package theme

import (
	"math"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// ColorDepth returns the number of colour bits a termenv profile can
// display.
func ColorDepth(p termenv.Profile) int {
	switch p {
	case termenv.TrueColor:
		return 24
	case termenv.ANSI256:
		return 8
	case termenv.ANSI:
		return 4
	default:
		return 1
	}
}

// Adapt converts every hex colour in p to the nearest 256-colour index
// when colorDepth is below 24 bits. True-colour palettes are returned
// unchanged.
func Adapt(p Palette, colorDepth int) Palette {
	if colorDepth >= 24 {
		return p
	}
	for _, f := range paletteFields(&p) {
		*f.val = to256Color(*f.val)
	}
	return p
}

// to256Color maps "#ff5500" to the nearest xterm-256 index, as a decimal
// string. Unparseable input is returned unchanged.
func to256Color(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return hex
	}

	cube := nearestCubeIndex(r, g, b)
	gray := nearestGray(r, g, b)

	cr, cg, cb := cubeToRGB(cube)
	gv := grayToValue(gray)
	idx := cube
	if colorDistance(r, g, b, gv, gv, gv) < colorDistance(r, g, b, cr, cg, cb) {
		idx = gray
	}
	return strconv.Itoa(idx)
}

var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// nearestCubeIndex finds the closest entry of the 6x6x6 cube (16-231).
func nearestCubeIndex(r, g, b uint8) int {
	return 16 + 36*nearestCubeLevel(r) + 6*nearestCubeLevel(g) + nearestCubeLevel(b)
}

func nearestCubeLevel(v uint8) int {
	best, bestDist := 0, math.MaxInt32
	for i, lv := range cubeLevels {
		d := int(v) - int(lv)
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// nearestGray finds the closest entry of the grayscale ramp (232-255,
// values 8..238 in steps of 10).
func nearestGray(r, g, b uint8) int {
	avg := (int(r) + int(g) + int(b)) / 3
	idx := (avg - 8 + 5) / 10
	return 232 + min(max(idx, 0), 23)
}

func cubeToRGB(idx int) (r, g, b uint8) {
	idx -= 16
	return cubeLevels[idx/36], cubeLevels[(idx%36)/6], cubeLevels[idx%6]
}

func grayToValue(idx int) uint8 {
	return uint8(8 + (idx-232)*10)
}

func colorDistance(r1, g1, b1, r2, g2, b2 uint8) float64 {
	dr := float64(r1) - float64(r2)
	dg := float64(g1) - float64(g2)
	db := float64(b1) - float64(b2)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// parseHex accepts "#RRGGBB" or "RRGGBB".
func parseHex(hex string) (r, g, b uint8, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
