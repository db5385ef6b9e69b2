package hop

import "github.com/vovakirdan/mattress-hop/internal/core"

// spriteSize is the edge length of the square character pixel map.
const spriteSize = 16

// spritePalette maps pixel map digits to cell colors. Index 0 is transparent.
var spritePalette = [...]core.Color{
	0: core.ColorDefault,
	1: core.ColorBlack, // hair, eyes, shoes
	2: core.ColorSkin,
	3: core.ColorBlue, // shirt
	4: core.ColorRed,  // shorts
}

// spriteMaps holds the two walk-cycle frames: legs together, legs apart.
var spriteMaps = [spriteFrames][spriteSize]string{
	{
		"0000000000000000",
		"0000011111100000",
		"0000011111100000",
		"0000022222200000",
		"0000021221200000",
		"0000022222200000",
		"0000003333000000",
		"0000033333300000",
		"0000333333330000",
		"0000033333300000",
		"0000033333300000",
		"0000044444400000",
		"0000044004400000",
		"0000044004400000",
		"0000011001100000",
		"0000000000000000",
	},
	{
		"0000000000000000",
		"0000011111100000",
		"0000011111100000",
		"0000022222200000",
		"0000021221200000",
		"0000022222200000",
		"0000003333000000",
		"0000033333300000",
		"0000333333330000",
		"0000033333300000",
		"0000033333300000",
		"0000044444400000",
		"0000440000440000",
		"0000440000440000",
		"0000110000110000",
		"0000000000000000",
	},
}

// spritePixel returns the palette index at (u, v) of the given frame.
// Out-of-range lookups are transparent.
func spritePixel(frame, u, v int) int {
	if frame < 0 || frame >= spriteFrames || u < 0 || u >= spriteSize || v < 0 || v >= spriteSize {
		return 0
	}
	return int(spriteMaps[frame][v][u] - '0')
}
