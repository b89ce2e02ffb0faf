package galaxy

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// VioletHex is the default star palette: lilacs, lavenders and amethysts.
var VioletHex = []string{
	"#d0bfff",
	"#b19cd9",
	"#cdb4db",
	"#d8b4f8",
	"#e0c3fc",
	"#c8a8e9",
	"#ddbfe8",
	"#b794d6",
	"#e5d4f1",
	"#a584c4",
	"#c39bd3",
	"#bb8fce",
	"#af7ac5",
	"#a569bd",
	"#9b59b6",
}

var Violet = MustPalette(VioletHex)

// ParsePalette converts "#rrggbb" strings into opaque colors.
func ParsePalette(hexes []string) ([]color.RGBA, error) {
	if len(hexes) == 0 {
		return nil, ErrEmptyPalette
	}
	out := make([]color.RGBA, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("galaxy: palette entry %d: %w", i, err)
		}
		r, g, b := c.RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return out, nil
}

func MustPalette(hexes []string) []color.RGBA {
	p, err := ParsePalette(hexes)
	if err != nil {
		panic(err)
	}
	return p
}
