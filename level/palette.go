package level

// DefaultColor is used for blocks without a palette entry.
const DefaultColor = "#d3d3d3"

// Palette maps blocks to "#rrggbb" colours.
type Palette map[Block]string

// DefaultPalette returns the standard colour map.
func DefaultPalette() Palette {
	return Palette{
		Empty:    DefaultColor,
		Hookable: "#a9a9a9",
		Freeze:   "#898989",
		Spawn:    "#ffffff",
		Start:    "#00ff00",
		Finish:   "#ffa500",
		Flood:    "#ff0000",
	}
}

// Color returns the colour of b, or DefaultColor when p has no entry.
func (p Palette) Color(b Block) string {
	if c, ok := p[b]; ok {
		return c
	}
	return DefaultColor
}
