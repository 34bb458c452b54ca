package tree

import "image/color"

// A Palette is every colour a render may use.
type Palette struct {
	// Backgrounds for colour, monochrome and inverted renders.
	Sky, Paper, Night color.RGBA

	Trunk color.RGBA

	// Leaf colours, used only at the outermost depth.
	Summer, Spring, WinterBud color.RGBA

	// Fall leaves. A tree that isn't mixed uses one of these for every leaf.
	Fall []color.RGBA

	// Monochrome line colours.
	Ink, InvertedInk color.RGBA
}

// DefaultPalette returns the sky, bark and leaf colours trees are drawn with.
func DefaultPalette() Palette {
	return Palette{
		Sky:       color.RGBA{R: 157, G: 175, B: 247, A: 255},
		Paper:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Night:     color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Trunk:     color.RGBA{R: 98, G: 90, B: 21, A: 255},
		Summer:    color.RGBA{R: 52, G: 186, B: 106, A: 255},
		Spring:    color.RGBA{R: 255, G: 183, B: 197, A: 255},
		WinterBud: color.RGBA{R: 117, G: 76, B: 36, A: 255},
		Fall: []color.RGBA{
			{R: 244, G: 244, B: 122, A: 255},
			{R: 204, G: 69, B: 38, A: 255},
			{R: 181, G: 108, B: 36, A: 255},
		},
		Ink:         color.RGBA{R: 0, G: 0, B: 0, A: 255},
		InvertedInk: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Background is the canvas colour for a tree drawn with the given options.
func (p Palette) Background(opts Options) color.RGBA {
	switch {
	case opts.Colors:
		return p.Sky
	case opts.Inverted:
		return p.Night
	default:
		return p.Paper
	}
}
