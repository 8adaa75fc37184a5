package render

import "image/color"

// Palette holds the two colours of the effect.
type Palette struct {
	Background color.RGBA
	Spark      color.RGBA
}

// Dimmed returns the palette with a darkened spark colour, used while paused.
func (p Palette) Dimmed() Palette {
	return Palette{Background: p.Background, Spark: DarkenColor(p.Spark)}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// ToRGBA converts any color to non-premultiplied 8-bit RGBA.
func ToRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
