package core

import "image/color"

// Colour is a point in the RGB colour cube. Components may exceed [0, 1]
// during accumulation; only ToRGBA clamps to 8-bit channels.
type Colour struct {
	R, G, B float64
}

// NewColour creates a new Colour
func NewColour(r, g, b float64) Colour {
	return Colour{R: r, G: g, B: b}
}

// Common colours.
var (
	Black = Colour{0, 0, 0}
	White = Colour{1, 1, 1}
	Grey  = Colour{0.5, 0.5, 0.5}
	Red   = Colour{1, 0, 0}
	Green = Colour{0, 1, 0}
	Blue  = Colour{0, 0, 1}
)

// Add returns the component-wise sum of two colours
func (c Colour) Add(other Colour) Colour {
	return Colour{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference of two colours
func (c Colour) Subtract(other Colour) Colour {
	return Colour{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the component-wise product of two colours
func (c Colour) Multiply(other Colour) Colour {
	return Colour{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns the colour scaled by a scalar
func (c Colour) Scale(scalar float64) Colour {
	return Colour{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Divide returns the colour scaled by the reciprocal of a scalar
func (c Colour) Divide(scalar float64) Colour {
	return Colour{c.R / scalar, c.G / scalar, c.B / scalar}
}

// ToRGBA tone-maps the colour to an 8-bit RGBA pixel. Colours brighter
// than the displayable range are divided by their maximum channel before
// clamping, which preserves hue instead of washing out to white.
func (c Colour) ToRGBA() color.RGBA {
	maxChannel := max(c.R, c.G, c.B)
	if maxChannel > 1.0 {
		c = c.Divide(maxChannel)
	}
	return color.RGBA{
		R: clampChannel(c.R),
		G: clampChannel(c.G),
		B: clampChannel(c.B),
		A: 255,
	}
}

func clampChannel(v float64) uint8 {
	scaled := v * 255.0
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
