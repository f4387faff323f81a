// Package contrast picks legible ink for text drawn on a colored background.
package contrast

import (
	"github.com/lazyvibe/tabdeck/internal/model"
	"github.com/lucasb-eyer/go-colorful"
)

// Ink is the foreground chosen for a background. Only black and white are produced.
type Ink string

const (
	// Black ink, for light backgrounds.
	Black Ink = "black"
	// White ink, for dark backgrounds.
	White Ink = "white"
)

// Hex returns the ink as a hex color usable by lipgloss.
func (i Ink) Hex() string {
	if i == White {
		return "#FFFFFF"
	}
	return "#000000"
}

// Luminance returns the WCAG relative luminance of c.
// ok is false when c is empty or not a hex color.
func Luminance(c model.Color) (float64, bool) {
	s := c.Hex()
	if s == "" {
		return 0, false
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return 0, false
	}
	r, g, b := col.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, true
}

// Ratio returns the WCAG contrast ratio between two luminances.
func Ratio(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// TextColorFor returns whichever of black or white contrasts more with bg.
// Unparsable backgrounds get black.
func TextColorFor(bg model.Color) Ink {
	l, ok := Luminance(bg)
	if !ok {
		return Black
	}
	if Ratio(1, l) > Ratio(l, 0) {
		return White
	}
	return Black
}
