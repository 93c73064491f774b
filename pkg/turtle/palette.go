package turtle

import "image/color"

// Palette maps every color name the language accepts to its RGBA value.
var Palette = map[string]color.RGBA{
	"white":   {0xFF, 0xFF, 0xFF, 0xFF},
	"black":   {0x00, 0x00, 0x00, 0xFF},
	"red":     {0xFF, 0x00, 0x00, 0xFF},
	"green":   {0x00, 0x80, 0x00, 0xFF},
	"blue":    {0x00, 0x00, 0xFF, 0xFF},
	"cyan":    {0x00, 0xFF, 0xFF, 0xFF},
	"yellow":  {0xFF, 0xFF, 0x00, 0xFF},
	"magenta": {0xFF, 0x00, 0xFF, 0xFF},
	"orange":  {0xFF, 0xA5, 0x00, 0xFF},
	"brown":   {0xA5, 0x2A, 0x2A, 0xFF},
	"purple":  {0x80, 0x00, 0x80, 0xFF},
	"pink":    {0xFF, 0xC0, 0xCB, 0xFF},
	"gray":    {0x80, 0x80, 0x80, 0xFF},
	"gold":    {0xFF, 0xD7, 0x00, 0xFF},
	"navy":    {0x00, 0x00, 0x80, 0xFF},
	"lime":    {0x00, 0xFF, 0x00, 0xFF},
}

// lookupColor returns the palette entry for name, or black for unknown names.
func lookupColor(name string) color.RGBA {
	if c, ok := Palette[name]; ok {
		return c
	}
	return Palette["black"]
}
