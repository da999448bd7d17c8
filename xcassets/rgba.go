/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package xcassets

import (
	"fmt"
	"strconv"

	"bennypowers.dev/colgen/token"
)

// RGBA is a validated color in the form the asset catalog stores it.
type RGBA struct {
	// R, G and B are two upper-case hex digits each.
	R, G, B string

	// A is the alpha channel as a decimal with three places (e.g., "0.502").
	A string
}

// ParseRGBA parses a 3 to 8 digit hex color, padding missing digits with
// 'F'. It returns false if the padded value is not hexadecimal.
func ParseRGBA(hex string) (RGBA, bool) {
	h, ok := token.NormalizeHex(hex)
	if !ok {
		return RGBA{}, false
	}
	alpha, err := strconv.ParseUint(h[6:8], 16, 8)
	if err != nil {
		alpha = 0xFF
	}
	return RGBA{
		R: h[0:2],
		G: h[2:4],
		B: h[4:6],
		A: fmt.Sprintf("%.3f", float64(alpha)/255.0),
	}, true
}

// Components returns the color in descriptor form.
func (c RGBA) Components() Components {
	return Components{
		Alpha: c.A,
		Blue:  "0x" + c.B,
		Green: "0x" + c.G,
		Red:   "0x" + c.R,
	}
}

// SemanticColor is a named color with a light and an optional dark variant.
type SemanticColor struct {
	Light *RGBA
	Dark  *RGBA
}

// NewSemanticColor parses both variants. Either may be invalid; check
// IsValid before encoding.
func NewSemanticColor(lightHex, darkHex string) SemanticColor {
	var sc SemanticColor
	if c, ok := ParseRGBA(lightHex); ok {
		sc.Light = &c
	}
	if c, ok := ParseRGBA(darkHex); ok {
		sc.Dark = &c
	}
	return sc
}

// IsValid reports whether the light variant parsed. A missing dark variant
// falls back to light.
func (sc SemanticColor) IsValid() bool {
	return sc.Light != nil
}

// Contents returns the colorset descriptor: light as the default
// appearance, dark gated on dark luminosity.
func (sc SemanticColor) Contents() (*Contents, error) {
	if sc.Light == nil {
		return nil, ErrInvalidColors
	}
	dark := sc.Dark
	if dark == nil {
		dark = sc.Light
	}
	return &Contents{
		Colors: []ColorEntry{
			{
				Color: Color{ColorSpace: ColorSpaceSRGB, Components: sc.Light.Components()},
				Idiom: IdiomUniversal,
			},
			{
				Appearances: []Appearance{{Appearance: "luminosity", Value: "dark"}},
				Color:       Color{ColorSpace: ColorSpaceSRGB, Components: dark.Components()},
				Idiom:       IdiomUniversal,
			},
		},
		Info: XcodeInfo,
	}, nil
}
