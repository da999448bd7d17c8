/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package xcassets

import "encoding/json"

// Descriptor constants.
const (
	ColorSpaceSRGB = "srgb"
	IdiomUniversal = "universal"
)

// XcodeInfo is the info block Xcode writes into every Contents.json.
var XcodeInfo = Info{Author: "xcode", Version: 1}

// Contents is a Contents.json descriptor. The catalog root carries only Info.
// Field order is alphabetical, as Xcode writes it.
type Contents struct {
	Colors []ColorEntry `json:"colors,omitempty"`
	Info   Info         `json:"info"`
}

// Info identifies the descriptor format.
type Info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// ColorEntry is one appearance variant of a colorset.
type ColorEntry struct {
	Appearances []Appearance `json:"appearances,omitempty"`
	Color       Color        `json:"color"`
	Idiom       string       `json:"idiom"`
}

// Appearance gates a ColorEntry on a trait such as dark luminosity.
type Appearance struct {
	Appearance string `json:"appearance"`
	Value      string `json:"value"`
}

// Color is a color value in a named color space.
type Color struct {
	ColorSpace string     `json:"color-space"`
	Components Components `json:"components"`
}

// Components are hex channel strings plus a decimal alpha.
type Components struct {
	Alpha string `json:"alpha"`
	Blue  string `json:"blue"`
	Green string `json:"green"`
	Red   string `json:"red"`
}

// Marshal encodes the descriptor with two-space indentation and a trailing
// newline.
func (c *Contents) Marshal() ([]byte, error) {
	out, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
