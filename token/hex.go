/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// HexDigits is the length of a normalized RRGGBBAA value.
const HexDigits = 8

// NormalizeHex converts a 3 to 8 digit hex color, with or without leading
// '#', to eight upper-case digits. Missing trailing digits are padded with
// 'F', so "#1A73E8" becomes "1A73E8FF" and "ABC" becomes "ABCFFFFF".
func NormalizeHex(hex string) (string, bool) {
	h := strings.ToUpper(strings.TrimLeft(hex, "#"))
	if len(h) < 3 || len(h) > HexDigits {
		return "", false
	}
	h += strings.Repeat("F", HexDigits-len(h))
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return "", false
	}
	return h, true
}

// NormalizeColor normalizes a primitive color value to RRGGBBAA.
// Hex values follow NormalizeHex. Other CSS color syntaxes (rgb(), hsl(),
// named colors) are converted. Values that are not colors are returned
// unchanged with ok=false so that downstream validation reports them.
func NormalizeColor(value string) (string, bool) {
	if hex, ok := NormalizeHex(value); ok {
		return hex, true
	}
	c, err := csscolorparser.Parse(strings.TrimSpace(value))
	if err != nil {
		return value, false
	}
	r, g, b, a := c.RGBA255()
	return fmt.Sprintf("%02X%02X%02X%02X", r, g, b, a), true
}
