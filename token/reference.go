/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "strings"

// TrimReference removes a single pair of surrounding curly braces.
// It returns the inner path and true for {color.primary}, or the value
// unchanged and false otherwise.
func TrimReference(value string) (string, bool) {
	if len(value) >= 2 && strings.HasPrefix(value, "{") && strings.HasSuffix(value, "}") {
		return value[1 : len(value)-1], true
	}
	return value, false
}

// IsExcluded reports whether a token name belongs to a category that is
// never treated as a color.
func IsExcluded(name string) bool {
	return strings.HasPrefix(name, DimensionsNamespace)
}
