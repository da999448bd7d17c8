/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package xcassets

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nameReplacer = strings.NewReplacer("&", "-and", "_", "-", " ", "-")

// CleanName makes a color name safe for use as a colorset path:
// '&' becomes "-and", spaces and underscores become '-', everything
// except letters, digits, '-' and '.' is dropped, and the result is lower
// case with runs of '-' collapsed. "Signal & Hope_Now" becomes
// "signal-and-hope-now".
func CleanName(name string) string {
	lowered := cases.Lower(language.Und).String(nameReplacer.Replace(name))

	var sb strings.Builder
	var prev rune
	for _, r := range lowered {
		switch {
		case r == '-' && prev == '-':
			continue
		case r == '-', r == '.', unicode.IsLetter(r), unicode.IsNumber(r), unicode.IsMark(r):
			sb.WriteRune(r)
			prev = r
		}
	}
	return sb.String()
}

// ColorPath returns the slash-separated colorset path for a color name.
// With namespacing every dot-separated segment becomes a directory;
// without it only the last segment is used, so "Signal.Success.success50"
// becomes "success50". It returns false if the cleaned name is empty.
func ColorPath(name string, useNamespacing bool) (string, bool) {
	var segments []string
	for _, s := range strings.Split(CleanName(name), ".") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return "", false
	}
	if !useNamespacing {
		return segments[len(segments)-1], true
	}
	return strings.Join(segments, "/"), true
}
