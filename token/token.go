/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the types shared by the token resolver and the
// asset catalog writer.
package token

import (
	"sort"
	"strings"
)

// DimensionsNamespace is the Figma export category that holds sizes, not
// colors. Tokens under it are never resolved.
const DimensionsNamespace = "Dimensions."

// RawToken is one leaf of a design token export.
type RawToken struct {
	// Name is the dot-joined key path with the token's parent prefix removed
	// (e.g., "Brand.Primary" with parent "Brand" becomes "Primary").
	Name string

	// Value is the token value with one pair of surrounding braces removed.
	Value string

	// IsReference is true when Value was written as {some.path}.
	IsReference bool

	// Path is the key path the token was found at.
	Path []string
}

// NewRawToken builds a token from the key path and the leaf's string fields.
func NewRawToken(path []string, fields map[string]string) RawToken {
	name := strings.Join(path, ".")
	if parent := fields["parent"]; parent != "" {
		name = strings.TrimPrefix(name, parent+".")
	}
	value, isRef := TrimReference(fields["value"])
	return RawToken{
		Name:        name,
		Value:       value,
		IsReference: isRef,
		Path:        path,
	}
}

// Pair is a resolved light/dark color. An empty string means the color could
// not be resolved.
type Pair struct {
	Light string
	Dark  string
}

// IsResolved reports whether the light side resolved to a value.
func (p Pair) IsResolved() bool {
	return p.Light != ""
}

// Mapping maps a semantic color name to its resolved pair.
type Mapping map[string]Pair

// Names returns the mapping's keys in sorted order.
func (m Mapping) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
