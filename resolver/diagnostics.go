/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"bennypowers.dev/colgen/fs"
)

// Names of the side files written by Listings.WriteFiles.
const (
	PrimitiveFile   = ".colgen.primitive.resolved"
	SemanticFile    = ".colgen.semantic.resolved"
	SemanticHexFile = ".colgen.semantic.hex.resolved"
)

// Listings are plain-text tables describing a resolution, for debugging.
type Listings struct {
	// Primitives lists primitive name / value.
	Primitives string

	// Semantic lists semantic name / light reference / dark reference.
	Semantic string

	// SemanticHex lists semantic name / light hex / dark hex.
	SemanticHex string
}

// Listings renders the resolution as three padded tables. Without
// namespacing, names are shortened to their last segment, matching the
// names the catalog writer will use.
func (r *Resolution) Listings(useNamespacing bool) Listings {
	label := func(name string) string {
		if !useNamespacing {
			name = name[strings.LastIndex(name, ".")+1:]
		}
		return strings.TrimPrefix(name, "Color.")
	}

	primNames := make([]string, 0, len(r.Primitives))
	for name := range r.Primitives {
		primNames = append(primNames, name)
	}
	sort.Strings(primNames)

	primWidth := 0
	for _, name := range primNames {
		primWidth = max(primWidth, len(label(name)))
	}
	nameWidth, refWidth := 0, 0
	for _, sem := range r.Semantics {
		nameWidth = max(nameWidth, len(label(sem.Name)))
		refWidth = max(refWidth, len(label(sem.Light.Value)))
	}

	var prims, semantic, hexes []string
	for _, name := range primNames {
		prims = append(prims, fmt.Sprintf("%-*s%s", primWidth+2, label(name), r.Primitives[name].Value))
	}
	for _, sem := range r.Semantics {
		semantic = append(semantic, fmt.Sprintf("%-*s%-*s%s",
			nameWidth+2, label(sem.Name), refWidth+2, label(sem.Light.Value), label(sem.Dark.Value)))
		pair := r.Colors[sem.Name]
		hexes = append(hexes, strings.TrimRight(fmt.Sprintf("%-*s%-16s%s",
			nameWidth+2, label(sem.Name), pair.Light, pair.Dark), " "))
	}

	return Listings{
		Primitives:  strings.Join(prims, "\n"),
		Semantic:    strings.Join(semantic, "\n"),
		SemanticHex: strings.Join(hexes, "\n"),
	}
}

// String renders all three tables with section headings.
func (l Listings) String() string {
	var sb strings.Builder
	section := func(title, body string) {
		sb.WriteString("\n--- ")
		sb.WriteString(title)
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", max(0, 100-len(title))))
		sb.WriteString("\n")
		sb.WriteString(body)
		sb.WriteString("\n")
	}
	section("Primitive Colors: [Name / HEX]", l.Primitives)
	section("Semantic Colors: [Name / Light / Dark]", l.Semantic)
	section("Semantic Colors: [Name / LightHEX / DarkHEX]", l.SemanticHex)
	return sb.String()
}

// WriteFiles writes the three tables into dir.
func (l Listings) WriteFiles(filesystem fs.FileSystem, dir string) error {
	files := []struct {
		name string
		body string
	}{
		{PrimitiveFile, l.Primitives},
		{SemanticFile, l.Semantic},
		{SemanticHexFile, l.SemanticHex},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := filesystem.WriteFile(path, []byte(f.body), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
