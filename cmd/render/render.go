/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/colgen/resolver"
	"bennypowers.dev/colgen/xcassets"
)

// Row holds computed display values for a single semantic color.
type Row struct {
	Name    string   // Semantic token name
	Light   string   // Resolved light hex, empty if unresolved
	Dark    string   // Resolved dark hex, empty if unresolved
	Invalid bool     // Whether the catalog writer would reject this color
	Path    []string // Dot-separated name segments
}

// ComputeRows transforms a resolution into display rows, sorted by name.
func ComputeRows(res *resolver.Resolution) []Row {
	rows := make([]Row, 0, len(res.Semantics))
	for _, s := range res.Semantics {
		pair := res.Colors[s.Name]
		rows = append(rows, Row{
			Name:    s.Name,
			Light:   pair.Light,
			Dark:    pair.Dark,
			Invalid: s.Err != nil || !xcassets.NewSemanticColor(pair.Light, pair.Dark).IsValid(),
			Path:    strings.Split(s.Name, "."),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// Filter keeps rows whose first path segment equals group, case-insensitively.
// An empty group keeps every row.
func Filter(rows []Row, group string, invalidOnly bool) []Row {
	filtered := make([]Row, 0, len(rows))
	for _, r := range rows {
		if group != "" && !strings.EqualFold(r.Path[0], group) {
			continue
		}
		if invalidOnly && !r.Invalid {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, light, dark int) {
	name, light, dark = 4, 5, 4 // minimums for headers
	for _, r := range rows {
		name = max(name, len(r.Name))
		light = max(light, len(r.Light))
		dark = max(dark, len(r.Dark))
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for an RRGGBBAA hex value,
// or an empty string if the value is not a color.
func ColorSwatch(hex string) string {
	c, err := csscolorparser.Parse("#" + strings.TrimPrefix(hex, "#"))
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as an aligned table with swatches.
func Table(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, lightW, _ := ColumnWidths(rows)
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-*s  %s%-*s  %s%s\n",
			nameW, r.Name,
			ColorSwatch(r.Light), lightW, r.Light,
			ColorSwatch(r.Dark), r.Dark,
		); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders rows as markdown tables grouped by their first segment.
func Markdown(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	// Group rows, preserving order of first occurrence
	groupOrder := make([]string, 0)
	byGroup := make(map[string][]Row)
	for _, r := range rows {
		g := r.Path[0]
		if len(r.Path) == 1 {
			g = ""
		}
		if _, exists := byGroup[g]; !exists {
			groupOrder = append(groupOrder, g)
		}
		byGroup[g] = append(byGroup[g], r)
	}

	var sb strings.Builder
	for i, g := range groupOrder {
		if i > 0 {
			sb.WriteString("\n")
		}
		heading := "Ungrouped"
		if g != "" {
			heading = toTitleCase(g)
		}
		fmt.Fprintf(&sb, "## %s\n\n", heading)

		nameW, lightW, darkW := ColumnWidths(byGroup[g])
		fmt.Fprintf(&sb, "| %-*s | %-*s | %-*s |\n", nameW, "Name", lightW, "Light", darkW, "Dark")
		fmt.Fprintf(&sb, "|-%s-|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", lightW), strings.Repeat("-", darkW))
		for _, r := range byGroup[g] {
			fmt.Fprintf(&sb, "| %-*s | %-*s | %-*s |\n", nameW, r.Name, lightW, r.Light, darkW, r.Dark)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Names renders just the color names, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}
