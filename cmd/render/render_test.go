/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"bytes"
	"errors"
	"io"
	"os"
	"slices"
	"strings"
	"testing"

	"bennypowers.dev/colgen/internal/logger"
	"bennypowers.dev/colgen/resolver"
	"bennypowers.dev/colgen/testutil"
	"bennypowers.dev/colgen/token"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func testRows() []Row {
	return []Row{
		{Name: "Brand.Primary", Light: "1A73E8FF", Dark: "1A73E8FF", Path: []string{"Brand", "Primary"}},
		{Name: "Signal.Error", Light: "FF0000FF", Dark: "00FF00FF", Path: []string{"Signal", "Error"}},
		{Name: "Signal.Missing", Light: "Nope.1", Dark: "Nope.1", Invalid: true, Path: []string{"Signal", "Missing"}},
		{Name: "Background", Light: "FFFFFFFF", Dark: "000000FF", Path: []string{"Background"}},
	}
}

func TestComputeRows(t *testing.T) {
	res := &resolver.Resolution{
		Semantics: []resolver.Semantic{
			{Name: "Signal.Error"},
			{Name: "Brand.Primary", Err: errors.New("unresolved")},
		},
		Colors: token.Mapping{
			"Signal.Error":  {Light: "FF0000FF", Dark: "00FF00FF"},
			"Brand.Primary": {Light: "Blue.500", Dark: "Blue.500"},
		},
	}

	rows := ComputeRows(res)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "Brand.Primary" || !rows[0].Invalid {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Light != "FF0000FF" || rows[1].Dark != "00FF00FF" || rows[1].Invalid {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
	if strings.Join(rows[1].Path, "/") != "Signal/Error" {
		t.Errorf("unexpected path: %v", rows[1].Path)
	}
}

func TestComputeRows_InvalidMatchesWriter(t *testing.T) {
	res, err := resolver.ResolveDetailed(testutil.LoadFixtureFile(t, "fixtures/tokens/broken/tokens.json"), resolver.Options{
		PrimitiveKey: "Primitives",
		LightKey:     "Light",
		DarkKey:      "Dark",
	})
	if err != nil {
		t.Fatalf("ResolveDetailed() error = %v", err)
	}

	var invalid []string
	for _, r := range Filter(ComputeRows(res), "", true) {
		invalid = append(invalid, r.Name)
	}
	// Text.Invalid resolves to a non-color primitive value, which the
	// writer rejects even though its reference was found.
	want := []string{"Text.Cyclic", "Text.Invalid", "Text.Missing"}
	if !slices.Equal(invalid, want) {
		t.Errorf("invalid rows = %v, want %v", invalid, want)
	}
}

func TestComputeRows_NonColorValue(t *testing.T) {
	res := &resolver.Resolution{
		Semantics: []resolver.Semantic{{Name: "X"}},
		Colors:    token.Mapping{"X": {Light: "not-a-color", Dark: "not-a-color"}},
	}
	rows := ComputeRows(res)
	if len(rows) != 1 || !rows[0].Invalid {
		t.Errorf("expected X to be invalid, got %+v", rows)
	}
}

func TestFilter(t *testing.T) {
	rows := testRows()

	t.Run("no filters", func(t *testing.T) {
		if got := Filter(rows, "", false); len(got) != 4 {
			t.Errorf("expected 4 rows, got %d", len(got))
		}
	})

	t.Run("by group", func(t *testing.T) {
		got := Filter(rows, "signal", false)
		if len(got) != 2 {
			t.Errorf("expected 2 signal rows, got %d", len(got))
		}
	})

	t.Run("invalid only", func(t *testing.T) {
		got := Filter(rows, "", true)
		if len(got) != 1 || got[0].Name != "Signal.Missing" {
			t.Errorf("unexpected rows: %+v", got)
		}
	})
}

func TestColumnWidths(t *testing.T) {
	name, light, dark := ColumnWidths(testRows())
	if name != len("Signal.Missing") {
		t.Errorf("name width = %d", name)
	}
	if light != 8 || dark != 8 {
		t.Errorf("light/dark width = %d/%d, want 8/8", light, dark)
	}

	name, light, dark = ColumnWidths(nil)
	if name != 4 || light != 5 || dark != 4 {
		t.Errorf("minimum widths = %d/%d/%d", name, light, dark)
	}
}

func TestColorSwatch(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"FF0000FF", "\x1b[48;2;255;0;0m  \x1b[0m "},
		{"#00FF00FF", "\x1b[48;2;0;255;0m  \x1b[0m "},
		{"Nope.1", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := ColorSwatch(tt.value); got != tt.expected {
				t.Errorf("ColorSwatch(%q) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, testRows()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Brand.Primary   ") {
		t.Errorf("name column not padded: %q", lines[0])
	}
	if !strings.Contains(lines[2], "Nope.1") || strings.Contains(lines[2], "\x1b[48;2") {
		t.Errorf("invalid row should have no swatch: %q", lines[2])
	}
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown(&buf, testRows()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, heading := range []string{"## Brand\n", "## Signal\n", "## Ungrouped\n"} {
		if !strings.Contains(out, heading) {
			t.Errorf("missing heading %q in:\n%s", heading, out)
		}
	}
	if strings.Index(out, "## Brand") > strings.Index(out, "## Signal") {
		t.Error("groups should keep first-occurrence order")
	}
	if !strings.Contains(out, "| Signal.Error   | FF0000FF | 00FF00FF |") {
		t.Errorf("missing signal row in:\n%s", out)
	}
}

func TestNames(t *testing.T) {
	var buf bytes.Buffer
	if err := Names(&buf, testRows()[:2]); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Brand.Primary\nSignal.Error\n" {
		t.Errorf("Names() = %q", buf.String())
	}
}

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"signal", "Signal"},
		{"Brand", "Brand"},
		{"surface-raised", "Surface-Raised"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := toTitleCase(tt.input); got != tt.expected {
				t.Errorf("toTitleCase(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
