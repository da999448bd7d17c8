/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package xcassets

import (
	"encoding/json"
	"errors"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"bennypowers.dev/colgen/fs"
	"bennypowers.dev/colgen/internal/logger"
	"bennypowers.dev/colgen/internal/mapfs"
	"bennypowers.dev/colgen/testutil"
	"bennypowers.dev/colgen/token"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func readContents(t *testing.T, filesystem fs.FileSystem, path string) Contents {
	t.Helper()
	data, err := filesystem.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", path, err)
	}
	var contents Contents
	if err := json.Unmarshal(data, &contents); err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	return contents
}

func TestWriter_CatalogPath(t *testing.T) {
	w := NewWriter(mapfs.New(), "/project")
	tests := []struct {
		in   string
		want string
	}{
		{"GeneratedColors", "/project/GeneratedColors.xcassets"},
		{"Assets/Colors.xcassets", "/project/Assets/Colors.xcassets"},
		{"/abs/Colors", "/abs/Colors.xcassets"},
	}
	for _, tt := range tests {
		if got := w.CatalogPath(tt.in); got != tt.want {
			t.Errorf("CatalogPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriter_Write(t *testing.T) {
	mfs := mapfs.New()
	w := NewWriter(mfs, "/project")

	colors := token.Mapping{
		"Primary":        {Light: "1A73E8FF", Dark: "1A73E8FF"},
		"Signal.Success": {Light: "00FF00FF", Dark: "008000FF"},
	}

	catalog, err := w.Write(colors, "Colors", false)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if catalog != "/project/Colors.xcassets" {
		t.Errorf("catalog = %q", catalog)
	}

	want := []string{
		"/project/Colors.xcassets/Contents.json",
		"/project/Colors.xcassets/primary.colorset/Contents.json",
		"/project/Colors.xcassets/success.colorset/Contents.json",
	}
	if got := mfs.Files("/project"); !slices.Equal(got, want) {
		t.Errorf("Files() = %v, want %v", got, want)
	}

	root := readContents(t, mfs, "/project/Colors.xcassets/Contents.json")
	if len(root.Colors) != 0 || root.Info != XcodeInfo {
		t.Errorf("root descriptor = %+v", root)
	}
}

func TestWrite_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	catalog, err := Write(token.Mapping{"Primary": {Light: "1A73E8FF", Dark: "000000FF"}}, "GeneratedColors", false)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	// TempDir may sit behind a symlink (macOS /var -> /private/var).
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(wd, "GeneratedColors.xcassets"); catalog != want {
		t.Errorf("catalog = %q, want %q", catalog, want)
	}
	for _, rel := range []string{"Contents.json", "primary.colorset/Contents.json"} {
		if _, err := os.Stat(filepath.Join(dir, "GeneratedColors.xcassets", rel)); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
}

func TestWriter_Namespacing(t *testing.T) {
	mfs := mapfs.New()
	w := NewWriter(mfs, "/project")

	colors := token.Mapping{
		"Signal.Success.success50": {Light: "00FF00", Dark: "00FF00"},
		"Other.success50":          {Light: "FF0000", Dark: "FF0000"},
	}

	t.Run("on nests directories", func(t *testing.T) {
		if _, err := w.Write(colors, "Colors", true); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		want := []string{
			"/project/Colors.xcassets",
			"/project/Colors.xcassets/other/success50.colorset",
			"/project/Colors.xcassets/signal/success/success50.colorset",
		}
		if got := mfs.Dirs("/project"); !slices.Equal(got, want) {
			t.Errorf("Dirs() = %v, want %v", got, want)
		}
	})

	t.Run("off reports shared last segment as duplicate", func(t *testing.T) {
		_, err := w.Write(colors, "Colors", false)
		var dupErr *DuplicateNamesError
		if !errors.As(err, &dupErr) {
			t.Fatalf("expected DuplicateNamesError, got %v", err)
		}
		if !slices.Equal(dupErr.Names, []string{"success50"}) {
			t.Errorf("Names = %v, want [success50]", dupErr.Names)
		}
		if !errors.Is(err, ErrDuplicateNames) {
			t.Errorf("expected errors.Is(err, ErrDuplicateNames)")
		}

		// The first entry in name order wins; the second is not written over it.
		contents := readContents(t, mfs, "/project/Colors.xcassets/success50.colorset/Contents.json")
		if red := contents.Colors[0].Color.Components.Red; red != "0xFF" {
			t.Errorf("Red = %q, want 0xFF", red)
		}
		if mfs.Exists("/project/Colors.xcassets/Contents.json") {
			t.Error("root descriptor written for a failed catalog")
		}
	})
}

func TestWriter_InvalidColors(t *testing.T) {
	mfs := mapfs.New()
	w := NewWriter(mfs, "/project")

	colors := token.Mapping{
		"Text.Missing": {},
		"Text.Garbage": {Light: "not-a-color", Dark: "not-a-color"},
		"Text.Primary": {Light: "000000FF", Dark: "FFFFFFFF"},
		"!!!":          {Light: "000000FF", Dark: "000000FF"},
	}

	_, err := w.Write(colors, "Colors", true)
	var invalidErr *InvalidColorError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidColorError, got %v", err)
	}
	if want := []string{"!!!", "text/garbage", "text/missing"}; !slices.Equal(invalidErr.Names, want) {
		t.Errorf("Names = %v, want %v", invalidErr.Names, want)
	}
	if !errors.Is(err, ErrInvalidColors) {
		t.Error("expected errors.Is(err, ErrInvalidColors)")
	}

	if mfs.Exists("/project/Colors.xcassets/text/missing.colorset/Contents.json") {
		t.Error("invalid colorset written")
	}
	if mfs.Exists("/project/Colors.xcassets/Contents.json") {
		t.Error("root descriptor written for a failed catalog")
	}
	if !mfs.Exists("/project/Colors.xcassets/text/primary.colorset/Contents.json") {
		t.Error("valid colorset not written")
	}
}

func TestWriter_InvalidTakesPriorityOverDuplicates(t *testing.T) {
	w := NewWriter(mapfs.New(), "/project")

	colors := token.Mapping{
		"A.same": {Light: "000000", Dark: "000000"},
		"B.same": {Light: "FFFFFF", Dark: "FFFFFF"},
		"Broken": {},
	}

	_, err := w.Write(colors, "Colors", false)
	var invalidErr *InvalidColorError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidColorError, got %v", err)
	}
	if !slices.Equal(invalidErr.Names, []string{"broken"}) {
		t.Errorf("Names = %v, want [broken]", invalidErr.Names)
	}
}

func TestWriter_WriteFailureRecordedAsInvalid(t *testing.T) {
	mfs := mapfs.New()
	mfs.FailWrite("/project/Colors.xcassets/b.colorset/Contents.json", errors.New("disk full"))
	w := NewWriter(mfs, "/project")

	colors := token.Mapping{
		"a": {Light: "000000", Dark: "000000"},
		"b": {Light: "111111", Dark: "111111"},
		"c": {Light: "222222", Dark: "222222"},
	}

	_, err := w.Write(colors, "Colors", false)
	var invalidErr *InvalidColorError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidColorError, got %v", err)
	}
	if !slices.Equal(invalidErr.Names, []string{"b"}) {
		t.Errorf("Names = %v, want [b]", invalidErr.Names)
	}
	if !mfs.Exists("/project/Colors.xcassets/c.colorset/Contents.json") {
		t.Error("loop should continue after a failed write")
	}
}

func TestWriter_RemovesPreviousCatalog(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/Colors.xcassets/stale.colorset/Contents.json", "{}", 0644)
	w := NewWriter(mfs, "/project")

	if _, err := w.Write(token.Mapping{"Fresh": {Light: "000000", Dark: "000000"}}, "Colors", false); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if mfs.Exists("/project/Colors.xcassets/stale.colorset") {
		t.Error("stale colorset survived")
	}
	if !mfs.Exists("/project/Colors.xcassets/fresh.colorset/Contents.json") {
		t.Error("fresh colorset missing")
	}
}

func TestWriter_RoundTrip(t *testing.T) {
	mfs := mapfs.New()
	w := NewWriter(mfs, "/project")

	if _, err := w.Write(token.Mapping{"RedGreen": {Light: "#FF0000", Dark: "#00FF00"}}, "Colors", false); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	path := "/project/Colors.xcassets/redgreen.colorset/Contents.json"
	data, err := mfs.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	testutil.CompareGolden(t, "golden/xcassets/red-green.json", data)

	contents := readContents(t, mfs, path)
	if len(contents.Colors) != 2 {
		t.Fatalf("expected 2 color entries, got %d", len(contents.Colors))
	}
	tests := []struct {
		got  Components
		want Components
	}{
		{contents.Colors[0].Color.Components, Components{Red: "0xFF", Green: "0x00", Blue: "0x00", Alpha: "1.000"}},
		{contents.Colors[1].Color.Components, Components{Red: "0x00", Green: "0xFF", Blue: "0x00", Alpha: "1.000"}},
	}
	for i, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Colors[%d] = %+v, want %+v", i, tt.got, tt.want)
		}
	}
	if contents.Colors[1].Color.ColorSpace != "srgb" {
		t.Errorf("ColorSpace = %q", contents.Colors[1].Color.ColorSpace)
	}
	if contents.Colors[1].Idiom != IdiomUniversal {
		t.Errorf("Idiom = %q", contents.Colors[1].Idiom)
	}
	if contents.Info != XcodeInfo {
		t.Errorf("Info = %+v", contents.Info)
	}
}

func TestWriter_EndToEndScenario(t *testing.T) {
	mfs := mapfs.New()
	w := NewWriter(mfs, "/project")

	if _, err := w.Write(token.Mapping{"Primary": {Light: "1A73E8FF", Dark: "1A73E8FF"}}, "GeneratedColors", false); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	contents := readContents(t, mfs, "/project/GeneratedColors.xcassets/primary.colorset/Contents.json")
	want := Components{Red: "0x1A", Green: "0x73", Blue: "0xE8", Alpha: "1.000"}
	for i, entry := range contents.Colors {
		if entry.Color.Components != want {
			t.Errorf("Colors[%d] = %+v, want %+v", i, entry.Color.Components, want)
		}
	}
}

func TestWriter_RerunIsByteIdentical(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(fs.NewOSFileSystem(), dir)
	colors := token.Mapping{
		"Primary":        {Light: "1A73E8FF", Dark: "000000FF"},
		"Signal.Error":   {Light: "FF0000FF", Dark: "00FF00FF"},
		"Signal.Success": {Light: "00FF00", Dark: ""},
	}

	snapshot := func() map[string]string {
		files := make(map[string]string)
		err := filepath.WalkDir(filepath.Join(dir, "Colors.xcassets"), func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			files[path] = string(data)
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
		return files
	}

	if _, err := w.Write(colors, "Colors", true); err != nil {
		t.Fatalf("first Write() error = %v", err)
	}
	first := snapshot()

	if _, err := w.Write(colors, "Colors", true); err != nil {
		t.Fatalf("second Write() error = %v", err)
	}
	second := snapshot()

	if len(first) != 4 {
		t.Errorf("expected 4 files, got %d", len(first))
	}
	if !maps.Equal(first, second) {
		t.Error("rerun produced different files")
	}
}
