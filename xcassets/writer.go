/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package xcassets writes resolved colors as an Xcode asset catalog: one
// .colorset directory per color, each holding a Contents.json descriptor
// with light and dark variants, plus a root Contents.json.
package xcassets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bennypowers.dev/colgen/fs"
	"bennypowers.dev/colgen/internal/logger"
	"bennypowers.dev/colgen/token"
)

// Catalog layout.
const (
	CatalogExt   = ".xcassets"
	ColorSetExt  = ".colorset"
	ContentsFile = "Contents.json"
)

// Writer generates asset catalogs. It holds no state between runs.
type Writer struct {
	filesystem fs.FileSystem
	workDir    string
}

// NewWriter creates a Writer that resolves relative output paths against
// workDir.
func NewWriter(filesystem fs.FileSystem, workDir string) *Writer {
	return &Writer{filesystem: filesystem, workDir: workDir}
}

// Write generates a catalog on disk using the process working directory.
func Write(colors token.Mapping, outputPath string, useNamespacing bool) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewWriter(fs.NewOSFileSystem(), cwd).Write(colors, outputPath, useNamespacing)
}

// CatalogPath returns the absolute catalog path for outputPath, appending
// the .xcassets extension if missing.
func (w *Writer) CatalogPath(outputPath string) string {
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(w.workDir, outputPath)
	}
	if !strings.HasSuffix(outputPath, CatalogExt) {
		outputPath += CatalogExt
	}
	return filepath.Clean(outputPath)
}

// Write replaces any catalog at outputPath with one generated from colors
// and returns the catalog's absolute path.
//
// Every color is attempted before failing. If any color is invalid the
// result is an *InvalidColorError; otherwise, if any colorset path was
// produced twice, a *DuplicateNamesError. In both cases the partially
// written catalog must not be used.
func (w *Writer) Write(colors token.Mapping, outputPath string, useNamespacing bool) (string, error) {
	catalog := w.CatalogPath(outputPath)

	if err := w.filesystem.RemoveAll(catalog); err != nil {
		return "", fmt.Errorf("removing %s: %w", catalog, err)
	}
	if err := w.filesystem.MkdirAll(catalog, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", catalog, err)
	}

	var duplicates, invalid []string
	written := make(map[string]bool, len(colors))

	for _, name := range colors.Names() {
		pair := colors[name]

		colorPath, ok := ColorPath(name, useNamespacing)
		if !ok {
			logger.Error("color name %q is empty after cleaning", name)
			invalid = append(invalid, name)
			continue
		}
		if written[colorPath] {
			logger.Error("%q maps to already generated %s", name, colorPath)
			duplicates = append(duplicates, colorPath)
			continue
		}

		contents, err := NewSemanticColor(pair.Light, pair.Dark).Contents()
		if err != nil {
			logger.Error("couldn't generate contents JSON for %s in %s (light=%q)", name, colorPath, pair.Light)
			invalid = append(invalid, colorPath)
			continue
		}
		if err := w.writeContents(filepath.Join(catalog, filepath.FromSlash(colorPath)+ColorSetExt), contents); err != nil {
			logger.Error("couldn't write %s for %q: %v", colorPath, name, err)
			invalid = append(invalid, colorPath)
			continue
		}
		written[colorPath] = true
	}

	if len(invalid) > 0 {
		return "", &InvalidColorError{Names: invalid}
	}
	if len(duplicates) > 0 {
		return "", &DuplicateNamesError{Names: duplicates}
	}

	if err := w.writeContents(catalog, &Contents{Info: XcodeInfo}); err != nil {
		return "", err
	}
	return catalog, nil
}

// writeContents writes a Contents.json into dir, creating dir first.
func (w *Writer) writeContents(dir string, contents *Contents) error {
	data, err := contents.Marshal()
	if err != nil {
		return err
	}
	if err := w.filesystem.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	path := filepath.Join(dir, ContentsFile)
	if err := w.filesystem.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
