/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for colgen.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/colgen/cmd/project"
	"bennypowers.dev/colgen/fs"
	"bennypowers.dev/colgen/internal/version"
	"bennypowers.dev/colgen/resolver"
	"bennypowers.dev/colgen/xcassets"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an Xcode color asset catalog",
	Long: `Download the project's Figma token export, resolve every semantic color
against the primitive palette and write an .xcassets color catalog.

Settings are read from .colgen.yml in the working directory. Flags and
COLGEN_* environment variables override them.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().BoolP("list", "l", false, "Print the resolved primitive and semantic listings")
}

// Options configure a generate run.
type Options struct {
	// Dir is the project directory holding .colgen.yml.
	Dir string

	// Home is searched for shell rc files holding COLGEN_TOKEN.
	Home string

	// List prints the diagnostic listings to the output.
	List bool
}

func run(cmd *cobra.Command, args []string) error {
	list, _ := cmd.Flags().GetBool("list")

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	home, _ := os.UserHomeDir()

	out := cmd.OutOrStdout()
	catalog, err := Generate(cmd.Context(), fs.NewOSFileSystem(), viper.GetViper(), Options{
		Dir:  cwd,
		Home: home,
		List: list,
	}, out)
	if err != nil {
		reportCatalogError(cmd.ErrOrStderr(), err)
		return err
	}

	fmt.Fprintf(out, "Colgen %s successfully generated '%s'\n", version.Get(), filepath.Base(catalog))
	fmt.Fprintln(out, filepath.Dir(catalog))
	return nil
}

// Generate loads the project, obtains its token export, resolves it and
// writes the asset catalog. It returns the catalog's absolute path.
func Generate(ctx context.Context, filesystem fs.FileSystem, v *viper.Viper, opts Options, out io.Writer) (string, error) {
	p, err := project.Load(filesystem, opts.Dir, v)
	if err != nil {
		return "", err
	}

	data, err := p.ReadTokens(ctx, opts.Home)
	if err != nil {
		return "", err
	}

	res, err := resolver.ResolveDetailed(data, p.ResolveOptions())
	if err != nil {
		return "", err
	}

	if opts.List || p.Config.ShouldGenerateResolvedFiles {
		listings := res.Listings(p.Config.UseNamespacing)
		if opts.List {
			if _, err := io.WriteString(out, listings.String()); err != nil {
				return "", err
			}
		}
		if p.Config.ShouldGenerateResolvedFiles {
			if err := listings.WriteFiles(filesystem, p.Dir); err != nil {
				return "", err
			}
		}
	}

	return xcassets.NewWriter(filesystem, p.Dir).Write(res.Colors, p.Config.XcassetsOutputPath, p.Config.UseNamespacing)
}

// reportCatalogError prints the offending names of a failed catalog write.
func reportCatalogError(w io.Writer, err error) {
	var invalid *xcassets.InvalidColorError
	var duplicates *xcassets.DuplicateNamesError
	switch {
	case errors.As(err, &invalid):
		fmt.Fprintln(w, "Invalid names / paths. Please fix these in Figma:")
		fmt.Fprintln(w, strings.Join(invalid.Names, "\n"))
	case errors.As(err, &duplicates):
		fmt.Fprintln(w, "Duplicates found. Please rename these in Figma or consider using namespacing:")
		fmt.Fprintln(w, strings.Join(duplicates.Names, "\n"))
	}
}
