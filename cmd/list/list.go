/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for colgen.
package list

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/colgen/cmd/project"
	"bennypowers.dev/colgen/cmd/render"
	"bennypowers.dev/colgen/fs"
	"bennypowers.dev/colgen/resolver"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List resolved semantic colors",
	Long:  `Resolve the project's token export and print every semantic color with its light and dark values.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("group", "", "Only show colors in this top-level group")
	Cmd.Flags().Bool("invalid", false, "Only show colors that generate would reject")
	Cmd.Flags().String("format", "table", "Output format: table, markdown, names")
}

func run(cmd *cobra.Command, args []string) error {
	group, _ := cmd.Flags().GetString("group")
	invalidOnly, _ := cmd.Flags().GetBool("invalid")
	format, _ := cmd.Flags().GetString("format")

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	home, _ := os.UserHomeDir()

	p, err := project.Load(fs.NewOSFileSystem(), cwd, viper.GetViper())
	if err != nil {
		return err
	}
	data, err := p.ReadTokens(cmd.Context(), home)
	if err != nil {
		return err
	}
	res, err := resolver.ResolveDetailed(data, p.ResolveOptions())
	if err != nil {
		return err
	}

	return output(cmd.OutOrStdout(), render.Filter(render.ComputeRows(res), group, invalidOnly), format)
}

func output(w io.Writer, rows []render.Row, format string) error {
	switch format {
	case "markdown", "md":
		return render.Markdown(w, rows)
	case "names":
		return render.Names(w, rows)
	case "table":
		return render.Table(w, rows)
	default:
		return fmt.Errorf("unknown format %q: want table, markdown or names", format)
	}
}
