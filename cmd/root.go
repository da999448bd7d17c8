/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for colgen.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/colgen/cmd/generate"
	"bennypowers.dev/colgen/cmd/list"
	"bennypowers.dev/colgen/cmd/project"
	"bennypowers.dev/colgen/cmd/version"
	internalversion "bennypowers.dev/colgen/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "colgen",
	Short: "Generate Xcode color assets from Figma design tokens",
	Long: `colgen turns a Figma design token export into an Xcode asset catalog
of named colors with light and dark appearances.`,
	SilenceUsage: true,
	Version:      internalversion.Get(),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate("colgen {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringP(project.KeyConfig, "c", "", "Path to the config file (default: .colgen.yml in the working directory)")
	flags.StringP(project.KeyInput, "i", "", "Read the token export from a file instead of downloading it")
	flags.StringP(project.KeyOutput, "o", "", "Asset catalog path (overrides xcassetsOutputPath)")
	flags.Bool(project.KeyNamespacing, false, "Nest colorsets by name segment (overrides useNamespacing)")
	flags.Bool(project.KeyResolvedFiles, false, "Write .colgen.*.resolved listings (overrides shouldGenerateResolvedFiles)")
	flags.String(project.KeyStorageURL, "", "Base URL serving raw storage repository files")
	_ = flags.MarkHidden(project.KeyStorageURL)

	for _, key := range []string{
		project.KeyConfig,
		project.KeyInput,
		project.KeyOutput,
		project.KeyNamespacing,
		project.KeyResolvedFiles,
		project.KeyStorageURL,
	} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}

	// COLGEN_TOKEN, COLGEN_OUTPUT, COLGEN_RESOLVED_FILES, ...
	viper.SetEnvPrefix("colgen")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
