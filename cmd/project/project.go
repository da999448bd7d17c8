/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project assembles the configuration and token export shared by
// colgen's commands.
package project

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"bennypowers.dev/colgen/config"
	"bennypowers.dev/colgen/fs"
	"bennypowers.dev/colgen/internal/logger"
	"bennypowers.dev/colgen/load"
	"bennypowers.dev/colgen/resolver"
)

// Viper keys bound to the root command's persistent flags and COLGEN_* env.
const (
	KeyConfig        = "config"
	KeyInput         = "input"
	KeyOutput        = "output"
	KeyNamespacing   = "namespacing"
	KeyResolvedFiles = "resolved-files"
	KeyToken         = "token"
	KeyStorageURL    = "storage-url"
)

// Project is a loaded and validated configuration rooted at a directory.
type Project struct {
	Config *config.Config

	// Dir is the directory relative paths are resolved against.
	Dir string

	filesystem fs.FileSystem
	settings   *viper.Viper
}

// Load reads the configuration in dir (or the file named by the config
// key), applies flag and environment overrides, and validates it.
// Validation warnings are logged.
func Load(filesystem fs.FileSystem, dir string, v *viper.Viper) (*Project, error) {
	var cfg *config.Config
	var err error
	if p := v.GetString(KeyConfig); p != "" {
		cfg, err = config.LoadFile(filesystem, absPath(dir, p))
	} else {
		cfg, err = config.Load(filesystem, dir)
	}
	if err != nil {
		return nil, err
	}

	applyOverrides(cfg, v)

	warnings, err := cfg.Validate()
	for _, w := range warnings {
		logger.Warn("%s", w)
	}
	if err != nil {
		return nil, err
	}

	return &Project{Config: cfg, Dir: dir, filesystem: filesystem, settings: v}, nil
}

func applyOverrides(cfg *config.Config, v *viper.Viper) {
	if out := v.GetString(KeyOutput); out != "" {
		cfg.XcassetsOutputPath = out
	}
	if v.IsSet(KeyNamespacing) {
		cfg.UseNamespacing = v.GetBool(KeyNamespacing)
	}
	if v.IsSet(KeyResolvedFiles) {
		cfg.ShouldGenerateResolvedFiles = v.GetBool(KeyResolvedFiles)
	}
}

// ResolveOptions returns the resolver options for the configured token sets.
func (p *Project) ResolveOptions() resolver.Options {
	return resolver.Options{
		PrimitiveKey: p.Config.PrimitiveKey,
		LightKey:     p.Config.SemanticLightKey,
		DarkKey:      p.Config.SemanticDarkKey,
		Exclude:      p.Config.Exclude,
	}
}

// Source locates the project's export in its storage repository.
func (p *Project) Source() load.Source {
	return load.Source{
		Repo:   p.Config.StorageRepo,
		Branch: p.Config.ProjectName,
		Folder: p.Config.ProjectName,
	}
}

// Token returns the storage access token from COLGEN_TOKEN in the
// environment, falling back to the rc files under home.
func (p *Project) Token(home string) (string, error) {
	if t := strings.TrimSpace(p.settings.GetString(KeyToken)); t != "" {
		return t, nil
	}
	return config.LookupToken(p.filesystem, home)
}

// ReadTokens returns the token export: the file named by the input key when
// set, otherwise a download from the storage repository.
func (p *Project) ReadTokens(ctx context.Context, home string) ([]byte, error) {
	if input := p.settings.GetString(KeyInput); input != "" {
		path := absPath(p.Dir, input)
		data, err := p.filesystem.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return data, nil
	}

	secret, err := p.Token(home)
	if err != nil {
		return nil, err
	}

	baseURL := p.settings.GetString(KeyStorageURL)
	if baseURL == "" {
		baseURL = load.RawBaseURL
	}
	url := p.Source().URL(baseURL)

	logger.Info("Downloading JSON from: %s", url)

	ctx, cancel := context.WithTimeout(ctx, load.DefaultTimeout)
	defer cancel()

	data, err := load.FetchTokens(ctx, load.NewHTTPFetcher(load.DefaultMaxSize, secret), url)
	if err != nil {
		return nil, fmt.Errorf("%w\ntip: your GitHub %s may have expired, check its value in your shell config (%s=%s)",
			err, config.TokenVar, config.TokenVar, config.MaskToken(secret))
	}
	return data, nil
}

func absPath(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
