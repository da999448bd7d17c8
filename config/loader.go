/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/colgen/fs"
)

// ConfigFileNames are the accepted config file names in priority order.
var ConfigFileNames = []string{".colgen.yml", ".colgen.yaml"}

// Load reads the project configuration from rootDir. It does not validate.
func Load(filesystem fs.FileSystem, rootDir string) (*Config, error) {
	for _, name := range ConfigFileNames {
		configPath := filepath.Join(rootDir, name)
		if !filesystem.Exists(configPath) {
			continue
		}
		return LoadFile(filesystem, configPath)
	}
	return nil, fmt.Errorf("%w in %s", ErrConfigNotFound, rootDir)
}

// LoadFile reads the configuration at an explicit path.
func LoadFile(filesystem fs.FileSystem, path string) (*Config, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
