/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config loads and validates the .colgen.yml project configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Defaults applied by Validate.
const (
	DefaultStorageRepo = "infinum/figma-token-storage"
	DefaultOutputPath  = "GeneratedColors"
)

var (
	// ErrConfigNotFound indicates no .colgen.yml in the project directory.
	ErrConfigNotFound = errors.New("no valid '.colgen.yml' found")

	// ErrInvalidConfig indicates a configuration that failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config is the project configuration read from .colgen.yml.
type Config struct {
	// ProjectName is both the storage branch and the folder holding tokens.json.
	ProjectName string `yaml:"projectName"`

	// Branch is the legacy name of ProjectName.
	Branch string `yaml:"branch"`

	// StorageRepo is the GitHub "owner/repo" holding token exports.
	StorageRepo string `yaml:"storageRepo"`

	// PrimitiveKey, SemanticLightKey and SemanticDarkKey name the token sets.
	PrimitiveKey     string `yaml:"primitiveKey"`
	SemanticLightKey string `yaml:"semanticLightKey"`
	SemanticDarkKey  string `yaml:"semanticDarkKey"`

	// ShouldGenerateResolvedFiles writes the .colgen.*.resolved listings.
	ShouldGenerateResolvedFiles bool `yaml:"shouldGenerateResolvedFiles"`

	// UseNamespacing nests colorsets by dot-separated name segments.
	UseNamespacing bool `yaml:"useNamespacing"`

	// XcassetsOutputPath is the catalog path, relative to the project.
	XcassetsOutputPath string `yaml:"xcassetsOutputPath"`

	// Exclude lists doublestar patterns of token names to skip.
	Exclude []string `yaml:"exclude"`
}

// ConfigError collects every problem found by Validate.
type ConfigError struct {
	Problems []string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidConfig, strings.Join(e.Problems, "; "))
}

// Unwrap returns ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// report accumulates the outcome of the validation pipeline.
type report struct {
	warnings []string
	problems []string
}

func (r *report) warn(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *report) fail(format string, args ...any) {
	r.problems = append(r.problems, fmt.Sprintf(format, args...))
}

// check is one validation step. Steps may fill in defaults.
type check func(c *Config, r *report)

// pipeline runs in order; later steps see earlier defaults.
var pipeline = []check{
	legacyBranch,
	requireProjectName,
	defaultStorageRepo,
	requireTokenKeys,
	defaultOutputPath,
	validExcludes,
}

// Validate applies defaults and checks the configuration. It returns
// warnings for deprecated or defaulted settings, and a *ConfigError listing
// every problem if the configuration is unusable.
func (c *Config) Validate() ([]string, error) {
	r := &report{}
	for _, step := range pipeline {
		step(c, r)
	}
	if len(r.problems) > 0 {
		return r.warnings, &ConfigError{Problems: r.problems}
	}
	return r.warnings, nil
}

func legacyBranch(c *Config, r *report) {
	if c.ProjectName == "" && c.Branch != "" {
		r.warn("parameter 'branch' has been renamed to 'projectName'")
		c.ProjectName = c.Branch
	}
}

func requireProjectName(c *Config, r *report) {
	switch c.ProjectName {
	case "":
		r.fail("missing 'projectName' parameter")
	case "main", "master":
		r.fail("'projectName' %q cannot be used as a storage branch", c.ProjectName)
	}
}

func defaultStorageRepo(c *Config, r *report) {
	if c.StorageRepo == "" {
		r.warn("missing 'storageRepo' parameter, using fallback %q", DefaultStorageRepo)
		c.StorageRepo = DefaultStorageRepo
	}
}

func requireTokenKeys(c *Config, r *report) {
	var missing []string
	for _, k := range []struct{ name, value string }{
		{"primitiveKey", c.PrimitiveKey},
		{"semanticLightKey", c.SemanticLightKey},
		{"semanticDarkKey", c.SemanticDarkKey},
	} {
		if k.value == "" {
			missing = append(missing, k.name)
		}
	}
	if len(missing) > 0 {
		r.fail("missing %s", strings.Join(missing, "/"))
	}
}

func defaultOutputPath(c *Config, r *report) {
	if c.XcassetsOutputPath == "" {
		c.XcassetsOutputPath = DefaultOutputPath
	}
}

func validExcludes(c *Config, r *report) {
	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			r.fail("invalid exclude pattern %q", pattern)
		}
	}
}
