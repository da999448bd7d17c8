/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver resolves semantic color tokens to light/dark hex pairs.
//
// A token export holds three token sets: primitives (concrete colors),
// light semantics and dark semantics. Semantic tokens reference primitives
// as {Primitive.Name}. Resolution never fails per token: an unresolvable
// reference yields an empty hex string, which the catalog writer later
// reports together with every other broken entry.
package resolver

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/colgen/internal/logger"
	"bennypowers.dev/colgen/parser"
	"bennypowers.dev/colgen/token"
)

var (
	// ErrUnresolvedReference indicates a reference names no primitive.
	ErrUnresolvedReference = errors.New("unresolved token reference")

	// ErrCircularReference indicates primitives that alias each other in a loop.
	ErrCircularReference = errors.New("circular reference detected")
)

// Options names the token sets to read.
type Options struct {
	// PrimitiveKey is the top-level key of the primitive color set.
	PrimitiveKey string

	// LightKey is the top-level key of the light semantic set.
	LightKey string

	// DarkKey is the top-level key of the dark semantic set.
	DarkKey string

	// Exclude holds doublestar patterns for token names to skip, matched
	// with '.' treated as the path separator (e.g., "Typography/**").
	Exclude []string
}

// Semantic is one semantic color and the tokens chosen for each appearance.
type Semantic struct {
	Name string

	// Light is the light token.
	Light token.RawToken

	// Dark is the dark token, or the light token when the dark set has no
	// entry of the same name.
	Dark token.RawToken

	// Err is set when the light reference could not be resolved.
	Err error
}

// Resolution holds the resolved colors and the intermediate token sets.
type Resolution struct {
	Primitives map[string]token.RawToken
	Light      map[string]token.RawToken
	Dark       map[string]token.RawToken

	// Semantics is sorted by name.
	Semantics []Semantic

	// Colors maps every light semantic name to its resolved hex pair.
	Colors token.Mapping
}

// Resolve parses a token export and returns name -> (light, dark) hex pairs.
// It fails only if data is not a JSON object.
func Resolve(data []byte, opts Options) (token.Mapping, error) {
	res, err := ResolveDetailed(data, opts)
	if err != nil {
		return nil, err
	}
	return res.Colors, nil
}

// ResolveDetailed is Resolve but also returns the intermediate token sets
// used for diagnostics.
func ResolveDetailed(data []byte, opts Options) (*Resolution, error) {
	doc, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}
	return ResolveDocument(doc, opts), nil
}

// ResolveDocument resolves an already parsed export.
func ResolveDocument(doc parser.Document, opts Options) *Resolution {
	res := &Resolution{
		Primitives: collect(doc, opts.PrimitiveKey, opts.Exclude),
		Light:      collect(doc, opts.LightKey, opts.Exclude),
		Dark:       collect(doc, opts.DarkKey, opts.Exclude),
		Colors:     make(token.Mapping),
	}

	names := make([]string, 0, len(res.Light))
	for name := range res.Light {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		light := res.Light[name]
		dark, ok := res.Dark[name]
		if !ok {
			dark = light
		}
		sem := Semantic{Name: name, Light: light, Dark: dark}

		lightHex, err := res.lookup(light.Value)
		if err != nil {
			sem.Err = err
			res.Colors[name] = token.Pair{}
			res.Semantics = append(res.Semantics, sem)
			continue
		}
		darkHex, err := res.lookup(dark.Value)
		if err != nil {
			darkHex = lightHex
		}
		res.Colors[name] = token.Pair{Light: lightHex, Dark: darkHex}
		res.Semantics = append(res.Semantics, sem)
	}

	logger.Info("Found %d semantic and %d primitive colors", len(res.Light), len(res.Primitives))

	return res
}

// lookup resolves a primitive reference to a normalized hex value,
// following primitives that alias other primitives.
func (r *Resolution) lookup(ref string) (string, error) {
	seen := make(map[string]bool)
	name := ref
	for {
		prim, ok := r.Primitives[name]
		if !ok {
			return "", fmt.Errorf("%w: {%s}", ErrUnresolvedReference, name)
		}
		if !prim.IsReference {
			hex, _ := token.NormalizeColor(prim.Value)
			return hex, nil
		}
		if seen[name] {
			logger.Warn("primitive %q is part of a reference cycle", ref)
			return "", fmt.Errorf("%w: {%s}", ErrCircularReference, ref)
		}
		seen[name] = true
		name = prim.Value
	}
}

// collect flattens one token set into a name-keyed map.
func collect(doc parser.Document, key string, exclude []string) map[string]token.RawToken {
	result := make(map[string]token.RawToken)
	for _, tok := range doc.Tokens(key) {
		if isExcluded(tok.Name, exclude) {
			continue
		}
		if existing, ok := result[tok.Name]; ok {
			logger.Warn("duplicate token %q in %q (%s and %s); keeping the first",
				tok.Name, key, strings.Join(existing.Path, "."), strings.Join(tok.Path, "."))
			continue
		}
		result[tok.Name] = tok
	}
	return result
}

func isExcluded(name string, patterns []string) bool {
	if token.IsExcluded(name) {
		return true
	}
	slashed := strings.ReplaceAll(name, ".", "/")
	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, slashed); matched {
			return true
		}
	}
	return false
}
