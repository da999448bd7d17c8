/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"encoding/json"
	"slices"
	"sort"

	"github.com/tidwall/jsonc"

	"bennypowers.dev/colgen/fs"
	"bennypowers.dev/colgen/token"
)

// Document is a parsed token export. Each top-level key holds one token set
// (primitives, light semantics, dark semantics, ...).
type Document map[string]any

// Parse decodes a token export. Comments and trailing commas are tolerated.
func Parse(data []byte) (Document, error) {
	var raw any
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, &ParseError{Err: err}
	}
	root, ok := raw.(map[string]any)
	if !ok {
		return nil, &ParseError{Err: ErrNotObject}
	}
	return Document(root), nil
}

// ParseFile reads and parses a token export from disk.
func ParseFile(filesystem fs.FileSystem, path string) (Document, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Tokens flattens the token set stored under key. A missing or non-object
// key yields no tokens. Tokens are returned in key-path order.
func (d Document) Tokens(key string) []token.RawToken {
	set, ok := d[key].(map[string]any)
	if !ok {
		return nil
	}
	var result []token.RawToken
	extractTokens(set, nil, &result)
	return result
}

// Keys returns the document's top-level keys, sorted.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// extractTokens recursively collects leaves from a token group.
func extractTokens(data map[string]any, path []string, result *[]token.RawToken) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		valueMap, ok := data[key].(map[string]any)
		if !ok {
			continue
		}

		currentPath := slices.Clip(append(path, key))

		if fields, isLeaf := leafFields(valueMap); isLeaf {
			*result = append(*result, token.NewRawToken(currentPath, fields))
			continue
		}
		if _, hasValue := valueMap["value"]; hasValue {
			// Composite value (typography, shadow); not a color.
			continue
		}
		extractTokens(valueMap, currentPath, result)
	}
}

// leafFields reports whether m is a token leaf and returns its string fields.
// A leaf either has a string "value" or consists only of string fields.
func leafFields(m map[string]any) (map[string]string, bool) {
	fields := make(map[string]string, len(m))
	allStrings := len(m) > 0
	for k, v := range m {
		if s, ok := v.(string); ok {
			fields[k] = s
		} else {
			allStrings = false
		}
	}
	if _, ok := m["value"].(string); ok {
		return fields, true
	}
	if _, hasValue := m["value"]; hasValue {
		return nil, false
	}
	return fields, allStrings
}
