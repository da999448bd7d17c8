/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser parses design token exports produced by the Figma
// "Design Tokens Manager" plugin.
package parser

import (
	"errors"
	"fmt"
)

// ErrNotObject indicates the export's root value is not a JSON object.
var ErrNotObject = errors.New("root must be an object")

// ParseError reports that token data is not a well-formed JSON object.
type ParseError struct {
	// Err is the underlying decode error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse token JSON: %v", e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
