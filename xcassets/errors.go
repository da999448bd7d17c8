/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package xcassets

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for catalog generation.
var (
	// ErrInvalidColors indicates colors whose value or name could not be written.
	ErrInvalidColors = errors.New("invalid names / paths")

	// ErrDuplicateNames indicates colors that map to the same colorset path.
	ErrDuplicateNames = errors.New("duplicate names")
)

// InvalidColorError lists every color that failed to produce a descriptor.
type InvalidColorError struct {
	Names []string
}

// Error implements the error interface.
func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidColors, strings.Join(e.Names, ", "))
}

// Unwrap returns ErrInvalidColors.
func (e *InvalidColorError) Unwrap() error {
	return ErrInvalidColors
}

// DuplicateNamesError lists every colorset path produced more than once.
type DuplicateNamesError struct {
	Names []string
}

// Error implements the error interface.
func (e *DuplicateNamesError) Error() string {
	return fmt.Sprintf("%v: %s", ErrDuplicateNames, strings.Join(e.Names, ", "))
}

// Unwrap returns ErrDuplicateNames.
func (e *DuplicateNamesError) Unwrap() error {
	return ErrDuplicateNames
}
