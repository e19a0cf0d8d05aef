/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tier

import "errors"

// Sentinel errors for document parsing and resolution.
var (
	// ErrUnknownModeShape indicates a collection's mode list matches no
	// recognized shape (Default, Light/Dark, or brand codes).
	ErrUnknownModeShape = errors.New("unrecognized collection mode shape")

	// ErrUnknownMode indicates a mode name outside the collection's modes.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrInvalidType indicates a variable type tag outside color|number|string.
	ErrInvalidType = errors.New("invalid variable type")

	// ErrInvalidValue indicates a malformed alias string.
	ErrInvalidValue = errors.New("invalid token value")

	// ErrCircularReference indicates a token reachable from itself via aliases.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrMissingReference indicates an alias whose target does not exist.
	ErrMissingReference = errors.New("missing alias target")

	// ErrTypeMismatch indicates an alias whose target declares a different type.
	ErrTypeMismatch = errors.New("alias type mismatch")

	// ErrUnknownToken indicates an update against a path with no token.
	ErrUnknownToken = errors.New("unknown token path")

	// ErrModeRequired indicates a non-global update without an explicit mode.
	ErrModeRequired = errors.New("mode required for non-global update")
)
