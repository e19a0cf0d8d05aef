/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser provides token document parsing and flattening.
package parser

import (
	"bennypowers.dev/rovdim/fs"
	"bennypowers.dev/rovdim/token"
)

// Options configures document parsing.
type Options struct {
	// Brand filters the flattened output to global tokens, tokens
	// scoped to this brand, and tokens with no brand tag. Empty keeps
	// every token.
	Brand string

	// SkipSort disables path sorting of the flattened output for
	// better performance. When false (default), tokens are sorted for
	// deterministic order.
	SkipSort bool
}

// Parser parses token documents into flat token lists.
type Parser interface {
	// Parse parses document data and returns flattened tokens.
	Parse(data []byte, opts Options) ([]*token.Token, error)

	// ParseFile parses a token document file and returns flattened tokens.
	ParseFile(filesystem fs.FileSystem, path string, opts Options) ([]*token.Token, error)
}
