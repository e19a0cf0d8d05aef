/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"fmt"
	"strings"

	"bennypowers.dev/rovdim/tier"
)

// Value is a parsed token value: either a Literal or an Alias.
// ParseValue is the only place raw values are inspected for the alias
// sentinel; downstream code switches on the concrete type instead of
// re-checking strings.
type Value interface {
	isValue()
}

// Literal is a terminal, non-alias value.
type Literal struct {
	// Value is the raw literal (string for color/string types, float64
	// for number types decoded from JSON).
	Value any
}

func (Literal) isValue() {}

// Alias is a reference to a token in another (or the same) collection,
// written "<CollectionName>:<slash/separated/path>" on the wire.
type Alias struct {
	// Collection is the referenced collection's name.
	Collection string

	// Path is the referenced token's slash-joined path.
	Path string
}

func (Alias) isValue() {}

// String returns the wire format of the alias.
func (a Alias) String() string {
	return a.Collection + ":" + a.Path
}

// Target returns the id of the referenced token.
func (a Alias) Target() string {
	return ID(a.Collection, a.Path)
}

// ParseValue classifies a raw slot value. A string containing ":" is an
// alias; everything else is a literal. A string that carries the alias
// separator but does not split into a non-empty collection and path is
// malformed and reported as tier.ErrInvalidValue.
func ParseValue(raw any) (Value, error) {
	s, ok := raw.(string)
	if !ok || !strings.Contains(s, ":") {
		return Literal{Value: raw}, nil
	}

	collection, path, _ := strings.Cut(s, ":")
	if collection == "" || path == "" || strings.Contains(path, ":") {
		return nil, fmt.Errorf("%w: malformed alias %q", tier.ErrInvalidValue, s)
	}
	if strings.HasPrefix(path, "/") || strings.HasSuffix(path, "/") {
		return nil, fmt.Errorf("%w: malformed alias path %q", tier.ErrInvalidValue, s)
	}

	return Alias{Collection: collection, Path: path}, nil
}

// IsAlias reports whether a raw slot value would parse as an alias,
// well-formed or not.
func IsAlias(raw any) bool {
	s, ok := raw.(string)
	return ok && strings.Contains(s, ":")
}
