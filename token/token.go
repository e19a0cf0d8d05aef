/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides rovdim's flat resolved-token types.
package token

import (
	"strings"

	"bennypowers.dev/rovdim/tier"
)

// Token is a single flattened leaf variable from a token document.
// Exactly one of Value, Values, or BrandValues is populated, fixed by
// the owning collection's tier at flatten time.
type Token struct {
	// ID is "<collection>:<path>", unique within a parsed document.
	ID string `json:"id"`

	// Path is the slash-joined path within the collection.
	Path string `json:"path"`

	// Name is the last path segment.
	Name string `json:"name"`

	// Collection is the owning collection's name.
	Collection string `json:"collection"`

	// Tier is derived from the collection name.
	Tier tier.Tier `json:"tier"`

	// Type is the declared value type (color, number, string).
	Type string `json:"type"`

	// Brand is the recognized brand code from the first path segment,
	// or empty when the token is not brand-scoped.
	Brand string `json:"brand,omitempty"`

	// Category is the first meaningful path segment, after the brand
	// prefix when one is present.
	Category string `json:"category,omitempty"`

	// Value holds the Default-mode value for global-tier tokens.
	Value any `json:"value,omitempty"`

	// Values holds per-theme values for brand-tier tokens.
	Values map[tier.Theme]any `json:"values,omitempty"`

	// BrandValues holds per-brand values for component-tier tokens.
	BrandValues map[string]any `json:"brandValues,omitempty"`
}

// PathSegments returns the path split into its segments.
func (t *Token) PathSegments() []string {
	return strings.Split(t.Path, "/")
}

// Slot returns the raw value stored for the given theme, selected by
// whichever value field the flattener populated. Single-mode tokens
// ignore the theme; per-brand tokens select by their own brand tag.
// The second return is false when the slot is absent.
func (t *Token) Slot(theme tier.Theme) (any, bool) {
	switch {
	case t.Values != nil:
		v, ok := t.Values[theme]
		return v, ok
	case t.BrandValues != nil:
		if t.Brand == "" {
			return nil, false
		}
		v, ok := t.BrandValues[t.Brand]
		return v, ok
	default:
		return t.Value, t.Value != nil
	}
}

// Clone returns a copy of the token with its value maps duplicated, so
// the copy can be written to without touching the original.
func (t *Token) Clone() *Token {
	dup := *t
	if t.Values != nil {
		dup.Values = make(map[tier.Theme]any, len(t.Values))
		for k, v := range t.Values {
			dup.Values[k] = v
		}
	}
	if t.BrandValues != nil {
		dup.BrandValues = make(map[string]any, len(t.BrandValues))
		for k, v := range t.BrandValues {
			dup.BrandValues[k] = v
		}
	}
	return &dup
}

// ID builds a token id from a collection name and path.
func ID(collection, path string) string {
	return collection + ":" + path
}
