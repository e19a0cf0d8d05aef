/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"sort"
	"strings"

	"bennypowers.dev/rovdim/document"
	"bennypowers.dev/rovdim/tier"
	"bennypowers.dev/rovdim/token"
)

// validTypes are the variable type tags the flattener accepts.
var validTypes = map[string]bool{
	"color":  true,
	"number": true,
	"string": true,
}

// Flatten walks every collection in the document and produces one token
// per leaf variable. Collections with an unrecognized mode shape and
// leaves with an unrecognized type tag are construction errors: the
// document itself is not well-formed, as opposed to merely containing a
// dangling reference.
func Flatten(doc *document.Document, opts Options) ([]*token.Token, error) {
	result := []*token.Token{}

	for _, collection := range doc.Collections {
		shape, err := collection.Shape()
		if err != nil {
			return nil, err
		}
		if err := flattenNodes(collection, shape, collection.Variables, nil, &result); err != nil {
			return nil, err
		}
	}

	if !opts.SkipSort {
		sort.Slice(result, func(i, j int) bool {
			return result[i].ID < result[j].ID
		})
	}

	return result, nil
}

// FlattenForBrand flattens the document keeping global tokens, tokens
// scoped to brand, and tokens with no brand tag.
func FlattenForBrand(doc *document.Document, brand string, opts Options) ([]*token.Token, error) {
	tokens, err := Flatten(doc, opts)
	if err != nil {
		return nil, err
	}

	filtered := make([]*token.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Tier == tier.Global || t.Brand == brand || t.Brand == "" {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// flattenNodes recursively walks a collection's nested mapping,
// accumulating path segments and emitting a token per leaf.
func flattenNodes(collection *document.Collection, shape document.ModeShape, nodes map[string]*document.Node, segments []string, result *[]*token.Token) error {
	for key, node := range nodes {
		path := append(segments[:len(segments):len(segments)], key)

		if node.IsLeaf() {
			t, err := makeToken(collection, shape, node.Leaf, path)
			if err != nil {
				return err
			}
			*result = append(*result, t)
			continue
		}

		if err := flattenNodes(collection, shape, node.Branch, path, result); err != nil {
			return err
		}
	}
	return nil
}

// makeToken builds a flat token from a leaf variable. Mode shape
// decides which value field is populated; a missing mode key leaves the
// slot absent rather than failing, since absence is a resolution-time
// concern, not a parse-time one.
func makeToken(collection *document.Collection, shape document.ModeShape, v *document.Variable, segments []string) (*token.Token, error) {
	path := strings.Join(segments, "/")

	if !validTypes[v.Type] {
		return nil, fmt.Errorf("%w: %q at %s:%s", tier.ErrInvalidType, v.Type, collection.Name, path)
	}

	t := &token.Token{
		ID:         token.ID(collection.Name, path),
		Path:       path,
		Name:       segments[len(segments)-1],
		Collection: collection.Name,
		Tier:       collection.Tier(),
		Type:       v.Type,
	}

	if tier.IsBrandCode(segments[0]) {
		t.Brand = segments[0]
		if len(segments) > 1 {
			t.Category = segments[1]
		}
	} else {
		t.Category = segments[0]
	}

	switch shape {
	case document.ShapeSingle:
		if raw, ok := v.Values[tier.DefaultMode]; ok {
			t.Value = raw
		}
	case document.ShapeTheme:
		t.Values = make(map[tier.Theme]any, len(collection.Modes))
		for _, mode := range collection.Modes {
			theme, err := tier.ParseTheme(mode)
			if err != nil {
				return nil, err
			}
			if raw, ok := v.Values[mode]; ok {
				t.Values[theme] = raw
			}
		}
	case document.ShapeBrand:
		t.BrandValues = make(map[string]any, len(collection.Modes))
		for _, mode := range collection.Modes {
			if raw, ok := v.Values[mode]; ok {
				t.BrandValues[mode] = raw
			}
		}
	}

	return t, nil
}
