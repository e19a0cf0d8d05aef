/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package document provides the typed model of a raw nested token document.
package document

import (
	"encoding/json"
	"fmt"
	"strings"

	"bennypowers.dev/rovdim/tier"
)

// Document is the root of a token document: an ordered list of collections.
type Document struct {
	Collections []*Collection `json:"collections"`
}

// Collection is a named group of variables sharing a mode list.
type Collection struct {
	// Name is unique within a document ("Global", "Brand", or a
	// component collection name).
	Name string `json:"name"`

	// Modes lists the collection's mode names, e.g. ["Default"],
	// ["Light", "Dark"], or a set of brand codes.
	Modes []string `json:"modes"`

	// Variables is the nested path-segment tree of leaf variables.
	Variables map[string]*Node `json:"variables"`
}

// Variable is a leaf: a typed mapping from mode name to a literal value
// or an alias string.
type Variable struct {
	// Type is the declared value type: color, number, or string.
	Type string `json:"type"`

	// Values maps mode name to the raw value for that mode. A value is
	// either a literal of the declared type or an alias string
	// "<CollectionName>:<slash/separated/path>".
	Values map[string]any `json:"values"`
}

// Node is one level of a collection's nested mapping: either a branch
// of further path segments or a leaf variable. The variant is decided
// once at decode time; a mapping carrying both "type" and "values" keys
// is a leaf, anything else is a branch.
type Node struct {
	Branch map[string]*Node
	Leaf   *Variable
}

// IsLeaf reports whether the node is a leaf variable.
func (n *Node) IsLeaf() bool {
	return n.Leaf != nil
}

// UnmarshalJSON decodes a node, classifying it as leaf or branch.
func (n *Node) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("node must be an object: %w", err)
	}

	_, hasType := probe["type"]
	_, hasValues := probe["values"]
	if hasType && hasValues {
		var v Variable
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		n.Leaf = &v
		return nil
	}

	branch := make(map[string]*Node, len(probe))
	for key, raw := range probe {
		child := &Node{}
		if err := child.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		branch[key] = child
	}
	n.Branch = branch
	return nil
}

// MarshalJSON encodes the node back to its wire shape.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.Leaf != nil {
		return json.Marshal(n.Leaf)
	}
	return json.Marshal(n.Branch)
}

// ModeShape classifies a collection's mode list.
type ModeShape int

const (
	// ShapeSingle is the sole Default mode of the Global collection.
	ShapeSingle ModeShape = iota

	// ShapeTheme is the Light/Dark theme pair of the Brand collection.
	ShapeTheme

	// ShapeBrand is a set of recognized brand codes.
	ShapeBrand
)

// Shape classifies the collection's modes. Any list that is not exactly
// Default, the Light/Dark pair, or a non-empty set of recognized brand
// codes is a configuration error.
func (c *Collection) Shape() (ModeShape, error) {
	if len(c.Modes) == 1 && c.Modes[0] == tier.DefaultMode {
		return ShapeSingle, nil
	}

	if len(c.Modes) == 2 {
		themes := 0
		for _, m := range c.Modes {
			if _, err := tier.ParseTheme(m); err == nil {
				themes++
			}
		}
		if themes == 2 {
			return ShapeTheme, nil
		}
	}

	if len(c.Modes) > 0 {
		brands := 0
		for _, m := range c.Modes {
			if tier.IsBrandCode(m) {
				brands++
			}
		}
		if brands == len(c.Modes) {
			return ShapeBrand, nil
		}
	}

	return 0, fmt.Errorf("%w: collection %q has modes %v",
		tier.ErrUnknownModeShape, c.Name, c.Modes)
}

// Tier returns the tier derived from the collection's name.
func (c *Collection) Tier() tier.Tier {
	return tier.FromCollection(c.Name)
}

// Collection returns the named collection, or nil.
func (d *Document) Collection(name string) *Collection {
	for _, c := range d.Collections {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Lookup walks a collection's nested mapping to the variable at the
// slash-joined path. Returns nil when any segment is missing or an
// intermediate segment is a leaf.
func (c *Collection) Lookup(path string) *Variable {
	segments := strings.Split(path, "/")
	nodes := c.Variables
	for i, seg := range segments {
		node, ok := nodes[seg]
		if !ok {
			return nil
		}
		if i == len(segments)-1 {
			return node.Leaf
		}
		if node.Branch == nil {
			return nil
		}
		nodes = node.Branch
	}
	return nil
}

// SetValue overwrites the raw value of the variable at path in the
// named collection, for the given mode. This is the write-back half of
// an update: the resolver hands back a new token value and the caller
// applies it to its mutable copy of the document before serializing.
func (d *Document) SetValue(collection, path, mode string, value any) error {
	c := d.Collection(collection)
	if c == nil {
		return fmt.Errorf("%w: no collection %q", tier.ErrUnknownToken, collection)
	}
	v := c.Lookup(path)
	if v == nil {
		return fmt.Errorf("%w: %s:%s", tier.ErrUnknownToken, collection, path)
	}

	found := false
	for _, m := range c.Modes {
		if m == mode {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %q in collection %q", tier.ErrUnknownMode, mode, collection)
	}

	if v.Values == nil {
		v.Values = make(map[string]any, len(c.Modes))
	}
	v.Values[mode] = value
	return nil
}
