/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tree reorganizes flat token sets into navigation hierarchies.
package tree

import (
	"sort"
	"strings"

	"bennypowers.dev/rovdim/token"
)

// Node is one level of the path-segment hierarchy. Leaf nodes carry
// their originating token; a node may hold both a token and children
// when one token's path prefixes another's.
type Node struct {
	// Name is the node's path segment (empty on the root).
	Name string `json:"name"`

	// Path is the full slash-joined path up to this node.
	Path string `json:"path"`

	// Children are the node's ordered child nodes.
	Children []*Node `json:"children,omitempty"`

	// Token is the originating token for leaf nodes, nil otherwise.
	Token *token.Token `json:"token,omitempty"`
}

// IsLeaf reports whether the node carries a token.
func (n *Node) IsLeaf() bool {
	return n.Token != nil
}

// Build constructs the hierarchy from a flat token set, inserting each
// token's path segments one at a time and creating intermediate nodes
// on demand. Siblings are ordered with non-leaf nodes first, then
// alphabetically by name, recursively at every level.
func Build(tokens []*token.Token) *Node {
	root := &Node{}

	for _, t := range tokens {
		insert(root, t)
	}

	sortChildren(root)
	return root
}

// insert walks the token's path from the root, descending into existing
// children and creating the rest.
func insert(root *Node, t *token.Token) {
	node := root
	segments := t.PathSegments()

	for i, segment := range segments {
		child := node.child(segment)
		if child == nil {
			child = &Node{
				Name: segment,
				Path: strings.Join(segments[:i+1], "/"),
			}
			node.Children = append(node.Children, child)
		}
		node = child
	}

	// A node revisited as an intermediate segment keeps its token, so a
	// leaf that prefixes deeper paths stays a leaf.
	node.Token = t
}

// child returns the direct child with the given name, or nil.
func (n *Node) child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// sortChildren orders siblings recursively: nodes with children before
// childless leaves, then alphabetical.
func sortChildren(n *Node) {
	sort.SliceStable(n.Children, func(i, j int) bool {
		a, b := n.Children[i], n.Children[j]
		aBranch := len(a.Children) > 0
		bBranch := len(b.Children) > 0
		if aBranch != bBranch {
			return aBranch
		}
		return a.Name < b.Name
	})
	for _, c := range n.Children {
		sortChildren(c)
	}
}

// Flatten walks the hierarchy in order and returns the tokens at its
// leaves, reproducing the flat set the tree was built from.
func Flatten(root *Node) []*token.Token {
	var tokens []*token.Token
	var walk func(*Node)
	walk = func(n *Node) {
		if n.Token != nil {
			tokens = append(tokens, n.Token)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return tokens
}
