/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/rovdim/tier"
	"bennypowers.dev/rovdim/token"
	"bennypowers.dev/rovdim/tree"
)

func tok(path string) *token.Token {
	t := &token.Token{
		ID:   token.ID("Global", path),
		Path: path,
		Tier: tier.Global,
		Type: "color",
	}
	segments := t.PathSegments()
	t.Name = segments[len(segments)-1]
	return t
}

func TestBuild_Hierarchy(t *testing.T) {
	tokens := []*token.Token{
		tok("color/blue/500"),
		tok("color/blue/900"),
		tok("color/white"),
		tok("size/spacing/md"),
	}

	root := tree.Build(tokens)
	require.Len(t, root.Children, 2)

	color := root.Children[0]
	assert.Equal(t, "color", color.Name)
	assert.Equal(t, "color", color.Path)
	assert.False(t, color.IsLeaf())

	// Branches sort before leaves: blue before white
	require.Len(t, color.Children, 2)
	assert.Equal(t, "blue", color.Children[0].Name)
	assert.Equal(t, "white", color.Children[1].Name)
	assert.True(t, color.Children[1].IsLeaf())

	blue := color.Children[0]
	require.Len(t, blue.Children, 2)
	assert.Equal(t, "color/blue/500", blue.Children[0].Path)
	assert.True(t, blue.Children[0].IsLeaf())
}

func TestBuild_SiblingOrder(t *testing.T) {
	tokens := []*token.Token{
		tok("a"),
		tok("z/deep"),
		tok("m"),
	}

	root := tree.Build(tokens)
	require.Len(t, root.Children, 3)

	// z has children so it sorts first; a and m follow alphabetically
	assert.Equal(t, "z", root.Children[0].Name)
	assert.Equal(t, "a", root.Children[1].Name)
	assert.Equal(t, "m", root.Children[2].Name)
}

func TestBuild_LeafStaysLeafWithChildren(t *testing.T) {
	tokens := []*token.Token{
		tok("color/blue"),
		tok("color/blue/500"),
	}

	root := tree.Build(tokens)
	blue := root.Children[0].Children[0]

	assert.Equal(t, "blue", blue.Name)
	assert.True(t, blue.IsLeaf(), "node revisited as intermediate keeps its token")
	require.Len(t, blue.Children, 1)
	assert.Equal(t, "500", blue.Children[0].Name)
}

func TestFlatten_RoundTrip(t *testing.T) {
	tokens := []*token.Token{
		tok("color/blue/500"),
		tok("color/blue/900"),
		tok("color/white"),
		tok("size/spacing/md"),
		tok("alpha"),
	}

	flat := tree.Flatten(tree.Build(tokens))
	require.Len(t, flat, len(tokens))

	want := map[string]bool{}
	for _, tk := range tokens {
		want[tk.Path] = true
	}
	for _, tk := range flat {
		assert.True(t, want[tk.Path], "unexpected path %s", tk.Path)
		delete(want, tk.Path)
	}
	assert.Empty(t, want, "round trip lost tokens")
}
