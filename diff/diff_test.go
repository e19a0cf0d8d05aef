/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/rovdim/diff"
	"bennypowers.dev/rovdim/resolver"
	"bennypowers.dev/rovdim/tier"
	"bennypowers.dev/rovdim/token"
)

func global(path, value string) *token.Token {
	return &token.Token{
		ID: token.ID("Global", path), Path: path,
		Collection: "Global", Tier: tier.Global, Type: "color",
		Value: value,
	}
}

func brand(path string, light, dark any) *token.Token {
	values := map[tier.Theme]any{}
	if light != nil {
		values[tier.Light] = light
	}
	if dark != nil {
		values[tier.Dark] = dark
	}
	return &token.Token{
		ID: token.ID("Brand", path), Path: path,
		Collection: "Brand", Tier: tier.Brand, Type: "color",
		Values: values,
	}
}

func diffOf(base, head []*token.Token) []*diff.Change {
	return diff.Diff(base, head, resolver.New(base), resolver.New(head))
}

func TestDiff_ChangedSingleMode(t *testing.T) {
	base := []*token.Token{brand("btn", "#111", "#aaa")}
	head := []*token.Token{brand("btn", "#222", "#aaa")}

	changes := diffOf(base, head)
	require.Len(t, changes, 1, "unchanged dark mode must not emit")

	c := changes[0]
	assert.Equal(t, diff.Changed, c.Kind)
	assert.Equal(t, "btn", c.Path)
	assert.Equal(t, "light", c.Mode)
	assert.Equal(t, "#111", c.OldValue)
	assert.Equal(t, "#222", c.NewValue)
}

func TestDiff_ResolvedValues(t *testing.T) {
	base := []*token.Token{
		global("color/blue/500", "#3b82f6"),
		brand("acpd/primary", "Global:color/blue/500", nil),
	}
	head := []*token.Token{
		global("color/blue/500", "#3b82f6"),
		global("color/blue/900", "#1e3a8a"),
		brand("acpd/primary", "Global:color/blue/900", nil),
	}

	changes := diffOf(base, head)

	var primary *diff.Change
	for _, c := range changes {
		if c.Path == "acpd/primary" {
			primary = c
		}
	}
	require.NotNil(t, primary)
	assert.Equal(t, "Global:color/blue/500", primary.OldValue)
	assert.Equal(t, "Global:color/blue/900", primary.NewValue)
	assert.Equal(t, "#3b82f6", primary.OldResolved)
	assert.Equal(t, "#1e3a8a", primary.NewResolved)
}

func TestDiff_AddedAndRemoved(t *testing.T) {
	base := []*token.Token{global("color/old", "#111")}
	head := []*token.Token{global("color/new", "#222")}

	changes := diffOf(base, head)
	require.Len(t, changes, 2)

	byKind := map[diff.Kind]*diff.Change{}
	for _, c := range changes {
		byKind[c.Kind] = c
	}

	added := byKind[diff.Added]
	require.NotNil(t, added)
	assert.Equal(t, "color/new", added.Path)
	assert.Nil(t, added.OldValue)
	assert.Equal(t, "#222", added.NewValue)

	removed := byKind[diff.Removed]
	require.NotNil(t, removed)
	assert.Equal(t, "color/old", removed.Path)
	assert.Equal(t, "#111", removed.OldValue)
	assert.Nil(t, removed.NewValue)
}

func TestDiff_ModeBecomesAbsent(t *testing.T) {
	base := []*token.Token{brand("btn", "#111", "#aaa")}
	head := []*token.Token{brand("btn", "#111", nil)}

	changes := diffOf(base, head)
	require.Len(t, changes, 1)
	assert.Equal(t, "dark", changes[0].Mode)
	assert.Equal(t, "#aaa", changes[0].OldValue)
	assert.Nil(t, changes[0].NewValue)
}

func TestDiff_ComponentPerBrandModes(t *testing.T) {
	core := func(acpd, eeaa any) *token.Token {
		values := map[string]any{}
		if acpd != nil {
			values["acpd"] = acpd
		}
		if eeaa != nil {
			values["eeaa"] = eeaa
		}
		return &token.Token{
			ID: "Core:button/background", Path: "button/background",
			Collection: "Core", Tier: tier.Component, Type: "color",
			BrandValues: values,
		}
	}

	base := []*token.Token{core("Brand:acpd/a", "Brand:eeaa/a")}
	head := []*token.Token{core("Brand:acpd/b", "Brand:eeaa/a")}

	changes := diffOf(base, head)
	require.Len(t, changes, 1)
	assert.Equal(t, "acpd", changes[0].Mode)
	assert.Equal(t, "Brand:acpd/a", changes[0].OldValue)
	assert.Equal(t, "Brand:acpd/b", changes[0].NewValue)
}

func TestDiff_NoChanges(t *testing.T) {
	base := []*token.Token{
		global("color/blue/500", "#3b82f6"),
		brand("btn", "#111", "#aaa"),
	}
	head := []*token.Token{
		global("color/blue/500", "#3b82f6"),
		brand("btn", "#111", "#aaa"),
	}

	assert.Empty(t, diffOf(base, head))
}

func TestDiff_Symmetry(t *testing.T) {
	setA := []*token.Token{
		global("color/only-in-a", "#111"),
		brand("btn", "#111", "#aaa"),
	}
	setB := []*token.Token{
		global("color/only-in-b", "#222"),
		brand("btn", "#111", "#bbb"),
	}

	forward := diffOf(setA, setB)
	backward := diffOf(setB, setA)

	count := func(changes []*diff.Change, kind diff.Kind) []string {
		var paths []string
		for _, c := range changes {
			if c.Kind == kind {
				paths = append(paths, c.Path)
			}
		}
		return paths
	}

	assert.ElementsMatch(t, count(forward, diff.Added), count(backward, diff.Removed))
	assert.ElementsMatch(t, count(forward, diff.Removed), count(backward, diff.Added))
	assert.Len(t, count(forward, diff.Changed), len(count(backward, diff.Changed)))
}
