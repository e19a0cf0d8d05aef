/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/rovdim/resolver"
	"bennypowers.dev/rovdim/tier"
	"bennypowers.dev/rovdim/token"
)

// layeredTokens is a minimal three-tier set: a global primitive, brand
// aliases over it, and a component alias over the brand tier.
func layeredTokens() []*token.Token {
	return []*token.Token{
		{
			ID: "Global:color/blue/500", Path: "color/blue/500", Name: "500",
			Collection: "Global", Tier: tier.Global, Type: "color",
			Category: "color", Value: "#3b82f6",
		},
		{
			ID: "Global:color/blue/900", Path: "color/blue/900", Name: "900",
			Collection: "Global", Tier: tier.Global, Type: "color",
			Category: "color", Value: "#1e3a8a",
		},
		{
			ID: "Brand:acpd/color/content/primary", Path: "acpd/color/content/primary",
			Name: "primary", Collection: "Brand", Tier: tier.Brand, Type: "color",
			Brand: "acpd", Category: "color",
			Values: map[tier.Theme]any{
				tier.Light: "Global:color/blue/500",
				tier.Dark:  "Global:color/blue/900",
			},
		},
		{
			ID: "Core:acpd/button/background", Path: "acpd/button/background",
			Name: "background", Collection: "Core", Tier: tier.Component, Type: "color",
			Brand: "acpd", Category: "button",
			BrandValues: map[string]any{
				"acpd": "Brand:acpd/color/content/primary",
			},
		},
	}
}

func TestResolve_GlobalIgnoresTheme(t *testing.T) {
	r := resolver.New(layeredTokens())

	assert.Equal(t, "#3b82f6", r.Resolve("color/blue/500", tier.Light))
	assert.Equal(t, "#3b82f6", r.Resolve("color/blue/500", tier.Dark))
}

func TestResolve_BrandFollowsAliasPerTheme(t *testing.T) {
	r := resolver.New(layeredTokens())

	assert.Equal(t, "#3b82f6", r.Resolve("acpd/color/content/primary", tier.Light))
	assert.Equal(t, "#1e3a8a", r.Resolve("acpd/color/content/primary", tier.Dark))
}

func TestResolve_ComponentCrossesTiers(t *testing.T) {
	r := resolver.New(layeredTokens())

	assert.Equal(t, "#3b82f6", r.Resolve("acpd/button/background", tier.Light))
	assert.Equal(t, "#1e3a8a", r.Resolve("acpd/button/background", tier.Dark))
}

func TestResolve_MissingData(t *testing.T) {
	tokens := layeredTokens()
	tokens = append(tokens, &token.Token{
		ID: "Brand:acpd/color/broken", Path: "acpd/color/broken",
		Collection: "Brand", Tier: tier.Brand, Type: "color", Brand: "acpd",
		Values: map[tier.Theme]any{tier.Light: "Global:color/nonexistent"},
	})
	r := resolver.New(tokens)

	assert.Nil(t, r.Resolve("no/such/path", tier.Light), "unknown path")
	assert.Nil(t, r.Resolve("acpd/color/broken", tier.Light), "dangling alias")
	assert.Nil(t, r.Resolve("acpd/color/broken", tier.Dark), "absent slot")
}

func TestResolve_CycleReturnsNil(t *testing.T) {
	tokens := []*token.Token{
		{
			ID: "Brand:x", Path: "x", Collection: "Brand", Tier: tier.Brand, Type: "color",
			Values: map[tier.Theme]any{tier.Light: "Brand:y"},
		},
		{
			ID: "Brand:y", Path: "y", Collection: "Brand", Tier: tier.Brand, Type: "color",
			Values: map[tier.Theme]any{tier.Light: "Brand:x"},
		},
	}
	r := resolver.New(tokens)

	assert.Nil(t, r.Resolve("x", tier.Light))
	assert.Nil(t, r.Resolve("y", tier.Light))
}

func TestResolve_SelfCycle(t *testing.T) {
	r := resolver.New([]*token.Token{{
		ID: "Brand:x", Path: "x", Collection: "Brand", Tier: tier.Brand, Type: "color",
		Values: map[tier.Theme]any{tier.Light: "Brand:x"},
	}})

	assert.Nil(t, r.Resolve("x", tier.Light))
}

func TestResolve_Idempotent(t *testing.T) {
	r := resolver.New(layeredTokens())

	first := r.Resolve("acpd/button/background", tier.Light)
	second := r.Resolve("acpd/button/background", tier.Light)
	assert.Equal(t, first, second)
	// A failed resolution in between must not poison later calls
	assert.Nil(t, r.Resolve("no/such/path", tier.Light))
	assert.Equal(t, first, r.Resolve("acpd/button/background", tier.Light))
}

func TestResolveAll(t *testing.T) {
	r := resolver.New(layeredTokens())

	all := r.ResolveAll("acpd", tier.Light)
	assert.Equal(t, "#3b82f6", all["color/blue/500"])
	assert.Equal(t, "#1e3a8a", all["color/blue/900"])
	assert.Equal(t, "#3b82f6", all["acpd/color/content/primary"])
	assert.Equal(t, "#3b82f6", all["acpd/button/background"])

	other := r.ResolveAll("eeaa", tier.Light)
	assert.Contains(t, other, "color/blue/500", "globals always included")
	assert.NotContains(t, other, "acpd/color/content/primary")
}

func TestChain(t *testing.T) {
	r := resolver.New(layeredTokens())

	chain := r.Chain("acpd/button/background", tier.Light)
	assert.Equal(t, []string{
		"Core:acpd/button/background",
		"Brand:acpd/color/content/primary",
		"Global:color/blue/500",
	}, chain)
}

func TestUpdate_Global(t *testing.T) {
	r := resolver.New(layeredTokens())

	updated, err := r.Update("color/blue/500", "#2563eb", tier.Dark)
	require.NoError(t, err)
	assert.Equal(t, "#2563eb", updated.Value)

	// The resolver's own copy is untouched
	assert.Equal(t, "#3b82f6", r.Resolve("color/blue/500", tier.Light))
}

func TestUpdate_BrandRequiresTheme(t *testing.T) {
	r := resolver.New(layeredTokens())

	_, err := r.Update("acpd/color/content/primary", "#000", tier.Theme(""))
	assert.ErrorIs(t, err, tier.ErrModeRequired)

	updated, err := r.Update("acpd/color/content/primary", "Global:color/blue/900", tier.Light)
	require.NoError(t, err)
	assert.Equal(t, "Global:color/blue/900", updated.Values[tier.Light])
	assert.Equal(t, "Global:color/blue/900", updated.Values[tier.Dark], "dark slot untouched")
}

func TestUpdate_Component(t *testing.T) {
	r := resolver.New(layeredTokens())

	updated, err := r.Update("acpd/button/background", "Brand:acpd/color/surface/default", tier.Light)
	require.NoError(t, err)
	assert.Equal(t, "Brand:acpd/color/surface/default", updated.BrandValues["acpd"])
}

func TestUpdate_UnknownPath(t *testing.T) {
	r := resolver.New(layeredTokens())

	_, err := r.Update("no/such/path", "x", tier.Light)
	assert.ErrorIs(t, err, tier.ErrUnknownToken)
}
