/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tier provides the layering model for rovdim token documents.
package tier

import "fmt"

// Tier represents the layer a token collection belongs to.
type Tier int

const (
	// Global holds raw primitive values in a single Default mode.
	Global Tier = iota

	// Brand holds brand-semantic aliases that vary by light/dark theme.
	Brand

	// Component holds component-provenance aliases that vary by brand.
	Component
)

// String returns the string representation of the tier.
func (t Tier) String() string {
	switch t {
	case Global:
		return "global"
	case Brand:
		return "brand"
	case Component:
		return "component"
	default:
		return "unknown"
	}
}

// FromCollection derives the tier from a collection name.
// "Global" and "Brand" are reserved names; everything else is a
// component collection.
func FromCollection(name string) Tier {
	switch name {
	case "Global":
		return Global
	case "Brand":
		return Brand
	default:
		return Component
	}
}

// FromString returns the tier from its string representation.
func FromString(s string) (Tier, error) {
	switch s {
	case "global":
		return Global, nil
	case "brand":
		return Brand, nil
	case "component":
		return Component, nil
	default:
		return Global, fmt.Errorf("unrecognized tier: %s", s)
	}
}

// Theme is the light/dark axis brand-tier values vary over.
type Theme string

const (
	// Light is the light theme slot.
	Light Theme = "light"

	// Dark is the dark theme slot.
	Dark Theme = "dark"
)

// Themes lists the two theme slots in canonical order.
var Themes = []Theme{Light, Dark}

// ModeName returns the document spelling of the theme ("Light", "Dark").
func (t Theme) ModeName() string {
	switch t {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	default:
		return string(t)
	}
}

// ParseTheme returns the theme for a mode name, accepting the document
// spelling ("Light") as well as the normalized one ("light").
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "light", "Light":
		return Light, nil
	case "dark", "Dark":
		return Dark, nil
	default:
		return "", fmt.Errorf("%w: %q is not a theme mode", ErrUnknownMode, s)
	}
}

// DefaultMode is the sole mode name of the Global collection.
const DefaultMode = "Default"

// Brands lists the recognized brand codes, used both as component-tier
// mode names and as brand-scoping path prefixes.
var Brands = []string{"acpd", "eeaa"}

// IsBrandCode returns true if s is a recognized brand code.
func IsBrandCode(s string) bool {
	for _, b := range Brands {
		if s == b {
			return true
		}
	}
	return false
}
