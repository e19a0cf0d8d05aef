/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package diff computes token-level differences between two document snapshots.
package diff

import (
	"reflect"
	"sort"

	"bennypowers.dev/rovdim/resolver"
	"bennypowers.dev/rovdim/tier"
	"bennypowers.dev/rovdim/token"
)

// Kind classifies a change.
type Kind string

const (
	// Added is a token present only in the head snapshot.
	Added Kind = "added"

	// Removed is a token present only in the base snapshot.
	Removed Kind = "removed"

	// Changed is a token whose raw value differs between snapshots.
	Changed Kind = "changed"
)

// Change describes one per-mode difference between two snapshots.
type Change struct {
	// Path is the token's path.
	Path string `json:"path"`

	// Kind is added, removed, or changed.
	Kind Kind `json:"kind"`

	// Mode is the slot the change applies to (default, light, dark, or
	// a brand code).
	Mode string `json:"mode,omitempty"`

	// Type is the token's declared type, from head when present there.
	Type string `json:"type,omitempty"`

	// OldValue and NewValue are the raw slot values; nil on the absent side.
	OldValue any `json:"oldValue,omitempty"`
	NewValue any `json:"newValue,omitempty"`

	// OldResolved and NewResolved are the terminal literals the raw
	// values resolve to, when resolution succeeds.
	OldResolved any `json:"oldResolved,omitempty"`
	NewResolved any `json:"newResolved,omitempty"`
}

// Diff computes the added, removed, and changed tokens between two
// flattened snapshots, per applicable mode. Modes whose raw value is
// equal in both snapshots produce no entry. The two resolvers supply
// resolved old/new literals for visual diffing.
func Diff(base, head []*token.Token, rBase, rHead *resolver.Resolver) []*Change {
	basePaths := byPath(base)
	headPaths := byPath(head)

	paths := make([]string, 0, len(basePaths)+len(headPaths))
	for p := range basePaths {
		paths = append(paths, p)
	}
	for p := range headPaths {
		if _, ok := basePaths[p]; !ok {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)

	var changes []*Change
	for _, path := range paths {
		baseTok, inBase := basePaths[path]
		headTok, inHead := headPaths[path]

		switch {
		case !inBase:
			changes = append(changes, added(headTok, rHead)...)
		case !inHead:
			changes = append(changes, removed(baseTok, rBase)...)
		default:
			changes = append(changes, compare(baseTok, headTok, rBase, rHead)...)
		}
	}

	return changes
}

func byPath(tokens []*token.Token) map[string]*token.Token {
	m := make(map[string]*token.Token, len(tokens))
	for _, t := range tokens {
		m[t.Path] = t
	}
	return m
}

// modeSlots returns the mode labels and raw values applicable to a
// token: the single default slot, the two theme slots, or one slot per
// brand code. Absent slots are included with a nil value so both sides
// of a comparison enumerate the same modes.
func modeSlots(t *token.Token) map[string]any {
	switch {
	case t.Values != nil:
		slots := make(map[string]any, 2)
		for _, theme := range tier.Themes {
			slots[string(theme)] = t.Values[theme]
		}
		return slots
	case t.BrandValues != nil:
		slots := make(map[string]any, len(t.BrandValues))
		for brand, raw := range t.BrandValues {
			slots[brand] = raw
		}
		return slots
	default:
		return map[string]any{"default": t.Value}
	}
}

// resolveSlot resolves one raw slot value with the snapshot's resolver.
// Theme-labelled slots resolve under their own theme; the default and
// per-brand slots resolve under the light theme.
func resolveSlot(r *resolver.Resolver, mode string, raw any) any {
	if raw == nil || r == nil {
		return nil
	}
	theme := tier.Light
	if t, err := tier.ParseTheme(mode); err == nil {
		theme = t
	}
	return r.ResolveValue(raw, theme)
}

func added(t *token.Token, r *resolver.Resolver) []*Change {
	var changes []*Change
	slots := modeSlots(t)
	for _, mode := range sortedModes(slots) {
		raw := slots[mode]
		if raw == nil {
			continue
		}
		changes = append(changes, &Change{
			Path:        t.Path,
			Kind:        Added,
			Mode:        mode,
			Type:        t.Type,
			NewValue:    raw,
			NewResolved: resolveSlot(r, mode, raw),
		})
	}
	return changes
}

func removed(t *token.Token, r *resolver.Resolver) []*Change {
	var changes []*Change
	slots := modeSlots(t)
	for _, mode := range sortedModes(slots) {
		raw := slots[mode]
		if raw == nil {
			continue
		}
		changes = append(changes, &Change{
			Path:        t.Path,
			Kind:        Removed,
			Mode:        mode,
			Type:        t.Type,
			OldValue:    raw,
			OldResolved: resolveSlot(r, mode, raw),
		})
	}
	return changes
}

// compare emits one change per mode whose raw value differs.
func compare(base, head *token.Token, rBase, rHead *resolver.Resolver) []*Change {
	oldSlots := modeSlots(base)
	newSlots := modeSlots(head)

	modes := make(map[string]bool, len(oldSlots)+len(newSlots))
	for m := range oldSlots {
		modes[m] = true
	}
	for m := range newSlots {
		modes[m] = true
	}

	var changes []*Change
	for _, mode := range sortedModes(modes) {
		oldRaw := oldSlots[mode]
		newRaw := newSlots[mode]
		if reflect.DeepEqual(oldRaw, newRaw) {
			continue
		}
		changes = append(changes, &Change{
			Path:        head.Path,
			Kind:        Changed,
			Mode:        mode,
			Type:        head.Type,
			OldValue:    oldRaw,
			NewValue:    newRaw,
			OldResolved: resolveSlot(rBase, mode, oldRaw),
			NewResolved: resolveSlot(rHead, mode, newRaw),
		})
	}
	return changes
}

func sortedModes[V any](m map[string]V) []string {
	modes := make([]string, 0, len(m))
	for mode := range m {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	return modes
}
