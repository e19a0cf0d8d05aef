/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver provides alias resolution over a flat token set.
package resolver

import (
	"fmt"

	"bennypowers.dev/rovdim/tier"
	"bennypowers.dev/rovdim/token"
)

// Resolver resolves token values by following alias references across
// tiers until a terminal literal is reached. It is a pure, in-memory
// view over one flattened document snapshot; every resolution walks the
// chain with a fresh visited set, so independent calls never interfere.
type Resolver struct {
	tokens       []*token.Token
	byPath       map[string]*token.Token
	byCollection map[string]map[string]*token.Token
}

// New builds a resolver, indexing the tokens by path and by
// (collection, path). Paths are assumed distinct across collections;
// when they are not, the first token flattened wins the path index.
func New(tokens []*token.Token) *Resolver {
	r := &Resolver{
		tokens:       tokens,
		byPath:       make(map[string]*token.Token, len(tokens)),
		byCollection: make(map[string]map[string]*token.Token),
	}

	for _, t := range tokens {
		if _, exists := r.byPath[t.Path]; !exists {
			r.byPath[t.Path] = t
		}
		collection, ok := r.byCollection[t.Collection]
		if !ok {
			collection = make(map[string]*token.Token)
			r.byCollection[t.Collection] = collection
		}
		collection[t.Path] = t
	}

	return r
}

// Tokens returns the resolver's token set.
func (r *Resolver) Tokens() []*token.Token {
	return r.tokens
}

// Lookup returns the token at path, or nil.
func (r *Resolver) Lookup(path string) *token.Token {
	return r.byPath[path]
}

// LookupIn returns the token at path within the named collection, or
// nil. Alias targets specify a collection, so this is the index alias
// resolution goes through.
func (r *Resolver) LookupIn(collection, path string) *token.Token {
	tokens, ok := r.byCollection[collection]
	if !ok {
		return nil
	}
	return tokens[path]
}

// Resolve returns the terminal literal for the token at path under the
// given theme, or nil. Resolution is total over missing data: an
// unknown path, an absent mode slot, a malformed or dangling alias, and
// a cycle all yield nil rather than an error, because token documents
// are user-edited and frequently transiently invalid.
func (r *Resolver) Resolve(path string, theme tier.Theme) any {
	t := r.byPath[path]
	if t == nil {
		return nil
	}
	visited := map[string]bool{t.ID: true}
	return r.resolveToken(t, theme, visited)
}

// ResolveValue resolves an arbitrary raw slot value under the given
// theme, following aliases as Resolve does. Used by the diff engine to
// resolve individual changed slots.
func (r *Resolver) ResolveValue(raw any, theme tier.Theme) any {
	return r.resolveRaw(raw, theme, make(map[string]bool))
}

// ResolveAll resolves every global token and every token scoped to
// brand (or unscoped) for the given theme, keyed by path. Failed
// resolutions map to nil. Callers resolving many tokens should prefer
// this over calling Resolve in a loop.
func (r *Resolver) ResolveAll(brand string, theme tier.Theme) map[string]any {
	result := make(map[string]any, len(r.tokens))
	for _, t := range r.tokens {
		if t.Tier != tier.Global && t.Brand != "" && t.Brand != brand {
			continue
		}
		visited := map[string]bool{t.ID: true}
		result[t.Path] = r.resolveToken(t, theme, visited)
	}
	return result
}

// Chain returns the ids of the tokens visited while resolving path
// under theme, starting with the token at path itself, in order. The
// chain stops at the first token whose slot is a literal, absent, or
// unresolvable. Returns nil for an unknown path.
func (r *Resolver) Chain(path string, theme tier.Theme) []string {
	t := r.byPath[path]
	if t == nil {
		return nil
	}

	chain := []string{t.ID}
	visited := map[string]bool{t.ID: true}

	for {
		raw, ok := t.Slot(theme)
		if !ok {
			return chain
		}
		v, err := token.ParseValue(raw)
		if err != nil {
			return chain
		}
		alias, ok := v.(token.Alias)
		if !ok {
			return chain
		}
		target := r.LookupIn(alias.Collection, alias.Path)
		if target == nil || visited[target.ID] {
			return chain
		}
		visited[target.ID] = true
		chain = append(chain, target.ID)
		t = target
	}
}

// resolveToken resolves a token's slot for the theme, carrying the
// visited set across alias hops.
func (r *Resolver) resolveToken(t *token.Token, theme tier.Theme, visited map[string]bool) any {
	raw, ok := t.Slot(theme)
	if !ok {
		return nil
	}
	return r.resolveRaw(raw, theme, visited)
}

// resolveRaw resolves one raw slot value: literals pass through
// unchanged, aliases recurse under the same theme.
func (r *Resolver) resolveRaw(raw any, theme tier.Theme, visited map[string]bool) any {
	v, err := token.ParseValue(raw)
	if err != nil {
		return nil
	}

	switch value := v.(type) {
	case token.Literal:
		return value.Value
	case token.Alias:
		target := r.LookupIn(value.Collection, value.Path)
		if target == nil || visited[target.ID] {
			return nil
		}
		visited[target.ID] = true
		return r.resolveToken(target, theme, visited)
	default:
		return nil
	}
}

// Update returns a new token value with the targeted slot overwritten.
// Single-mode tokens ignore the theme; theme-shaped tokens require an
// explicit theme rather than guessing a slot; per-brand tokens write
// their own brand's slot. The resolver's internal copy and the raw
// document are left untouched: writing the new value back is the
// caller's responsibility.
func (r *Resolver) Update(path string, value any, theme tier.Theme) (*token.Token, error) {
	t := r.byPath[path]
	if t == nil {
		return nil, fmt.Errorf("%w: %s", tier.ErrUnknownToken, path)
	}

	dup := t.Clone()
	switch {
	case dup.Values != nil:
		if theme != tier.Light && theme != tier.Dark {
			return nil, fmt.Errorf("%w: %s", tier.ErrModeRequired, path)
		}
		dup.Values[theme] = value
	case dup.BrandValues != nil:
		if dup.Brand == "" {
			return nil, fmt.Errorf("%w: component token %s has no brand scope", tier.ErrModeRequired, path)
		}
		dup.BrandValues[dup.Brand] = value
	default:
		dup.Value = value
	}

	return dup, nil
}
