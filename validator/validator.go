/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator provides reference validation for flattened token sets.
package validator

import (
	"fmt"
	"strings"

	"bennypowers.dev/rovdim/resolver"
	"bennypowers.dev/rovdim/tier"
	"bennypowers.dev/rovdim/token"
)

// Kind classifies a validation error.
type Kind string

const (
	// CircularReference is a token reachable from itself via aliases.
	CircularReference Kind = "circular_reference"

	// MissingReference is a well-formed alias whose target collection
	// or path does not exist.
	MissingReference Kind = "missing_reference"

	// InvalidValue is a malformed alias string.
	InvalidValue Kind = "invalid_value"

	// TypeMismatch is an alias whose target declares a different type.
	TypeMismatch Kind = "type_mismatch"
)

// ValidationError describes one problem with one token slot.
type ValidationError struct {
	// TokenID is the id of the token whose slot is invalid.
	TokenID string
	// Path is the token's path.
	Path string
	// Mode is the slot's mode label (default, light, dark, or a brand code).
	Mode string
	// Kind classifies the error.
	Kind Kind
	// Message describes what's wrong.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.TokenID)
	if e.Mode != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Mode)
		sb.WriteString(")")
	}
	sb.WriteString(": ")
	sb.WriteString(string(e.Kind))
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	return sb.String()
}

// Unwrap maps the error kind to its sentinel, so callers can use
// errors.Is against the tier sentinels.
func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case CircularReference:
		return tier.ErrCircularReference
	case MissingReference:
		return tier.ErrMissingReference
	case InvalidValue:
		return tier.ErrInvalidValue
	case TypeMismatch:
		return tier.ErrTypeMismatch
	default:
		return nil
	}
}

// Result is a complete validation report.
type Result struct {
	// Valid is true when no errors were found.
	Valid bool `json:"valid"`
	// Errors lists every problem found. Never nil.
	Errors []*ValidationError `json:"errors"`
}

// Validate checks every token, for every mode applicable to its shape,
// for circular, malformed, dangling, and type-mismatched references.
// It accumulates all errors and never short-circuits; absent mode slots
// are not errors, they simply resolve to nil.
func Validate(r *resolver.Resolver) *Result {
	result := &Result{Errors: []*ValidationError{}}

	for _, t := range r.Tokens() {
		switch {
		case t.Values != nil:
			for _, theme := range tier.Themes {
				if raw, ok := t.Values[theme]; ok {
					if err := checkChain(r, t, string(theme), raw, theme); err != nil {
						result.Errors = append(result.Errors, err)
					}
				}
			}
		case t.BrandValues != nil:
			for brand, raw := range t.BrandValues {
				// Downstream brand-tier targets vary by theme, so a
				// per-brand slot is walked under both.
				seen := map[Kind]bool{}
				for _, theme := range tier.Themes {
					err := checkChain(r, t, brand, raw, theme)
					if err != nil && !seen[err.Kind] {
						seen[err.Kind] = true
						result.Errors = append(result.Errors, err)
					}
				}
			}
		default:
			if t.Value != nil {
				if err := checkChain(r, t, "default", t.Value, tier.Light); err != nil {
					result.Errors = append(result.Errors, err)
				}
			}
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// checkChain walks the alias chain starting at one slot with a fresh
// visited set, returning the first structural problem it encounters.
func checkChain(r *resolver.Resolver, t *token.Token, mode string, raw any, theme tier.Theme) *ValidationError {
	visited := map[string]bool{t.ID: true}
	current := raw

	for {
		v, err := token.ParseValue(current)
		if err != nil {
			return &ValidationError{
				TokenID: t.ID,
				Path:    t.Path,
				Mode:    mode,
				Kind:    InvalidValue,
				Message: fmt.Sprintf("%v", err),
			}
		}

		alias, ok := v.(token.Alias)
		if !ok {
			// Terminal literal: chain is sound.
			return nil
		}

		target := r.LookupIn(alias.Collection, alias.Path)
		if target == nil {
			return &ValidationError{
				TokenID: t.ID,
				Path:    t.Path,
				Mode:    mode,
				Kind:    MissingReference,
				Message: fmt.Sprintf("no token at %s", alias.Target()),
			}
		}

		if target.Type != t.Type {
			return &ValidationError{
				TokenID: t.ID,
				Path:    t.Path,
				Mode:    mode,
				Kind:    TypeMismatch,
				Message: fmt.Sprintf("%s is %s, expected %s", alias.Target(), target.Type, t.Type),
			}
		}

		if visited[target.ID] {
			return &ValidationError{
				TokenID: t.ID,
				Path:    t.Path,
				Mode:    mode,
				Kind:    CircularReference,
				Message: fmt.Sprintf("chain revisits %s", target.ID),
			}
		}
		visited[target.ID] = true

		next, ok := target.Slot(theme)
		if !ok {
			// Absent slot downstream: not a structural error here.
			return nil
		}
		current = next
	}
}
