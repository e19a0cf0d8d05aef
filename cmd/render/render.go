/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"fmt"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/rovdim/resolver"
	"bennypowers.dev/rovdim/tier"
	"bennypowers.dev/rovdim/token"
)

// Row holds computed display values for a single token.
type Row struct {
	ID       string // Token id (collection:path)
	Tier     string // Tier name
	Type     string // Token type
	Value    string // Raw display value for the selected theme
	Resolved string // Resolved literal, empty when resolution failed
	IsColor  bool   // Whether Resolved is a parseable color
	Chain    []string
}

// ComputeRows transforms tokens into display rows for one theme.
func ComputeRows(tokens []*token.Token, r *resolver.Resolver, theme tier.Theme) []Row {
	rows := make([]Row, 0, len(tokens))
	for _, tok := range tokens {
		row := Row{
			ID:   tok.ID,
			Tier: tok.Tier.String(),
			Type: tok.Type,
		}

		if raw, ok := tok.Slot(theme); ok {
			row.Value = fmt.Sprintf("%v", raw)
		} else {
			row.Value = "-"
		}

		if resolved := r.Resolve(tok.Path, theme); resolved != nil {
			row.Resolved = fmt.Sprintf("%v", resolved)
		}

		if chain := r.Chain(tok.Path, theme); len(chain) > 1 {
			row.Chain = chain
		}

		if tok.Type == "color" && row.Resolved != "" {
			if _, err := csscolorparser.Parse(row.Resolved); err == nil {
				row.IsColor = true
			}
		}

		rows = append(rows, row)
	}
	return rows
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (id, typ int) {
	id, typ = 2, 4 // minimums for headers
	for _, r := range rows {
		if len(r.ID) > id {
			id = len(r.ID)
		}
		if len(r.Type) > typ {
			typ = len(r.Type)
		}
	}
	return
}

// Table renders rows as an aligned table to stdout.
func Table(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	idW, typeW := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if r.IsColor {
			swatch = ColorSwatch(r.Resolved)
		}
		value := r.Value
		if r.Resolved != "" && r.Resolved != r.Value {
			value = fmt.Sprintf("%s → %s", r.Value, r.Resolved)
		}
		fmt.Printf("%-*s  %-*s  %s%s\n", idW, r.ID, typeW, r.Type, swatch, value)
	}
	return nil
}

// Markdown renders rows as markdown tables grouped by tier.
func Markdown(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	title := cases.Title(language.English)

	// Group rows by tier, preserving order of first occurrence
	tierOrder := make([]string, 0)
	byTier := make(map[string][]Row)
	for _, r := range rows {
		if _, exists := byTier[r.Tier]; !exists {
			tierOrder = append(tierOrder, r.Tier)
		}
		byTier[r.Tier] = append(byTier[r.Tier], r)
	}

	first := true
	for _, t := range tierOrder {
		group := byTier[t]
		if !first {
			fmt.Println()
		}
		first = false

		fmt.Printf("## %s\n\n", title.String(t))
		fmt.Println("| Token | Type | Value | Resolved |")
		fmt.Println("| --- | --- | --- | --- |")
		for _, r := range group {
			resolved := r.Resolved
			if resolved == "" {
				resolved = "-"
			}
			fmt.Printf("| %s | %s | %s | %s |\n",
				escapePipes(r.ID), r.Type, escapePipes(r.Value), escapePipes(resolved))
		}
	}
	return nil
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
