/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for rovdim.
package list

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/rovdim/cmd/render"
	"bennypowers.dev/rovdim/config"
	"bennypowers.dev/rovdim/fs"
	"bennypowers.dev/rovdim/internal/logger"
	"bennypowers.dev/rovdim/parser"
	"bennypowers.dev/rovdim/resolver"
	"bennypowers.dev/rovdim/tier"
	"bennypowers.dev/rovdim/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List tokens from token documents",
	Long:  `List all tokens from token documents with optional brand filtering and resolution.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("tier", "", "Filter by tier (global, brand, component)")
	Cmd.Flags().String("type", "", "Filter by token type (color, number, string)")
	Cmd.Flags().String("format", "table", "Output format: table, json, markdown")
}

func run(cmd *cobra.Command, args []string) error {
	tierFilter, _ := cmd.Flags().GetString("tier")
	typeFilter, _ := cmd.Flags().GetString("type")
	format, _ := cmd.Flags().GetString("format")
	brand := viper.GetString("brand")
	mode := viper.GetString("mode")

	theme, err := tier.ParseTheme(mode)
	if err != nil {
		return fmt.Errorf("invalid mode %q: %w", mode, err)
	}

	filesystem := fs.NewOSFileSystem()
	jsonParser := parser.NewJSONParser()
	cfg := config.LoadOrDefault(filesystem, ".")

	if brand == "" {
		brand = cfg.Brand
	}

	files := args
	if len(files) == 0 {
		expanded, err := cfg.ExpandFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	var allTokens []*token.Token
	for _, file := range files {
		tokens, err := jsonParser.ParseFile(filesystem, file, parser.Options{Brand: brand})
		if err != nil {
			logger.Warn("skipping %s: %v", file, err)
			continue
		}
		allTokens = append(allTokens, tokens...)
	}

	if tierFilter != "" {
		want, err := tier.FromString(tierFilter)
		if err != nil {
			return err
		}
		filtered := make([]*token.Token, 0, len(allTokens))
		for _, tok := range allTokens {
			if tok.Tier == want {
				filtered = append(filtered, tok)
			}
		}
		allTokens = filtered
	}

	if typeFilter != "" {
		filtered := make([]*token.Token, 0, len(allTokens))
		for _, tok := range allTokens {
			if tok.Type == typeFilter {
				filtered = append(filtered, tok)
			}
		}
		allTokens = filtered
	}

	r := resolver.New(allTokens)
	rows := render.ComputeRows(allTokens, r, theme)

	switch format {
	case "json":
		return outputJSON(rows)
	case "markdown":
		return render.Markdown(rows)
	default:
		return render.Table(rows)
	}
}

func outputJSON(rows []render.Row) error {
	type rowOutput struct {
		ID       string `json:"id"`
		Tier     string `json:"tier"`
		Type     string `json:"type"`
		Value    string `json:"value"`
		Resolved string `json:"resolved,omitempty"`
	}

	output := make([]rowOutput, 0, len(rows))
	for _, r := range rows {
		output = append(output, rowOutput{
			ID:       r.ID,
			Tier:     r.Tier,
			Type:     r.Type,
			Value:    r.Value,
			Resolved: r.Resolved,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
