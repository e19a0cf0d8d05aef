/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package set provides the set command for rovdim.
package set

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/rovdim/fs"
	"bennypowers.dev/rovdim/parser"
	"bennypowers.dev/rovdim/resolver"
	"bennypowers.dev/rovdim/tier"
)

// Cmd is the set cobra command.
var Cmd = &cobra.Command{
	Use:   "set <file> <path> <value>",
	Short: "Overwrite one token value and write the document back",
	Long:  `Overwrite the value of the token at a slash-separated path and serialize the document back to disk. Theme-shaped tokens write the slot named by --mode; per-brand tokens write their own brand's slot.`,
	Args:  cobra.ExactArgs(3),
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	file, path, rawValue := args[0], args[1], args[2]
	mode := viper.GetString("mode")

	theme, err := tier.ParseTheme(mode)
	if err != nil {
		return fmt.Errorf("invalid mode %q: %w", mode, err)
	}

	filesystem := fs.NewOSFileSystem()
	jsonParser := parser.NewJSONParser()

	data, err := filesystem.ReadFile(file)
	if err != nil {
		return err
	}
	doc, err := jsonParser.ParseDocument(data)
	if err != nil {
		return err
	}
	tokens, err := parser.Flatten(doc, parser.Options{})
	if err != nil {
		return err
	}

	r := resolver.New(tokens)
	target := r.Lookup(path)
	if target == nil {
		return fmt.Errorf("%w: %s", tier.ErrUnknownToken, path)
	}

	value := coerce(rawValue, target.Type)

	updated, err := r.Update(path, value, theme)
	if err != nil {
		return err
	}

	// Map the updated slot back to the raw document's mode name.
	var modeName string
	switch {
	case updated.Values != nil:
		modeName = theme.ModeName()
	case updated.BrandValues != nil:
		modeName = updated.Brand
	default:
		modeName = tier.DefaultMode
	}

	if err := doc.SetValue(updated.Collection, updated.Path, modeName, value); err != nil {
		return err
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := filesystem.WriteFile(file, append(out, '\n'), 0644); err != nil {
		return err
	}

	fmt.Printf("%s (%s) = %v\n", updated.ID, modeName, value)
	return nil
}

// coerce converts a CLI argument to the token's declared value type.
// Number tokens take a float; everything else stays a string, including
// alias references.
func coerce(raw, tokenType string) any {
	if tokenType == "number" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}
	return raw
}
