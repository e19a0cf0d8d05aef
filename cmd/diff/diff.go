/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package diff provides the diff command for rovdim.
package diff

import (
	"encoding/json"
	"fmt"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"github.com/spf13/cobra"

	"bennypowers.dev/rovdim/cmd/render"
	"bennypowers.dev/rovdim/config"
	rovdiff "bennypowers.dev/rovdim/diff"
	"bennypowers.dev/rovdim/fs"
	"bennypowers.dev/rovdim/parser"
	"bennypowers.dev/rovdim/resolver"
)

// Cmd is the diff cobra command.
var Cmd = &cobra.Command{
	Use:   "diff [base] [head]",
	Short: "Diff two token documents",
	Long:  `Compute the added, removed, and changed tokens between two versions of a token document, per mode, with resolved values for visual review.`,
	Args:  cobra.RangeArgs(0, 2),
	RunE:  run,
}

func init() {
	Cmd.Flags().String("format", "text", "Output format: text, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	filesystem := fs.NewOSFileSystem()
	jsonParser := parser.NewJSONParser()
	cfg := config.LoadOrDefault(filesystem, ".")

	basePath, headPath := cfg.Base, cfg.Head
	if len(args) == 2 {
		basePath, headPath = args[0], args[1]
	}
	if basePath == "" || headPath == "" {
		return fmt.Errorf("need base and head documents (arguments or config base/head)")
	}

	base, err := jsonParser.ParseFile(filesystem, basePath, parser.Options{})
	if err != nil {
		return err
	}
	head, err := jsonParser.ParseFile(filesystem, headPath, parser.Options{})
	if err != nil {
		return err
	}

	changes := rovdiff.Diff(base, head, resolver.New(base), resolver.New(head))

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(changes)
	}

	for _, c := range changes {
		switch c.Kind {
		case rovdiff.Added:
			fmt.Printf("+ %s [%s] %v\n", c.Path, c.Mode, c.NewValue)
		case rovdiff.Removed:
			fmt.Printf("- %s [%s] %v\n", c.Path, c.Mode, c.OldValue)
		case rovdiff.Changed:
			fmt.Printf("~ %s [%s] %v → %v%s\n", c.Path, c.Mode, c.OldValue, c.NewValue, annotate(c))
		}
	}

	if len(changes) == 0 {
		fmt.Println("No changes.")
	}
	return nil
}

// annotate renders resolved values and, for color tokens, swatches and
// the CIE-Lab distance between the old and new resolved colors.
func annotate(c *rovdiff.Change) string {
	if c.OldResolved == nil || c.NewResolved == nil {
		return ""
	}

	oldStr := fmt.Sprintf("%v", c.OldResolved)
	newStr := fmt.Sprintf("%v", c.NewResolved)
	out := fmt.Sprintf(" (%s → %s)", oldStr, newStr)

	if c.Type != "color" {
		return out
	}

	oldColor, errOld := csscolorparser.Parse(oldStr)
	newColor, errNew := csscolorparser.Parse(newStr)
	if errOld != nil || errNew != nil {
		return out
	}

	or, og, ob, _ := oldColor.RGBA255()
	nr, ng, nb, _ := newColor.RGBA255()
	a := colorful.Color{R: float64(or) / 255, G: float64(og) / 255, B: float64(ob) / 255}
	b := colorful.Color{R: float64(nr) / 255, G: float64(ng) / 255, B: float64(nb) / 255}

	return fmt.Sprintf(" (%s%s → %s%s ΔLab %.3f)",
		render.ColorSwatch(oldStr), oldStr,
		render.ColorSwatch(newStr), newStr,
		a.DistanceLab(b))
}
