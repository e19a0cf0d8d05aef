/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for rovdim.
package resolve

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/rovdim/cmd/render"
	"bennypowers.dev/rovdim/fs"
	"bennypowers.dev/rovdim/parser"
	"bennypowers.dev/rovdim/resolver"
	"bennypowers.dev/rovdim/tier"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <file> <path>",
	Short: "Resolve one token to its terminal literal",
	Long:  `Resolve the token at a slash-separated path, following alias references across tiers until a literal is reached, and print the chain.`,
	Args:  cobra.ExactArgs(2),
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("chain", false, "Print the full resolution chain")
}

func run(cmd *cobra.Command, args []string) error {
	showChain, _ := cmd.Flags().GetBool("chain")
	mode := viper.GetString("mode")

	theme, err := tier.ParseTheme(mode)
	if err != nil {
		return fmt.Errorf("invalid mode %q: %w", mode, err)
	}

	filesystem := fs.NewOSFileSystem()
	jsonParser := parser.NewJSONParser()

	tokens, err := jsonParser.ParseFile(filesystem, args[0], parser.Options{})
	if err != nil {
		return err
	}

	r := resolver.New(tokens)
	path := args[1]

	resolved := r.Resolve(path, theme)
	if resolved == nil {
		return fmt.Errorf("%s does not resolve under %s (missing token, absent slot, dangling alias, or cycle)", path, theme)
	}

	if showChain {
		chain := r.Chain(path, theme)
		fmt.Printf("%s = %v\n", strings.Join(chain, " → "), resolved)
	} else {
		fmt.Printf("%v\n", resolved)
	}

	if t := r.Lookup(path); t != nil && t.Type == "color" {
		if swatch := render.ColorSwatch(fmt.Sprintf("%v", resolved)); swatch != "" {
			fmt.Print(swatch + "\n")
		}
	}

	return nil
}
