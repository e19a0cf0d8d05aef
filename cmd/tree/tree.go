/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tree provides the tree command for rovdim.
package tree

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/rovdim/fs"
	"bennypowers.dev/rovdim/parser"
	toktree "bennypowers.dev/rovdim/tree"
)

// Cmd is the tree cobra command.
var Cmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Print the token hierarchy",
	Long:  `Reorganize a token document's flat tokens into a path-segment hierarchy and print it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().String("format", "text", "Output format: text, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	brand := viper.GetString("brand")

	filesystem := fs.NewOSFileSystem()
	jsonParser := parser.NewJSONParser()

	tokens, err := jsonParser.ParseFile(filesystem, args[0], parser.Options{Brand: brand})
	if err != nil {
		return err
	}

	root := toktree.Build(tokens)

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(root)
	}

	printNode(root, "")
	return nil
}

func printNode(n *toktree.Node, indent string) {
	for _, child := range n.Children {
		label := child.Name
		if child.IsLeaf() {
			label = fmt.Sprintf("%s (%s)", child.Name, child.Token.Type)
		}
		fmt.Printf("%s%s\n", indent, label)
		printNode(child, indent+"  ")
	}
}
