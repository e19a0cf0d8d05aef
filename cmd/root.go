/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for rovdim.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/rovdim/cmd/diff"
	"bennypowers.dev/rovdim/cmd/list"
	"bennypowers.dev/rovdim/cmd/resolve"
	"bennypowers.dev/rovdim/cmd/set"
	"bennypowers.dev/rovdim/cmd/tree"
	"bennypowers.dev/rovdim/cmd/validate"
	"bennypowers.dev/rovdim/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "rovdim",
	Short: "Parse and work with layered brand token documents",
	Long:  `rovdim parses, resolves, validates, and diffs layered multi-mode design token documents (Global, Brand, and Component tiers).`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("brand", "b", "", "Filter tokens to one brand (acpd, eeaa)")
	rootCmd.PersistentFlags().StringP("mode", "m", "light", "Theme mode for resolution (light, dark)")
	_ = viper.BindPFlag("brand", rootCmd.PersistentFlags().Lookup("brand"))
	_ = viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode"))

	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(set.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(tree.Cmd)
	rootCmd.AddCommand(diff.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
