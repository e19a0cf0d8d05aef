/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for rovdim.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/rovdim/config"
	"bennypowers.dev/rovdim/fs"
	"bennypowers.dev/rovdim/internal/logger"
	"bennypowers.dev/rovdim/parser"
	"bennypowers.dev/rovdim/resolver"
	"bennypowers.dev/rovdim/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate token documents",
	Long:  `Validate token documents for structural integrity: circular, dangling, malformed, and type-mismatched references.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

	filesystem := fs.NewOSFileSystem()
	jsonParser := parser.NewJSONParser()
	cfg := config.LoadOrDefault(filesystem, ".")

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

	hasErrors := false

	for _, file := range files {
		if !quiet {
			fmt.Printf("Validating %s...\n", file)
		}

		tokens, err := jsonParser.ParseFile(filesystem, file, parser.Options{})
		if err != nil {
			logger.Warn("failed to parse %s: %v", file, err)
			hasErrors = true
			continue
		}

		result := validator.Validate(resolver.New(tokens))
		if !result.Valid {
			hasErrors = true
			for _, verr := range result.Errors {
				fmt.Fprintf(os.Stderr, "  %s\n", verr.Error())
			}
			continue
		}

		if !quiet {
			fmt.Printf("  %d tokens, no reference errors\n", len(tokens))
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	if !quiet {
		fmt.Println("All files valid.")
	}
	return nil
}
