/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for rovdim tooling.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/rovdim/parser"
)

// Config represents the rovdim configuration.
type Config struct {
	// Brand is the default brand filter applied to flattened output.
	Brand string `yaml:"brand" json:"brand"`

	// Files specifies token document files to load (paths or globs).
	Files []FileSpec `yaml:"files" json:"files"`

	// Base and Head are default document paths for the diff command,
	// typically two checked-out branches of the same file.
	Base string `yaml:"base" json:"base"`
	Head string `yaml:"head" json:"head"`
}

// FileSpec represents a token document file specification.
// It can be specified as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path (supports globs).
	Path string `yaml:"path" json:"path"`

	// Brand overrides the global brand filter for this file.
	Brand string `yaml:"brand" json:"brand"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// OptionsForFile returns parser.Options with configuration applied.
// File-level overrides take precedence over global config.
func (c *Config) OptionsForFile(path string) parser.Options {
	opts := parser.Options{
		Brand: c.Brand,
	}

	for _, spec := range c.Files {
		if spec.Path == path {
			if spec.Brand != "" {
				opts.Brand = spec.Brand
			}
			break
		}
	}

	return opts
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
