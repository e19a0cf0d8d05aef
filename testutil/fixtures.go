/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for rovdim.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/rovdim/internal/mapfs"
)

// LoadFixtureFile reads a single fixture file and returns its content.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()

	possiblePaths := []string{
		filepath.Join("testdata", fixturePath),
		filepath.Join("..", "testdata", fixturePath),
		filepath.Join("..", "..", "testdata", fixturePath),
	}

	for _, path := range possiblePaths {
		content, err := os.ReadFile(path)
		if err == nil {
			return content
		}
	}
	t.Fatalf("Failed to read fixture %s (tried all paths)", fixturePath)
	return nil
}

// NewFixtureFS returns an in-memory filesystem preloaded with the given
// path/content pairs.
func NewFixtureFS(t *testing.T, files map[string]string) *mapfs.MapFileSystem {
	t.Helper()

	mfs := mapfs.New()
	for path, content := range files {
		mfs.AddFile(path, content, 0644)
	}
	return mfs
}
