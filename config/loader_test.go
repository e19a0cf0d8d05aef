/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config_test

import (
	"testing"

	"bennypowers.dev/rovdim/config"
	"bennypowers.dev/rovdim/testutil"
)

func TestLoad_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, map[string]string{
		"/project/.config/rovdim.yaml": `
brand: acpd
base: tokens/main.json
head: tokens/feature.json
files:
  - tokens/main.json
  - path: tokens/extra.json
    brand: eeaa
`,
	})

	cfg, err := config.Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if cfg.Brand != "acpd" {
		t.Errorf("expected brand acpd, got %s", cfg.Brand)
	}
	if cfg.Base != "tokens/main.json" || cfg.Head != "tokens/feature.json" {
		t.Errorf("unexpected base/head: %s / %s", cfg.Base, cfg.Head)
	}
	if len(cfg.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(cfg.Files))
	}
	if cfg.Files[0].Path != "tokens/main.json" || cfg.Files[0].Brand != "" {
		t.Errorf("unexpected first file spec: %+v", cfg.Files[0])
	}
	if cfg.Files[1].Path != "tokens/extra.json" || cfg.Files[1].Brand != "eeaa" {
		t.Errorf("unexpected second file spec: %+v", cfg.Files[1])
	}
}

func TestLoad_JSON(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, map[string]string{
		"/project/.config/rovdim.json": `{"brand": "eeaa", "files": ["tokens.json"]}`,
	})

	cfg, err := config.Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil || cfg.Brand != "eeaa" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.Files) != 1 || cfg.Files[0].Path != "tokens.json" {
		t.Errorf("unexpected files: %+v", cfg.Files)
	}
}

func TestLoad_NotFound(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, map[string]string{})

	cfg, err := config.Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config when no file present, got %+v", cfg)
	}

	if def := config.LoadOrDefault(mfs, "/project"); def == nil {
		t.Error("LoadOrDefault should always return a config")
	}
}

func TestOptionsForFile(t *testing.T) {
	cfg := &config.Config{
		Brand: "acpd",
		Files: []config.FileSpec{
			{Path: "a.json"},
			{Path: "b.json", Brand: "eeaa"},
		},
	}

	if opts := cfg.OptionsForFile("a.json"); opts.Brand != "acpd" {
		t.Errorf("expected global brand, got %s", opts.Brand)
	}
	if opts := cfg.OptionsForFile("b.json"); opts.Brand != "eeaa" {
		t.Errorf("expected file override brand, got %s", opts.Brand)
	}
}

func TestExpandFiles_Glob(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, map[string]string{
		"/project/tokens/main.json":        "{}",
		"/project/tokens/brands/acpd.json": "{}",
		"/project/tokens/brands/eeaa.json": "{}",
		"/project/tokens/README.md":        "",
		"/project/.config/rovdim.yaml":     "files: ['tokens/**/*.json']",
	})

	cfg, err := config.Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	paths, err := cfg.ExpandFiles(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(paths) != 3 {
		t.Fatalf("expected 3 matches, got %d: %v", len(paths), paths)
	}
}
