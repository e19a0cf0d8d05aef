/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/rovdim/document"
	"bennypowers.dev/rovdim/fs"
	"bennypowers.dev/rovdim/token"
)

// JSONParser parses rovdim token documents from JSON or YAML.
type JSONParser struct{}

// NewJSONParser creates a new document parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses JSON or YAML document data and returns flattened tokens.
func (p *JSONParser) Parse(data []byte, opts Options) ([]*token.Token, error) {
	doc, err := p.ParseDocument(data)
	if err != nil {
		return nil, err
	}

	if opts.Brand != "" {
		return FlattenForBrand(doc, opts.Brand, opts)
	}
	return Flatten(doc, opts)
}

// ParseDocument decodes document data without flattening.
func (p *JSONParser) ParseDocument(data []byte) (*document.Document, error) {
	var jsonData []byte

	if isLikelyJSON(data) {
		// JSON path: strip comments and decode directly
		jsonData = jsonc.ToJSON(data)
	} else {
		// YAML path: decode with yaml.v3, normalize, re-encode to JSON
		// so Node's tagged-union decoding runs in one place
		var yamlRaw any
		if err := yaml.Unmarshal(data, &yamlRaw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		normalized := normalizeMap(yamlRaw)
		reencoded, err := json.Marshal(normalized)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize YAML document: %w", err)
		}
		jsonData = reencoded
	}

	var doc document.Document
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return &doc, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// normalizeMap recursively converts map[interface{}]interface{} to
// map[string]any. YAML with numeric keys (like "500:") creates
// map[interface{}]interface{}, which must be normalized before
// re-encoding to JSON.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}

// ParseFile parses a token document file and returns flattened tokens.
func (p *JSONParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) ([]*token.Token, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	tokens, err := p.Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}

	return tokens, nil
}
