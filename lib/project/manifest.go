// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Manifest filenames recognized in a project directory, in lookup
// order. The JSONC form exists for projects that want comments in a
// JSON toolchain; both parse to the same Manifest.
const (
	ManifestYAML  = "vessel.yaml"
	ManifestJSONC = "vessel.jsonc"
)

// ErrNoManifest is returned when a directory contains no manifest file.
var ErrNoManifest = errors.New("no vessel.yaml or vessel.jsonc manifest found")

// Manifest describes a buildable project: which module it produces,
// which runtime stack builds it, and which files to leave out of the
// upload archive.
type Manifest struct {
	// Name is the qualified module name the build produces.
	Name string `yaml:"name" json:"name"`

	// Stack is the runtime stack that builds and runs the module
	// (e.g. "python", "node", "container"). The server decides what
	// a stack means; the client only transports it.
	Stack string `yaml:"stack" json:"stack"`

	// Exclude lists glob patterns (path.Match syntax, matched against
	// slash-separated paths relative to the project root) to omit from
	// the archive. Version control metadata (.git) is always skipped;
	// the manifest itself is always included.
	Exclude []string `yaml:"exclude,omitempty" json:"exclude,omitempty"`
}

// FindManifest locates the manifest file in dir, preferring the YAML
// form. Returns ErrNoManifest when neither exists.
func FindManifest(dir string) (string, error) {
	for _, name := range []string{ManifestYAML, ManifestJSONC} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", path, err)
		}
	}
	return "", ErrNoManifest
}

// LoadManifest reads and validates the manifest at path, dispatching
// on the file extension: .jsonc parses as JSON with comments and
// trailing commas, anything else as YAML.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var manifest Manifest
	if filepath.Ext(path) == ".jsonc" {
		if err := json.Unmarshal(jsonc.ToJSON(data), &manifest); err != nil {
			return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
		}
	}

	if manifest.Name == "" {
		return nil, fmt.Errorf("manifest %s: name is required", path)
	}
	if manifest.Stack == "" {
		return nil, fmt.Errorf("manifest %s: stack is required", path)
	}
	return &manifest, nil
}
