// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package spotsrp provides an in-memory spots catalog which is parsed
// once from a YAML document and never changes afterwards. The seed
// catalog is embedded in the binary, so the web server can run without
// any external storage.
package spotsrp

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/momeni/jamon-locator/pkg/core/model"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Document is the YAML format of a catalog file.
type Document struct {
	Spots []model.Spot `yaml:"spots"`
}

// Repo is an immutable catalog provider, implementing repo.Spots.
type Repo struct {
	spots []model.Spot
}

// New instantiates a Repo which serves the embedded seed catalog.
func New() (*Repo, error) {
	spots, err := Seed()
	if err != nil {
		return nil, err
	}
	return &Repo{spots: spots}, nil
}

// NewFromFile instantiates a Repo which serves the catalog that is
// stored in the path YAML file.
func NewFromFile(path string) (*Repo, error) {
	spots, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &Repo{spots: spots}, nil
}

// Catalog returns the whole catalog. Callers must not modify the
// returned spots.
func (r *Repo) Catalog(context.Context) ([]model.Spot, error) {
	return r.spots, nil
}

// Seed parses and returns the embedded seed catalog.
func Seed() ([]model.Spot, error) {
	spots, err := Parse(seedYAML)
	if err != nil {
		return nil, fmt.Errorf("parsing seed catalog: %w", err)
	}
	return spots, nil
}

// LoadFile reads and parses the path catalog file.
func LoadFile(path string) ([]model.Spot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	spots, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return spots, nil
}

// Parse decodes data as a catalog Document and validates its spots.
// Spot identities must be unique and the order of spots is preserved.
func Parse(data []byte) ([]model.Spot, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}
	seen := make(map[string]bool, len(doc.Spots))
	for i := range doc.Spots {
		s := &doc.Spots[i]
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("spots[%d]: %w", i, err)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("spots[%d]: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = true
	}
	if doc.Spots == nil {
		doc.Spots = []model.Spot{}
	}
	return doc.Spots, nil
}
