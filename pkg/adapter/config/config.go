// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the jlweb to instantiate different
// components, from the adapter or use cases layers, using those loaded
// configuration settings.
// These settings are versioned and maintained by sub-packages.
// However, the parsed and validated configurations should be passed
// to their ultimate components as a series of individual params (for
// the mandatory items) and a series of functional options (for
// the optional items), so they may be validated in the relevant
// end-component such as a UseCase instance.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/momeni/jamon-locator/pkg/adapter/config/cfg1"
	"github.com/momeni/jamon-locator/pkg/adapter/config/vers"
)

// Load function loads, validates, and normalizes the configuration
// file and returns its settings as an instance of the Config struct.
// Given path must belong to a configuration file which is compatible
// with the latest known configuration settings format. Settings are
// overridden by the environment variables.
//
// If the path file does not exist and allowMissing is true, default
// settings will be returned (still overridden by the environment).
func Load(path string, allowMissing bool) (*cfg1.Config, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
	case allowMissing && errors.Is(err, os.ErrNotExist):
		data = []byte(fmt.Sprintf("versions:\n  config: %s\n", cfg1.Version))
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	v, err := vers.Load(data)
	if err != nil {
		return nil, fmt.Errorf("loading versions: %w", err)
	}
	if err := v.Validate(cfg1.Version); err != nil {
		return nil, fmt.Errorf("unexpected config version: %w", err)
	}
	c, err := cfg1.Load(data, os.Getenv)
	if err != nil {
		return nil, fmt.Errorf("loading cfg1.Config: %w", err)
	}
	return c, nil
}
