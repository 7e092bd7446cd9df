// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cfg1 makes it possible to load configuration settings with
// version 1.x.y since all minor and patch versions (which are known)
// with the same major version, can be loaded with one implementation.
package cfg1

import (
	"fmt"

	"github.com/momeni/jamon-locator/pkg/adapter/config/vers"
	"github.com/momeni/jamon-locator/pkg/core/model"
	"gopkg.in/yaml.v3"
)

// These constants define the major, minor, and patch version of the
// configuration settings which are supported by the Config struct.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// Version is the semantic version of Config struct.
var Version = model.SemVer{Major, Minor, Patch}

// Environment variables which override their corresponding settings
// from the configuration file.
const (
	EnvAddr          = "JLWEB_ADDR"
	EnvPort          = "PORT"
	EnvCatalogSource = "CATALOG_SOURCE"
	EnvDatabaseURL   = "DATABASE_URL"
	EnvRedisAddr     = "REDIS_ADDR"
	EnvMongoURI      = "MONGODB_URI"
	EnvLogLevel      = "LOG_LEVEL"
)

// Config contains all settings which are required by different parts
// of the project following the v1.x.y format, such as adapters or
// use cases. It is preferred to implement Config with primitive fields
// or other structs which are defined locally, not models or structs
// which are defined in lower layers, so the configuration can be
// versioned and kept intact while other layers can change freely.
type Config struct {
	Server   Server   // HTTP server settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Catalog  Catalog  // Spots catalog provider settings
	Usecases Usecases // Configuration settings for supported use cases
	Logging  Logging  // Default slog logger settings

	// Vers contains the configuration file version string.
	Vers vers.Config `yaml:",inline"`
}

// Load unmarshals the data byte slice and loads a Config instance
// assuming that it contains the Config settings. Extra items in the
// data will be ignored and missing items will take their default
// values. Thereafter, settings are overridden by the environment
// variables which are looked up by the getenv function (if it is not
// nil) and the resulting Config will be validated and normalized in
// order to ensure that provided settings are acceptable (for example
// the major version which is reported by data settings must match
// with number 1 which is the major version of this config package).
func Load(data []byte, getenv func(string) string) (*Config, error) {
	n := &yaml.Node{}
	if err := yaml.Unmarshal(data, n); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if l := len(n.Content); l != 1 {
		return nil, fmt.Errorf(
			"found %d children nodes, instead of 1 mapping child", l,
		)
	}
	c := &Config{}
	if err := n.Content[0].Decode(c); err != nil {
		return nil, fmt.Errorf("decoding yaml node: %w", err)
	}
	if getenv != nil {
		c.OverrideFromEnv(getenv)
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// OverrideFromEnv replaces settings by their corresponding non-empty
// environment variables, as looked up by the getenv function.
// The PORT variable is only used when JLWEB_ADDR is not set, so the
// server may listen on all interfaces of the given port.
func (c *Config) OverrideFromEnv(getenv func(string) string) {
	override := func(dst *string, name string) {
		if v := getenv(name); v != "" {
			*dst = v
		}
	}
	override(&c.Server.Addr, EnvAddr)
	if getenv(EnvAddr) == "" {
		if port := getenv(EnvPort); port != "" {
			c.Server.Addr = ":" + port
		}
	}
	override(&c.Catalog.Source, EnvCatalogSource)
	override(&c.Catalog.Postgres.URL, EnvDatabaseURL)
	override(&c.Catalog.Redis.Addr, EnvRedisAddr)
	override(&c.Catalog.Mongo.URI, EnvMongoURI)
	override(&c.Logging.Level, EnvLogLevel)
}

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It can also modify
// settings in order to normalize them or replace some zero values with
// their expected default values (if any).
func (c *Config) ValidateAndNormalize() error {
	if err := c.Vers.Validate(Version); err != nil {
		return fmt.Errorf(
			"expecting version v%d.%d: %w", Major, Minor, err,
		)
	}
	if err := c.Server.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating server settings: %w", err)
	}
	if err := c.Gin.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating gin settings: %w", err)
	}
	if err := c.Catalog.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating catalog settings: %w", err)
	}
	if err := c.Usecases.Spots.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating spots use case settings: %w", err)
	}
	if err := c.Logging.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating logging settings: %w", err)
	}
	return nil
}

// Default returns the settings which are used when no configuration
// file is available. It only contains the version header and all other
// settings take their default values.
func Default() *Config {
	c := &Config{}
	c.Vers.Versions.Config = Version
	if err := c.ValidateAndNormalize(); err != nil {
		panic(fmt.Errorf("default settings are invalid: %w", err))
	}
	return c
}
