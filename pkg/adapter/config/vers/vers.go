// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vers contains the common versions parsing which is required
// by all config versions. The idea is that the version of a config file
// should be known before trying to parse its actual settings, so the
// settings format can be known and verified when loading them. The
// format of keeping versions is less likely to change over time.
package vers

import (
	"github.com/momeni/jamon-locator/pkg/core/cerr"
	"github.com/momeni/jamon-locator/pkg/core/model"
	"gopkg.in/yaml.v3"
)

// Config contains the versions of those system components which have
// a versioned format. It may be embedded with inline format in the
// released config struct versions in order to indicate their versions.
type Config struct {
	Versions Versions `yaml:"versions"`
}

// Versions contains the configuration file version which is used for
// detecting its format. Each binary only supports the config versions
// which are compatible with its latest known version.
type Versions struct {
	Config model.SemVer `yaml:"config"`
}

// Load deserializes the data byte slice into a new instance of Config
// struct. Of course, data may contain extra fields which will be
// ignored. The deserialized version fields (in the returned Config)
// can be used to detect the format of other settings in the data and
// complete deserialization of the remaining fields.
func Load(data []byte) (*Config, error) {
	vc := &Config{}
	if err := yaml.Unmarshal(data, vc); err != nil {
		return nil, err
	}
	return vc, nil
}

// Validate returns an error if the configuration settings version which
// is stored in the `vc` Config instance can not be read by a binary
// which supports the `supported` version. That is, stored major version
// must match and the stored minor version must not be newer than the
// supported minor version. The returned error is a
// *cerr.MismatchingSemVerError instance.
func (vc *Config) Validate(supported model.SemVer) error {
	v := vc.Versions.Config
	if !v.Compatible(supported) {
		return &cerr.MismatchingSemVerError{supported, v}
	}
	return nil
}
