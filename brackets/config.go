// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package brackets

import (
	"context"

	"cloudeng.io/cmdutil/cmdyaml"
	"gopkg.in/yaml.v3"
)

// Config represents a yaml configuration for a Validator, eg:
//
//	policy: reject
//	pairs: ["()", "<>"]
type Config struct {
	Policy Policy   `yaml:"policy" cmd:"one of ignore or reject, defaults to ignore"`
	Pairs  []string `yaml:"pairs" cmd:"bracket pairs, defaults to (), {} and []"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Policy) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	np, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = np
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Policy) MarshalYAML() (any, error) {
	return p.String(), nil
}

// Options returns the options represented by the configuration.
func (c Config) Options() ([]Option, error) {
	opts := []Option{WithPolicy(c.Policy)}
	if len(c.Pairs) > 0 {
		if err := validatePairs(c.Pairs); err != nil {
			return nil, err
		}
		opts = append(opts, WithPairs(c.Pairs...))
	}
	return opts, nil
}

// ParseConfig parses a yaml configuration, unknown fields are reported
// as errors.
func ParseConfig(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the yaml configuration in filename.
func LoadConfig(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
