package ecs

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// WorldConfig is a settings record a host can load from YAML: the
// component-type and View limits, an arena size and a default pool
// capacity. Nothing in this package reads it. A host passes ArenaBytes and
// DefaultPoolCapacity on to arena.Create and CreateWorld itself; the
// MaxComponentTypes and ViewMaxComponents fields do not change the package
// constants of the same names, which fix those limits at compile time.
type WorldConfig struct {
	MaxComponentTypes   int `yaml:"maxComponentTypes"`
	ViewMaxComponents   int `yaml:"viewMaxComponents"`
	DefaultPoolCapacity int `yaml:"defaultPoolCapacity"`
	ArenaBytes          int `yaml:"arenaBytes"`
}

// DefaultWorldConfig returns the values this package's own constants were
// seeded from (MaxComponentTypes, ViewMaxComponents), plus reasonable
// defaults for arena sizing and per-pool capacity.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		MaxComponentTypes:   MaxComponentTypes,
		ViewMaxComponents:   ViewMaxComponents,
		DefaultPoolCapacity: 1024,
		ArenaBytes:          16 << 20,
	}
}

// LoadWorldConfig decodes a YAML document into a WorldConfig, starting from
// DefaultWorldConfig so a host only needs to specify the fields it wants to
// override.
func LoadWorldConfig(r io.Reader) (WorldConfig, error) {
	cfg := DefaultWorldConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return WorldConfig{}, errors.Wrap(err, "LoadWorldConfig: decode")
	}
	return cfg, nil
}
