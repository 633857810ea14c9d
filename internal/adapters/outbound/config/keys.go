package config

import (
	"fmt"
	"strings"

	"github.com/fsdcoach/fsd-coach/internal/domain"
	"gopkg.in/yaml.v3"
)

func toMap(cfg domain.ProjectConfig) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func lookup(m map[string]any, parts []string) (any, bool) {
	var cur any = m
	for _, p := range parts {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = node[p]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// Get returns the value at a dotted key such as "rootDir.features".
func Get(cfg domain.ProjectConfig, key string) (any, bool) {
	m, err := toMap(cfg)
	if err != nil {
		return nil, false
	}
	return lookup(m, strings.Split(key, "."))
}

// Set returns a copy of cfg with the dotted key set to raw. raw is decoded as
// YAML, so JSON literals such as true or ["ui","model"] work and anything else
// is taken as a string. Only keys present in the default config can be set.
func Set(cfg domain.ProjectConfig, key, raw string) (domain.ProjectConfig, error) {
	parts := strings.Split(key, ".")

	defaults, err := toMap(domain.DefaultConfig())
	if err != nil {
		return cfg, err
	}
	if _, ok := lookup(defaults, parts); !ok {
		return cfg, domain.NewCoachError(domain.ErrInvalidConfig,
			fmt.Sprintf("Unknown config key %q", key), map[string]any{"key": key})
	}

	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil || value == nil {
		value = raw
	}

	m, err := toMap(cfg)
	if err != nil {
		return cfg, err
	}
	node := m
	for _, p := range parts[:len(parts)-1] {
		child, ok := node[p].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[p] = child
		}
		node = child
	}
	node[parts[len(parts)-1]] = value

	data, err := yaml.Marshal(m)
	if err != nil {
		return cfg, err
	}
	var updated domain.ProjectConfig
	if err := yaml.Unmarshal(data, &updated); err != nil {
		return cfg, domain.NewCoachError(domain.ErrInvalidConfig,
			fmt.Sprintf("Invalid value for %q: %v", key, err), map[string]any{"key": key, "value": raw})
	}
	if err := updated.Validate(); err != nil {
		return cfg, domain.NewCoachError(domain.ErrInvalidConfig, err.Error(), map[string]any{"key": key, "value": raw})
	}
	return updated, nil
}
