// Package config holds the hand-maintained generation table and the
// lookup of the Vulkan SDK location.
package config

import (
	"github.com/sirupsen/logrus"
)

// EnumConfig is the generation policy for one native enumeration.
type EnumConfig struct {
	// Name is the native type name, e.g. VkFormat.
	Name string

	// Prefix is stripped from every constant name, e.g. VK_FORMAT_.
	Prefix string

	// CustomName replaces the derived Go type name when set.
	CustomName string

	// IsFlags marks a FlagBits type that is emitted as a bitmask.
	IsFlags bool
}

// Table maps a native type name to its EnumConfig.
type Table struct {
	entries map[string]EnumConfig
}

// NewTable indexes entries by name. A duplicate name is a configuration
// bug: it is reported and the first entry is kept.
func NewTable(entries []EnumConfig, log logrus.FieldLogger) Table {
	t := Table{
		entries: make(map[string]EnumConfig, len(entries)),
	}

	for _, e := range entries {
		if _, exists := t.entries[e.Name]; exists {
			log.WithField("enum", e.Name).Warn("duplicate enum config")
			continue
		}
		t.entries[e.Name] = e
	}

	return t
}

func (t Table) Lookup(name string) (EnumConfig, bool) {
	cfg, ok := t.entries[name]
	return cfg, ok
}

func (t Table) Len() int {
	return len(t.entries)
}
