// Package enummap accumulates the enumeration constants reported by the
// header parser, keyed by the native type that declares them.
package enummap

import (
	"slices"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

// Variant is one constant scraped from a header.
type Variant struct {
	Name  string
	Value int64
}

// EnumMap maps a native type name to its variants in first-seen order.
// It is safe for concurrent use.
type EnumMap struct {
	mu    sync.Mutex
	enums map[string][]Variant
}

func New() *EnumMap {
	return &EnumMap{
		enums: make(map[string][]Variant),
	}
}

// Add appends the variant to the list of enum unless a variant with the
// same value is already present, in which case the first name is kept and
// Add reports false.
func (m *EnumMap) Add(enum, name string, value int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	variants := m.enums[enum]
	for _, v := range variants {
		if v.Value == value {
			return false
		}
	}
	m.enums[enum] = append(variants, Variant{Name: name, Value: value})

	return true
}

// Names returns the accumulated type names sorted lexically.
func (m *EnumMap) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := maps.Keys(m.enums)
	slices.Sort(names)

	return names
}

// Variants returns a copy of the variants recorded for enum.
func (m *EnumMap) Variants(enum string) []Variant {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.enums[enum])
}

func (m *EnumMap) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.enums)
}

// Collector filters parser callbacks before they reach an EnumMap. Only
// types whose name starts with TypePrefix are kept; headers routinely
// declare enums that do not belong to the API.
type Collector struct {
	Map        *EnumMap
	TypePrefix string
	Log        logrus.FieldLogger
}

func NewCollector(m *EnumMap, typePrefix string, log logrus.FieldLogger) *Collector {
	return &Collector{
		Map:        m,
		TypePrefix: typePrefix,
		Log:        log,
	}
}

// Visit records one constant. Its signature matches parser.VariantFunc.
func (c *Collector) Visit(enum, name string, value int64) {
	enum = strings.TrimSpace(strings.TrimPrefix(enum, "enum "))
	if enum == "" {
		c.Log.WithField("variant", name).Warn("no enum name found for variant")
		return
	}

	if !strings.HasPrefix(enum, c.TypePrefix) {
		c.Log.WithFields(logrus.Fields{
			"enum":    enum,
			"variant": name,
		}).Debug("ignoring enum outside the API namespace")
		return
	}

	if !c.Map.Add(enum, name, value) {
		c.Log.WithFields(logrus.Fields{
			"enum":    enum,
			"variant": name,
			"value":   value,
		}).Debug("dropping alias with duplicate value")
	}
}
