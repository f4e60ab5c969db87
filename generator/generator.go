// Package generator turns the accumulated header enumerations into Go
// enum and bitmask declarations.
package generator

import (
	"bytes"
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/tools/imports"

	"github.com/ardanlabs/vkenum/config"
	"github.com/ardanlabs/vkenum/enummap"
)

// Output file names.
const (
	EnumsFile = "enums.go"
	SizesFile = "enums_cgo.go"
)

// Config describes the generated package.
type Config struct {
	// Package is the name of the generated package.
	Package string

	// Include is the native header the size assertions include, relative
	// to an include directory, e.g. vulkan/vulkan.h. The assertions are not
	// generated when it is empty.
	Include string

	// CFlags is written as a #cgo CFLAGS directive in the size assertions
	// file, e.g. -I${SRCDIR}/../include. When empty the C compiler must find
	// Include through CGO_CFLAGS or its default search path.
	CFlags string

	// Source names the parsed header in the generated file comment.
	Source string
}

// Declaration is one type ready to be emitted.
type Declaration struct {
	Native  string
	Name    string
	IsFlags bool
	Values  []Value
}

// Value is one emitted constant.
type Value struct {
	Native string
	Name   string
	Value  int64
}

type Generator struct {
	cfg   Config
	table config.Table
	enums *enummap.EnumMap
	log   logrus.FieldLogger
}

func New(cfg Config, table config.Table, enums *enummap.EnumMap, log logrus.FieldLogger) *Generator {
	return &Generator{
		cfg:   cfg,
		table: table,
		enums: enums,
		log:   log,
	}
}

// Generate returns the generated files keyed by file name.
func (g *Generator) Generate() (map[string]string, error) {
	decls := g.Declarations()

	data := struct {
		Config
		Declarations []Declaration
	}{
		Config:       g.cfg,
		Declarations: decls,
	}

	files := make(map[string]string)

	enumsCode, err := g.render(EnumsFile, "enums", data)
	if err != nil {
		return nil, errors.Wrap(err, "generating enums")
	}
	files[EnumsFile] = enumsCode

	if g.cfg.Include != "" {
		sizesCode, err := g.render(SizesFile, "sizes", data)
		if err != nil {
			return nil, errors.Wrap(err, "generating size assertions")
		}
		files[SizesFile] = sizesCode
	}

	return files, nil
}

func (g *Generator) render(filename, name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}

	src, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return "", errors.Wrapf(err, "formatting %s", filename)
	}

	return string(src), nil
}

// Declarations builds the emitted form of every accumulated type that has
// a configuration entry, sorted by native name. Types without an entry,
// constants that cannot be named and identifiers that would collide are
// reported and skipped.
func (g *Generator) Declarations() []Declaration {
	var decls []Declaration

	// Every identifier in the generated package and the type that owns it.
	used := make(map[string]string)

	for _, native := range g.enums.Names() {
		cfg, ok := g.table.Lookup(native)
		if !ok {
			g.log.WithField("enum", native).Warn("no prefix found for enum")
			continue
		}

		name := TypeName(cfg)
		if owner, taken := firstUsed(used, name, name+"FromRaw"); taken {
			g.log.WithFields(logrus.Fields{
				"enum":  native,
				"type":  name,
				"owner": owner,
			}).Warn("type name collides with another declaration")
			continue
		}
		used[name] = native
		used[name+"FromRaw"] = native

		decls = append(decls, Declaration{
			Native:  native,
			Name:    name,
			IsFlags: cfg.IsFlags,
			Values:  g.values(cfg, name, used),
		})
	}

	return decls
}

func (g *Generator) values(cfg config.EnumConfig, typeName string, used map[string]string) []Value {
	var values []Value

	for _, v := range g.enums.Variants(cfg.Name) {
		if IsSentinel(v.Name) {
			continue
		}

		log := g.log.WithFields(logrus.Fields{
			"enum":    cfg.Name,
			"variant": v.Name,
		})

		variant, err := VariantName(cfg.Prefix, v.Name, cfg.IsFlags)
		if err != nil {
			log.WithError(err).Warn("failed to strip prefix from enum")
			continue
		}

		if !inRange(v.Value, cfg.IsFlags) {
			log.WithField("value", v.Value).Warn("value does not fit the generated type")
			continue
		}

		name := ConstName(typeName, variant)
		if owner, taken := used[name]; taken {
			log.WithFields(logrus.Fields{
				"const": name,
				"owner": owner,
			}).Warn("constant name collides with another declaration")
			continue
		}
		used[name] = cfg.Name

		values = append(values, Value{
			Native: v.Name,
			Name:   name,
			Value:  v.Value,
		})
	}

	return values
}

func inRange(v int64, isFlags bool) bool {
	if isFlags {
		return v >= 0 && v <= math.MaxUint32
	}
	return v >= math.MinInt32 && v <= math.MaxInt32
}

func firstUsed(used map[string]string, names ...string) (string, bool) {
	for _, n := range names {
		if owner, ok := used[n]; ok {
			return owner, true
		}
	}
	return "", false
}
