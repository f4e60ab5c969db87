package parser

import (
	"regexp"

	"github.com/sirupsen/logrus"
)

// VariantFunc receives one enumeration constant. enum is the name of the
// enclosing type and is empty for anonymous enums. It may be called from
// several goroutines at once.
type VariantFunc func(enum, name string, value int64)

// Options controls how headers are located and preprocessed.
type Options struct {
	// IncludeDirs is the search path for #include directives.
	IncludeDirs []string

	// Defines lists macros treated as defined by #ifdef and friends.
	Defines []string

	// AllowFile selects the files whose enums are reported. Included files
	// that do not match are still walked for their own includes. A nil
	// AllowFile reports every file.
	AllowFile *regexp.Regexp

	// Workers bounds the number of files scanned at once. Zero means one
	// worker per CPU.
	Workers int

	Log logrus.FieldLogger
}

// File is a header that was read and preprocessed.
type File struct {
	Path     string
	Content  string
	Includes []Include
}

// Include is one #include directive.
type Include struct {
	Name   string
	System bool
}
