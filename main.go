// Command vkenum generates Go enum and bitmask types from the Vulkan
// headers.
//
//	//go:generate go run github.com/ardanlabs/vkenum -package vk -output .
//
// The size assertions file includes the header by its path below the
// include directory, so building the generated package with cgo needs that
// directory on the C compiler's search path: set CGO_CFLAGS, or pass
// -cflags to write a #cgo CFLAGS directive into the file.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ardanlabs/vkenum/config"
	"github.com/ardanlabs/vkenum/enummap"
	"github.com/ardanlabs/vkenum/generator"
	"github.com/ardanlabs/vkenum/parser"
)

type options struct {
	header      string
	includeDirs []string
	envFiles    []string
	outputDir   string
	packageName string
	defines     []string
	files       string
	cgo         bool
	cflags      string
}

func main() {
	headerPath := flag.String("header", "vulkan/vulkan.h", "Path to the Vulkan header, absolute or relative to the include directory")
	includeDirs := flag.String("include", "", "Comma separated include directories; VULKAN_SDK is used when empty")
	envFiles := flag.String("env", "", "Comma separated .env files that may define VULKAN_SDK")
	outputDir := flag.String("output", ".", "Output directory for generated Go files")
	packageName := flag.String("package", "vk", "Go package name")
	defines := flag.String("define", "", "Comma separated macros treated as defined, e.g. VK_USE_PLATFORM_WIN32_KHR")
	files := flag.String("files", `vulkan|vk_video`, "Regexp selecting the headers whose enums are generated")
	cgo := flag.Bool("cgo", true, "Generate cgo size assertions against the native types; building them needs the include directory in CGO_CFLAGS or -cflags")
	cflags := flag.String("cflags", "", "#cgo CFLAGS written into the size assertions file, e.g. -I${SRCDIR}/include")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	opts := options{
		header:      *headerPath,
		includeDirs: splitList(*includeDirs),
		envFiles:    splitList(*envFiles),
		outputDir:   *outputDir,
		packageName: *packageName,
		defines:     splitList(*defines),
		files:       *files,
		cflags:      *cflags,
		cgo:         *cgo,
	}

	if err := run(context.Background(), opts, log.StandardLogger()); err != nil {
		log.WithError(err).Fatal("generation failed")
	}
}

func run(ctx context.Context, opts options, logger log.FieldLogger) error {
	includeDirs := opts.includeDirs
	if len(includeDirs) == 0 {
		dir, err := config.IncludeDir(opts.envFiles...)
		if err != nil {
			return err
		}
		includeDirs = []string{dir}
	}

	allow, err := regexp.Compile(opts.files)
	if err != nil {
		return errors.Wrap(err, "compiling -files")
	}

	enums := enummap.New()
	collector := enummap.NewCollector(enums, config.TypePrefix, logger)

	err = parser.ParseFiles(ctx, opts.header, parser.Options{
		IncludeDirs: includeDirs,
		Defines:     opts.defines,
		AllowFile:   allow,
		Log:         logger,
	}, collector.Visit)
	if err != nil {
		return errors.Wrap(err, "parsing headers")
	}

	logger.WithField("enums", enums.Len()).Debug("headers parsed")

	cfg := generator.Config{
		Package: opts.packageName,
		Source:  filepath.Base(opts.header),
	}
	if opts.cgo {
		cfg.Include = includePath(opts.header, includeDirs)
		cfg.CFlags = opts.cflags
	}

	gen := generator.New(cfg, config.NewTable(config.Vulkan, logger), enums, logger)

	files, err := gen.Generate()
	if err != nil {
		return errors.Wrap(err, "generating code")
	}

	if err := os.MkdirAll(opts.outputDir, 0755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	for filename, content := range files {
		path := filepath.Join(opts.outputDir, filename)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return errors.Wrapf(err, "writing %s", filename)
		}
		logger.WithField("file", path).Info("generated")
	}

	return nil
}

// includePath returns header as the C compiler finds it through one of
// the include directories. A header given relative to the working
// directory or as an absolute path is made relative to the directory that
// contains it.
func includePath(header string, includeDirs []string) string {
	abs, err := filepath.Abs(header)
	if err != nil {
		return filepath.ToSlash(header)
	}
	if _, err := os.Stat(abs); err != nil {
		return filepath.ToSlash(header)
	}

	for _, dir := range includeDirs {
		dir, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(dir, abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		return filepath.ToSlash(rel)
	}

	return filepath.ToSlash(header)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
