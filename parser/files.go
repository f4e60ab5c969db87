package parser

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/mmap"
	"golang.org/x/sync/errgroup"
)

// ErrHeaderNotFound is returned when the root header cannot be located.
var ErrHeaderNotFound = errors.New("header not found")

// ParseFiles walks header and every file it includes, then scans the
// collected files concurrently and reports their enumeration constants to
// fn. Files included more than once are scanned once. Constants of one
// file are reported in file order; no order holds across files.
func ParseFiles(ctx context.Context, header string, opts Options, fn VariantFunc) error {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	root, err := resolveHeader(header, opts.IncludeDirs)
	if err != nil {
		return err
	}

	files, err := walk(root, opts, log)
	if err != nil {
		return err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, f := range files {
		if opts.AllowFile != nil && !opts.AllowFile.MatchString(filepath.ToSlash(f.Path)) {
			log.WithField("file", f.Path).Debug("file not allowed, skipping enums")
			continue
		}

		f := f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log.WithField("file", f.Path).Debug("scanning header")
			parseEnums(normalizeWhitespace(f.Content), log.WithField("file", f.Path), fn)
			return nil
		})
	}

	return g.Wait()
}

func resolveHeader(header string, includeDirs []string) (string, error) {
	if fileExists(header) {
		return header, nil
	}

	if !filepath.IsAbs(header) {
		for _, dir := range includeDirs {
			path := filepath.Join(dir, header)
			if fileExists(path) {
				return path, nil
			}
		}
	}

	return "", errors.Wrapf(ErrHeaderNotFound, "%s", header)
}

// walk reads root and the files it includes, depth first, in the order
// the directives appear.
func walk(root string, opts Options, log logrus.FieldLogger) ([]*File, error) {
	defines := make(map[string]bool, len(opts.Defines))
	for _, d := range opts.Defines {
		defines[d] = true
	}

	var files []*File
	visited := make(map[string]bool)

	var visit func(path string, required bool) error
	visit = func(path string, required bool) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return errors.Wrapf(err, "resolving %s", path)
		}
		if visited[abs] {
			return nil
		}
		visited[abs] = true

		f, err := readFile(path, defines)
		if err != nil {
			if required {
				return err
			}
			log.WithField("file", path).WithError(err).Warn("skipping unreadable include")
			return nil
		}
		files = append(files, f)

		for _, inc := range f.Includes {
			incPath, ok := resolveInclude(inc, filepath.Dir(path), opts.IncludeDirs)
			if !ok {
				log.WithFields(logrus.Fields{
					"file":    path,
					"include": inc.Name,
				}).Debug("include not found in search path")
				continue
			}
			if err := visit(incPath, false); err != nil {
				return err
			}
		}

		return nil
	}

	if err := visit(root, true); err != nil {
		return nil, err
	}

	return files, nil
}

func resolveInclude(inc Include, dir string, includeDirs []string) (string, bool) {
	if !inc.System {
		path := filepath.Join(dir, inc.Name)
		if fileExists(path) {
			return path, true
		}
	}

	for _, d := range includeDirs {
		path := filepath.Join(d, inc.Name)
		if fileExists(path) {
			return path, true
		}
	}

	return "", false
}

// readFile maps the file into memory and preprocesses it with defines,
// which collects the file's #define directives for the files after it.
func readFile(path string, defines map[string]bool) (*File, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer r.Close()

	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	content, includes := preprocess(removeComments(string(data)), defines)

	return &File{
		Path:     path,
		Content:  content,
		Includes: includes,
	}, nil
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
