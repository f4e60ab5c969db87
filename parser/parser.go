// Package parser scrapes enumeration constants out of C headers.
package parser

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

var blockCommentRe = regexp.MustCompile(`/\*[\s\S]*?\*/`)
var lineCommentRe = regexp.MustCompile(`//[^\n]*`)
var multiSpaceRe = regexp.MustCompile(`[ \t]+`)
var enumRe = regexp.MustCompile(`\b(typedef\s+)?\benum\s*(\w+)?\s*\{([^}]*)\}\s*(\w+)?\s*;`)
var identRe = regexp.MustCompile(`^[A-Za-z_]\w*$`)

// Parse reports every enumeration constant declared in content, in file
// order. Preprocessor conditionals are resolved against defines, which is
// updated by the #define directives found in content.
func Parse(content string, defines map[string]bool, log logrus.FieldLogger, fn VariantFunc) {
	content, _ = preprocess(removeComments(content), defines)

	parseEnums(normalizeWhitespace(content), log, fn)
}

func removeComments(s string) string {
	s = blockCommentRe.ReplaceAllString(s, "")
	s = lineCommentRe.ReplaceAllString(s, "")

	return s
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = multiSpaceRe.ReplaceAllString(s, " ")

	return s
}

func parseEnums(content string, log logrus.FieldLogger, fn VariantFunc) {
	// Enumerators are visible to later enums of the same file, which is
	// how the headers spell aliases of core values.
	symbols := make(map[string]int64)

	matches := enumRe.FindAllStringSubmatch(content, -1)
	for _, m := range matches {
		name := strings.TrimSpace(m[4])
		if m[1] == "" || name == "" {
			name = strings.TrimSpace(m[2])
			if name != "" {
				name = "enum " + name
			}
		}

		parseEnumValues(name, m[3], symbols, log, fn)
	}
}

func parseEnumValues(enum, body string, symbols map[string]int64, log logrus.FieldLogger, fn VariantFunc) {
	lookup := func(ident string) (int64, bool) {
		v, ok := symbols[ident]
		return v, ok
	}

	// known is false after an enumerator whose value could not be resolved;
	// implicit values that follow it are unknown too.
	var next int64
	known := true
	for _, part := range strings.Split(body, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, expr, hasValue := strings.Cut(part, "=")
		name = strings.TrimSpace(name)
		fields := logrus.Fields{
			"enum":    enum,
			"variant": name,
		}
		if !identRe.MatchString(name) {
			log.WithFields(fields).Warn("skipping malformed enumerator")
			known = false
			continue
		}

		value := next
		switch {
		case hasValue:
			v, err := evalInt(strings.TrimSpace(expr), lookup)
			if err != nil {
				log.WithFields(fields).WithError(err).Warn("skipping enumerator with unresolved value")
				known = false
				continue
			}
			value = v
			known = true
		case !known:
			log.WithFields(fields).Warn("skipping enumerator following an unresolved value")
			continue
		}

		symbols[name] = value
		next = value + 1

		fn(enum, name, value)
	}
}
