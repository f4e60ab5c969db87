package generator

import (
	"errors"
	"strings"
	"unicode"

	"github.com/ardanlabs/vkenum/config"
)

// SentinelMarker tags the padding constants the headers use to force a
// 32-bit enum width. They are never real values.
const SentinelMarker = "MAX_ENUM"

var (
	ErrPrefixMismatch = errors.New("constant does not start with the configured prefix")
	ErrEmptyVariant   = errors.New("constant is empty once the prefix is stripped")
)

// vendorTags are kept upper case in generated identifiers.
var vendorTags = map[string]bool{
	"AMD": true, "AMDX": true, "ANDROID": true, "ARM": true, "BRCM": true,
	"CHROMIUM": true, "EXT": true, "FB": true, "FSL": true, "FUCHSIA": true,
	"GGP": true, "GOOGLE": true, "HUAWEI": true, "IMG": true, "INTEL": true,
	"JUICE": true, "KHR": true, "KHX": true, "LUNARG": true, "MESA": true,
	"MSFT": true, "MVK": true, "NN": true, "NV": true, "NVX": true,
	"NXP": true, "NZXT": true, "QCOM": true, "QNX": true, "RASTERGRID": true,
	"SEC": true, "VALVE": true,
}

// TypeName returns the Go name of the type described by cfg.
func TypeName(cfg config.EnumConfig) string {
	if cfg.CustomName != "" {
		return cfg.CustomName
	}

	name := strings.TrimPrefix(cfg.Name, config.TypePrefix)
	if cfg.IsFlags {
		name = strings.Replace(name, "FlagBits", "Flags", 1)
	}

	return name
}

// VariantName strips prefix from the raw constant name. A result that
// would start with a digit keeps the prefix's trailing delimiter, so
// VK_IMAGE_TYPE_2D under VK_IMAGE_TYPE_ becomes _2D. Bitmask constants
// also lose their BIT token.
func VariantName(prefix, raw string, isFlags bool) (string, error) {
	name, ok := strings.CutPrefix(raw, prefix)
	if !ok {
		return "", ErrPrefixMismatch
	}

	if startsWithDigit(name) && strings.HasSuffix(prefix, "_") {
		name = strings.TrimPrefix(raw, strings.TrimSuffix(prefix, "_"))
	}

	if isFlags {
		name = removeToken(name, "BIT")
	}

	if strings.Trim(name, "_") == "" {
		return "", ErrEmptyVariant
	}

	return name, nil
}

// IsSentinel reports whether raw is a forward-compatibility placeholder.
func IsSentinel(raw string) bool {
	return strings.Contains(raw, SentinelMarker)
}

// ConstPrefix returns the prefix shared by the constants of a type: the
// type name without its vendor tag and without a Flags suffix.
// PresentModeKHR constants are PresentModeFifoKHR, not PresentModeKHRFifoKHR.
func ConstPrefix(typeName string) string {
	name := typeName

	i := len(name)
	for i > 0 && unicode.IsUpper(rune(name[i-1])) {
		i--
	}
	if i > 0 && i < len(name)-1 && vendorTags[name[i:]] {
		name = name[:i]
	}

	return strings.TrimSuffix(name, "Flags")
}

// ConstName joins the constant prefix of a type with the camel-cased
// variant name.
func ConstName(typeName, variant string) string {
	return ConstPrefix(typeName) + camel(variant)
}

// camel converts an upper snake case name to CamelCase. Vendor tags stay
// upper case, and so does a letter following a digit (R8G8B8A8, 2D).
func camel(name string) string {
	var b strings.Builder

	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		if vendorTags[part] {
			b.WriteString(part)
			continue
		}

		prev := rune(0)
		for i, r := range part {
			switch {
			case i == 0, unicode.IsDigit(prev):
				b.WriteRune(unicode.ToUpper(r))
			default:
				b.WriteRune(unicode.ToLower(r))
			}
			prev = r
		}
	}

	return b.String()
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func removeToken(name, token string) string {
	parts := strings.Split(name, "_")

	kept := parts[:0]
	for _, p := range parts {
		if p != token {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, "_")
}
