package errors

import (
	"regexp"
	"slices"
	"strings"
)

// Size bounds accepted at the CLI and HTTP edges. The core accepts any size.
const (
	MinRenderSize = 8
	MaxRenderSize = 4096
)

// Formats lists the artifact formats the renderers produce.
var Formats = []string{"svg", "png", "pdf", "json"}

var iconNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._-]*$`)

// ValidateIconName validates a catalog entry name.
//
// Names double as file names and URL path segments, so the rules are
// conservative:
//   - No empty names
//   - Must start with a letter
//   - Only letters, digits, '.', '_' and '-'
//   - Maximum length of 128 characters
func ValidateIconName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "icon name cannot be empty")
	}
	if len(name) > 128 {
		return New(ErrCodeInvalidName, "icon name too long (max 128 characters)")
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidName, "icon name cannot contain '..': %q", name)
	}
	if !iconNamePattern.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid icon name: %q", name)
	}
	return nil
}

// ValidateSize checks a requested badge side length in points.
func ValidateSize(size float64) error {
	if size != size || size < MinRenderSize || size > MaxRenderSize {
		return New(ErrCodeInvalidSize, "size must be between %d and %d", MinRenderSize, MaxRenderSize)
	}
	return nil
}

// ValidateFormat checks an output format name.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}
