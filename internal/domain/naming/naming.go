// Package naming validates slice and segment names given to the scaffolding
// commands.
package naming

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
	"github.com/fsdcoach/fsd-coach/internal/domain"
)

// MaxNameLength is the longest accepted slice name.
const MaxNameLength = 50

var kebabPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

var reservedWords = map[string]bool{
	"index": true, "test": true, "tests": true, "spec": true,
	"types": true, "interface": true, "type": true, "config": true,
	"const": true, "let": true, "var": true, "function": true,
	"class": true, "import": true, "export": true, "default": true,
}

// IsReserved reports whether name collides with a file or keyword name.
func IsReserved(name string) bool {
	return reservedWords[name]
}

// ValidateSliceName returns a human-readable reason why name cannot be used
// for a slice, or "" when it is valid. Surrounding whitespace is ignored.
func ValidateSliceName(name string) string {
	name = strings.TrimSpace(name)

	switch {
	case name == "":
		return "Name cannot be empty"
	case len(name) > MaxNameLength:
		return fmt.Sprintf("Name cannot exceed %d characters", MaxNameLength)
	case !kebabPattern.MatchString(name):
		return "Name must be in kebab-case (lowercase letters, numbers, and hyphens only, starting with a letter)"
	case strings.Contains(name, "--"):
		return "Name cannot contain consecutive hyphens"
	case strings.HasSuffix(name, "-"):
		return "Name cannot end with a hyphen"
	case IsReserved(name):
		return fmt.Sprintf("%q is a reserved word and cannot be used", name)
	}
	return ""
}

// CheckSliceName wraps ValidateSliceName into an INVALID_NAME error. When a
// kebab-case rendering of the name would be valid it is offered as a hint.
func CheckSliceName(name string, layer domain.Layer) error {
	reason := ValidateSliceName(name)
	if reason == "" {
		return nil
	}

	ctx := map[string]any{"providedName": name, "type": kindOf(layer)}
	if hint := ToKebab(name); hint != name && ValidateSliceName(hint) == "" {
		ctx["suggestion"] = hint
	}
	return domain.NewCoachError(domain.ErrInvalidName,
		fmt.Sprintf("Invalid %s name: %s", kindOf(layer), reason), ctx)
}

func kindOf(layer domain.Layer) string {
	switch layer {
	case domain.LayerFeatures:
		return "feature"
	case domain.LayerEntities:
		return "entity"
	case domain.LayerWidgets:
		return "widget"
	}
	return string(layer)
}

// ToKebab converts camelCase, PascalCase, snake_case and spaced names to
// kebab-case, e.g. "UserProfile" becomes "user-profile".
func ToKebab(name string) string {
	var words []string
	for _, field := range strings.FieldsFunc(strings.TrimSpace(name), func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	}) {
		for _, w := range camelcase.Split(field) {
			if w = strings.ToLower(w); w != "" {
				words = append(words, w)
			}
		}
	}
	return strings.Join(words, "-")
}

// ToPascal converts a kebab-case name to PascalCase, e.g. "user-profile"
// becomes "UserProfile".
func ToPascal(name string) string {
	var b strings.Builder
	for _, w := range strings.Split(name, "-") {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// NormalizeSegments validates the requested segments and falls back to
// defaults when none were requested.
func NormalizeSegments(requested, defaults []string) ([]domain.Segment, error) {
	if len(requested) == 0 {
		requested = defaults
	}

	var invalid []string
	segments := make([]domain.Segment, 0, len(requested))
	for _, s := range requested {
		s = strings.TrimSpace(s)
		if !domain.IsSegment(s) {
			invalid = append(invalid, s)
			continue
		}
		segments = append(segments, domain.Segment(s))
	}

	if len(invalid) > 0 {
		valid := make([]string, len(domain.Segments))
		for i, s := range domain.Segments {
			valid[i] = string(s)
		}
		return nil, domain.NewCoachError(domain.ErrInvalidSegment,
			fmt.Sprintf("Invalid segment(s): %s", strings.Join(invalid, ", ")),
			map[string]any{"invalidSegments": invalid, "validSegments": valid})
	}
	return segments, nil
}
