package sumi

import (
	"strings"
	"text/template"
	"unicode"

	"github.com/cockroachdb/errors"
)

// Filters returns the named formatter registry the module template invokes
// through pipelines. Built once per invocation and passed explicitly to
// Render; there is no global registry.
func Filters() template.FuncMap {
	return template.FuncMap{
		"snake":       filter(toSnakeCase),
		"upper_snake": filter(toUpperSnakeCase),
		"capitalize":  filter(capitalize),
	}
}

// filter lifts a pure string transform into a template function that rejects
// non-string model values with ErrFilterType.
func filter(transform func(string) string) func(interface{}) (string, error) {
	return func(value interface{}) (string, error) {
		s, ok := value.(string)
		if !ok {
			return "", errors.Wrapf(ErrFilterType, "got %T", value)
		}
		return transform(s), nil
	}
}

// toSnakeCase converts PascalCase or camelCase to snake_case, keeping
// acronyms together ("transferFrom" -> "transfer_from").
func toSnakeCase(s string) string {
	var out strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prevUpper := runes[i-1] >= 'A' && runes[i-1] <= 'Z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if !prevUpper || nextLower {
				out.WriteRune('_')
			}
		}
		out.WriteRune(r)
	}
	return strings.ToLower(out.String())
}

func toUpperSnakeCase(s string) string {
	return strings.ToUpper(toSnakeCase(s))
}

// capitalize uppercases the first character only, leaving the remainder
// unchanged. Not a title-case transform.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
