package sumi

import (
	"bytes"
	"text/template"

	"github.com/cockroachdb/errors"
)

// Render expands the fixed module template against the given Module, using
// the supplied filter registry. Filter failures surface as ErrFilterType;
// every other expansion failure is marked ErrRender.
func Render(module *Module, filters template.FuncMap) (string, error) {
	tmpl, err := template.New("module").Funcs(filters).Parse(moduleTemplate)
	if err != nil {
		return "", errors.Mark(errors.Wrap(err, "parsing module template"), ErrRender)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, module); err != nil {
		if errors.Is(err, ErrFilterType) {
			return "", err
		}
		return "", errors.Mark(errors.Wrap(err, "expanding module template"), ErrRender)
	}
	return buf.String(), nil
}
