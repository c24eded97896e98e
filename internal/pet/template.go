package pet

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for description templates.
var templateFuncs = sprig.TxtFuncMap()

// descriptionData is what flavor-text templates may reference.
type descriptionData struct {
	Name string
}

// RenderDescription expands a flavor-text template, substituting the
// companion's name for {{ .Name }}.
func RenderDescription(tmplStr string, name string) (string, error) {
	// Quick check: if no template markers, return as-is
	if !strings.Contains(tmplStr, "{{") {
		return tmplStr, nil
	}

	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, descriptionData{Name: name})
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}
