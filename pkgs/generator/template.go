package generator

import (
	"strings"
	"text/template"

	"github.com/aledsdavies/llc/assets"
)

// templateData is the TemplateData struct passed to text/template,
// matching the teacher's go_template.go/templates.go convention (template
// text as package-level strings, a small data struct, `template.New(...).
// Parse(...).Execute(...)`) and standing in for the prototype's Jinja2
// `Template(...).render(...)` call in
// _examples/original_source/langlang/assemblers/javascript.py.
type templateData struct {
	Parsers string
	Tokens  string
	Exports string
}

func render(data templateData) (string, error) {
	tmpl, err := template.New("runtime").Parse(assets.RuntimeJS)
	if err != nil {
		return "", newEmitError("parsing runtime template: %v", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", newEmitError("rendering runtime template: %v", err)
	}
	return buf.String(), nil
}

type standaloneData struct {
	Entrypoint string
}

func renderStandaloneShim(entrypoint string) (string, error) {
	tmpl, err := template.New("standalone").Parse(assets.StandaloneRuntimeJS)
	if err != nil {
		return "", newEmitError("parsing standalone template: %v", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, standaloneData{Entrypoint: entrypoint}); err != nil {
		return "", newEmitError("rendering standalone template: %v", err)
	}
	return buf.String(), nil
}
