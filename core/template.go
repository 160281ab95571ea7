package core

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/joho/godotenv"
)

type TemplateContext struct {
	Env map[string]string
}

type TemplateEngine interface {
	LoadEnv(path string)
	RenderURL(raw string) (string, error)
}

// TemplateEngineImpl renders the target URL against the dotenv file
// overlaid by the process environment.
type TemplateEngineImpl struct {
	env map[string]string
}

func (t *TemplateEngineImpl) LoadEnv(path string) {
	if t.env != nil {
		return
	}
	envMap, err := godotenv.Read(path)
	if err != nil {
		envMap = map[string]string{}
	}

	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) == 2 {
			envMap[parts[0]] = parts[1]
		}
	}
	t.env = envMap
}

func (t *TemplateEngineImpl) RenderURL(raw string) (string, error) {
	// plain URLs skip the template engine so nothing in them is reinterpreted
	if !strings.Contains(raw, "{{") {
		return raw, nil
	}
	t.LoadEnv(".env")

	tmpl, err := template.New("url").
		Option("missingkey=error").
		Funcs(sprig.TxtFuncMap()).
		Parse(raw)
	if err != nil {
		return "", fmt.Errorf("template parse: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, TemplateContext{Env: t.env}); err != nil {
		return "", fmt.Errorf("template exec: %w", err)
	}
	return buf.String(), nil
}
