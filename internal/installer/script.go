package installer

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// The wrapper script only carries configuration; all fetch logic lives in
// the compiled binary's `fetch` subcommand.
const scriptTemplate = `#!/bin/sh
# Generated by tempcredsctl. Do not edit; re-run "tempcredsctl setup" instead.
export {{ .URLVar }}={{ shellQuote .APIURL }}
export {{ .KeyVar }}={{ shellQuote .APIKey }}
{{- if .CachePath }}
export {{ .CacheVar }}={{ shellQuote .CachePath }}
{{- end }}
exec {{ shellQuote .ExecPath }} fetch
`

type scriptParams struct {
	URLVar    string
	KeyVar    string
	CacheVar  string
	APIURL    string
	APIKey    string
	CachePath string
	ExecPath  string
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func renderScript(params scriptParams) ([]byte, error) {
	tmpl, err := template.New("script").Funcs(template.FuncMap{"shellQuote": shellQuote}).Parse(scriptTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse script template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return nil, fmt.Errorf("failed to render script: %w", err)
	}

	return buf.Bytes(), nil
}
