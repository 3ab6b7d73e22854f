package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv expands environment variables in YAML content using Go templates.
// Uses {{.VAR_NAME}} syntax to avoid collision with $ in literal values.
//
// Claim text and verification expressions routinely contain $ characters
// ("gold above $2000/oz", "CPI > 3% by Q3"), so plain ${VAR} substitution
// would mangle config values that quote them.
//
// Examples:
//   - {{.FRED_API_KEY}} expands to the value of FRED_API_KEY
//   - {{.DB_HOST}}:{{.DB_PORT}} expands both variables
//   - "price above $2000" is preserved literally
//
// Missing variables expand to empty string (unless template is malformed).
// Validation should catch required fields that are empty.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		// Content without template syntax passes through untouched
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		if key, value, ok := strings.Cut(env, "="); ok && key != "" {
			envMap[key] = value
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}

	return buf.Bytes()
}
