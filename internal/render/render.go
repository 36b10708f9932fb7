// Package render substitutes {{KEY}} placeholder tokens in template content.
//
// Templates use literal double-brace tokens ({{TITULO}}, {{AUTOR}},
// {{FECHA}}, {{NOMBRE_ARCHIVO}}). text/template is deliberately not used
// here: it would parse those tokens as actions and reject them, and it
// errors on tokens it doesn't know. User-customized templates may carry
// extra tokens, which must pass through untouched.
package render

import (
	"sort"
	"strings"
)

// Apply replaces every occurrence of {{KEY}} for each key in vars.
// Tokens without a matching key are left verbatim. Pure function.
// Keys are applied in sorted order so the result is deterministic even
// when a substituted value itself contains a token.
func Apply(content string, vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		content = strings.ReplaceAll(content, "{{"+k+"}}", vars[k])
	}
	return content
}
