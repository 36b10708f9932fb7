package templates

import (
	"embed"
	"fmt"
)

// Built-in templates ship with the binary so the tool works before the
// user has installed or customized anything.
//
//go:embed builtin/*
var builtinFS embed.FS

// loadBuiltin returns the embedded content of a template file.
func loadBuiltin(name string) (string, error) {
	data, err := builtinFS.ReadFile("builtin/" + name)
	if err != nil {
		return "", fmt.Errorf("no built-in template %q: %w", name, err)
	}
	return string(data), nil
}
