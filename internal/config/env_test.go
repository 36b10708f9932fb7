package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := `# defaults for texgen
LATEX_AUTOR="María López"
export LATEX_TEMPLATES_DIR='/opt/plantillas'

MALFORMED LINE
=novalue
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	t.Setenv("LATEX_AUTOR", "")
	t.Setenv("LATEX_TEMPLATES_DIR", "")
	os.Unsetenv("LATEX_AUTOR")
	os.Unsetenv("LATEX_TEMPLATES_DIR")

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile() error: %v", err)
	}

	if got := os.Getenv("LATEX_AUTOR"); got != "María López" {
		t.Errorf("LATEX_AUTOR = %q, want quotes stripped", got)
	}
	if got := os.Getenv("LATEX_TEMPLATES_DIR"); got != "/opt/plantillas" {
		t.Errorf("LATEX_TEMPLATES_DIR = %q, want export prefix handled", got)
	}
}

func TestLoadEnvFile_EnvironmentWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("LATEX_AUTOR=Desde Archivo\n"), 0o600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	t.Setenv("LATEX_AUTOR", "Ya Definido")

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile() error: %v", err)
	}
	if got := os.Getenv("LATEX_AUTOR"); got != "Ya Definido" {
		t.Errorf("LATEX_AUTOR = %q, existing environment should win", got)
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "no-such.env")); err != nil {
		t.Errorf("LoadEnvFile() on missing file = %v, want nil", err)
	}
}

func TestSplitEnvLine(t *testing.T) {
	tests := []struct {
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{"KEY=value", "KEY", "value", true},
		{`KEY="quoted value"`, "KEY", "quoted value", true},
		{"export KEY=value", "KEY", "value", true},
		{"KEY=a=b", "KEY", "a=b", true},
		{"no equals sign", "", "", false},
		{"=value", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			key, value, ok := splitEnvLine(tt.line)
			if ok != tt.wantOK || key != tt.wantKey || value != tt.wantValue {
				t.Errorf("splitEnvLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.line, key, value, ok, tt.wantKey, tt.wantValue, tt.wantOK)
			}
		})
	}
}
