package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ojedal/texgen/internal/config"
	"github.com/ojedal/texgen/internal/project"
)

func TestHandleListTypes(t *testing.T) {
	handler := handleListTypes()

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ListTypesInput{})
	if err != nil {
		t.Fatalf("list_types error: %v", err)
	}

	if len(out.Types) != 3 {
		t.Fatalf("got %d types, want 3", len(out.Types))
	}
	want := map[string]string{"art": "article", "ens": "report", "pres": "beamer"}
	for _, info := range out.Types {
		if want[info.Code] != info.Class {
			t.Errorf("type %s has class %q, want %q", info.Code, info.Class, want[info.Code])
		}
	}
}

func TestHandleCreateProject(t *testing.T) {
	base := t.TempDir()
	handler := handleCreateProject(config.Config{Author: "Autor Configurado"})

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, CreateProjectInput{
		Title: "Avances en ML",
		Type:  "pres",
		Dir:   base,
	})
	if err != nil {
		t.Fatalf("create_project error: %v", err)
	}

	if out.Slug != "avances-en-ml" {
		t.Errorf("Slug = %q, want %q", out.Slug, "avances-en-ml")
	}
	if out.Dir != filepath.Join(base, "avances-en-ml") {
		t.Errorf("Dir = %q", out.Dir)
	}

	tex, err := os.ReadFile(filepath.Join(out.Dir, "avances-en-ml.tex"))
	if err != nil {
		t.Fatalf("reading generated .tex: %v", err)
	}
	if !strings.Contains(string(tex), `\author{Autor Configurado}`) {
		t.Error("configured author should be rendered when the call omits one")
	}
}

func TestHandleCreateProjectConflict(t *testing.T) {
	base := t.TempDir()
	handler := handleCreateProject(config.Config{})

	input := CreateProjectInput{Title: "notas", Type: "art", Dir: base}
	if _, _, err := handler(context.Background(), &mcp.CallToolRequest{}, input); err != nil {
		t.Fatalf("first create_project error: %v", err)
	}

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, input)
	if !errors.Is(err, project.ErrDestinationExists) {
		t.Errorf("second call error = %v, want ErrDestinationExists", err)
	}
}

func TestHandleCreateProjectBadType(t *testing.T) {
	handler := handleCreateProject(config.Config{})

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, CreateProjectInput{
		Title: "notas",
		Type:  "tesis",
		Dir:   t.TempDir(),
	})
	if !errors.Is(err, project.ErrUnknownType) {
		t.Errorf("error = %v, want ErrUnknownType", err)
	}
}
