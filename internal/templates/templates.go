// Package templates resolves the template files that make up a project.
//
// Each project gets four files: the main .tex template for its type, a
// bibliography, a Makefile and a .gitignore. Every file resolves
// independently: a copy in the template directory wins, otherwise the
// built-in embedded with the binary is used. When the directory was
// configured explicitly (flag, LATEX_TEMPLATES_DIR or config file) it is
// authoritative and a missing file is an error instead of a fallback —
// never silently scaffold from a different template than the one the
// user pointed at.
package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrTemplateNotFound is returned when an explicitly configured template
// directory doesn't contain a required template file.
var ErrTemplateNotFound = errors.New("template file not found")

// Shared template file names, identical across project types.
const (
	BibFile       = "referencias.bib"
	MakefileFile  = "Makefile"
	GitignoreFile = "gitignore"
)

// File is one resolved template: its source name, the name it will have
// inside the project, and its raw (unrendered) content.
type File struct {
	Name    string // template file name, e.g. "articulo.tex"
	Dest    string // destination name, e.g. "analisis-de-redes.tex"
	Content string
	Source  string // directory the file came from, or "built-in"
}

// Set is the ordered collection of template files for one project.
type Set struct {
	Files []File
}

// Options controls template resolution.
type Options struct {
	// Dir is the template directory to consult. Empty means the
	// default ~/.latex-templates.
	Dir string

	// Explicit marks Dir as user-configured. Missing files then fail
	// with ErrTemplateNotFound instead of falling back to built-ins.
	Explicit bool
}

// DefaultDir returns the default template directory, ~/.latex-templates.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".latex-templates")
}

// Resolve loads the template set for a project: mainTemplate rendered to
// <slug>.tex, plus bibliography, Makefile and .gitignore.
func Resolve(opts Options, mainTemplate, slug string) (*Set, error) {
	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir()
	}

	wanted := []struct {
		name string
		dest string
	}{
		{mainTemplate, slug + ".tex"},
		{BibFile, BibFile},
		{MakefileFile, MakefileFile},
		{GitignoreFile, ".gitignore"},
	}

	set := &Set{Files: make([]File, 0, len(wanted))}
	for _, w := range wanted {
		file, err := load(dir, opts.Explicit, w.name)
		if err != nil {
			return nil, err
		}
		file.Dest = w.dest
		set.Files = append(set.Files, file)
	}
	return set, nil
}

// load reads one template file from dir, falling back to the built-in
// copy unless the directory is explicit.
func load(dir string, explicit bool, name string) (File, error) {
	if dir != "" {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			return File{Name: name, Content: string(data), Source: dir}, nil
		case !os.IsNotExist(err):
			return File{}, fmt.Errorf("reading template %s: %w", path, err)
		case explicit:
			return File{}, fmt.Errorf("%w: %s (in %s)", ErrTemplateNotFound, name, dir)
		}
	}

	content, err := loadBuiltin(name)
	if err != nil {
		return File{}, err
	}
	return File{Name: name, Content: content, Source: "built-in"}, nil
}

// Check reports the availability of one template file for doctor.
type Check struct {
	Name    string `json:"name"`
	Present bool   `json:"present"` // present in the template directory
	Builtin bool   `json:"builtin"` // a built-in fallback exists
}

// Verify reports, for every known template file, whether the given
// directory provides it and whether a built-in exists. An empty dir
// checks the default directory.
func Verify(dir string) []Check {
	if dir == "" {
		dir = DefaultDir()
	}

	checks := make([]Check, 0, len(knownFiles))
	for _, name := range knownFiles {
		_, statErr := os.Stat(filepath.Join(dir, name))
		_, builtinErr := loadBuiltin(name)
		checks = append(checks, Check{
			Name:    name,
			Present: dir != "" && statErr == nil,
			Builtin: builtinErr == nil,
		})
	}
	return checks
}

// knownFiles lists every template file the scaffolder may need, across
// all project types.
var knownFiles = []string{
	"articulo.tex",
	"ensayo.tex",
	"presentacion.tex",
	BibFile,
	MakefileFile,
	GitignoreFile,
}
