package project

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ojedal/texgen/internal/config"
	"github.com/ojedal/texgen/internal/slug"
)

// ErrInvalidTitle is returned when a title is empty or slugifies to nothing.
var ErrInvalidTitle = errors.New("invalid project title")

// Request is one fully resolved project-creation request.
// Immutable after construction.
type Request struct {
	Title   string
	Type    Type
	Author  string
	BaseDir string // directory the project directory is created under
	Slug    string // derived from Title, names the directory and .tex file
	Date    string // formatted creation date for {{FECHA}}
}

// NewRequest validates and resolves a creation request. The clock is a
// parameter so tests can pin {{FECHA}}.
func NewRequest(title, typeCode, author, baseDir string, now time.Time) (*Request, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is empty", ErrInvalidTitle)
	}

	t, err := LookupType(typeCode)
	if err != nil {
		return nil, err
	}

	s, err := slug.Make(title)
	if err != nil {
		return nil, fmt.Errorf("%w: %q yields no usable directory name", ErrInvalidTitle, title)
	}

	if baseDir == "" {
		baseDir = "."
	}

	return &Request{
		Title:   title,
		Type:    t,
		Author:  author,
		BaseDir: baseDir,
		Slug:    s,
		Date:    FormatDate(now),
	}, nil
}

// Vars returns the placeholder map rendered into every template file.
func (r *Request) Vars() map[string]string {
	return map[string]string{
		"TITULO":         r.Title,
		"AUTOR":          r.Author,
		"FECHA":          r.Date,
		"NOMBRE_ARCHIVO": r.Slug,
	}
}

// ResolveAuthor picks the document author: the explicit flag value wins,
// then the configured default, then a neutral placeholder. Never fails.
func ResolveAuthor(flagValue, configured string) string {
	if flagValue != "" {
		return flagValue
	}
	if configured != "" {
		return configured
	}
	return config.DefaultAuthor
}

// spanishMonths avoids depending on the system locale for {{FECHA}}.
var spanishMonths = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatDate renders a date in Spanish long form: "3 de mayo de 2026".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}
