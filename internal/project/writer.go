package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ojedal/texgen/internal/render"
	"github.com/ojedal/texgen/internal/templates"
)

// ErrDestinationExists is returned when the target project directory is
// already present. The writer never overwrites or merges.
var ErrDestinationExists = errors.New("destination already exists")

// FiguresDir is the image subdirectory created inside every project.
const FiguresDir = "figuras"

// Result reports what the writer put on disk.
type Result struct {
	Dir   string   // absolute or base-relative project directory
	Files []string // file names written, in order
}

// Write renders the template set and creates the project tree:
// <BaseDir>/<Slug>/ with figuras/ and every rendered file. There is no
// rollback: a mid-sequence failure is reported with the directory name
// so the user knows what to clean up.
func Write(req *Request, set *templates.Set) (*Result, error) {
	target := filepath.Join(req.BaseDir, req.Slug)

	if _, err := os.Lstat(target); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDestinationExists, target)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking destination %s: %w", target, err)
	}

	if err := os.MkdirAll(target, 0o755); err != nil {
		return nil, fmt.Errorf("creating project directory %s: %w", target, err)
	}
	if err := os.Mkdir(filepath.Join(target, FiguresDir), 0o755); err != nil {
		return nil, fmt.Errorf("creating %s/%s (partial project left behind): %w", target, FiguresDir, err)
	}

	vars := req.Vars()
	result := &Result{Dir: target, Files: make([]string, 0, len(set.Files))}
	for _, f := range set.Files {
		content := render.Apply(f.Content, vars)
		path := filepath.Join(target, f.Dest)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s (partial project left in %s): %w", f.Dest, target, err)
		}
		result.Files = append(result.Files, f.Dest)
	}

	return result, nil
}
