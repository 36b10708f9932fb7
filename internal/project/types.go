package project

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned when a type code isn't in the table.
var ErrUnknownType = errors.New("unknown project type")

// Type describes one kind of document project. The table is closed:
// adding a kind means adding a row here, nothing else.
type Type struct {
	Code         string // short code used on the command line
	Name         string // display name
	Class        string // LaTeX document class
	TemplateFile string // main template file name
}

// typeTable is the fixed set of supported project types, in display order.
var typeTable = []Type{
	{Code: "art", Name: "Artículo", Class: "article", TemplateFile: "articulo.tex"},
	{Code: "ens", Name: "Ensayo", Class: "report", TemplateFile: "ensayo.tex"},
	{Code: "pres", Name: "Presentación", Class: "beamer", TemplateFile: "presentacion.tex"},
}

// Types returns the supported project types in display order.
func Types() []Type {
	out := make([]Type, len(typeTable))
	copy(out, typeTable)
	return out
}

// TypeCodes returns the valid type codes in display order.
func TypeCodes() []string {
	codes := make([]string, len(typeTable))
	for i, t := range typeTable {
		codes[i] = t.Code
	}
	return codes
}

// LookupType resolves a type code. Unknown codes fail with ErrUnknownType
// and a message listing the valid codes.
func LookupType(code string) (Type, error) {
	for _, t := range typeTable {
		if t.Code == code {
			return t, nil
		}
	}
	return Type{}, fmt.Errorf("%w %q (valid types: %s)",
		ErrUnknownType, code, strings.Join(TypeCodes(), ", "))
}
